// Command imgscale resizes PNG/JPEG images from the command line using the
// imgscale pixel buffer scaler.
//
// Usage:
//
//	imgscale scale --in <input> --out <output> --width W --height H
//	imgscale info <input>
package main

import (
	"log"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v\n", err)
		os.Exit(1)
	}
}
