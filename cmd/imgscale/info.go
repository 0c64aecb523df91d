package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <input>",
	Short: "Print an image file's dimensions and decoded format",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	buf, err := decodeBuffer(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s: %dx%d, stride %d, format %v\n", args[0], buf.Width, buf.Height, buf.Stride, buf.Format)
	return nil
}
