//go:build ignore

// This program generates the variants in bilinear_halving.go: one
// HalvingH64K<k>/HalvingH128K<k> pair per recursive pre-halving depth k in
// [0,6] (precalc.BuildBilinear never picks a higher k). Its output writes
// every halving pass out in straight-line form and does not include the
// HalvingDispatchH64/HalvingDispatchH128 selectors; the checked-in file
// writes the passes for k >= 3 as a loop and adds those two selectors, so
// it is not byte-identical to this program's output. Run with `go run gen_bilinear.go > bilinear_halving.go`
// ahead of time; its output is checked in and this file is never built or run
// by the module itself (matches SPEC_FULL.md E.6 — the module never invokes
// `go generate` or the Go toolchain during this exercise).
package main

import (
	"bytes"
	"fmt"
	"os"
)

const maxK = 6

func main() {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "// Code generated by gen_bilinear.go; DO NOT EDIT.")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "package filter")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, `import (
	"github.com/deepteams/imgscale/internal/precalc"
	"github.com/deepteams/imgscale/internal/repack"
)`)

	for k := 0; k <= maxK; k++ {
		genVariant(&buf, k, 64)
		genVariant(&buf, k, 128)
	}

	os.Stdout.Write(buf.Bytes())
}

func genVariant(buf *bytes.Buffer, k, bpp int) {
	rowType := "repack.Row64"
	halveFn := "HalveRowH64"
	bilinFn := "BilinearRowH64"
	if bpp == 128 {
		rowType = "repack.Row128"
		halveFn = "HalveRowH128"
		bilinFn = "BilinearRowH128"
	}
	fmt.Fprintf(buf, "\n// HalvingH%dK%d applies %d pre-halving pass(es) to src via scratch\n", bpp, k, k)
	fmt.Fprintf(buf, "// (len(scratch) >= len(src)/2), then resamples with plan into dst.\n")
	fmt.Fprintf(buf, "func HalvingH%dK%d(src %s, scratch %s, plan precalc.BilinearPlan, dst %s) {\n", bpp, k, rowType, rowType, rowType)
	fmt.Fprintf(buf, "\tcur := src\n")
	for i := 0; i < k; i++ {
		fmt.Fprintf(buf, "\t%s(cur, scratch)\n", halveFn)
		if bpp == 64 {
			fmt.Fprintf(buf, "\tcur = scratch[:len(cur)/2]\n")
		} else {
			fmt.Fprintf(buf, "\tcur = scratch[:len(cur)/2]\n")
		}
	}
	fmt.Fprintf(buf, "\t%s(cur, plan, dst)\n", bilinFn)
	fmt.Fprintf(buf, "}\n")
}
