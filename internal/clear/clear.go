// Package clear fills destination margin pixels outside a Placement's
// sub-pixel rectangle, and provides the "clear batch" scratch row used when
// a render row straddles both cleared margin and placed image content
// (spec.md §4.8). Grounded on internal/dsp/alpha_proc.go's AlphaReplace,
// generalized from "replace fully-transparent pixels with one color" to
// "fill an arbitrary pixel range with one color" for any internal form.
package clear

import "github.com/deepteams/imgscale/internal/repack"

// FillRow64 fills dst[from:to] with color, a single internal-form pixel.
func FillRow64(dst repack.Row64, from, to int, color uint64) {
	for i := from; i < to; i++ {
		dst[i] = color
	}
}

// FillRow128 is FillRow64 for the 128bpp internal form.
func FillRow128(dst repack.Row128, from, to int, color [4]uint32) {
	for i := from; i < to; i++ {
		copy(dst[i*4:i*4+4], color[:])
	}
}

// Batch64 is a reusable scratch row pre-filled with the clear color, used to
// build a full destination row before compositing placed image content into
// its middle (so the horizontal margins never need a separate code path
// from the placed span).
type Batch64 struct {
	Color uint64
	row   repack.Row64
}

// Row returns a row of exactly width pixels, all set to Color. The returned
// slice is owned by the Batch and is invalidated by the next call to Row.
func (b *Batch64) Row(width int) repack.Row64 {
	if cap(b.row) < width {
		b.row = make(repack.Row64, width)
	}
	b.row = b.row[:width]
	for i := range b.row {
		b.row[i] = b.Color
	}
	return b.row
}

// Batch128 is Batch64 for the 128bpp internal form.
type Batch128 struct {
	Color [4]uint32
	row   repack.Row128
}

func (b *Batch128) Row(width int) repack.Row128 {
	n := width * 4
	if cap(b.row) < n {
		b.row = make(repack.Row128, n)
	}
	b.row = b.row[:n]
	for i := 0; i < width; i++ {
		copy(b.row[i*4:i*4+4], b.Color[:])
	}
	return b.row
}
