// Package imgscale is a pure Go, CPU-only pixel buffer scaler.
//
// It resamples a source pixel buffer into a destination pixel buffer across
// ten external pixel formats (RGBA/BGRA/ARGB/ABGR, premultiplied or
// unassociated, plus RGB/BGR), using a separable two-pass filter pipeline
// (horizontal then vertical) chosen per axis from copy, nearest, bilinear
// (with recursive pre-halving for large shrink ratios), or box averaging.
//
// The package never spawns goroutines or touches a filesystem, network, or
// clock on its own: a Context is built once from a pair of Buffers and then
// driven row range by row range via RenderRows, RenderRowsTo, or the
// goroutine-parallel RenderRowsParallel.
//
// Basic usage:
//
//	err := imgscale.ScaleSimple(src, dst, 0)
//
// For placement, compositing, and a progress callback, build a Context:
//
//	ctx, err := imgscale.NewContextFull(src, dst, color, placement, op, flags, nil)
//	err = ctx.RenderRows(0, dst.Height)
//	err = ctx.Close()
package imgscale
