// Package filter implements the four filter families from spec.md §4.5:
// copy, one (nearest/replicate), bilinear (two-tap, with recursive 2:1
// pre-halving for large shrinks), and box (area-average). Each family
// provides a horizontal pass (row -> row, resampling columns) and a
// vertical pass (several rows -> one row, resampling across rows using the
// same precalc plan shape).
//
// The horizontal/vertical split and the box accumulate-then-normalize idiom
// are grounded on internal/dsp/rescale.go's rescalerImportRow*/
// rescalerExportRow* pair in the teacher, generalized from rescale.go's
// single incremental per-row accumulator to the precalculated,
// randomly-indexable internal/precalc tables so any destination row can be
// produced independently (internal/repack.Row64/Row128 in, same out).
package filter

import (
	"github.com/deepteams/imgscale/internal/fixedpoint"
	"github.com/deepteams/imgscale/internal/precalc"
	"github.com/deepteams/imgscale/internal/repack"
)

// CopyRow64 copies n pixels verbatim; used when an axis has no scaling
// (spec.md's copy fast path, detected once per Context rather than per row).
func CopyRow64(src, dst repack.Row64) {
	copy(dst, src)
}

// CopyRow128 is CopyRow64 for the 128bpp internal form (4 uint32 per pixel).
func CopyRow128(src, dst repack.Row128) {
	copy(dst, src)
}

// OneRowH64 is the nearest-neighbor horizontal pass: each destination pixel
// replicates the single closest source pixel, named "one" in spec.md §4.5
// because exactly one source sample contributes. offsets[i] gives the
// source column for destination column i.
func OneRowH64(src repack.Row64, offsets []int, dst repack.Row64) {
	for i, off := range offsets {
		dst[i] = src[off]
	}
}

// OneRowH128 is OneRowH64 for the 128bpp internal form.
func OneRowH128(src repack.Row128, offsets []int, dst repack.Row128) {
	for i, off := range offsets {
		copy(dst[i*4:i*4+4], src[off*4:off*4+4])
	}
}

// OneOffsets builds the nearest-neighbor source-column table for a
// srcSize->dstSize axis: offset[i] = floor((i + 0.5) * srcSize / dstSize),
// clamped to the last valid index.
func OneOffsets(srcSize, dstSize int) []int {
	offs := make([]int, dstSize)
	if dstSize == 0 || srcSize == 0 {
		return offs
	}
	for i := 0; i < dstSize; i++ {
		off := ((2*i + 1) * srcSize) / (2 * dstSize)
		if off >= srcSize {
			off = srcSize - 1
		}
		offs[i] = off
	}
	return offs
}

func blendChannel16(lo, hi uint16, weight int32) uint16 {
	v := (int32(lo)*weight + int32(hi)*(fixedpoint.SmallMul-weight) + fixedpoint.SmallMul/2) >> 8
	return uint16(v)
}

func blendChannel32(lo, hi uint32, weight int32) uint32 {
	v := (int64(lo)*int64(weight) + int64(hi)*int64(fixedpoint.SmallMul-weight) + fixedpoint.SmallMul/2) >> 8
	return uint32(v)
}

// BilinearRowH64 resamples one row horizontally according to plan, which
// must have been built against len(src) (or its halved equivalent after the
// caller has applied HalveRowH64 plan.Halving times).
func BilinearRowH64(src repack.Row64, plan precalc.BilinearPlan, dst repack.Row64) {
	for i, s := range plan.Samples {
		lo := src[s.Offset]
		hi := src[s.Offset+1]
		r := blendChannel16(uint16(lo), uint16(hi), s.Weight)
		g := blendChannel16(uint16(lo>>16), uint16(hi>>16), s.Weight)
		b := blendChannel16(uint16(lo>>32), uint16(hi>>32), s.Weight)
		a := blendChannel16(uint16(lo>>48), uint16(hi>>48), s.Weight)
		dst[i] = uint64(r) | uint64(g)<<16 | uint64(b)<<32 | uint64(a)<<48
	}
}

// BilinearRowH128 is BilinearRowH64 for the 128bpp internal form.
func BilinearRowH128(src repack.Row128, plan precalc.BilinearPlan, dst repack.Row128) {
	for i, s := range plan.Samples {
		lo := src[s.Offset*4 : s.Offset*4+4]
		hi := src[(s.Offset+1)*4 : (s.Offset+1)*4+4]
		for c := 0; c < 4; c++ {
			dst[i*4+c] = blendChannel32(lo[c], hi[c], s.Weight)
		}
	}
}

// BilinearColV64 blends two full rows with a single weight, producing one
// destination row. Used for the vertical bilinear pass: a destination row
// always blends exactly two source rows (weight, 1-weight).
func BilinearColV64(top, bottom repack.Row64, weight int32, dst repack.Row64) {
	for i := range dst {
		t, b := top[i], bottom[i]
		r := blendChannel16(uint16(t), uint16(b), weight)
		g := blendChannel16(uint16(t>>16), uint16(b>>16), weight)
		bl := blendChannel16(uint16(t>>32), uint16(b>>32), weight)
		a := blendChannel16(uint16(t>>48), uint16(b>>48), weight)
		dst[i] = uint64(r) | uint64(g)<<16 | uint64(bl)<<32 | uint64(a)<<48
	}
}

// BilinearColV128 is BilinearColV64 for the 128bpp internal form.
func BilinearColV128(top, bottom repack.Row128, weight int32, dst repack.Row128) {
	for i := range dst {
		dst[i] = blendChannel32(top[i], bottom[i], weight)
	}
}

// HalveRowH64 performs one 2:1 box-averaging pass horizontally, halving the
// row width (rounding down); used as the pre-halving step for large-ratio
// bilinear shrinks (spec.md §9 "Halving").
func HalveRowH64(src repack.Row64, dst repack.Row64) {
	n := len(src) / 2
	for i := 0; i < n; i++ {
		a, b := src[2*i], src[2*i+1]
		r := uint16((uint32(uint16(a)) + uint32(uint16(b)) + 1) / 2)
		g := uint16((uint32(uint16(a>>16)) + uint32(uint16(b>>16)) + 1) / 2)
		bl := uint16((uint32(uint16(a>>32)) + uint32(uint16(b>>32)) + 1) / 2)
		al := uint16((uint32(uint16(a>>48)) + uint32(uint16(b>>48)) + 1) / 2)
		dst[i] = uint64(r) | uint64(g)<<16 | uint64(bl)<<32 | uint64(al)<<48
	}
}

// HalveRowH128 is HalveRowH64 for the 128bpp internal form.
func HalveRowH128(src repack.Row128, dst repack.Row128) {
	n := len(src) / 8 * 4
	for i := 0; i < n/4; i++ {
		for c := 0; c < 4; c++ {
			a := src[2*i*4+c]
			b := src[(2*i+1)*4+c]
			dst[i*4+c] = (a + b + 1) / 2
		}
	}
}

// BoxRowH64 resamples one row horizontally by area-averaging each
// destination pixel's source span, normalizing with fixedpoint.NormalizeBox.
func BoxRowH64(src repack.Row64, plan precalc.BoxPlan, dst repack.Row64) {
	for i, span := range plan.Spans {
		var accR, accG, accB, accA uint64
		for j := 0; j < span.Count; j++ {
			p := src[span.First+j]
			w := uint64(span.Mul)
			switch {
			case span.Count == 1:
				w = w * uint64(span.EdgeFirst) / fixedpoint.BoxesMul
			case j == 0:
				w = w * uint64(span.EdgeFirst) / fixedpoint.BoxesMul
			case j == span.Count-1:
				w = w * uint64(span.EdgeLast) / fixedpoint.BoxesMul
			}
			accR += uint64(uint16(p)) * w
			accG += uint64(uint16(p>>16)) * w
			accB += uint64(uint16(p>>32)) * w
			accA += uint64(uint16(p>>48)) * w
		}
		r := fixedpoint.NormalizeBox(accR)
		g := fixedpoint.NormalizeBox(accG)
		b := fixedpoint.NormalizeBox(accB)
		a := fixedpoint.NormalizeBox(accA)
		dst[i] = uint64(uint16(r)) | uint64(uint16(g))<<16 | uint64(uint16(b))<<32 | uint64(uint16(a))<<48
	}
}

// BoxRowH128 is BoxRowH64 for the 128bpp internal form.
func BoxRowH128(src repack.Row128, plan precalc.BoxPlan, dst repack.Row128) {
	for i, span := range plan.Spans {
		var acc [4]uint64
		for j := 0; j < span.Count; j++ {
			off := (span.First + j) * 4
			w := uint64(span.Mul)
			switch {
			case span.Count == 1:
				w = w * uint64(span.EdgeFirst) / fixedpoint.BoxesMul
			case j == 0:
				w = w * uint64(span.EdgeFirst) / fixedpoint.BoxesMul
			case j == span.Count-1:
				w = w * uint64(span.EdgeLast) / fixedpoint.BoxesMul
			}
			for c := 0; c < 4; c++ {
				acc[c] += uint64(src[off+c]) * w
			}
		}
		for c := 0; c < 4; c++ {
			dst[i*4+c] = fixedpoint.NormalizeBox(acc[c])
		}
	}
}

// BoxColV64 area-averages several full source rows (rows[span.First:
// span.First+span.Count]) into one destination row, with the same per-edge
// fractional weighting as BoxRowH64.
func BoxColV64(rows []repack.Row64, span precalc.BoxSpan, dst repack.Row64) {
	width := len(dst)
	acc := make([]uint64, width*4)
	for j := 0; j < span.Count; j++ {
		row := rows[j]
		w := uint64(span.Mul)
		switch {
		case span.Count == 1:
			w = w * uint64(span.EdgeFirst) / fixedpoint.BoxesMul
		case j == 0:
			w = w * uint64(span.EdgeFirst) / fixedpoint.BoxesMul
		case j == span.Count-1:
			w = w * uint64(span.EdgeLast) / fixedpoint.BoxesMul
		}
		for i := 0; i < width; i++ {
			p := row[i]
			acc[i*4+0] += uint64(uint16(p)) * w
			acc[i*4+1] += uint64(uint16(p>>16)) * w
			acc[i*4+2] += uint64(uint16(p>>32)) * w
			acc[i*4+3] += uint64(uint16(p>>48)) * w
		}
	}
	for i := 0; i < width; i++ {
		r := fixedpoint.NormalizeBox(acc[i*4+0])
		g := fixedpoint.NormalizeBox(acc[i*4+1])
		b := fixedpoint.NormalizeBox(acc[i*4+2])
		a := fixedpoint.NormalizeBox(acc[i*4+3])
		dst[i] = uint64(uint16(r)) | uint64(uint16(g))<<16 | uint64(uint16(b))<<32 | uint64(uint16(a))<<48
	}
}

// BoxColV128 is BoxColV64 for the 128bpp internal form.
func BoxColV128(rows []repack.Row128, span precalc.BoxSpan, dst repack.Row128) {
	width := len(dst) / 4
	acc := make([]uint64, width*4)
	for j := 0; j < span.Count; j++ {
		row := rows[j]
		w := uint64(span.Mul)
		switch {
		case span.Count == 1:
			w = w * uint64(span.EdgeFirst) / fixedpoint.BoxesMul
		case j == 0:
			w = w * uint64(span.EdgeFirst) / fixedpoint.BoxesMul
		case j == span.Count-1:
			w = w * uint64(span.EdgeLast) / fixedpoint.BoxesMul
		}
		for i := 0; i < width; i++ {
			for c := 0; c < 4; c++ {
				acc[i*4+c] += uint64(row[i*4+c]) * w
			}
		}
	}
	for i := 0; i < width; i++ {
		for c := 0; c < 4; c++ {
			dst[i*4+c] = fixedpoint.NormalizeBox(acc[i*4+c])
		}
	}
}
