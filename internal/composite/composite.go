// Package composite implements the three compositing operations a render
// can apply when writing a scaled row into the destination canvas
// (spec.md §4.7): replace outright, blend with the existing destination
// contents, or replace with a solid clear color as the background behind
// fractional edges. The teacher has no direct
// analogue for multi-surface compositing (webp decodes into one buffer), so
// this package is grounded on internal/dsp/alpha_proc.go's fixed-point
// per-channel blend idiom (alphaMult/alphaGetScale), applied here to two
// whole pixels instead of a single channel against a scalar scale.
package composite

import "github.com/deepteams/imgscale/internal/repack"

// Op names a compositing operation.
type Op int

const (
	// Src overwrites the destination outright.
	Src Op = iota
	// SrcOverDest blends the scaled source and the existing destination
	// contents channel-wise. Per DESIGN.md's Open Question decision, this is
	// a simple per-channel average weighted by the source edge opacity, not
	// general Porter-Duff "over" — there is exactly one source layer and one
	// destination layer, so the associative compositing algebra Porter-Duff
	// exists for doesn't apply.
	SrcOverDest
	// SrcClearDest overwrites the destination with the scaled source; an edge
	// opacity below 256 blends the source against the solid clear color
	// instead of the destination's prior contents.
	SrcClearDest
)

// BlendRow64 composites n pixels of a scaled source row into dst according
// to op. opacity is the edge-opacity weight in [0,256] (256 = fully opaque
// source, spec.md §4.6); clear is the clear color used for SrcClearDest.
func BlendRow64(op Op, src repack.Row64, dst repack.Row64, opacity int32, clear uint64, n int) {
	switch op {
	case Src:
		if opacity >= 256 {
			copy(dst[:n], src[:n])
			return
		}
		for i := 0; i < n; i++ {
			dst[i] = blend64(src[i], dst[i], opacity)
		}
	case SrcOverDest:
		for i := 0; i < n; i++ {
			s := src[i]
			if opacity < 256 {
				s = blend64(s, dst[i], opacity)
			}
			dst[i] = average64(s, dst[i])
		}
	case SrcClearDest:
		for i := 0; i < n; i++ {
			s := src[i]
			if opacity < 256 {
				s = blend64(s, clear, opacity)
			}
			dst[i] = s
		}
	}
}

// BlendRow128 is BlendRow64 for the 128bpp internal form.
func BlendRow128(op Op, src repack.Row128, dst repack.Row128, opacity int32, clear [4]uint32, n int) {
	switch op {
	case Src:
		if opacity >= 256 {
			copy(dst[:n*4], src[:n*4])
			return
		}
		for i := 0; i < n; i++ {
			blend128(src[i*4:i*4+4], dst[i*4:i*4+4], opacity, dst[i*4:i*4+4])
		}
	case SrcOverDest:
		for i := 0; i < n; i++ {
			var s [4]uint32
			copy(s[:], src[i*4:i*4+4])
			if opacity < 256 {
				blend128(s[:], dst[i*4:i*4+4], opacity, s[:])
			}
			average128(s[:], dst[i*4:i*4+4], dst[i*4:i*4+4])
		}
	case SrcClearDest:
		for i := 0; i < n; i++ {
			var s [4]uint32
			copy(s[:], src[i*4:i*4+4])
			if opacity < 256 {
				blend128(s[:], clear[:], opacity, s[:])
			}
			copy(dst[i*4:i*4+4], s[:])
		}
	}
}

func blend64(src, dst uint64, opacity int32) uint64 {
	r := blendCh(uint16(src), uint16(dst), opacity)
	g := blendCh(uint16(src>>16), uint16(dst>>16), opacity)
	b := blendCh(uint16(src>>32), uint16(dst>>32), opacity)
	a := blendCh(uint16(src>>48), uint16(dst>>48), opacity)
	return uint64(r) | uint64(g)<<16 | uint64(b)<<32 | uint64(a)<<48
}

func average64(a, b uint64) uint64 {
	r := avgCh(uint16(a), uint16(b))
	g := avgCh(uint16(a>>16), uint16(b>>16))
	bl := avgCh(uint16(a>>32), uint16(b>>32))
	al := avgCh(uint16(a>>48), uint16(b>>48))
	return uint64(r) | uint64(g)<<16 | uint64(bl)<<32 | uint64(al)<<48
}

func blendCh(src, dst uint16, opacity int32) uint16 {
	v := (int32(src)*opacity + int32(dst)*(256-opacity)) >> 8
	return uint16(v)
}

func avgCh(a, b uint16) uint16 {
	return uint16((uint32(a) + uint32(b) + 1) / 2)
}

func blend128(src, dst []uint32, opacity int32, out []uint32) {
	for c := 0; c < 4; c++ {
		v := (int64(src[c])*int64(opacity) + int64(dst[c])*int64(256-opacity)) >> 8
		out[c] = uint32(v)
	}
}

func average128(a, b []uint32, out []uint32) {
	for c := 0; c < 4; c++ {
		out[c] = uint32((uint64(a[c]) + uint64(b[c]) + 1) / 2)
	}
}
