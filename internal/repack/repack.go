// Package repack converts pixel rows between the ten external formats and
// the three internal forms described in internal/pixelformat, and resolves
// which unpack/pack pair a given (source format, internal form, destination
// format) triple needs.
//
// The premultiply/unpremultiply arithmetic is grounded on
// internal/dsp/alpha_proc.go's alphaMult/alphaGetScale (reciprocal multiply
// + rounding shift instead of a division per pixel), generalized from the
// teacher's single ARGB-premultiply-in-place routine into the full
// unassoc<->premul8<->premul16 conversion matrix spec.md §4.4 requires, and
// using internal/fixedpoint's LUTs instead of a single runtime reciprocal so
// the inner loop never divides.
package repack

import (
	"fmt"

	"github.com/deepteams/imgscale/internal/fixedpoint"
	"github.com/deepteams/imgscale/internal/pixelformat"
)

// Row64 is a 64bpp-compact internal-form row: one pixel per uint64, packed as
// R in bits 0-15, G in 16-31, B in 32-47, A in 48-63 (premul-8 expanded to a
// 16-bit slot so the horizontal/vertical filter accumulators share one
// arithmetic width for color and alpha).
type Row64 []uint64

// Row128 is a 128bpp-compact or 128bpp-linear internal-form row: four
// uint32 channels per pixel, R,G,B,A order, flattened 4 per pixel.
type Row128 []uint32

func pack64(r, g, b, a uint16) uint64 {
	return uint64(r) | uint64(g)<<16 | uint64(b)<<32 | uint64(a)<<48
}

func unpack64(p uint64) (r, g, b, a uint16) {
	return uint16(p), uint16(p >> 16), uint16(p >> 32), uint16(p >> 48)
}

// channelAt returns the byte at logical channel c within a src pixel laid
// out per ord, or 0xff if c is None (alpha-less external formats are always
// treated as fully opaque).
func channelAt(pixel []byte, ord pixelformat.Order, c pixelformat.Channel) uint8 {
	for i, oc := range ord {
		if oc == c {
			return pixel[i]
		}
	}
	if c == pixelformat.A {
		return 0xff
	}
	return 0
}

// Unpack converts n pixels from an external row (src, in format ext) into an
// internal-form row. dst64 is used when form.Storage is Storage64, dst128
// when Storage128; the caller allocates whichever one it needs via
// internal/bufpool.
func Unpack(ext pixelformat.External, form pixelformat.InternalForm, src []byte, n int, dst64 Row64, dst128 Row128) {
	d := pixelformat.Describe(ext)
	bpp := d.BytesPerPixel()

	for i := 0; i < n; i++ {
		pixel := src[i*bpp : i*bpp+bpp]
		r8 := channelAt(pixel, d.Order, pixelformat.R)
		g8 := channelAt(pixel, d.Order, pixelformat.G)
		b8 := channelAt(pixel, d.Order, pixelformat.B)
		a8 := channelAt(pixel, d.Order, pixelformat.A)

		if d.Alpha == pixelformat.AlphaUnassociated {
			r8, g8, b8 = premultiply8(r8, a8), premultiply8(g8, a8), premultiply8(b8, a8)
		}
		// AlphaNone formats are already fully opaque "premultiplied" (a==255
		// is a no-op premultiply), and AlphaPremultiplied formats are used
		// as-is.

		switch form.Storage {
		case pixelformat.Storage64:
			r, g, b, a := widenTo16(r8, g8, b8, a8, form)
			dst64[i] = pack64(r, g, b, a)
		case pixelformat.Storage128:
			r, g, b, a := widenTo32(r8, g8, b8, a8, form)
			off := i * 4
			dst128[off+0] = r
			dst128[off+1] = g
			dst128[off+2] = b
			dst128[off+3] = a
		}
	}
}

// Pack converts n pixels from an internal-form row back to an external row.
func Pack(form pixelformat.InternalForm, ext pixelformat.External, src64 Row64, src128 Row128, n int, dst []byte) {
	d := pixelformat.Describe(ext)
	bpp := d.BytesPerPixel()

	for i := 0; i < n; i++ {
		var r, g, b, a uint32
		switch form.Storage {
		case pixelformat.Storage64:
			r16, g16, b16, a16 := unpack64(src64[i])
			r, g, b, a = narrowFrom16(r16, g16, b16, a16, form)
		case pixelformat.Storage128:
			off := i * 4
			r, g, b, a = narrowFrom32(src128[off+0], src128[off+1], src128[off+2], src128[off+3], form)
		}

		if form.Gamma == pixelformat.GammaLinear {
			// narrowFrom32 already returns unassociated sRGB channels for
			// the linear form; premultiply again for associated targets.
			if d.Alpha == pixelformat.AlphaPremultiplied {
				a8 := uint8(a)
				r, g, b = uint32(premultiply8(uint8(r), a8)), uint32(premultiply8(uint8(g), a8)), uint32(premultiply8(uint8(b), a8))
			}
		} else if d.Alpha == pixelformat.AlphaUnassociated {
			a8 := uint8(a)
			if form.Alpha == pixelformat.Premul16 {
				r, g, b = uint32(fixedpoint.UnpremulP16(r, a8)), uint32(fixedpoint.UnpremulP16(g, a8)), uint32(fixedpoint.UnpremulP16(b, a8))
			} else {
				r, g, b = uint32(fixedpoint.UnpremulP8(r, a8)), uint32(fixedpoint.UnpremulP8(g, a8)), uint32(fixedpoint.UnpremulP8(b, a8))
			}
		}

		pixel := dst[i*bpp : i*bpp+bpp]
		writeChannel(pixel, d.Order, pixelformat.R, uint8(r))
		writeChannel(pixel, d.Order, pixelformat.G, uint8(g))
		writeChannel(pixel, d.Order, pixelformat.B, uint8(b))
		if d.Alpha != pixelformat.AlphaNone {
			writeChannel(pixel, d.Order, pixelformat.A, uint8(a))
		}
	}
}

func writeChannel(pixel []byte, ord pixelformat.Order, c pixelformat.Channel, v uint8) {
	for i, oc := range ord {
		if oc == c {
			pixel[i] = v
			return
		}
	}
}

// premultiply8 matches alpha_proc.go's alphaMult(alphaGetScale(a)): reciprocal
// multiply and rounding shift instead of channel*a/255.
func premultiply8(c, a uint8) uint8 {
	if a == 255 {
		return c
	}
	if a == 0 {
		return 0
	}
	return uint8((uint32(c)*uint32(a)*257 + (1 << 15)) >> 16)
}

// widenTo16 maps unpacked 8-bit RGBA channels (already premultiplied in the
// external-format sense) into the internal form's channel+alpha
// representation for a 64bpp-compact row.
func widenTo16(r8, g8, b8, a8 uint8, form pixelformat.InternalForm) (r, g, b, a uint16) {
	if form.Alpha == pixelformat.Premul16 {
		a16 := fixedpoint.Alpha16(a8)
		return scaleChannel16(r8, a8, a16), scaleChannel16(g8, a8, a16), scaleChannel16(b8, a8, a16), a16
	}
	return uint16(r8), uint16(g8), uint16(b8), uint16(a8)
}

// scaleChannel16 re-premultiplies an 8-bit-premultiplied channel into the
// 16-bit-expanded premultiplication (channel8 * Alpha16(a) >> 8), recovering the
// unassociated channel first via UnpremulP8 so repeated premultiply/
// unpremultiply passes don't compound rounding error beyond what premul-16
// itself introduces.
func scaleChannel16(c8, a8 uint8, a16 uint16) uint16 {
	if a8 == 0 {
		return 0
	}
	unassoc := fixedpoint.UnpremulP8(uint32(c8), a8)
	return uint16(uint32(unassoc) * uint32(a16) >> 8)
}

func widenTo32(r8, g8, b8, a8 uint8, form pixelformat.InternalForm) (r, g, b, a uint32) {
	if form.Gamma == pixelformat.GammaLinear {
		if a8 == 0 {
			return 0, 0, 0, 0
		}
		unassoc := [3]uint8{r8, g8, b8}
		if a8 != 255 {
			unassoc[0] = fixedpoint.UnpremulP8(uint32(r8), a8)
			unassoc[1] = fixedpoint.UnpremulP8(uint32(g8), a8)
			unassoc[2] = fixedpoint.UnpremulP8(uint32(b8), a8)
		}
		lr := uint32(fixedpoint.FromSRGB[unassoc[0]])
		lg := uint32(fixedpoint.FromSRGB[unassoc[1]])
		lb := uint32(fixedpoint.FromSRGB[unassoc[2]])
		aw := uint32(a8) * 16 // expand 8-bit alpha into the 12-bit (0xfff max) range
		lr = lr * aw >> 11
		lg = lg * aw >> 11
		lb = lb * aw >> 11
		return lr, lg, lb, aw
	}
	return uint32(r8) << 4, uint32(g8) << 4, uint32(b8) << 4, uint32(a8) << 4
}

func narrowFrom16(r, g, b, a uint16, form pixelformat.InternalForm) (r32, g32, b32, a32 uint32) {
	if form.Alpha == pixelformat.Premul16 {
		// Undo scaleChannel16's >>8 so UnpremulP16 sees channel8*Alpha16(a),
		// and return the alpha as 8 bits.
		return uint32(r) << 8, uint32(g) << 8, uint32(b) << 8, uint32(a) >> 8
	}
	return uint32(r), uint32(g), uint32(b), uint32(a)
}

func narrowFrom32(r, g, b, a uint32, form pixelformat.InternalForm) (r32, g32, b32, a32 uint32) {
	if form.Gamma == pixelformat.GammaLinear {
		if a == 0 {
			return 0, 0, 0, 0
		}
		a8 := uint8(a / 16)
		unassocLin := func(lin uint32) uint32 {
			u := (lin<<11 + a/2) / a // rescale premultiplied-linear back to unassociated-linear
			if u > 2047 {
				u = 2047
			}
			return u
		}
		lr, lg, lb := unassocLin(r), unassocLin(g), unassocLin(b)
		return uint32(fixedpoint.ToSRGB[lr]), uint32(fixedpoint.ToSRGB[lg]), uint32(fixedpoint.ToSRGB[lb]), uint32(a8)
	}
	return r >> 4, g >> 4, b >> 4, a >> 4
}

// Pipeline names the resolved (unpack, pack) pair plus the internal form
// used in between, mirroring spec.md §4.3's six-step resolution algorithm:
// 1) pick 128bpp-linear storage when any axis needs box or sRGB
// linearization is requested, else 64bpp-compressed,
// 2) pick premul-16 when any axis needs box or both external formats are
// unassociated, else premul-8,
// 3) resolve the source unpacker for (SrcFormat, form),
// 4) resolve the destination packer for (form, DstFormat),
// 5) fail fast if either side's descriptor is invalid.
type Pipeline struct {
	Form pixelformat.InternalForm
	Src  pixelformat.External
	Dst  pixelformat.External
}

// FilterKind names which filter family an axis will use, driving step 1/2
// of pipeline resolution.
type FilterKind int

const (
	FilterCopy FilterKind = iota
	FilterOne
	FilterBilinear
	FilterBox
)

// ResolvePipeline implements spec.md §4.3's pipeline resolution: the
// internal form is the least-lossy one that satisfies every axis's filter
// requirement, so a single repack pass can feed both the horizontal and
// vertical filter engines.
func ResolvePipeline(src, dst pixelformat.External, horiz, vert FilterKind, srgbEnabled bool) (Pipeline, error) {
	if int(src) < 0 || int(src) > int(pixelformat.BGR) {
		return Pipeline{}, fmt.Errorf("repack: invalid source format %d", int(src))
	}
	if int(dst) < 0 || int(dst) > int(pixelformat.BGR) {
		return Pipeline{}, fmt.Errorf("repack: invalid destination format %d", int(dst))
	}

	needsBox := horiz == FilterBox || vert == FilterBox
	bothUnassociated := pixelformat.Describe(src).Alpha == pixelformat.AlphaUnassociated &&
		pixelformat.Describe(dst).Alpha == pixelformat.AlphaUnassociated

	form := pixelformat.InternalForm{
		Storage: pixelformat.Storage64,
		Alpha:   pixelformat.Premul8,
		Gamma:   pixelformat.GammaCompressed,
	}
	if needsBox || srgbEnabled {
		// Box averaging over sRGB-compressed samples visibly darkens edges,
		// and sRGB linearization (the default, opt-out via
		// FlagDisableSRGBLinearization) needs the wider linear range
		// regardless of which filter family is driving this axis.
		form.Storage = pixelformat.Storage128
		form.Gamma = pixelformat.GammaLinear
	}
	if needsBox || bothUnassociated {
		// Premul-16 avoids the premul8/unpremul8 round-trip's 2-LSB rounding
		// error, needed for box's wide averaging window and for an
		// unassociated-in/unassociated-out scale to be bit-exact on a
		// no-op (e.g. identity) transform.
		form.Alpha = pixelformat.Premul16
	}

	return Pipeline{Form: form, Src: src, Dst: dst}, nil
}
