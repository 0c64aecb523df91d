package imgscale

import (
	"fmt"

	"github.com/deepteams/imgscale/internal/composite"
	"github.com/deepteams/imgscale/internal/pixelformat"
)

// PixelFormat names one of the ten external pixel formats spec.md §3
// describes. Zero value FormatRGBA is premultiplied RGBA.
type PixelFormat int

const (
	FormatRGBA PixelFormat = iota // premultiplied
	FormatBGRA
	FormatARGB
	FormatABGR
	FormatRGBAUnassoc
	FormatBGRAUnassoc
	FormatARGBUnassoc
	FormatABGRUnassoc
	FormatRGB
	FormatBGR
)

var externalFor = [...]pixelformat.External{
	FormatRGBA:        pixelformat.RGBA,
	FormatBGRA:        pixelformat.BGRA,
	FormatARGB:        pixelformat.ARGB,
	FormatABGR:        pixelformat.ABGR,
	FormatRGBAUnassoc: pixelformat.RGBAUnassoc,
	FormatBGRAUnassoc: pixelformat.BGRAUnassoc,
	FormatARGBUnassoc: pixelformat.ARGBUnassoc,
	FormatABGRUnassoc: pixelformat.ABGRUnassoc,
	FormatRGB:         pixelformat.RGB,
	FormatBGR:         pixelformat.BGR,
}

func (f PixelFormat) external() (pixelformat.External, error) {
	if f < 0 || int(f) >= len(externalFor) {
		return 0, fmt.Errorf("imgscale: invalid PixelFormat %d", int(f))
	}
	return externalFor[f], nil
}

// String implements fmt.Stringer.
func (f PixelFormat) String() string {
	ext, err := f.external()
	if err != nil {
		return fmt.Sprintf("PixelFormat(%d)", int(f))
	}
	return ext.String()
}

// CompositeOp names how a rendered row is written into the destination
// buffer (spec.md §4.7).
type CompositeOp int

const (
	// CompositeSrc overwrites the destination outright.
	CompositeSrc CompositeOp = iota
	// CompositeSrcOverDest blends the scaled source with the destination's
	// existing contents.
	CompositeSrcOverDest
	// CompositeSrcClearDest overwrites the placement with the scaled source
	// and fills the margins with the clear color; fractional edges blend
	// against the clear color instead of the destination's prior contents.
	CompositeSrcClearDest
)

func (op CompositeOp) internal() composite.Op {
	switch op {
	case CompositeSrcOverDest:
		return composite.SrcOverDest
	case CompositeSrcClearDest:
		return composite.SrcClearDest
	default:
		return composite.Src
	}
}

// Flags are construction-time boolean options (spec.md §6).
type Flags uint32

const (
	// FlagDisableSRGBLinearization opts out of the default sRGB-linearized
	// (128bpp-linear) internal form, keeping the cheaper compressed form for
	// every filter kind except box (which always linearizes, regardless of
	// this flag), trading accuracy for speed and for bit-parity with callers
	// that expect channel-domain (non-linear) averaging.
	FlagDisableSRGBLinearization Flags = 1 << iota
	// FlagDisableAcceleration disables the recursive bilinear pre-halving
	// and always uses the direct two-tap filter, even on shrink ratios that
	// would otherwise alias; useful for testing and for exact parity with a
	// reference two-tap-only implementation.
	FlagDisableAcceleration
)

// Placement is the sub-pixel destination rectangle for a render: where in
// the destination canvas the scaled source image lands. Units are 256ths of
// a destination pixel (spec.md §4.1's sub-pixel unit), so a sub-pixel
// placement produces fractional edge opacity on the boundary pixels
// (spec.md §4.6).
type Placement struct {
	X, Y          int32
	Width, Height int32
}

// Buffer is a caller-owned pixel buffer: Width x Height pixels of Format,
// each row Stride bytes apart (Stride may exceed Width*bytes-per-pixel to
// describe a sub-rectangle of a larger allocation).
type Buffer struct {
	Pix           []byte
	Format        PixelFormat
	Width, Height int
	Stride        int
}

// PostRowFunc, if non-nil, is invoked once per rendered destination row
// after it has been written into the Buffer, receiving the row's raw bytes
// and pixel count. It runs synchronously on whichever goroutine rendered
// the row (including, under RenderRowsParallel, a worker goroutine), so it
// must not itself call back into the Context.
type PostRowFunc func(row []byte, pixelCount int)

// ScaleSimple scales src into dst in place, filling the whole destination
// buffer with no placement margin, using CompositeSrc.
func ScaleSimple(src, dst Buffer, flags Flags) error {
	ctx, err := NewContext(src, dst, flags)
	if err != nil {
		return err
	}
	if err := ctx.RenderRows(0, dst.Height); err != nil {
		return err
	}
	return ctx.Close()
}

// NewContext builds a Context that scales src to fill the entirety of dst,
// with no placement margin and CompositeSrc.
func NewContext(src, dst Buffer, flags Flags) (*Context, error) {
	placement := Placement{
		X:      0,
		Y:      0,
		Width:  int32(dst.Width) * subpixelMul,
		Height: int32(dst.Height) * subpixelMul,
	}
	return NewContextFull(src, dst, Buffer{}, placement, CompositeSrc, flags, nil)
}
