// Package pixelformat describes the external (caller-facing) and internal
// (filter-facing) pixel representations used by the scaler, and the channel
// permutations that move data between them.
//
// Channel order follows spec.md §4.4: a permutation is a 4-tuple where each
// entry names the 1-based channel held at that byte position. The generic
// path here always addresses pixels byte-wise (never as a 32-bit word), which
// is the second of the two byte-order strategies spec.md §9 calls out —
// chosen because it sidesteps the little-endian "host form" remapping
// entirely, at no cost to a pure-Go implementation that never reads a pixel
// buffer as a native dword. Generalized from
// internal/dsp/yuv.go's fixed RGB/BGR writer constants into data-driven
// 4-tuples applicable to all ten external formats.
package pixelformat

import "fmt"

// Channel identifies one of the four logical channel slots. Zero means
// "no channel" (used to pad RGB/BGR orders to a 4-tuple).
type Channel uint8

const (
	None Channel = 0
	R    Channel = 1
	G    Channel = 2
	B    Channel = 3
	A    Channel = 4
)

// Order is a channel permutation: Order[i] names which logical channel sits
// at byte position i. Internal-form rows always use RGBAOrder so that filter
// and compositor code never has to consult a permutation (spec.md §3
// "Internal-form alpha is always in channel position #4").
type Order [4]Channel

// RGBAOrder is the canonical internal-form channel order.
var RGBAOrder = Order{R, G, B, A}

// AlphaConv identifies an external format's alpha convention.
type AlphaConv int

const (
	AlphaPremultiplied AlphaConv = iota
	AlphaUnassociated
	AlphaNone
)

// External names the ten external pixel formats from spec.md §3.
type External int

const (
	RGBA External = iota
	BGRA
	ARGB
	ABGR
	RGBAUnassoc
	BGRAUnassoc
	ARGBUnassoc
	ABGRUnassoc
	RGB
	BGR
)

func (f External) String() string {
	switch f {
	case RGBA:
		return "RGBA"
	case BGRA:
		return "BGRA"
	case ARGB:
		return "ARGB"
	case ABGR:
		return "ABGR"
	case RGBAUnassoc:
		return "RGBA(unassoc)"
	case BGRAUnassoc:
		return "BGRA(unassoc)"
	case ARGBUnassoc:
		return "ARGB(unassoc)"
	case ABGRUnassoc:
		return "ABGR(unassoc)"
	case RGB:
		return "RGB"
	case BGR:
		return "BGR"
	default:
		return fmt.Sprintf("External(%d)", int(f))
	}
}

// Descriptor fully describes an external pixel format: its storage width,
// its alpha convention, and its channel order.
type Descriptor struct {
	StorageBits int // 24 or 32
	Alpha       AlphaConv
	Order       Order
}

// BytesPerPixel returns the external format's storage width in bytes.
func (d Descriptor) BytesPerPixel() int { return d.StorageBits / 8 }

// descriptors holds the fixed signature for each named external format.
var descriptors = [...]Descriptor{
	RGBA:        {32, AlphaPremultiplied, Order{R, G, B, A}},
	BGRA:        {32, AlphaPremultiplied, Order{B, G, R, A}},
	ARGB:        {32, AlphaPremultiplied, Order{A, R, G, B}},
	ABGR:        {32, AlphaPremultiplied, Order{A, B, G, R}},
	RGBAUnassoc: {32, AlphaUnassociated, Order{R, G, B, A}},
	BGRAUnassoc: {32, AlphaUnassociated, Order{B, G, R, A}},
	ARGBUnassoc: {32, AlphaUnassociated, Order{A, R, G, B}},
	ABGRUnassoc: {32, AlphaUnassociated, Order{A, B, G, R}},
	RGB:         {24, AlphaNone, Order{R, G, B, None}},
	BGR:         {24, AlphaNone, Order{B, G, R, None}},
}

// Describe returns the Descriptor for a named external format. It panics on
// an out-of-range value, which can only happen from a programming bug since
// the public imgscale.PixelFormat enum is validated at construction time.
func Describe(f External) Descriptor {
	if f < 0 || int(f) >= len(descriptors) {
		panic(fmt.Sprintf("pixelformat: invalid external format %d", int(f)))
	}
	return descriptors[f]
}

// InternalStorage is the internal-form storage width.
type InternalStorage int

const (
	Storage64 InternalStorage = iota // four 16-bit channels packed into one uint64
	Storage128                       // four 32-bit channels across two uint64 words
)

// InternalAlpha is the internal-form premultiplication convention.
type InternalAlpha int

const (
	Premul8 InternalAlpha = iota
	Premul16
)

// InternalGamma is the internal-form channel encoding.
type InternalGamma int

const (
	GammaCompressed InternalGamma = iota // sRGB-like, 8-bit range
	GammaLinear                          // linearized, 11-bit range
)

// InternalForm fully describes one of the three internal pixel
// representations from spec.md §3.
type InternalForm struct {
	Storage InternalStorage
	Alpha   InternalAlpha
	Gamma   InternalGamma
}

// MaxAlpha returns the internal form's maximum alpha-channel value: 0xff for
// 64bpp, 0xfff for 128bpp (spec.md §4.7).
func (f InternalForm) MaxAlpha() uint32 {
	if f.Storage == Storage64 {
		return 0xff
	}
	return 0xfff
}

// ChannelBits returns the bit width of one channel slot within the internal
// form: 16 for 64bpp-compact, 32 for 128bpp-compact/linear.
func (f InternalForm) ChannelBits() int {
	if f.Storage == Storage64 {
		return 16
	}
	return 32
}
