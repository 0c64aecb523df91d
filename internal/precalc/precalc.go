// Package precalc builds the per-destination-pixel sampling plans consumed by
// internal/filter: bilinear offset/weight pairs (with recursive 2:1
// pre-halving for large shrink ratios) and box-filter window spans.
//
// The fixed-point idiom — accumulate in a wide integer, normalize with a
// single reciprocal shift — is grounded on internal/dsp/rescale.go's
// multFix/rescalerFrac pair in the teacher, generalized from rescale.go's
// single incremental accumulator into a precalculated, randomly-indexable
// table so internal/filter can walk destination rows independently (and, via
// parallel.go, out of order across goroutines).
package precalc

import "github.com/deepteams/imgscale/internal/fixedpoint"

// BilinearSample is one destination pixel's two-tap linear interpolation
// against the (possibly pre-halved) source row: it blends Offset and
// Offset+1 with weight Weight/SmallMul favoring Offset.
type BilinearSample struct {
	Offset int
	Weight int32 // in [0, SmallMul]; source[Offset+1] takes (SmallMul - Weight)
}

// BilinearPlan is the full precalculated sampling table for one axis.
type BilinearPlan struct {
	// Halving is k in spec.md's "bilinear-with-recursive-halving": the number
	// of 2:1 box-averaging passes applied to the source before the final
	// two-tap linear interpolation. Capped at 6, matching the generated
	// k=0..6 filter variants in internal/filter/bilinear_halving.go.
	Halving int

	// HalvedSrcSize is the source axis length after Halving passes.
	HalvedSrcSize int

	Samples []BilinearSample
}

// maxHalving bounds the recursive pre-halving in BuildBilinear. It matches
// the generated bilinear variant count (k=0..6) in internal/filter.
const maxHalving = 6

// BuildBilinear computes the bilinear sampling plan for scaling an axis of
// srcSize source pixels to dstSize destination pixels. When srcSize is more
// than 2x dstSize, it first determines how many 2:1 halving passes bring the
// effective source size down to within a factor of 2 of dstSize — the
// pre-halving keeps the final two-tap tent filter from aliasing on a large
// shrink, the same tradeoff chafa's smolscale generic path makes for its
// generated per-k halving loops (supplemented into this port per
// SPEC_FULL.md's "Halving" design note; the teacher's own rescaler avoids the
// issue by accumulating every source row instead of precalculating a table,
// which is the approach this package generalizes away from so that
// destination rows can be produced independently of each other).
func BuildBilinear(srcSize, dstSize int) BilinearPlan {
	return BuildBilinearWithMaxHalving(srcSize, dstSize, maxHalving)
}

// BuildBilinearWithMaxHalving is BuildBilinear with an explicit cap on the
// number of pre-halving passes; passing 0 disables pre-halving entirely
// (direct two-tap filtering against the full source size), which is what
// imgscale.FlagDisableAcceleration selects.
func BuildBilinearWithMaxHalving(srcSize, dstSize, maxK int) BilinearPlan {
	if maxK > maxHalving {
		maxK = maxHalving
	}
	k := 0
	halved := srcSize
	for k < maxK && halved/2 >= dstSize && halved/2 >= 1 {
		halved /= 2
		k++
	}

	plan := BilinearPlan{Halving: k, HalvedSrcSize: halved}
	if dstSize <= 0 || halved <= 0 {
		return plan
	}
	plan.Samples = make([]BilinearSample, dstSize)

	if halved == 1 {
		for i := range plan.Samples {
			plan.Samples[i] = BilinearSample{Offset: 0, Weight: fixedpoint.SmallMul}
		}
		return plan
	}

	// step is the distance in halved-source subpixel units (BigMul scale)
	// between consecutive destination pixel centers.
	step := (uint64(halved) << 16) / uint64(dstSize)
	half := step / 2

	for i := 0; i < dstSize; i++ {
		// Center of destination pixel i, mapped back into (halved) source
		// space, minus half a source pixel so offset 0 aligns samples on
		// source-pixel centers rather than edges.
		center := uint64(i)*step + half
		if center >= uint64(1)<<15 {
			center -= uint64(1) << 15
		} else {
			center = 0
		}
		offset := int(center >> 16)
		frac := int32((center >> 8) & 0xff) // 0..255 fractional part, SmallMul scale
		if offset > halved-2 {
			offset = halved - 2
			frac = fixedpoint.SmallMul
		}
		if offset < 0 {
			offset = 0
		}
		plan.Samples[i] = BilinearSample{
			Offset: offset,
			Weight: fixedpoint.SmallMul - frac,
		}
	}
	return plan
}

// BoxSpan is one destination pixel's averaging window over the source axis:
// source indices [First, First+Count) each contribute equally to the sum
// that Mul normalizes, except the first and last which are fractionally
// weighted by EdgeFirst/EdgeLast (BoxesMul scale) to account for partial
// source pixel coverage.
type BoxSpan struct {
	First     int
	Count     int
	EdgeFirst uint32 // weight of source[First], BoxesMul-scaled
	EdgeLast  uint32 // weight of source[First+Count-1], BoxesMul-scaled (0 if Count==1, folded into EdgeFirst)
	Mul       uint32 // BoxesMul*SubpixelMul / (span width in subpixel units), i.e. BoxesMul per source pixel of span: normalizes the accumulated sum
}

// BoxPlan is the full box-filter window table for one axis, used for shrink
// ratios greater than 8:1 (spec.md §4.5).
type BoxPlan struct {
	Spans []BoxSpan
}

// BuildBox computes the box-filter averaging windows for scaling an axis of
// srcSize source pixels down to dstSize destination pixels (dstSize <
// srcSize). Each destination pixel averages the exact span of source pixels
// it covers, with fractional weight at the span's two edges — grounded on
// internal/dsp/rescale.go's rescalerImportRowShrink, which accumulates a
// source span and splits off the fractional remainder (`frac`) at the
// boundary; this builder precomputes the same split once per destination
// pixel instead of carrying it forward incrementally row by row.
func BuildBox(srcSize, dstSize int) BoxPlan {
	plan := BoxPlan{}
	if dstSize <= 0 || srcSize <= 0 {
		return plan
	}
	plan.Spans = make([]BoxSpan, dstSize)

	// Span width in subpixel units (SubpixelMul-scaled source pixels per
	// destination pixel).
	spanSub := (uint64(srcSize) * fixedpoint.SubpixelMul) / uint64(dstSize)
	if spanSub == 0 {
		spanSub = 1
	}

	for i := 0; i < dstSize; i++ {
		startSub := uint64(i) * uint64(srcSize) * fixedpoint.SubpixelMul / uint64(dstSize)
		endSub := uint64(i+1) * uint64(srcSize) * fixedpoint.SubpixelMul / uint64(dstSize)
		if endSub <= startSub {
			endSub = startSub + 1
		}

		first := int(startSub / fixedpoint.SubpixelMul)
		last := int((endSub - 1) / fixedpoint.SubpixelMul)
		if last >= srcSize {
			last = srcSize - 1
		}
		if first > last {
			first = last
		}
		count := last - first + 1

		span := BoxSpan{First: first, Count: count}

		widthSub := endSub - startSub
		if widthSub == 0 {
			widthSub = 1
		}
		span.Mul = uint32((fixedpoint.BoxesMul * uint64(fixedpoint.SubpixelMul)) / widthSub)

		if count == 1 {
			span.EdgeFirst = fixedpoint.BoxesMul
			span.EdgeLast = 0
		} else {
			firstPixelEnd := uint64(first+1) * fixedpoint.SubpixelMul
			firstCoverage := firstPixelEnd - startSub
			if firstCoverage > fixedpoint.SubpixelMul {
				firstCoverage = fixedpoint.SubpixelMul
			}
			lastPixelStart := uint64(last) * fixedpoint.SubpixelMul
			lastCoverage := endSub - lastPixelStart
			if lastCoverage > fixedpoint.SubpixelMul {
				lastCoverage = fixedpoint.SubpixelMul
			}
			span.EdgeFirst = uint32(firstCoverage * fixedpoint.BoxesMul / fixedpoint.SubpixelMul)
			span.EdgeLast = uint32(lastCoverage * fixedpoint.BoxesMul / fixedpoint.SubpixelMul)
		}

		plan.Spans[i] = span
	}
	return plan
}

// EdgeOpacity holds the four per-edge fractional opacities from a Placement
// (spec.md §4.6), each in [0,256] where 256 is fully opaque.
type EdgeOpacity struct {
	Left, Top, Right, Bottom uint16
}

// Placement is the sub-pixel destination rectangle and margin behavior for
// one render: where in the destination canvas the scaled image lands, how
// much of the canvas around it gets cleared, and how opaque its four edges
// are (for sub-pixel antialiased edges against the clear color).
type Placement struct {
	// DstX, DstY, DstWidth, DstHeight are sub-pixel (256ths-of-a-pixel)
	// placement of the scaled image within the destination canvas.
	DstX, DstY, DstWidth, DstHeight int

	// ClipBefore/ClipAfter per axis: source-space cropping applied before
	// scaling (in source subpixels), so a caller can scale only a region of
	// the source image.
	ClipLeft, ClipTop, ClipRight, ClipBottom int

	// ClearBefore/ClearAfter: whether margin pixels outside the placed
	// rectangle should be cleared to ClearColor.
	ClearMargins bool
	ClearColor   [4]uint16 // internal-form RGBA, cleared as-is (no gamma/premul conversion)

	Edge EdgeOpacity
}

// Layout selects how precalc samples are laid out for the filter engines:
// Sequential processes destination pixels in plain ascending order; Batched
// groups them into fixed-width chunks aligned for SIMD-style unrolled loops.
// Only Sequential is exercised by the pure-Go filter engines in this port;
// Batched is kept as a documented extension point (supplemented from
// chafa's smolscale batch-of-pixels generated loops) for a future assembly
// or vectorized backend.
type Layout int

const (
	LayoutSequential Layout = iota
	LayoutBatched16
)
