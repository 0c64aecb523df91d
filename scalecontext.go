package imgscale

import (
	"fmt"

	"golang.org/x/image/math/f64"

	"github.com/deepteams/imgscale/internal/bufpool"
	"github.com/deepteams/imgscale/internal/clear"
	"github.com/deepteams/imgscale/internal/composite"
	"github.com/deepteams/imgscale/internal/fixedpoint"
	"github.com/deepteams/imgscale/internal/filter"
	"github.com/deepteams/imgscale/internal/pixelformat"
	"github.com/deepteams/imgscale/internal/precalc"
	"github.com/deepteams/imgscale/internal/repack"
)

const subpixelMul = fixedpoint.SubpixelMul

// Context holds everything precalculated once at construction: the resolved
// repack pipeline, the per-axis filter plans, and the destination placement
// geometry. It never mutates after NewContextFull returns, which is what
// makes RenderRows safe to call concurrently on disjoint row ranges from
// separate goroutines (spec.md's concurrency model) — each call allocates
// its own scratch rows rather than sharing a persistent LocalContext, the
// Go-idiomatic reading of spec.md's "small per-call LocalContext" (see
// DESIGN.md Open Question (d)).
type Context struct {
	src, dst Buffer
	srcFmt   pixelformat.External
	dstFmt   pixelformat.External

	placement Placement
	op        composite.Op
	flags     Flags
	postRow   PostRowFunc

	hasClear     bool
	clearColor64 uint64
	clearColor32 [4]uint32

	pxX0, pxX1, pxY0, pxY1 int   // destination pixel rect covered by placement
	edgeLeft, edgeRight    int32 // column opacity, 0..256
	edgeTop, edgeBottom    int32 // row opacity, 0..256

	placeW, placeH int // placement rect size in destination pixels

	pipeline repack.Pipeline

	hKind repack.FilterKind
	vKind repack.FilterKind

	hBilinear precalc.BilinearPlan
	hBox      precalc.BoxPlan
	hOffsets  []int

	vBilinear precalc.BilinearPlan
	vBox      precalc.BoxPlan
	vOffsets  []int
}

func bytesPerPixel(ext pixelformat.External) int {
	return pixelformat.Describe(ext).BytesPerPixel()
}

func chooseFilterKind(srcSize, dstSize int) repack.FilterKind {
	switch {
	case srcSize == dstSize:
		return repack.FilterCopy
	case srcSize <= 1 || dstSize <= 1:
		return repack.FilterOne
	case srcSize > dstSize*8:
		return repack.FilterBox
	default:
		return repack.FilterBilinear
	}
}

// NewContextFull builds a fully configured Context. color supplies the clear
// pixel (its first pixel is read; pass a zero Buffer to disable margin
// clearing, in which case margins outside placement are left untouched).
func NewContextFull(src, dst, color Buffer, placement Placement, op CompositeOp, flags Flags, postRow PostRowFunc) (*Context, error) {
	srcFmt, err := src.Format.external()
	if err != nil {
		return nil, fmt.Errorf("imgscale: source format: %w", err)
	}
	dstFmt, err := dst.Format.external()
	if err != nil {
		return nil, fmt.Errorf("imgscale: destination format: %w", err)
	}
	if src.Width <= 0 || src.Height <= 0 {
		return nil, fmt.Errorf("imgscale: source dimensions must be positive, got %dx%d", src.Width, src.Height)
	}
	if dst.Width <= 0 || dst.Height <= 0 {
		return nil, fmt.Errorf("imgscale: destination dimensions must be positive, got %dx%d", dst.Width, dst.Height)
	}
	if src.Stride < src.Width*bytesPerPixel(srcFmt) {
		return nil, fmt.Errorf("imgscale: source stride %d too small for width %d", src.Stride, src.Width)
	}
	if dst.Stride < dst.Width*bytesPerPixel(dstFmt) {
		return nil, fmt.Errorf("imgscale: destination stride %d too small for width %d", dst.Stride, dst.Width)
	}
	if len(src.Pix) < src.Stride*src.Height {
		return nil, fmt.Errorf("imgscale: source buffer too small: have %d bytes, need %d", len(src.Pix), src.Stride*src.Height)
	}
	if len(dst.Pix) < dst.Stride*dst.Height {
		return nil, fmt.Errorf("imgscale: destination buffer too small: have %d bytes, need %d", len(dst.Pix), dst.Stride*dst.Height)
	}

	c := &Context{
		src: src, dst: dst,
		srcFmt: srcFmt, dstFmt: dstFmt,
		placement: placement,
		op:        op.internal(),
		flags:     flags,
		postRow:   postRow,
	}

	// Resolve the sub-pixel placement rectangle to an integer destination
	// pixel range plus per-edge fractional opacity (spec.md §4.6).
	x0, x1 := placement.X, placement.X+placement.Width
	y0, y1 := placement.Y, placement.Y+placement.Height
	c.pxX0, c.edgeLeft = floorEdge(x0)
	px1, rightFrac := ceilEdge(x1)
	c.pxX1 = px1
	c.edgeRight = rightFrac
	c.pxY0, c.edgeTop = floorEdge(y0)
	py1, bottomFrac := ceilEdge(y1)
	c.pxY1 = py1
	c.edgeBottom = bottomFrac

	if c.pxX0 < 0 {
		c.pxX0 = 0
	}
	if c.pxX1 > dst.Width {
		c.pxX1 = dst.Width
	}
	if c.pxY0 < 0 {
		c.pxY0 = 0
	}
	if c.pxY1 > dst.Height {
		c.pxY1 = dst.Height
	}
	if c.pxX1 < c.pxX0 {
		c.pxX1 = c.pxX0
	}
	if c.pxY1 < c.pxY0 {
		c.pxY1 = c.pxY0
	}
	c.placeW = c.pxX1 - c.pxX0
	c.placeH = c.pxY1 - c.pxY0
	if c.placeW == 1 {
		// A placement narrower than one destination pixel: combine both
		// fractional edges into the single column's coverage.
		c.edgeLeft = int32(placement.Width)
		if c.edgeLeft > subpixelMul {
			c.edgeLeft = subpixelMul
		}
		c.edgeRight = subpixelMul
	}
	if c.placeH == 1 {
		c.edgeTop = int32(placement.Height)
		if c.edgeTop > subpixelMul {
			c.edgeTop = subpixelMul
		}
		c.edgeBottom = subpixelMul
	}

	if color.Pix != nil {
		colorFmt, err := color.Format.external()
		if err != nil {
			return nil, fmt.Errorf("imgscale: clear color format: %w", err)
		}
		c.hasClear = true
		form := pixelformat.InternalForm{Storage: pixelformat.Storage64, Alpha: pixelformat.Premul16, Gamma: pixelformat.GammaCompressed}
		row := make(repack.Row64, 1)
		repack.Unpack(colorFmt, form, color.Pix, 1, row, nil)
		c.clearColor64 = row[0]
		r, g, b, a := uint32(uint16(row[0])), uint32(uint16(row[0]>>16)), uint32(uint16(row[0]>>32)), uint32(uint16(row[0]>>48))
		c.clearColor32 = [4]uint32{r << 4, g << 4, b << 4, a << 4}
	}

	if c.placeW > 0 {
		c.hKind = chooseFilterKind(src.Width, c.placeW)
	}
	if c.placeH > 0 {
		c.vKind = chooseFilterKind(src.Height, c.placeH)
	}

	srgbEnabled := flags&FlagDisableSRGBLinearization == 0
	pipeline, err := repack.ResolvePipeline(srcFmt, dstFmt, c.hKind, c.vKind, srgbEnabled)
	if err != nil {
		return nil, err
	}
	c.pipeline = pipeline

	maxHalving := 6
	if flags&FlagDisableAcceleration != 0 {
		maxHalving = 0
	}

	switch c.hKind {
	case repack.FilterBilinear:
		c.hBilinear = precalc.BuildBilinearWithMaxHalving(src.Width, c.placeW, maxHalving)
	case repack.FilterBox:
		c.hBox = precalc.BuildBox(src.Width, c.placeW)
	case repack.FilterOne:
		c.hOffsets = filter.OneOffsets(src.Width, c.placeW)
	}
	switch c.vKind {
	case repack.FilterBilinear:
		c.vBilinear = precalc.BuildBilinearWithMaxHalving(src.Height, c.placeH, maxHalving)
	case repack.FilterBox:
		c.vBox = precalc.BuildBox(src.Height, c.placeH)
	case repack.FilterOne:
		c.vOffsets = filter.OneOffsets(src.Height, c.placeH)
	}

	return c, nil
}

// floorEdge splits a sub-pixel coordinate into its destination pixel index
// and the fractional coverage (0..256) of that pixel's left/top edge.
func floorEdge(v int32) (int, int32) {
	px := v / subpixelMul
	frac := v % subpixelMul
	if frac < 0 {
		frac += subpixelMul
		px--
	}
	if frac == 0 {
		return int(px), subpixelMul
	}
	return int(px), subpixelMul - frac
}

// ceilEdge splits a sub-pixel coordinate into the exclusive destination
// pixel index one past the last covered pixel, and that last pixel's
// right/bottom edge coverage (0..256).
func ceilEdge(v int32) (int, int32) {
	px := v / subpixelMul
	frac := v % subpixelMul
	if frac < 0 {
		frac += subpixelMul
		px--
	}
	if frac == 0 {
		return int(px), subpixelMul
	}
	return int(px) + 1, frac
}

// PlacementMatrix returns the affine transform from source pixel
// coordinates to destination pixel coordinates implied by this Context's
// placement rectangle, in the same row-major 2x3 shape ({sx, 0, tx, 0, sy,
// ty}, implicit third row [0 0 1]) golang.org/x/image/draw.Transform
// consumes: a caller already using
// draw.Scale/draw.Transform can read this back out for a debug overlay or
// to cross-check against their own transform math. It does not account for
// per-axis filter choice, only the linear placement mapping.
func (c *Context) PlacementMatrix() f64.Aff3 {
	if c.src.Width == 0 || c.src.Height == 0 {
		return f64.Aff3{1, 0, 0, 0, 1, 0}
	}
	sx := float64(c.placement.Width) / float64(subpixelMul) / float64(c.src.Width)
	sy := float64(c.placement.Height) / float64(subpixelMul) / float64(c.src.Height)
	tx := float64(c.placement.X) / float64(subpixelMul)
	ty := float64(c.placement.Y) / float64(subpixelMul)
	return f64.Aff3{sx, 0, tx, 0, sy, ty}
}

// Close releases no resources today (Context holds no OS handles); it
// exists so callers can rely on a defer ctx.Close() idiom that keeps working
// if a future backend needs teardown.
func (c *Context) Close() error {
	return nil
}

// RenderRows renders destination rows [firstRow, firstRow+numRows) into
// c.dst.
func (c *Context) RenderRows(firstRow, numRows int) error {
	return c.RenderRowsTo(c.dst, firstRow, numRows)
}

// RenderRowsTo renders destination rows [firstRow, firstRow+numRows) into an
// explicit destination buffer, which must have the same format and
// dimensions as the Buffer passed to NewContext/NewContextFull.
func (c *Context) RenderRowsTo(dst Buffer, firstRow, numRows int) error {
	if dst.Width != c.dst.Width || dst.Height != c.dst.Height || dst.Format != c.dst.Format {
		return fmt.Errorf("imgscale: RenderRowsTo buffer shape mismatch")
	}
	if firstRow < 0 || numRows < 0 || firstRow+numRows > dst.Height {
		return fmt.Errorf("imgscale: row range [%d,%d) out of bounds for height %d", firstRow, firstRow+numRows, dst.Height)
	}

	lc := newLocalContext(c)
	defer lc.release()

	for y := firstRow; y < firstRow+numRows; y++ {
		if err := c.renderRow(lc, dst, y); err != nil {
			return err
		}
	}
	return nil
}

// localContext is the per-call scratch state: horizontally-filtered row
// buffers, reused across the rows rendered by one RenderRows(To) call but
// never shared across goroutines (each RenderRows/RenderRowsParallel worker
// builds its own).
type localContext struct {
	c *Context

	bpp int // internal-form storage width selector: 64 or 128

	row64A, row64B, row64C repack.Row64
	row128A, row128B, row128C repack.Row128

	srcUnpack64  repack.Row64
	srcUnpack128 repack.Row128
}

func newLocalContext(c *Context) *localContext {
	lc := &localContext{c: c}
	width := c.placeW
	if c.pipeline.Form.Storage == pixelformat.Storage64 {
		lc.bpp = 64
		lc.row64A = bufpool.GetUint64Row(maxInt(width, 1))
		lc.row64B = bufpool.GetUint64Row(maxInt(width, 1))
		lc.row64C = bufpool.GetUint64Row(maxInt(width, 1))
		lc.srcUnpack64 = bufpool.GetUint64Row(maxInt(c.src.Width, 1))
	} else {
		lc.bpp = 128
		lc.row128A = bufpool.GetUint32Row(maxInt(width, 1) * 4)
		lc.row128B = bufpool.GetUint32Row(maxInt(width, 1) * 4)
		lc.row128C = bufpool.GetUint32Row(maxInt(width, 1) * 4)
		lc.srcUnpack128 = bufpool.GetUint32Row(maxInt(c.src.Width, 1) * 4)
	}
	return lc
}

func (lc *localContext) release() {
	if lc.bpp == 64 {
		bufpool.PutUint64Row(lc.row64A)
		bufpool.PutUint64Row(lc.row64B)
		bufpool.PutUint64Row(lc.row64C)
		bufpool.PutUint64Row(lc.srcUnpack64)
	} else {
		bufpool.PutUint32Row(lc.row128A)
		bufpool.PutUint32Row(lc.row128B)
		bufpool.PutUint32Row(lc.row128C)
		bufpool.PutUint32Row(lc.srcUnpack128)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// horizRow64 unpacks original source row srcY and applies the horizontal
// filter, writing the result (placeW pixels) into dst.
func (c *Context) horizRow64(lc *localContext, srcY int, dst repack.Row64) {
	row := c.src.Pix[srcY*c.src.Stride:]
	repack.Unpack(c.srcFmt, c.pipeline.Form, row, c.src.Width, lc.srcUnpack64, nil)
	switch c.hKind {
	case repack.FilterCopy:
		filter.CopyRow64(lc.srcUnpack64[:c.placeW], dst)
	case repack.FilterOne:
		filter.OneRowH64(lc.srcUnpack64, c.hOffsets, dst)
	case repack.FilterBilinear:
		scratch := bufpool.GetUint64Row(maxInt(c.src.Width/2+1, 1))
		filter.HalvingDispatchH64(lc.srcUnpack64, scratch, c.hBilinear, dst)
		bufpool.PutUint64Row(scratch)
	case repack.FilterBox:
		filter.BoxRowH64(lc.srcUnpack64, c.hBox, dst)
	}
}

func (c *Context) horizRow128(lc *localContext, srcY int, dst repack.Row128) {
	row := c.src.Pix[srcY*c.src.Stride:]
	repack.Unpack(c.srcFmt, c.pipeline.Form, row, c.src.Width, nil, lc.srcUnpack128)
	switch c.hKind {
	case repack.FilterCopy:
		filter.CopyRow128(lc.srcUnpack128[:c.placeW*4], dst)
	case repack.FilterOne:
		filter.OneRowH128(lc.srcUnpack128, c.hOffsets, dst)
	case repack.FilterBilinear:
		scratch := bufpool.GetUint32Row(maxInt(c.src.Width/2+1, 1) * 4)
		filter.HalvingDispatchH128(lc.srcUnpack128, scratch, c.hBilinear, dst)
		bufpool.PutUint32Row(scratch)
	case repack.FilterBox:
		filter.BoxRowH128(lc.srcUnpack128, c.hBox, dst)
	}
}

// halvedRow64 returns the horizontally-filtered row at halved vertical
// index hr (against a source row-space halved k times), by averaging the
// 2^k original rows it represents with equal weight. k==0 is the direct,
// unhalved case.
func (c *Context) halvedRow64(lc *localContext, hr, k int, dst repack.Row64) {
	if k == 0 {
		c.horizRow64(lc, hr, dst)
		return
	}
	span := 1 << uint(k)
	first := hr * span
	rows := make([]repack.Row64, 0, span)
	bufs := make([]repack.Row64, 0, span)
	for i := 0; i < span; i++ {
		srcY := first + i
		if srcY >= c.src.Height {
			srcY = c.src.Height - 1
		}
		buf := bufpool.GetUint64Row(maxInt(c.placeW, 1))
		c.horizRow64(lc, srcY, buf)
		rows = append(rows, buf)
		bufs = append(bufs, buf)
	}
	equalSpan := precalc.BoxSpan{First: 0, Count: span, EdgeFirst: fixedpoint.BoxesMul, EdgeLast: fixedpoint.BoxesMul, Mul: uint32(fixedpoint.BoxesMul / uint64(span))}
	filter.BoxColV64(rows, equalSpan, dst)
	for _, b := range bufs {
		bufpool.PutUint64Row(b)
	}
}

func (c *Context) halvedRow128(lc *localContext, hr, k int, dst repack.Row128) {
	if k == 0 {
		c.horizRow128(lc, hr, dst)
		return
	}
	span := 1 << uint(k)
	first := hr * span
	rows := make([]repack.Row128, 0, span)
	bufs := make([]repack.Row128, 0, span)
	for i := 0; i < span; i++ {
		srcY := first + i
		if srcY >= c.src.Height {
			srcY = c.src.Height - 1
		}
		buf := bufpool.GetUint32Row(maxInt(c.placeW, 1) * 4)
		c.horizRow128(lc, srcY, buf)
		rows = append(rows, buf)
		bufs = append(bufs, buf)
	}
	equalSpan := precalc.BoxSpan{First: 0, Count: span, EdgeFirst: fixedpoint.BoxesMul, EdgeLast: fixedpoint.BoxesMul, Mul: uint32(fixedpoint.BoxesMul / uint64(span))}
	filter.BoxColV128(rows, equalSpan, dst)
	for _, b := range bufs {
		bufpool.PutUint32Row(b)
	}
}

func rowOpacity(c *Context, y int) int32 {
	switch {
	case y == c.pxY0:
		return c.edgeTop
	case y == c.pxY1-1:
		return c.edgeBottom
	default:
		return subpixelMul
	}
}

func (c *Context) renderRow(lc *localContext, dst Buffer, y int) error {
	bpp := bytesPerPixel(c.dstFmt)
	rowBytes := dst.Pix[y*dst.Stride : y*dst.Stride+dst.Width*bpp]

	if c.srcFmt == c.dstFmt && c.op == composite.Src && !c.hasClear &&
		c.src.Width == dst.Width && c.src.Height == dst.Height &&
		c.placement == (Placement{Width: int32(dst.Width) * subpixelMul, Height: int32(dst.Height) * subpixelMul}) {
		// Identity transform: copy the source row bytes verbatim.
		copy(rowBytes, c.src.Pix[y*c.src.Stride:y*c.src.Stride+len(rowBytes)])
		if c.postRow != nil {
			c.postRow(rowBytes, dst.Width)
		}
		return nil
	}

	if y < c.pxY0 || y >= c.pxY1 || c.placeW == 0 {
		if c.hasClear {
			c.fillMargin(rowBytes, 0, dst.Width)
		}
		if c.postRow != nil {
			c.postRow(rowBytes, dst.Width)
		}
		return nil
	}

	if c.hasClear {
		c.fillMargin(rowBytes, 0, c.pxX0)
		c.fillMargin(rowBytes, c.pxX1, dst.Width)
	}

	opacity := rowOpacity(c, y)

	if c.pipeline.Form.Storage == pixelformat.Storage64 {
		final := lc.row64A
		c.computeVertical64(lc, y, final)
		c.applyEdgeColumns64(lc, final)
		destSpan := rowBytes[c.pxX0*bpp : c.pxX1*bpp]
		composite.BlendRow64(c.op, final, blendTargetRow64(c, lc, destSpan), opacity, c.clearColor64, c.placeW)
		repack.Pack(c.pipeline.Form, c.dstFmt, lc.row64C[:c.placeW], nil, c.placeW, destSpan)
	} else {
		final := lc.row128A
		c.computeVertical128(lc, y, final)
		c.applyEdgeColumns128(lc, final)
		destSpan := rowBytes[c.pxX0*bpp : c.pxX1*bpp]
		composite.BlendRow128(c.op, final, blendTargetRow128(c, lc, destSpan), opacity, c.clearColor32, c.placeW)
		repack.Pack(c.pipeline.Form, c.dstFmt, nil, lc.row128C[:c.placeW*4], c.placeW, destSpan)
	}

	if c.postRow != nil {
		c.postRow(rowBytes, dst.Width)
	}
	return nil
}

// blendTargetRow64 returns the internal-form row BlendRow64 should write
// into and read the prior destination contents from: the existing dest
// pixels unpacked, unless the SRC fast path applies (fully opaque SRC
// composite needs no destination read, spec.md §E.4).
func blendTargetRow64(c *Context, lc *localContext, destSpan []byte) repack.Row64 {
	out := lc.row64C[:c.placeW]
	if c.op == composite.Src && !c.hasClear && c.edgeTop >= subpixelMul && c.edgeBottom >= subpixelMul {
		return out
	}
	repack.Unpack(c.dstFmt, c.pipeline.Form, destSpan, c.placeW, out, nil)
	return out
}

func blendTargetRow128(c *Context, lc *localContext, destSpan []byte) repack.Row128 {
	out := lc.row128C[:c.placeW*4]
	if c.op == composite.Src && !c.hasClear && c.edgeTop >= subpixelMul && c.edgeBottom >= subpixelMul {
		return out
	}
	repack.Unpack(c.dstFmt, c.pipeline.Form, destSpan, c.placeW, nil, out)
	return out
}

func (c *Context) computeVertical64(lc *localContext, y int, dst repack.Row64) {
	ry := y - c.pxY0
	switch c.vKind {
	case repack.FilterCopy:
		c.horizRow64(lc, ry, dst)
	case repack.FilterOne:
		c.horizRow64(lc, c.vOffsets[ry], dst)
	case repack.FilterBilinear:
		s := c.vBilinear.Samples[ry]
		top := lc.row64B[:c.placeW]
		bot := dst
		c.halvedRow64(lc, s.Offset, c.vBilinear.Halving, top)
		c.halvedRow64(lc, s.Offset+1, c.vBilinear.Halving, bot)
		filter.BilinearColV64(top, bot, s.Weight, dst)
	case repack.FilterBox:
		span := c.vBox.Spans[ry]
		rows := make([]repack.Row64, span.Count)
		bufs := make([]repack.Row64, span.Count)
		for i := 0; i < span.Count; i++ {
			buf := bufpool.GetUint64Row(maxInt(c.placeW, 1))
			c.horizRow64(lc, span.First+i, buf)
			rows[i] = buf
			bufs[i] = buf
		}
		filter.BoxColV64(rows, span, dst)
		for _, b := range bufs {
			bufpool.PutUint64Row(b)
		}
	}
}

func (c *Context) computeVertical128(lc *localContext, y int, dst repack.Row128) {
	ry := y - c.pxY0
	switch c.vKind {
	case repack.FilterCopy:
		c.horizRow128(lc, ry, dst)
	case repack.FilterOne:
		c.horizRow128(lc, c.vOffsets[ry], dst)
	case repack.FilterBilinear:
		s := c.vBilinear.Samples[ry]
		top := lc.row128B[:c.placeW*4]
		bot := dst
		c.halvedRow128(lc, s.Offset, c.vBilinear.Halving, top)
		c.halvedRow128(lc, s.Offset+1, c.vBilinear.Halving, bot)
		filter.BilinearColV128(top, bot, s.Weight, dst)
	case repack.FilterBox:
		span := c.vBox.Spans[ry]
		rows := make([]repack.Row128, span.Count)
		bufs := make([]repack.Row128, span.Count)
		for i := 0; i < span.Count; i++ {
			buf := bufpool.GetUint32Row(maxInt(c.placeW, 1) * 4)
			c.horizRow128(lc, span.First+i, buf)
			rows[i] = buf
			bufs[i] = buf
		}
		filter.BoxColV128(rows, span, dst)
		for _, b := range bufs {
			bufpool.PutUint32Row(b)
		}
	}
}

// applyEdgeColumns64 blends the leftmost/rightmost placement column against
// the clear color (or leaves them for the later whole-row background blend
// against dest) when that column has fractional opacity, so the subsequent
// row-level BlendRow64 call composes correctly (see NewContextFull's
// edgeLeft/edgeRight derivation).
func (c *Context) applyEdgeColumns64(lc *localContext, row repack.Row64) {
	if c.placeW == 0 {
		return
	}
	if c.edgeLeft < subpixelMul && c.hasClear {
		row[0] = blendAgainst64(row[0], c.clearColor64, c.edgeLeft)
	}
	if c.placeW > 1 && c.edgeRight < subpixelMul && c.hasClear {
		row[c.placeW-1] = blendAgainst64(row[c.placeW-1], c.clearColor64, c.edgeRight)
	}
}

func (c *Context) applyEdgeColumns128(lc *localContext, row repack.Row128) {
	if c.placeW == 0 {
		return
	}
	if c.edgeLeft < subpixelMul && c.hasClear {
		copy(row[0:4], blendAgainst128(row[0:4], c.clearColor32[:], c.edgeLeft))
	}
	if c.placeW > 1 && c.edgeRight < subpixelMul && c.hasClear {
		off := (c.placeW - 1) * 4
		copy(row[off:off+4], blendAgainst128(row[off:off+4], c.clearColor32[:], c.edgeRight))
	}
}

func blendAgainst64(src, bg uint64, opacity int32) uint64 {
	r := blendCh16(uint16(src), uint16(bg), opacity)
	g := blendCh16(uint16(src>>16), uint16(bg>>16), opacity)
	b := blendCh16(uint16(src>>32), uint16(bg>>32), opacity)
	a := blendCh16(uint16(src>>48), uint16(bg>>48), opacity)
	return uint64(r) | uint64(g)<<16 | uint64(b)<<32 | uint64(a)<<48
}

func blendCh16(src, bg uint16, opacity int32) uint16 {
	v := (int32(src)*opacity + int32(bg)*(subpixelMul-opacity)) >> 8
	return uint16(v)
}

func blendAgainst128(src, bg []uint32, opacity int32) []uint32 {
	out := make([]uint32, 4)
	for i := 0; i < 4; i++ {
		v := (int64(src[i])*int64(opacity) + int64(bg[i])*int64(subpixelMul-opacity)) >> 8
		out[i] = uint32(v)
	}
	return out
}

// fillMargin fills destination columns [from,to) of rowBytes with the clear
// color.
func (c *Context) fillMargin(rowBytes []byte, from, to int) {
	if to <= from {
		return
	}
	bpp := bytesPerPixel(c.dstFmt)
	n := to - from
	if c.pipeline.Form.Storage == pixelformat.Storage64 {
		var batch clear.Batch64
		batch.Color = c.clearColor64
		row := batch.Row(n)
		repack.Pack(c.pipeline.Form, c.dstFmt, row, nil, n, rowBytes[from*bpp:to*bpp])
	} else {
		var batch clear.Batch128
		batch.Color = c.clearColor32
		row := batch.Row(n)
		repack.Pack(c.pipeline.Form, c.dstFmt, nil, row, n, rowBytes[from*bpp:to*bpp])
	}
}
