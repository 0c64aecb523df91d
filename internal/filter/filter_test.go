package filter

import (
	"testing"

	"github.com/deepteams/imgscale/internal/precalc"
	"github.com/deepteams/imgscale/internal/repack"
)

func mkRow64(vals ...uint16) repack.Row64 {
	row := make(repack.Row64, len(vals))
	for i, v := range vals {
		row[i] = uint64(v) | uint64(v)<<16 | uint64(v)<<32 | uint64(0xff)<<48
	}
	return row
}

func TestCopyRow64(t *testing.T) {
	src := mkRow64(1, 2, 3, 4)
	dst := make(repack.Row64, 4)
	CopyRow64(src, dst)
	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("index %d: got %d, want %d", i, dst[i], src[i])
		}
	}
}

func TestOneOffsetsIdentity(t *testing.T) {
	offs := OneOffsets(4, 4)
	for i, o := range offs {
		if o != i {
			t.Errorf("offsets[%d] = %d, want %d", i, o, i)
		}
	}
}

func TestOneRowH64Magnify(t *testing.T) {
	src := mkRow64(10, 20)
	offs := OneOffsets(2, 4)
	dst := make(repack.Row64, 4)
	OneRowH64(src, offs, dst)
	// First two destination pixels should sample source 0, last two source 1.
	if dst[0] != src[0] || dst[1] != src[0] {
		t.Errorf("expected first half to replicate src[0]")
	}
	if dst[2] != src[1] || dst[3] != src[1] {
		t.Errorf("expected second half to replicate src[1]")
	}
}

func TestHalveRowH64Averages(t *testing.T) {
	src := mkRow64(0, 100, 50, 150)
	dst := make(repack.Row64, 2)
	HalveRowH64(src, dst)
	r0 := uint16(dst[0])
	r1 := uint16(dst[1])
	if r0 != 50 {
		t.Errorf("dst[0] r = %d, want 50", r0)
	}
	if r1 != 100 {
		t.Errorf("dst[1] r = %d, want 100", r1)
	}
}

func TestBilinearRowH64MidpointBlend(t *testing.T) {
	src := mkRow64(0, 100)
	plan := precalc.BilinearPlan{Samples: []precalc.BilinearSample{{Offset: 0, Weight: 128}}}
	dst := make(repack.Row64, 1)
	BilinearRowH64(src, plan, dst)
	r := uint16(dst[0])
	if r < 49 || r > 51 {
		t.Errorf("midpoint blend r = %d, want ~50", r)
	}
}

func TestBoxRowH64UniformSpanMean(t *testing.T) {
	// Four source pixels averaged 4:1 into one destination pixel.
	src := mkRow64(0, 100, 200, 255)
	plan := precalc.BuildBox(4, 1)
	dst := make(repack.Row64, 1)
	BoxRowH64(src, plan, dst)
	r := uint16(dst[0])
	// Mean of 0,100,200,255 == 138.75, rounds to 139 per spec.md's worked example.
	if r < 137 || r > 140 {
		t.Errorf("box mean r = %d, want ~139", r)
	}
}

func TestHalvingDispatchH64K0MatchesDirect(t *testing.T) {
	src := mkRow64(10, 20, 30, 40)
	plan := precalc.BuildBilinear(4, 2)
	dstA := make(repack.Row64, 2)
	dstB := make(repack.Row64, 2)
	BilinearRowH64(src, plan, dstA)
	HalvingDispatchH64(src, make(repack.Row64, 2), precalc.BilinearPlan{Halving: 0, Samples: plan.Samples}, dstB)
	for i := range dstA {
		if dstA[i] != dstB[i] {
			t.Errorf("index %d: direct=%d dispatch=%d", i, dstA[i], dstB[i])
		}
	}
}
