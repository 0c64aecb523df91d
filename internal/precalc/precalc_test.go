package precalc

import "testing"

func TestBuildBilinearSampleCount(t *testing.T) {
	plan := BuildBilinear(100, 40)
	if len(plan.Samples) != 40 {
		t.Fatalf("len(Samples) = %d, want 40", len(plan.Samples))
	}
	for i, s := range plan.Samples {
		if s.Offset < 0 || s.Offset > plan.HalvedSrcSize-1 {
			t.Errorf("sample %d: offset %d out of range [0,%d)", i, s.Offset, plan.HalvedSrcSize)
		}
		if s.Weight < 0 || s.Weight > 256 {
			t.Errorf("sample %d: weight %d out of [0,256]", i, s.Weight)
		}
	}
}

func TestBuildBilinearHalvingCapped(t *testing.T) {
	plan := BuildBilinear(1 << 20, 3)
	if plan.Halving > maxHalving {
		t.Errorf("Halving = %d, want <= %d", plan.Halving, maxHalving)
	}
}

func TestBuildBilinearIdentity(t *testing.T) {
	plan := BuildBilinear(10, 10)
	if plan.Halving != 0 {
		t.Errorf("identity scale should not halve, got Halving=%d", plan.Halving)
	}
}

func TestBuildBoxSpansCoverWholeSource(t *testing.T) {
	plan := BuildBox(10, 3)
	if len(plan.Spans) != 3 {
		t.Fatalf("len(Spans) = %d, want 3", len(plan.Spans))
	}
	// Spans must be contiguous and monotonic, collectively covering [0,10).
	wantFirst := 0
	for i, s := range plan.Spans {
		if s.First != wantFirst && i > 0 {
			// Spans may overlap by at most one source pixel at the boundary
			// (shared fractional edge pixel), never skip one entirely.
			if s.First > wantFirst {
				t.Errorf("span %d: gap in coverage, First=%d, want <= %d", i, s.First, wantFirst)
			}
		}
		if s.Count < 1 {
			t.Errorf("span %d: Count = %d, want >= 1", i, s.Count)
		}
		wantFirst = s.First + s.Count - 1
	}
	last := plan.Spans[len(plan.Spans)-1]
	if last.First+last.Count-1 != 9 {
		t.Errorf("last span must reach source index 9, got %d", last.First+last.Count-1)
	}
}

func TestBuildBoxSingleSourcePixelSpan(t *testing.T) {
	plan := BuildBox(4, 4)
	for i, s := range plan.Spans {
		if s.Count != 1 {
			t.Errorf("span %d: 1:1 scale should yield Count=1, got %d", i, s.Count)
		}
		if s.EdgeFirst == 0 {
			t.Errorf("span %d: EdgeFirst should carry full weight", i)
		}
	}
}

func TestBuildBoxEmptyDst(t *testing.T) {
	plan := BuildBox(10, 0)
	if len(plan.Spans) != 0 {
		t.Errorf("len(Spans) = %d, want 0", len(plan.Spans))
	}
}
