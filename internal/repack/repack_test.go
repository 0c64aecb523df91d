package repack

import (
	"testing"

	"github.com/deepteams/imgscale/internal/pixelformat"
)

func TestUnpackPackRGBAIdentity64(t *testing.T) {
	form := pixelformat.InternalForm{Storage: pixelformat.Storage64, Alpha: pixelformat.Premul8, Gamma: pixelformat.GammaCompressed}
	src := []byte{10, 20, 30, 255, 0, 0, 0, 0, 1, 2, 3, 128}
	n := 3
	row := make(Row64, n)
	Unpack(pixelformat.RGBA, form, src, n, row, nil)

	dst := make([]byte, n*4)
	Pack(form, pixelformat.RGBA, row, nil, n, dst)

	for i := 0; i < len(src); i++ {
		if dst[i] != src[i] {
			t.Errorf("byte %d: got %d, want %d", i, dst[i], src[i])
		}
	}
}

func TestUnpackPackBGRAReorders(t *testing.T) {
	form := pixelformat.InternalForm{Storage: pixelformat.Storage64, Alpha: pixelformat.Premul8, Gamma: pixelformat.GammaCompressed}
	// One opaque BGRA pixel: B=10 G=20 R=30 A=255.
	src := []byte{10, 20, 30, 255}
	row := make(Row64, 1)
	Unpack(pixelformat.BGRA, form, src, 1, row, nil)

	r, g, b, a := unpack64(row[0])
	if r != 30 || g != 20 || b != 10 || a != 255 {
		t.Fatalf("unpack BGRA: got r=%d g=%d b=%d a=%d, want 30,20,10,255", r, g, b, a)
	}

	dst := make([]byte, 4)
	Pack(form, pixelformat.RGBA, row, nil, 1, dst)
	if dst[0] != 30 || dst[1] != 20 || dst[2] != 10 || dst[3] != 255 {
		t.Fatalf("pack to RGBA: got %v, want [30 20 10 255]", dst)
	}
}

func TestUnassocPremulRoundTripOpaque(t *testing.T) {
	form := pixelformat.InternalForm{Storage: pixelformat.Storage64, Alpha: pixelformat.Premul8, Gamma: pixelformat.GammaCompressed}
	src := []byte{200, 100, 50, 255}
	row := make(Row64, 1)
	Unpack(pixelformat.RGBAUnassoc, form, src, 1, row, nil)
	dst := make([]byte, 4)
	Pack(form, pixelformat.RGBAUnassoc, row, nil, 1, dst)
	for i, want := range src {
		if dst[i] != want {
			t.Errorf("byte %d: got %d, want %d", i, dst[i], want)
		}
	}
}

func TestTransparentPixelStaysZero(t *testing.T) {
	form := pixelformat.InternalForm{Storage: pixelformat.Storage64, Alpha: pixelformat.Premul8, Gamma: pixelformat.GammaCompressed}
	src := []byte{255, 255, 255, 0}
	row := make(Row64, 1)
	Unpack(pixelformat.RGBAUnassoc, form, src, 1, row, nil)
	r, g, b, a := unpack64(row[0])
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Fatalf("transparent pixel must premultiply to zero, got r=%d g=%d b=%d a=%d", r, g, b, a)
	}
}

func TestRGBHasImplicitOpaqueAlpha(t *testing.T) {
	form := pixelformat.InternalForm{Storage: pixelformat.Storage64, Alpha: pixelformat.Premul8, Gamma: pixelformat.GammaCompressed}
	src := []byte{1, 2, 3}
	row := make(Row64, 1)
	Unpack(pixelformat.RGB, form, src, 1, row, nil)
	_, _, _, a := unpack64(row[0])
	if a != 255 {
		t.Fatalf("RGB format alpha = %d, want 255", a)
	}
}

func TestResolvePipelinePicksLinearForBox(t *testing.T) {
	p, err := ResolvePipeline(pixelformat.RGBA, pixelformat.RGBA, FilterBox, FilterBox, false)
	if err != nil {
		t.Fatal(err)
	}
	if p.Form.Gamma != pixelformat.GammaLinear || p.Form.Storage != pixelformat.Storage128 {
		t.Errorf("box filter pipeline should resolve to 128bpp-linear, got %+v", p.Form)
	}
}

func TestResolvePipelinePicksLinearForSRGBRegardlessOfFilter(t *testing.T) {
	p, err := ResolvePipeline(pixelformat.RGBA, pixelformat.RGBA, FilterCopy, FilterCopy, true)
	if err != nil {
		t.Fatal(err)
	}
	if p.Form.Gamma != pixelformat.GammaLinear || p.Form.Storage != pixelformat.Storage128 {
		t.Errorf("sRGB-enabled copy pipeline should still resolve to 128bpp-linear, got %+v", p.Form)
	}
}

func TestResolvePipelineKeepsCompressedWhenSRGBDisabled(t *testing.T) {
	p, err := ResolvePipeline(pixelformat.RGBA, pixelformat.RGBA, FilterBilinear, FilterBilinear, false)
	if err != nil {
		t.Fatal(err)
	}
	if p.Form.Gamma != pixelformat.GammaCompressed || p.Form.Storage != pixelformat.Storage64 {
		t.Errorf("sRGB-disabled bilinear pipeline should stay 64bpp-compressed, got %+v", p.Form)
	}
}

func TestResolvePipelinePicksPremul16ForUnassociatedCopy(t *testing.T) {
	p, err := ResolvePipeline(pixelformat.RGBAUnassoc, pixelformat.RGBAUnassoc, FilterCopy, FilterCopy, false)
	if err != nil {
		t.Fatal(err)
	}
	if p.Form.Alpha != pixelformat.Premul16 {
		t.Errorf("both-ends-unassociated copy pipeline should use premul-16, got %+v", p.Form)
	}
}

func TestResolvePipelineKeepsPremul8WhenOneSideAssociated(t *testing.T) {
	p, err := ResolvePipeline(pixelformat.RGBAUnassoc, pixelformat.RGBA, FilterCopy, FilterCopy, false)
	if err != nil {
		t.Fatal(err)
	}
	if p.Form.Alpha != pixelformat.Premul8 {
		t.Errorf("mixed-convention copy pipeline should stay premul-8, got %+v", p.Form)
	}
}

func TestResolvePipelineRejectsInvalidFormat(t *testing.T) {
	if _, err := ResolvePipeline(pixelformat.External(99), pixelformat.RGBA, FilterCopy, FilterCopy, false); err == nil {
		t.Fatal("expected error for invalid source format")
	}
}
