package pixelformat

import "testing"

func TestDescribeBytesPerPixel(t *testing.T) {
	tests := []struct {
		f    External
		want int
	}{
		{RGBA, 4}, {BGRA, 4}, {ARGB, 4}, {ABGR, 4},
		{RGBAUnassoc, 4}, {BGRAUnassoc, 4}, {ARGBUnassoc, 4}, {ABGRUnassoc, 4},
		{RGB, 3}, {BGR, 3},
	}
	for _, tt := range tests {
		if got := Describe(tt.f).BytesPerPixel(); got != tt.want {
			t.Errorf("Describe(%s).BytesPerPixel() = %d, want %d", tt.f, got, tt.want)
		}
	}
}

func TestDescribeAlphaConvention(t *testing.T) {
	premul := []External{RGBA, BGRA, ARGB, ABGR}
	for _, f := range premul {
		if Describe(f).Alpha != AlphaPremultiplied {
			t.Errorf("%s: want AlphaPremultiplied", f)
		}
	}
	unassoc := []External{RGBAUnassoc, BGRAUnassoc, ARGBUnassoc, ABGRUnassoc}
	for _, f := range unassoc {
		if Describe(f).Alpha != AlphaUnassociated {
			t.Errorf("%s: want AlphaUnassociated", f)
		}
	}
	for _, f := range []External{RGB, BGR} {
		if Describe(f).Alpha != AlphaNone {
			t.Errorf("%s: want AlphaNone", f)
		}
	}
}

func TestOrderIsPermutationOfPresentChannels(t *testing.T) {
	for f := RGBA; f <= BGR; f++ {
		d := Describe(f)
		seen := map[Channel]int{}
		for _, c := range d.Order {
			seen[c]++
		}
		if d.StorageBits == 32 {
			for _, c := range []Channel{R, G, B, A} {
				if seen[c] != 1 {
					t.Errorf("%s: channel %d appears %d times, want 1", f, c, seen[c])
				}
			}
		} else {
			for _, c := range []Channel{R, G, B} {
				if seen[c] != 1 {
					t.Errorf("%s: channel %d appears %d times, want 1", f, c, seen[c])
				}
			}
			if seen[A] != 0 {
				t.Errorf("%s: alpha-less format must not contain A", f)
			}
		}
	}
}

func TestDescribeInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Describe(invalid) did not panic")
		}
	}()
	Describe(External(999))
}

func TestInternalFormMaxAlpha(t *testing.T) {
	f64 := InternalForm{Storage: Storage64}
	f128 := InternalForm{Storage: Storage128}
	if f64.MaxAlpha() != 0xff {
		t.Errorf("Storage64 MaxAlpha = %#x, want 0xff", f64.MaxAlpha())
	}
	if f128.MaxAlpha() != 0xfff {
		t.Errorf("Storage128 MaxAlpha = %#x, want 0xfff", f128.MaxAlpha())
	}
}

func TestInternalFormChannelBits(t *testing.T) {
	f64 := InternalForm{Storage: Storage64}
	f128 := InternalForm{Storage: Storage128}
	if f64.ChannelBits() != 16 {
		t.Errorf("Storage64 ChannelBits = %d, want 16", f64.ChannelBits())
	}
	if f128.ChannelBits() != 32 {
		t.Errorf("Storage128 ChannelBits = %d, want 32", f128.ChannelBits())
	}
}
