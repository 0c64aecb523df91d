package composite

import (
	"testing"

	"github.com/deepteams/imgscale/internal/repack"
)

func px64(v uint16) uint64 {
	return uint64(v) | uint64(v)<<16 | uint64(v)<<32 | uint64(0xff)<<48
}

func TestBlendRow64SrcFullOpacityOverwrites(t *testing.T) {
	src := repack.Row64{px64(200)}
	dst := repack.Row64{px64(10)}
	BlendRow64(Src, src, dst, 256, 0, 1)
	if uint16(dst[0]) != 200 {
		t.Errorf("got %d, want 200", uint16(dst[0]))
	}
}

func TestBlendRow64SrcZeroOpacityKeepsDest(t *testing.T) {
	src := repack.Row64{px64(200)}
	dst := repack.Row64{px64(10)}
	BlendRow64(Src, src, dst, 0, 0, 1)
	if uint16(dst[0]) != 10 {
		t.Errorf("got %d, want 10 (dest unchanged)", uint16(dst[0]))
	}
}

func TestBlendRow64SrcOverDestAverages(t *testing.T) {
	src := repack.Row64{px64(100)}
	dst := repack.Row64{px64(0)}
	BlendRow64(SrcOverDest, src, dst, 256, 0, 1)
	r := uint16(dst[0])
	if r < 49 || r > 51 {
		t.Errorf("over-dest average r = %d, want ~50", r)
	}
}

func TestBlendRow64SrcClearDestUsesClearColor(t *testing.T) {
	src := repack.Row64{px64(100)}
	dst := repack.Row64{px64(255)} // must be ignored: SrcClearDest blends against clear, not dst
	clear := px64(0)
	// Half edge opacity: 100 blended 50/50 with the clear color 0.
	BlendRow64(SrcClearDest, src, dst, 128, clear, 1)
	r := uint16(dst[0])
	if r < 49 || r > 51 {
		t.Errorf("clear-dest blend r = %d, want ~50", r)
	}
}
