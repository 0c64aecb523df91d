//go:build bench

// This file benchmarks this package's bilinear/box engine against
// golang.org/x/image/draw's equivalent scalers on the same inputs, purely
// as a comparison baseline — mirroring how the teacher's own (now removed)
// bench_test.go benchmarked against competing WebP codecs under a build
// tag rather than as part of the default test run.
package imgscale_test

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	ximgdraw "golang.org/x/image/draw"

	"github.com/deepteams/imgscale"
)

func makeSourceNRGBA(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 7), G: uint8(y * 13), B: uint8((x + y) * 3), A: uint8(255 - (x+y)%256),
			})
		}
	}
	return img
}

func BenchmarkImgscaleShrink4x(b *testing.B) {
	srcW, srcH := 1024, 1024
	dstW, dstH := 256, 256
	srcImg := makeSourceNRGBA(srcW, srcH)
	src := imgscale.Buffer{Pix: srcImg.Pix, Format: imgscale.FormatRGBAUnassoc, Width: srcW, Height: srcH, Stride: srcImg.Stride}
	dstImg := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	dst := imgscale.Buffer{Pix: dstImg.Pix, Format: imgscale.FormatRGBAUnassoc, Width: dstW, Height: dstH, Stride: dstImg.Stride}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := imgscale.ScaleSimple(src, dst, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkXImageDrawBiLinearShrink4x(b *testing.B) {
	srcW, srcH := 1024, 1024
	dstW, dstH := 256, 256
	srcImg := makeSourceNRGBA(srcW, srcH)
	dstImg := image.NewRGBA(image.Rect(0, 0, dstW, dstH))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ximgdraw.BiLinear.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), draw.Src, nil)
	}
}

func BenchmarkXImageDrawApproxBiLinearShrink4x(b *testing.B) {
	srcW, srcH := 1024, 1024
	dstW, dstH := 256, 256
	srcImg := makeSourceNRGBA(srcW, srcH)
	dstImg := image.NewRGBA(image.Rect(0, 0, dstW, dstH))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ximgdraw.ApproxBiLinear.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), draw.Src, nil)
	}
}
