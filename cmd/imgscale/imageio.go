package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"

	"github.com/deepteams/imgscale"
)

// openInput returns an io.ReadCloser for path, or stdin if path is "-".
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// decodeBuffer reads an image file and converts it to an unassociated-alpha
// RGBA imgscale.Buffer, matching gwebp's image.Decode + NRGBA canvas
// conversion idiom.
func decodeBuffer(path string) (imgscale.Buffer, error) {
	in, err := openInput(path)
	if err != nil {
		return imgscale.Buffer{}, err
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return imgscale.Buffer{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	b := img.Bounds()
	canvas := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(canvas, canvas.Bounds(), img, b.Min, draw.Src)

	return imgscale.Buffer{
		Pix:    canvas.Pix,
		Format: imgscale.FormatRGBAUnassoc,
		Width:  canvas.Rect.Dx(),
		Height: canvas.Rect.Dy(),
		Stride: canvas.Stride,
	}, nil
}

// newCanvasBuffer allocates a blank unassociated-alpha RGBA canvas of the
// given size as an imgscale.Buffer, returning the backing *image.NRGBA so
// the caller can encode it after rendering.
func newCanvasBuffer(width, height int) (*image.NRGBA, imgscale.Buffer) {
	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	buf := imgscale.Buffer{
		Pix:    canvas.Pix,
		Format: imgscale.FormatRGBAUnassoc,
		Width:  width,
		Height: height,
		Stride: canvas.Stride,
	}
	return canvas, buf
}

// encodeImage writes canvas to path, choosing PNG or JPEG by extension
// ("-" for stdout writes PNG).
func encodeImage(path string, canvas *image.NRGBA) error {
	var out io.Writer
	if path == "-" {
		out = os.Stdout
	} else {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if strings.EqualFold(filepath.Ext(path), ".jpg") || strings.EqualFold(filepath.Ext(path), ".jpeg") {
		return jpeg.Encode(out, canvas, &jpeg.Options{Quality: 92})
	}
	return png.Encode(out, canvas)
}
