// Package raster renders 2D grayscale slices of 3D scalar fields. It backs
// the noise regression artifacts and the noiseimg tool.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/dgravesa/go-parallel/parallel"
)

// Sampler evaluates a scalar field at a 3D coordinate. Render calls it from
// multiple goroutines, so it must be safe for concurrent use.
type Sampler func(x, y, z float64) float64

// Options describe one grayscale slice of a field.
type Options struct {
	Width    int
	Height   int
	CellSize float64 // divisor applied to pixel coordinates
	Z        float64 // depth of the slice
}

// Render samples the field at (px/CellSize, py/CellSize, Z) for every pixel
// and maps each sample to 8-bit grayscale via Shade. Rows are filled in
// parallel.
func Render(opts Options, sample Sampler) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, opts.Width, opts.Height))

	parallel.For(opts.Height, func(py, _ int) {
		for px := 0; px < opts.Width; px++ {
			n := sample(float64(px)/opts.CellSize, float64(py)/opts.CellSize, opts.Z)
			img.SetGray(px, py, color.Gray{Y: Shade(n)})
		}
	})

	return img
}

// Shade maps a sample in [-1, 1] to a gray level via round((0.5n+0.5)*255).
// Samples outside the nominal range clamp instead of wrapping.
func Shade(n float64) uint8 {
	v := math.Round((0.5*n + 0.5) * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
