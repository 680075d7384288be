// Package renderer implements the CPU color buffer and the parallel
// tiled primary-ray loop. Grounded on original_source/src/framebuffer.rs
// for the buffer shape and gazed-vu/eg/rt.go for the worker-pool pattern
// (a channel of row bands drained by a fixed pool of goroutines, joined
// with a sync.WaitGroup).
package renderer

import "voxtrace/core"

// Framebuffer is a CPU-side color buffer, row-major, origin top-left.
type Framebuffer struct {
	Width, Height int
	pixels        []core.Color
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{Width: width, Height: height, pixels: make([]core.Color, width*height)}
}

// Clear fills the buffer with a uniform color.
func (f *Framebuffer) Clear(c core.Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

func (f *Framebuffer) Set(x, y int, c core.Color) {
	f.pixels[y*f.Width+x] = c
}

func (f *Framebuffer) At(x, y int) core.Color {
	return f.pixels[y*f.Width+x]
}

// Pixels exposes the buffer for presentation; callers must not retain it
// across a Clear.
func (f *Framebuffer) Pixels() []core.Color {
	return f.pixels
}

// Present converts the buffer to packed 8-bit RGBA, applying an optional
// overlay callback per pixel first; a nil overlay leaves pixels as
// rendered. The hover-preview highlight is not done here but in
// shade.Scene.Cast.
func (f *Framebuffer) Present(overlay func(x, y int, c core.Color) core.Color) []byte {
	out := make([]byte, f.Width*f.Height*4)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			if overlay != nil {
				c = overlay(x, y, c)
			}
			r, g, b, a := c.ToRGBA8()
			idx := (y*f.Width + x) * 4
			out[idx+0] = r
			out[idx+1] = g
			out[idx+2] = b
			out[idx+3] = a
		}
	}
	return out
}
