// Package texture implements the immutable 2D texture the scene and
// skybox sample from: file decode via the stdlib image package (matching
// the teacher's own textures/texture.go, which never reaches for a
// third-party decoder either) plus the repeat/clamp sampling contract.
package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"sync"
)

// Texture is an immutable RGBA8 image, row-major, top-left origin. Once
// built it is never mutated; templates in the palette share the same
// *Texture rather than copying pixel data.
type Texture struct {
	Width, Height int
	pixels        []byte // 4 bytes per texel: R,G,B,A
}

// FromFile decodes a PNG or JPEG file into a Texture.
func FromFile(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, w*h*4)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			idx := ((y-bounds.Min.Y)*w + (x - bounds.Min.X)) * 4
			pixels[idx] = uint8(r >> 8)
			pixels[idx+1] = uint8(g >> 8)
			pixels[idx+2] = uint8(b >> 8)
			pixels[idx+3] = uint8(a >> 8)
		}
	}

	return &Texture{Width: w, Height: h, pixels: pixels}, nil
}

// Solid builds a 1x1 texture of a single color. Untextured templates do
// not use it: a nil FaceStyle shades the face by material color alone.
func Solid(r, g, b, a uint8) *Texture {
	return &Texture{Width: 1, Height: 1, pixels: []byte{r, g, b, a}}
}

func (t *Texture) texelAt(ix, iy int) (r, g, b, a float32) {
	idx := (iy*t.Width + ix) * 4
	return float32(t.pixels[idx]) / 255,
		float32(t.pixels[idx+1]) / 255,
		float32(t.pixels[idx+2]) / 255,
		float32(t.pixels[idx+3]) / 255
}

func floorClampIndex(coord float32, size int) int {
	idx := int(math.Floor(float64(coord)))
	if idx < 0 {
		idx = 0
	}
	if idx > size-1 {
		idx = size - 1
	}
	return idx
}

func wrapFrac(u float32) float32 {
	u -= float32(math.Floor(float64(u)))
	if u < 0 {
		u++
	}
	return u
}

// SampleRepeat wraps u,v into [0,1) and samples with the texel-center
// convention: texel center sits at (u*W - 0.5, v*H - 0.5).
func (t *Texture) SampleRepeat(u, v float32) (r, g, b float32) {
	r, g, b, _ = t.SampleRepeatRGBA(u, v)
	return
}

func (t *Texture) SampleRepeatRGBA(u, v float32) (r, g, b, a float32) {
	u, v = wrapFrac(u), wrapFrac(v)
	ix := floorClampIndex(u*float32(t.Width)-0.5, t.Width)
	iy := floorClampIndex(v*float32(t.Height)-0.5, t.Height)
	return t.texelAt(ix, iy)
}

// SampleClamp insets u,v by half a texel on each axis before sampling,
// avoiding seams at the edges of a non-tiling image (used by the skybox;
// cube faces sample with SampleRepeatRGBA).
func (t *Texture) SampleClamp(u, v float32) (r, g, b float32) {
	r, g, b, _ = t.SampleClampRGBA(u, v)
	return
}

func (t *Texture) SampleClampRGBA(u, v float32) (r, g, b, a float32) {
	insetU := 0.5 / float32(t.Width)
	insetV := 0.5 / float32(t.Height)
	u = clamp(u, insetU, 1-insetU)
	v = clamp(v, insetV, 1-insetV)
	ix := floorClampIndex(u*float32(t.Width)-0.5, t.Width)
	iy := floorClampIndex(v*float32(t.Height)-0.5, t.Height)
	return t.texelAt(ix, iy)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Cache loads and memoizes textures by path so templates that reference
// the same file share one immutable *Texture (per Design Note: never copy
// pixel data at template construction).
type Cache struct {
	mu   sync.RWMutex
	byID map[string]*Texture
}

func NewCache() *Cache {
	return &Cache{byID: make(map[string]*Texture)}
}

func (c *Cache) Load(path string) (*Texture, error) {
	c.mu.RLock()
	if tex, ok := c.byID[path]; ok {
		c.mu.RUnlock()
		return tex, nil
	}
	c.mu.RUnlock()

	tex, err := FromFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.byID[path] = tex
	c.mu.Unlock()
	return tex, nil
}
