// Package present uploads the CPU framebuffer to a GPU texture and blits
// it across the window as a single textured quad. Grounded on the
// teacher's internal/opengl/texture.go upload shape, adapted from the
// teacher's core-profile TexImage2D call to the fixed-function go-gl/gl
// v2.1 binding core/window.go already initializes, and drawn with
// immediate-mode glBegin/glEnd rather than a VAO/shader pipeline since a
// single textured quad needs no vertex buffers.
package present

import (
	"unsafe"

	gl "github.com/go-gl/gl/v2.1/gl"
)

// Presenter owns the one GPU texture the CPU framebuffer is uploaded
// into every frame.
type Presenter struct {
	texID         uint32
	width, height int
}

func New() *Presenter {
	p := &Presenter{}
	gl.GenTextures(1, &p.texID)
	gl.BindTexture(gl.TEXTURE_2D, p.texID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return p
}

// Blit uploads packed RGBA8 pixels (width*height*4 bytes, row-major,
// top-left origin) and draws them as a fullscreen quad into the current
// viewport.
func (p *Presenter) Blit(width, height int, rgba []byte) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, float64(width), float64(height), 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	gl.Enable(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, p.texID)
	if width != p.width || height != p.height {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&rgba[0]))
		p.width, p.height = width, height
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(width), int32(height),
			gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&rgba[0]))
	}

	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(0, 0)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(float32(width), 0)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(float32(width), float32(height))
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(0, float32(height))
	gl.End()

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.TEXTURE_2D)
}

// Close frees the GPU texture.
func (p *Presenter) Close() {
	if p.texID != 0 {
		gl.DeleteTextures(1, &p.texID)
		p.texID = 0
	}
}
