// Package palette maps the characters of an ASCII scene layer to fully
// configured cube recipes: a material plus six optional per-face texture
// styles. Grounded on original_source/src/palette.rs (TexStyle, FaceStyle,
// CubeTemplate, Palette) and styled after the teacher's "default material
// library" builder-function idiom in materials/material.go.
package palette

import (
	"voxtrace/core"
	"voxtrace/material"
	"voxtrace/texture"
)

// Face index order is fixed and mandatory: +X, -X, +Y, -Y, +Z, -Z.
const (
	FacePosX = 0
	FaceNegX = 1
	FacePosY = 2
	FaceNegY = 3
	FacePosZ = 4
	FaceNegZ = 5
	FaceCount = 6
)

// StyleKind discriminates the eight texel-sampling styles a face can use.
// Go has no sum type, so TexStyle carries every variant's fields and
// StyleKind says which ones apply, mirroring the shape of palette.rs's
// TexStyle enum without an enum language feature.
type StyleKind int

const (
	StyleNormal StyleKind = iota
	StyleGrayscaleTint
	StyleBlackIsTransparent
	StyleGrayscaleTintBlackTransparent
	StyleImageAlphaCutout
	StyleGrayscaleTintImageAlphaCutout
	StyleImageAlphaWindow
	StyleGrayscaleTintImageAlphaWindow
)

type TexStyle struct {
	Kind      StyleKind
	Tint      core.Color
	Threshold float32
}

// FaceStyle pairs a shared, immutable texture with a sampling style.
type FaceStyle struct {
	Tex   *texture.Texture
	Style TexStyle
}

// CubeTemplate is the per-character recipe: a material plus up to six
// FaceStyles (nil means "untextured", the cube is shaded by material
// color alone).
type CubeTemplate struct {
	Material  material.Material
	FaceTexes [FaceCount]*FaceStyle
}

func MaterialOnly(m material.Material) CubeTemplate {
	return CubeTemplate{Material: m}
}

// WithSameTexture applies one texture, Normal style, to all six faces.
func WithSameTexture(m material.Material, tex *texture.Texture) CubeTemplate {
	return withFaceStyle(m, tex, TexStyle{Kind: StyleNormal})
}

// WithSameTextureTinted applies one texture with a grayscale tint to all
// six faces.
func WithSameTextureTinted(m material.Material, tex *texture.Texture, tint core.Color) CubeTemplate {
	return withFaceStyle(m, tex, TexStyle{Kind: StyleGrayscaleTint, Tint: tint})
}

// WithSameTextureBlackTransparent makes dark texels invisible (cutout by
// luminance) on every face.
func WithSameTextureBlackTransparent(m material.Material, tex *texture.Texture, threshold float32) CubeTemplate {
	return withFaceStyle(m, tex, TexStyle{Kind: StyleBlackIsTransparent, Threshold: threshold})
}

func WithSameTextureTintedBlackTransparent(m material.Material, tex *texture.Texture, tint core.Color, threshold float32) CubeTemplate {
	return withFaceStyle(m, tex, TexStyle{Kind: StyleGrayscaleTintBlackTransparent, Tint: tint, Threshold: threshold})
}

// WithSameTextureImageAlpha cuts out texels whose alpha is at or below
// threshold on every face.
func WithSameTextureImageAlpha(m material.Material, tex *texture.Texture, threshold float32) CubeTemplate {
	return withFaceStyle(m, tex, TexStyle{Kind: StyleImageAlphaCutout, Threshold: threshold})
}

func WithSameTextureTintedImageAlpha(m material.Material, tex *texture.Texture, tint core.Color, threshold float32) CubeTemplate {
	return withFaceStyle(m, tex, TexStyle{Kind: StyleGrayscaleTintImageAlphaCutout, Tint: tint, Threshold: threshold})
}

// WithSameTextureImageAlphaWindow never rejects the hit; instead alpha
// becomes sub-texel coverage, letting glass-like faces blend with what's
// behind them. The uncovered part is traced by the integrator's
// refraction ray, bent by the material's refractive index.
func WithSameTextureImageAlphaWindow(m material.Material, tex *texture.Texture, threshold float32) CubeTemplate {
	return withFaceStyle(m, tex, TexStyle{Kind: StyleImageAlphaWindow, Threshold: threshold})
}

func WithSameTextureTintedImageAlphaWindow(m material.Material, tex *texture.Texture, tint core.Color, threshold float32) CubeTemplate {
	return withFaceStyle(m, tex, TexStyle{Kind: StyleGrayscaleTintImageAlphaWindow, Tint: tint, Threshold: threshold})
}

func withFaceStyle(m material.Material, tex *texture.Texture, style TexStyle) CubeTemplate {
	fs := &FaceStyle{Tex: tex, Style: style}
	t := CubeTemplate{Material: m}
	for i := range t.FaceTexes {
		t.FaceTexes[i] = fs
	}
	return t
}

// WithTopBottomSides gives the top and bottom faces one texture and the
// four side faces another, both Normal style (grass-block style cube).
func WithTopBottomSides(m material.Material, top, bottom, sides *texture.Texture) CubeTemplate {
	t := CubeTemplate{Material: m}
	t.FaceTexes[FacePosY] = &FaceStyle{Tex: top, Style: TexStyle{Kind: StyleNormal}}
	t.FaceTexes[FaceNegY] = &FaceStyle{Tex: bottom, Style: TexStyle{Kind: StyleNormal}}
	side := &FaceStyle{Tex: sides, Style: TexStyle{Kind: StyleNormal}}
	t.FaceTexes[FacePosX] = side
	t.FaceTexes[FaceNegX] = side
	t.FaceTexes[FacePosZ] = side
	t.FaceTexes[FaceNegZ] = side
	return t
}

// WithFacesStyled lets the caller assign a distinct FaceStyle per face
// index for fully custom templates (e.g. a crate with a label only on
// +Z).
func WithFacesStyled(m material.Material, faces [FaceCount]*FaceStyle) CubeTemplate {
	return CubeTemplate{Material: m, FaceTexes: faces}
}

// Palette maps a scene-layer character to its cube recipe.
type Palette struct {
	templates map[byte]CubeTemplate
}

func New() *Palette {
	return &Palette{templates: make(map[byte]CubeTemplate)}
}

func (p *Palette) Set(c byte, t CubeTemplate) {
	p.templates[c] = t
}

func (p *Palette) Get(c byte) (CubeTemplate, bool) {
	t, ok := p.templates[c]
	return t, ok
}
