// Package skybox implements the six-face cubemap sampler for missed
// primary/reflection/refraction rays, with a procedural-sky fallback when
// no cubemap is loaded. Grounded on original_source/src/skybox.rs and
// main.rs's procedural_sky.
package skybox

import (
	"fmt"
	"math"
	"path/filepath"

	"voxtrace/core"
	remath "voxtrace/math"
	"voxtrace/texture"
)

// Skybox holds the six cubemap faces, one texture per cardinal direction.
type Skybox struct {
	PosX, NegX, PosY, NegY, PosZ, NegZ *texture.Texture
}

// FromFolder loads posx.png, negx.png, posy.png, negy.png, posz.png,
// negz.png from dir.
func FromFolder(dir string) (*Skybox, error) {
	load := func(name string) (*texture.Texture, error) {
		path := filepath.Join(dir, name)
		tex, err := texture.FromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load skybox face %q: %w", path, err)
		}
		return tex, nil
	}
	posx, err := load("posx.png")
	if err != nil {
		return nil, err
	}
	negx, err := load("negx.png")
	if err != nil {
		return nil, err
	}
	posy, err := load("posy.png")
	if err != nil {
		return nil, err
	}
	negy, err := load("negy.png")
	if err != nil {
		return nil, err
	}
	posz, err := load("posz.png")
	if err != nil {
		return nil, err
	}
	negz, err := load("negz.png")
	if err != nil {
		return nil, err
	}
	return &Skybox{PosX: posx, NegX: negx, PosY: posy, NegY: negy, PosZ: posz, NegZ: negz}, nil
}

// Sample picks the cubemap face by the largest-magnitude axis of the unit
// direction r, computes UV per the OpenGL cubemap convention, then
// inverts u or v per face so the on-disk top-left pixel renders upright.
func (s *Skybox) Sample(r remath.Vec3) core.Color {
	ax, ay, az := absf(r.X), absf(r.Y), absf(r.Z)

	var tex *texture.Texture
	var sc, tc, ma float32
	var invertU, invertV bool

	switch {
	case ax >= ay && ax >= az:
		ma = ax
		if r.X > 0 {
			tex, sc, tc = s.PosX, -r.Z, -r.Y
			invertU = true
		} else {
			tex, sc, tc = s.NegX, r.Z, -r.Y
			invertU = true
		}
	case ay >= ax && ay >= az:
		ma = ay
		if r.Y > 0 {
			tex, sc, tc = s.PosY, r.X, r.Z
			invertV = true
		} else {
			tex, sc, tc = s.NegY, r.X, -r.Z
			invertV = true
		}
	default:
		ma = az
		if r.Z > 0 {
			tex, sc, tc = s.PosZ, r.X, -r.Y
			invertU = true
		} else {
			tex, sc, tc = s.NegZ, -r.X, -r.Y
			invertU = true
		}
	}

	u := (sc/ma + 1) / 2
	v := (tc/ma + 1) / 2
	if invertU {
		u = 1 - u
	}
	if invertV {
		v = 1 - v
	}

	rr, gg, bb := tex.SampleClamp(u, v)
	return core.Color{R: rr, G: gg, B: bb, A: 1}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

// smooth5 is the quintic smoothstep used by the procedural sky gradient.
func smooth5(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

// ProceduralSky returns the fallback sky color for a unit direction when
// no cubemap is loaded: a smoothstep-quintic blend from horizon violet to
// near-black at zenith, with a faint magenta glow and a violet haze.
func ProceduralSky(dir remath.Vec3) core.Color {
	t := dir.Y*0.5 + 0.5
	st := smooth5(clamp01(t))

	horizon := core.Color{R: 0.35, G: 0.18, B: 0.45}
	mid := core.Color{R: 0.08, G: 0.05, B: 0.15}
	top := core.Color{R: 0.01, G: 0.01, B: 0.03}

	var base core.Color
	if st < 0.5 {
		k := st * 2
		base = core.Color{
			R: lerp(horizon.R, mid.R, k),
			G: lerp(horizon.G, mid.G, k),
			B: lerp(horizon.B, mid.B, k),
		}
	} else {
		k := (st - 0.5) * 2
		base = core.Color{
			R: lerp(mid.R, top.R, k),
			G: lerp(mid.G, top.G, k),
			B: lerp(mid.B, top.B, k),
		}
	}

	h := clamp01(1 - t)
	glow := float32(math.Pow(float64(h), 5)) * 0.08
	haze := float32(math.Pow(float64(1-t), 2)) * 0.03

	return core.Color{
		R: clamp01(base.R + glow*1.0 + haze*0.6),
		G: clamp01(base.G + glow*0.2 + haze*0.2),
		B: clamp01(base.B + glow*0.8 + haze*0.8),
		A: 1,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
