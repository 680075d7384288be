// Package scenebuild loads a directory of ASCII layer files into a slice
// of voxel.Intersectable objects. Grounded on
// original_source/src/scene.rs's load_ascii_layers_with_palette.
package scenebuild

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"voxtrace/material"
	remath "voxtrace/math"
	"voxtrace/palette"
	"voxtrace/voxel"
)

// Params mirrors original_source's SceneParams: geometry of the ASCII
// grid and which characters count as solid outside the palette.
type Params struct {
	CubeSize                remath.Vec3
	Gap                     remath.Vec3
	Origin                  remath.Vec3
	Y0                      float32
	YStep                   float32
	AnyNonWhitespaceIsSolid bool
	SolidChars              map[byte]bool
}

// DefaultParams matches original_source's default_params: no gaps, layers
// stacked by CubeSize.Y starting half a cube below origin, palette-driven
// solidity with 'X','_','-' always solid.
func DefaultParams(cubeSize remath.Vec3) Params {
	return Params{
		CubeSize: cubeSize,
		Gap:      remath.Vec3{},
		Origin:   remath.Vec3{},
		Y0:       -cubeSize.Y * 0.5,
		YStep:    cubeSize.Y,
		SolidChars: map[byte]bool{
			'X': true, '_': true, '-': true,
		},
	}
}

// LoadASCIILayers reads every *.txt file in dir in ascending name order,
// one stacked Y-layer per file, and builds a Cube or Slab per solid
// character using pal's per-character template (falling back to
// defaultMat when the character has no template entry).
func LoadASCIILayers(dir string, params Params, pal *palette.Palette, defaultMat material.Material) ([]voxel.Intersectable, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var objects []voxel.Intersectable

	for layerIdx, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		lines := splitLines(string(data))
		lines = trimBlankEdges(lines)
		if len(lines) == 0 {
			continue
		}

		rows := len(lines)
		cols := 0
		for _, l := range lines {
			if len(l) > cols {
				cols = len(l)
			}
		}

		stepX := params.CubeSize.X + params.Gap.X
		stepZ := params.CubeSize.Z + params.Gap.Z
		halfW := (float32(cols) - 1) * 0.5
		halfH := (float32(rows) - 1) * 0.5
		yCenter := params.Y0 + float32(layerIdx)*params.YStep

		for r, line := range lines {
			row := padTo(line, cols)
			for c := 0; c < cols; c++ {
				ch := row[c]

				tpl, hasTpl := pal.Get(ch)
				isSlab := ch == '_' || ch == '-'
				solid := params.AnyNonWhitespaceIsSolid && ch != ' '
				if !params.AnyNonWhitespaceIsSolid {
					solid = params.SolidChars[ch] || hasTpl || isSlab
				}
				if !solid {
					continue
				}

				x := (float32(c) - halfW) * stepX
				z := (float32(r) - halfH) * stepZ
				center := params.Origin.Add(remath.Vec3{X: x, Y: yCenter, Z: z})

				effective := palette.MaterialOnly(defaultMat)
				if hasTpl {
					effective = tpl
				}

				if isSlab {
					top := ch == '-'
					objects = append(objects, voxel.FromTemplateSlab(center, params.CubeSize, top, effective))
				} else {
					objects = append(objects, voxel.FromTemplate(center, params.CubeSize, effective))
				}
			}
		}
	}

	return objects, nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}

func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

func padTo(s string, n int) []byte {
	b := make([]byte, n)
	copy(b, s)
	for i := len(s); i < n; i++ {
		b[i] = ' '
	}
	return b
}
