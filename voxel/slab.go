package voxel

import (
	remath "voxtrace/math"
	"voxtrace/palette"
)

// Slab is a half-height Cube occupying only the top or bottom half of its
// nominal grid cell on the Y axis. Same intersection contract as Cube.
type Slab struct {
	Cube
}

// FromTemplateSlab builds a bottom or top half-slab centered on the
// nominal cell center and full cell size; top selects the upper half.
func FromTemplateSlab(cellCenter, cellSize remath.Vec3, top bool, t palette.CubeTemplate) Slab {
	half := cellSize.Mul(0.5)
	var min, max remath.Vec3
	if top {
		min = remath.Vec3{X: cellCenter.X - half.X, Y: cellCenter.Y, Z: cellCenter.Z - half.Z}
		max = remath.Vec3{X: cellCenter.X + half.X, Y: cellCenter.Y + half.Y, Z: cellCenter.Z + half.Z}
	} else {
		min = remath.Vec3{X: cellCenter.X - half.X, Y: cellCenter.Y - half.Y, Z: cellCenter.Z - half.Z}
		max = remath.Vec3{X: cellCenter.X + half.X, Y: cellCenter.Y, Z: cellCenter.Z + half.Z}
	}
	return Slab{Cube{Min: min, Max: max, Mat: t.Material, FaceTexes: t.FaceTexes}}
}
