// Package accel implements the uniform-grid spatial index and its
// Amanatides-Woo 3D DDA traversal for closest-hit and any-hit (shadow)
// queries. Grounded on original_source/src/accel.rs.
package accel

import (
	"math"

	remath "voxtrace/math"
	"voxtrace/voxel"
)

const boundsPad = 1e-4

type aabb struct {
	min, max remath.Vec3
}

func unionAABB(a, b aabb) aabb {
	return aabb{
		min: remath.Vec3{X: fmin(a.min.X, b.min.X), Y: fmin(a.min.Y, b.min.Y), Z: fmin(a.min.Z, b.min.Z)},
		max: remath.Vec3{X: fmax(a.max.X, b.max.X), Y: fmax(a.max.Y, b.max.Y), Z: fmax(a.max.Z, b.max.Z)},
	}
}

// intersectRay returns (tEnter, tExit) of the ray against the box, or ok
// = false on a miss.
func (b aabb) intersectRay(origin, direction remath.Vec3) (tEnter, tExit float32, ok bool) {
	invX, invY, invZ := 1/direction.X, 1/direction.Y, 1/direction.Z
	t1x, t2x := (b.min.X-origin.X)*invX, (b.max.X-origin.X)*invX
	t1y, t2y := (b.min.Y-origin.Y)*invY, (b.max.Y-origin.Y)*invY
	t1z, t2z := (b.min.Z-origin.Z)*invZ, (b.max.Z-origin.Z)*invZ

	tminX, tmaxX := fmin(t1x, t2x), fmax(t1x, t2x)
	tminY, tmaxY := fmin(t1y, t2y), fmax(t1y, t2y)
	tminZ, tmaxZ := fmin(t1z, t2z), fmax(t1z, t2z)

	tEnter = fmax(tminX, fmax(tminY, tminZ))
	tExit = fmin(tmaxX, fmin(tmaxY, tmaxZ))
	if tExit < 0 || tEnter > tExit {
		return 0, 0, false
	}
	return tEnter, tExit, true
}

// UniformGrid buckets scene objects into a regular 3D cell grid and
// answers closest-hit and any-hit ray queries by walking it.
type UniformGrid struct {
	bounds   aabb
	dims     [3]int
	cellSize remath.Vec3
	cells    [][]int
	objects  []voxel.Intersectable
}

// Build computes the union AABB of every object (padded by 1e-4), chooses
// grid dimensions from the desired cell size, and buckets each object's
// index into every cell its AABB overlaps. Called whenever the scene
// slice changes.
func Build(objects []voxel.Intersectable, desiredCellSize float32) *UniformGrid {
	g := &UniformGrid{objects: objects}
	if len(objects) == 0 {
		g.bounds = aabb{min: remath.Vec3{}, max: remath.Vec3{X: 1, Y: 1, Z: 1}}
		g.dims = [3]int{1, 1, 1}
		g.cellSize = remath.Vec3{X: 1, Y: 1, Z: 1}
		g.cells = make([][]int, 1)
		return g
	}

	minV, maxV := objects[0].AABB()
	union := aabb{min: minV, max: maxV}
	for _, o := range objects[1:] {
		mn, mx := o.AABB()
		union = unionAABB(union, aabb{min: mn, max: mx})
	}
	pad := remath.Vec3{X: boundsPad, Y: boundsPad, Z: boundsPad}
	union.min = union.min.Sub(pad)
	union.max = union.max.Add(pad)
	g.bounds = union

	extent := union.max.Sub(union.min)
	if desiredCellSize <= 0 {
		desiredCellSize = 1
	}
	g.dims = [3]int{
		maxInt(1, int(math.Ceil(float64(extent.X/desiredCellSize)))),
		maxInt(1, int(math.Ceil(float64(extent.Y/desiredCellSize)))),
		maxInt(1, int(math.Ceil(float64(extent.Z/desiredCellSize)))),
	}
	g.cellSize = remath.Vec3{
		X: extent.X / float32(g.dims[0]),
		Y: extent.Y / float32(g.dims[1]),
		Z: extent.Z / float32(g.dims[2]),
	}

	g.cells = make([][]int, g.dims[0]*g.dims[1]*g.dims[2])
	for idx, o := range objects {
		mn, mx := o.AABB()
		ix0, ix1 := g.cellRange(mn.X, mx.X, g.bounds.min.X, g.cellSize.X, g.dims[0])
		iy0, iy1 := g.cellRange(mn.Y, mx.Y, g.bounds.min.Y, g.cellSize.Y, g.dims[1])
		iz0, iz1 := g.cellRange(mn.Z, mx.Z, g.bounds.min.Z, g.cellSize.Z, g.dims[2])
		for iz := iz0; iz <= iz1; iz++ {
			for iy := iy0; iy <= iy1; iy++ {
				for ix := ix0; ix <= ix1; ix++ {
					ci := g.cellIndex(ix, iy, iz)
					g.cells[ci] = append(g.cells[ci], idx)
				}
			}
		}
	}
	return g
}

func (g *UniformGrid) cellRange(lo, hi, boundsMin, cellSize float32, dim int) (int, int) {
	i0 := int(math.Floor(float64((lo - boundsMin) / cellSize)))
	i1 := int(math.Floor(float64((hi - boundsMin) / cellSize)))
	return clampInt(i0, 0, dim-1), clampInt(i1, 0, dim-1)
}

func (g *UniformGrid) cellIndex(ix, iy, iz int) int {
	return (iz*g.dims[1]+iy)*g.dims[0] + ix
}

// Trace walks the grid via Amanatides-Woo DDA and returns the globally
// closest hit, or a miss if the ray clears the grid bounds.
func (g *UniformGrid) Trace(origin, direction remath.Vec3) voxel.Intersect {
	tEnter, tExit, ok := g.bounds.intersectRay(origin, direction)
	if !ok {
		return voxel.Empty()
	}
	if tEnter < 0 {
		tEnter = 0
	}

	point := origin.Add(direction.Mul(tEnter))
	ix := clampInt(int(math.Floor(float64((point.X-g.bounds.min.X)/g.cellSize.X))), 0, g.dims[0]-1)
	iy := clampInt(int(math.Floor(float64((point.Y-g.bounds.min.Y)/g.cellSize.Y))), 0, g.dims[1]-1)
	iz := clampInt(int(math.Floor(float64((point.Z-g.bounds.min.Z)/g.cellSize.Z))), 0, g.dims[2]-1)

	stepX, tMaxX, tDeltaX := g.axisStep(direction.X, origin.X, tEnter, ix, g.bounds.min.X, g.cellSize.X)
	stepY, tMaxY, tDeltaY := g.axisStep(direction.Y, origin.Y, tEnter, iy, g.bounds.min.Y, g.cellSize.Y)
	stepZ, tMaxZ, tDeltaZ := g.axisStep(direction.Z, origin.Z, tEnter, iz, g.bounds.min.Z, g.cellSize.Z)

	var best voxel.Intersect
	bestT := float32(math.Inf(1))
	t := tEnter

	for {
		cellExit := fmin(tMaxX, fmin(tMaxY, tMaxZ))
		for _, objIdx := range g.cells[g.cellIndex(ix, iy, iz)] {
			hit := g.objects[objIdx].RayIntersect(origin, direction)
			if hit.Hit && hit.Distance >= tEnter-1e-4 && hit.Distance < bestT {
				hit.ObjectIndex = objIdx
				hit.HasObjectIdx = true
				best = hit
				bestT = hit.Distance
			}
		}
		if best.Hit && bestT <= cellExit {
			return best
		}

		if tMaxX <= tMaxY && tMaxX <= tMaxZ {
			ix += stepX
			if ix < 0 || ix >= g.dims[0] {
				break
			}
			t = tMaxX
			tMaxX += tDeltaX
		} else if tMaxY <= tMaxZ {
			iy += stepY
			if iy < 0 || iy >= g.dims[1] {
				break
			}
			t = tMaxY
			tMaxY += tDeltaY
		} else {
			iz += stepZ
			if iz < 0 || iz >= g.dims[2] {
				break
			}
			t = tMaxZ
			tMaxZ += tDeltaZ
		}
		if t > tExit {
			break
		}
	}

	if best.Hit {
		return best
	}
	return voxel.Empty()
}

// AnyHit answers a shadow query: is there an occluder strictly between
// (eps, maxT) along the ray.
func (g *UniformGrid) AnyHit(origin, direction remath.Vec3, maxT float32) bool {
	const eps = 1e-4
	tEnter, tExit, ok := g.bounds.intersectRay(origin, direction)
	if !ok {
		return false
	}
	if tEnter < 0 {
		tEnter = 0
	}
	if tExit > maxT {
		tExit = maxT
	}
	if tEnter > tExit {
		return false
	}

	point := origin.Add(direction.Mul(tEnter))
	ix := clampInt(int(math.Floor(float64((point.X-g.bounds.min.X)/g.cellSize.X))), 0, g.dims[0]-1)
	iy := clampInt(int(math.Floor(float64((point.Y-g.bounds.min.Y)/g.cellSize.Y))), 0, g.dims[1]-1)
	iz := clampInt(int(math.Floor(float64((point.Z-g.bounds.min.Z)/g.cellSize.Z))), 0, g.dims[2]-1)

	stepX, tMaxX, tDeltaX := g.axisStep(direction.X, origin.X, tEnter, ix, g.bounds.min.X, g.cellSize.X)
	stepY, tMaxY, tDeltaY := g.axisStep(direction.Y, origin.Y, tEnter, iy, g.bounds.min.Y, g.cellSize.Y)
	stepZ, tMaxZ, tDeltaZ := g.axisStep(direction.Z, origin.Z, tEnter, iz, g.bounds.min.Z, g.cellSize.Z)

	t := tEnter
	for {
		cellExit := fmin(tMaxX, fmin(tMaxY, tMaxZ))
		for _, objIdx := range g.cells[g.cellIndex(ix, iy, iz)] {
			hit := g.objects[objIdx].RayIntersect(origin, direction)
			if hit.Hit && hit.Distance > eps && hit.Distance < maxT {
				return true
			}
		}
		if cellExit >= maxT {
			return false
		}

		if tMaxX <= tMaxY && tMaxX <= tMaxZ {
			ix += stepX
			if ix < 0 || ix >= g.dims[0] {
				return false
			}
			t = tMaxX
			tMaxX += tDeltaX
		} else if tMaxY <= tMaxZ {
			iy += stepY
			if iy < 0 || iy >= g.dims[1] {
				return false
			}
			t = tMaxY
			tMaxY += tDeltaY
		} else {
			iz += stepZ
			if iz < 0 || iz >= g.dims[2] {
				return false
			}
			t = tMaxZ
			tMaxZ += tDeltaZ
		}
		if t > tExit {
			return false
		}
	}
}

// axisStep computes the DDA step direction, the absolute t of the next
// cell boundary crossing, and the per-cell t increment for one axis. A
// zero-direction axis never advances: step is 0 and both t values are
// +Inf, which the min()-based axis selection above naturally skips.
func (g *UniformGrid) axisStep(dirComp, originComp, tEnter float32, cellIdx int, boundsMin, cellSize float32) (step int, tMax, tDelta float32) {
	if dirComp == 0 {
		return 0, float32(math.Inf(1)), float32(math.Inf(1))
	}
	if dirComp > 0 {
		step = 1
		nextBoundary := boundsMin + float32(cellIdx+1)*cellSize
		tMax = tEnter + (nextBoundary-(originComp+dirComp*tEnter))/dirComp
	} else {
		step = -1
		nextBoundary := boundsMin + float32(cellIdx)*cellSize
		tMax = tEnter + (nextBoundary-(originComp+dirComp*tEnter))/dirComp
	}
	tDelta = cellSize / absf(dirComp)
	return
}

func fmin(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func fmax(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func absf(a float32) float32 {
	if a < 0 {
		return -a
	}
	return a
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
