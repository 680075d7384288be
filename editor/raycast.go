package editor

import (
	"math"

	remath "voxtrace/math"
	"voxtrace/renderer"
	"voxtrace/scene"
	"voxtrace/world"
)

// MouseRay converts a cursor position into a world-space ray using the
// same basis-change formula the renderer uses for primary rays, so a
// click lands on exactly what's on screen at that pixel. Grounded on
// original_source's build.rs mouse_ray_dir and the renderer's own
// per-pixel ray formula.
func MouseRay(mouseX, mouseY, width, height float32, cam *scene.Camera) (origin, dir remath.Vec3) {
	aspect := width / height
	perspectiveScale := float32(math.Tan(renderer.FOV / 2))

	sx := (2*mouseX/width - 1) * aspect * perspectiveScale
	sy := (1 - 2*mouseY/height) * perspectiveScale

	v := remath.Vec3{X: sx, Y: sy, Z: -1}.Normalize()
	dir = cam.Right.Mul(v.X).Add(cam.Up.Mul(v.Y)).Sub(cam.Forward.Mul(v.Z))
	return cam.Eye, dir
}

// AdjacentCellCenter returns the center of the cube that should be
// placed against hitPoint across the struck face's hitNormal: the hit
// point plus one full cube size along the (single nonzero) normal axis.
// E.g. a hit at (0.5,0,0) on the +X face of a unit cube at the origin
// yields (1.5,0,0).
func AdjacentCellCenter(hitPoint, hitNormal, cubeSize remath.Vec3) remath.Vec3 {
	return hitPoint.Add(remath.Vec3{
		X: hitNormal.X * cubeSize.X,
		Y: hitNormal.Y * cubeSize.Y,
		Z: hitNormal.Z * cubeSize.Z,
	})
}

// Pick traces ray (origin,dir) against w and reports the hit point,
// outward normal, and struck object index.
func Pick(w *world.World, origin, dir remath.Vec3) (point, normal remath.Vec3, index int, ok bool) {
	hit := w.Grid.Trace(origin, dir)
	if !hit.Hit || !hit.HasObjectIdx {
		return remath.Vec3{}, remath.Vec3{}, 0, false
	}
	return hit.Point, hit.Normal, hit.ObjectIndex, true
}
