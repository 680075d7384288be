// Package world owns the live scene object slice and its spatial index,
// keeping the two in sync across in-session edits. Grounded on
// original_source/src/main.rs's objects+accel pairing, generalized from
// a load-once vector into an editable one per the block-placement editor.
package world

import (
	"voxtrace/accel"
	remath "voxtrace/math"
	"voxtrace/voxel"
)

// World holds every object in the scene plus the grid accelerator built
// over it. Rebuild after any structural edit; RayIntersect.ObjectIndex
// refers to Objects as of the last Rebuild.
type World struct {
	CubeSize remath.Vec3
	Objects  []voxel.Intersectable
	Grid     *accel.UniformGrid
}

func New(cubeSize remath.Vec3, objects []voxel.Intersectable) *World {
	w := &World{CubeSize: cubeSize, Objects: objects}
	w.Rebuild()
	return w
}

// Rebuild recomputes the grid from the current Objects slice. Called
// after every Place/Remove/Insert.
func (w *World) Rebuild() {
	cell := w.CubeSize.X
	if cell <= 0 {
		cell = 1
	}
	w.Grid = accel.Build(w.Objects, cell)
}

// Place appends obj and returns its index.
func (w *World) Place(obj voxel.Intersectable) int {
	w.Objects = append(w.Objects, obj)
	w.Rebuild()
	return len(w.Objects) - 1
}

// Remove deletes the object at index. Note: this shifts every later
// index, so any command holding an older index taken before this Remove
// is stale after it. The history commands keep the index they were given
// (RemoveBlockCommand) or got from Place (PlaceBlockCommand) and rely on
// undo/redo running in strict last-in, first-out order.
func (w *World) Remove(index int) {
	if index < 0 || index >= len(w.Objects) {
		return
	}
	w.Objects = append(w.Objects[:index], w.Objects[index+1:]...)
	w.Rebuild()
}

// Insert re-inserts obj at index, used to undo a Remove.
func (w *World) Insert(index int, obj voxel.Intersectable) {
	if index < 0 || index > len(w.Objects) {
		index = len(w.Objects)
	}
	w.Objects = append(w.Objects, nil)
	copy(w.Objects[index+1:], w.Objects[index:])
	w.Objects[index] = obj
	w.Rebuild()
}

func (w *World) At(index int) (voxel.Intersectable, bool) {
	if index < 0 || index >= len(w.Objects) {
		return nil, false
	}
	return w.Objects[index], true
}
