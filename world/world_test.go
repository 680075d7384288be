package world

import (
	"testing"

	"voxtrace/material"
	remath "voxtrace/math"
	"voxtrace/voxel"
)

func cubeAt(center remath.Vec3) voxel.Cube {
	half := remath.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
	return voxel.Cube{Min: center.Sub(half), Max: center.Add(half), Mat: material.Stone()}
}

func TestPlaceAppendsAndRebuilds(t *testing.T) {
	w := New(remath.Vec3{X: 1, Y: 1, Z: 1}, nil)
	if len(w.Objects) != 0 {
		t.Fatalf("expected empty world, got %d objects", len(w.Objects))
	}

	idx := w.Place(cubeAt(remath.Vec3{}))
	if idx != 0 {
		t.Errorf("expected index 0, got %d", idx)
	}
	if len(w.Objects) != 1 {
		t.Fatalf("expected 1 object after place, got %d", len(w.Objects))
	}
	if w.Grid == nil {
		t.Fatalf("Rebuild should have populated Grid")
	}
}

func TestRemoveDeletesAndRebuilds(t *testing.T) {
	w := New(remath.Vec3{X: 1, Y: 1, Z: 1}, []voxel.Intersectable{
		cubeAt(remath.Vec3{X: 0}),
		cubeAt(remath.Vec3{X: 2}),
	})

	w.Remove(0)
	if len(w.Objects) != 1 {
		t.Fatalf("expected 1 object after remove, got %d", len(w.Objects))
	}
	obj, ok := w.At(0)
	if !ok {
		t.Fatalf("expected remaining object at index 0")
	}
	c := obj.(voxel.Cube)
	if c.Min.X != 1.5 {
		t.Errorf("expected the surviving cube to be the one centered at X=2, got Min.X=%v", c.Min.X)
	}
}

func TestInsertUndoesRemove(t *testing.T) {
	removed := cubeAt(remath.Vec3{X: 5})
	w := New(remath.Vec3{X: 1, Y: 1, Z: 1}, []voxel.Intersectable{
		cubeAt(remath.Vec3{X: 0}),
		removed,
	})

	w.Remove(1)
	w.Insert(1, removed)

	if len(w.Objects) != 2 {
		t.Fatalf("expected 2 objects after reinsert, got %d", len(w.Objects))
	}
	obj, _ := w.At(1)
	if obj.(voxel.Cube).Min.X != 4.5 {
		t.Errorf("expected reinserted cube at index 1, got Min.X=%v", obj.(voxel.Cube).Min.X)
	}
}

func TestRemoveOutOfRangeIsNoop(t *testing.T) {
	w := New(remath.Vec3{X: 1, Y: 1, Z: 1}, []voxel.Intersectable{cubeAt(remath.Vec3{})})
	w.Remove(5)
	if len(w.Objects) != 1 {
		t.Errorf("out-of-range Remove should be a no-op, got %d objects", len(w.Objects))
	}
}
