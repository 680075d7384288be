package editor

import (
	"voxtrace/voxel"
	"voxtrace/world"
)

// Command represents an undoable editor action
type Command interface {
	Execute()
	Undo()
	Description() string
}

// History manages undo/redo stacks
type History struct {
	undoStack []Command
	redoStack []Command
	maxDepth  int
}

// NewHistory creates a new history with the given max undo depth
func NewHistory(maxDepth int) *History {
	return &History{
		undoStack: make([]Command, 0, maxDepth),
		redoStack: make([]Command, 0, maxDepth),
		maxDepth:  maxDepth,
	}
}

// Do executes a command and pushes it to the undo stack
func (h *History) Do(cmd Command) {
	cmd.Execute()
	h.undoStack = append(h.undoStack, cmd)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[1:]
	}
	// Clear redo stack on new action
	h.redoStack = h.redoStack[:0]
}

// Undo reverts the last action
func (h *History) Undo() bool {
	if len(h.undoStack) == 0 {
		return false
	}
	cmd := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	cmd.Undo()
	h.redoStack = append(h.redoStack, cmd)
	return true
}

// Redo reapplies the last undone action
func (h *History) Redo() bool {
	if len(h.redoStack) == 0 {
		return false
	}
	cmd := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	cmd.Execute()
	h.undoStack = append(h.undoStack, cmd)
	return true
}

// CanUndo returns whether there are actions to undo
func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }

// CanRedo returns whether there are actions to redo
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// Clear wipes all undo/redo history
func (h *History) Clear() {
	h.undoStack = h.undoStack[:0]
	h.redoStack = h.redoStack[:0]
}

// --- Concrete Commands ---

// PlaceBlockCommand records adding one object to the world.
type PlaceBlockCommand struct {
	World *world.World
	Obj   voxel.Intersectable
	index int
}

func NewPlaceBlockCommand(w *world.World, obj voxel.Intersectable) *PlaceBlockCommand {
	return &PlaceBlockCommand{World: w, Obj: obj}
}

func (c *PlaceBlockCommand) Execute()            { c.index = c.World.Place(c.Obj) }
func (c *PlaceBlockCommand) Undo()               { c.World.Remove(c.index) }
func (c *PlaceBlockCommand) Description() string { return "Place block" }

// RemoveBlockCommand records deleting the object at Index, keeping a
// copy so Undo can reinsert it. Index is taken as of Execute time; if
// other edits have happened since, interleaving place/remove undo
// across objects is not guaranteed to restore the original order.
type RemoveBlockCommand struct {
	World   *world.World
	Index   int
	removed voxel.Intersectable
}

func NewRemoveBlockCommand(w *world.World, index int) *RemoveBlockCommand {
	return &RemoveBlockCommand{World: w, Index: index}
}

func (c *RemoveBlockCommand) Execute() {
	c.removed, _ = c.World.At(c.Index)
	c.World.Remove(c.Index)
}
func (c *RemoveBlockCommand) Undo() {
	if c.removed != nil {
		c.World.Insert(c.Index, c.removed)
	}
}
func (c *RemoveBlockCommand) Description() string { return "Remove block" }
