package undo

import (
	"github.com/Zaphoood/easyundo/src/util"
	"github.com/pkg/errors"
)

// Provider returns the current state of whatever is being tracked. Save
// calls it exactly once and records the returned value.
type Provider[T any] func() (T, error)

type MissingProviderError struct{}

func (_ MissingProviderError) Error() string {
	return "No provider configured"
}

type Options[T any] struct {
	Provider Provider[T]
	// Maximum number of snapshots kept when saving. 0 means unbounded.
	Capacity int
	// Called after every change to the history or its position
	OnUpdate func()
}

// History is a linear undo/redo history of snapshots of some external state.
// It is not safe for concurrent use.
type History[T any] struct {
	provider Provider[T]
	capacity int
	onUpdate func()

	initialItem Snapshot[T]
	history     []Snapshot[T]
	// position is an index into history which points at the current snapshot
	position int
}

func New[T any](opts Options[T]) *History[T] {
	h := &History[T]{
		provider:    opts.Provider,
		capacity:    util.Max(opts.Capacity, 0),
		onUpdate:    opts.OnUpdate,
		initialItem: None[T](),
		position:    0,
	}
	if h.onUpdate == nil {
		h.onUpdate = func() {}
	}
	h.history = []Snapshot[T]{h.initialItem}
	return h
}

// Initialize sets the initial snapshot, which is also what Clear resets to.
// Index 0 of the current history is replaced even if the position has moved past it.
func (h *History[T]) Initialize(item T) {
	h.initialItem = Some(item)
	h.history[0] = h.initialItem
}

// Save records the provider's current state after the current position,
// discarding anything that could have been redone.
func (h *History[T]) Save() error {
	if h.provider == nil {
		return MissingProviderError{}
	}
	current, err := h.provider()
	if err != nil {
		return errors.Wrap(err, "provider")
	}

	// The oldest entries are dropped before the redo branch is discarded,
	// so stale redo entries count against the capacity.
	h.truncate()
	h.position = util.Min(h.position, h.LastIndex())

	h.history = append(h.history[:h.position+1], Some(current))
	h.position++
	h.onUpdate()
	return nil
}

func (h *History[T]) truncate() {
	for h.capacity != 0 && len(h.history) > h.capacity {
		h.history[0] = Snapshot[T]{}
		h.history = h.history[1:]
	}
}

func (h *History[T]) LastIndex() int {
	return len(h.history) - 1
}

func (h *History[T]) CanUndo() bool {
	return h.position > 0
}

func (h *History[T]) CanRedo() bool {
	return h.position < h.LastIndex()
}

// Undo moves back one snapshot and returns it. If there is nothing to undo,
// nothing happens and ok is false.
func (h *History[T]) Undo() (item Snapshot[T], ok bool) {
	if !h.CanUndo() {
		return None[T](), false
	}
	h.position--
	h.onUpdate()
	return h.history[h.position], true
}

// Redo moves forward one snapshot and returns it. If there is nothing to redo,
// nothing happens and ok is false.
func (h *History[T]) Redo() (item Snapshot[T], ok bool) {
	if !h.CanRedo() {
		return None[T](), false
	}
	h.position++
	h.onUpdate()
	return h.history[h.position], true
}

// Clear drops everything but the initial snapshot. It always notifies.
func (h *History[T]) Clear() {
	h.history = []Snapshot[T]{h.initialItem}
	h.position = 0
	h.onUpdate()
}

func (h *History[T]) Position() int {
	return h.position
}

func (h *History[T]) Current() Snapshot[T] {
	return h.history[h.position]
}

func (h *History[T]) Len() int {
	return len(h.history)
}

func (h *History[T]) Capacity() int {
	return h.capacity
}

func (h *History[T]) At(i int) (Snapshot[T], bool) {
	if i < 0 || i >= len(h.history) {
		return None[T](), false
	}
	return h.history[i], true
}
