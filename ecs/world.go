package ecs

import "github.com/milk9111/keystone/ecs/component"

// World owns entities, component storage and the per-tick event queue.
// It is not safe for concurrent use; only the game loop touches it.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	tick     uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Tick returns the number of completed scheduler ticks.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	s, ok := w.stores[id]
	if !ok && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// endTick drops this tick's events and advances the tick counter.
func (w *World) endTick() {
	if w == nil {
		return
	}
	w.events.flush()
	w.tick++
}
