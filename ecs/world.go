package ecs

import "github.com/rouzeris/catroom/ecs/component"

type slot struct {
	gen   generation
	alive bool
}

type store interface {
	remove(id entityID) bool
}

// World owns entities and their component stores. It is not safe for
// concurrent use; systems run on the game goroutine.
type World struct {
	slots  []slot
	free   []entityID
	alive  int
	stores map[component.ComponentID]store
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: map[component.ComponentID]store{}}
}

// CreateEntity allocates an entity, reusing destroyed slots under a new
// generation.
func CreateEntity(w *World) Entity {
	var id entityID
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.slots = append(w.slots, slot{})
		id = entityID(len(w.slots))
	}
	s := &w.slots[id-1]
	s.alive = true
	w.alive++
	return makeEntity(id, s.gen)
}

// DestroyEntity removes e and all of its components. It reports false when
// e was already gone.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	id := e.id()
	for _, st := range w.stores {
		st.remove(id)
	}
	s := &w.slots[id-1]
	s.alive = false
	s.gen++
	w.free = append(w.free, id)
	w.alive--
	return true
}

// IsAlive reports whether an entity handle is still valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil || !e.Valid() || int(e.id()) > len(w.slots) {
		return false
	}
	s := w.slots[e.id()-1]
	return s.alive && s.gen == e.generation()
}

// Entities returns every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.alive)
	for i, s := range w.slots {
		if s.alive {
			out = append(out, makeEntity(entityID(i+1), s.gen))
		}
	}
	return out
}

func (w *World) entity(id entityID) Entity {
	return makeEntity(id, w.slots[id-1].gen)
}

// ErrEntityNotAlive is returned when a stale or destroyed handle is used.
var ErrEntityNotAlive = component.ErrEntityNotAlive
