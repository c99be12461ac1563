package ecs

import (
	"fmt"

	"github.com/rouzeris/catroom/ecs/component"
)

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil {
		return nil
	}
	st, ok := w.stores[kind.ID()]
	if !ok {
		if !create {
			return nil
		}
		set := newSparseSet[T]()
		w.stores[kind.ID()] = set
		return set
	}
	return st.(*sparseSet[T])
}

// Add attaches value to e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %s", component.ErrInvalidComponentKind, kind)
	}
	if value == nil {
		return fmt.Errorf("%w: %s", component.ErrNilComponent, kind)
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("%w: %s", component.ErrEntityNotAlive, e)
	}
	storeFor(w, kind, true).set(e.id(), value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	return storeFor(w, kind, false).get(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

// Remove detaches the component and reports whether one was present.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	st := storeFor(w, kind, false)
	if st == nil {
		return false
	}
	return st.remove(e.id())
}

// ForEach visits every entity carrying kind. fn may remove the visited
// component; other structural changes should wait until after the loop.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	st := storeFor(w, kind, false)
	if st == nil {
		return
	}
	for i := st.len() - 1; i >= 0; i-- {
		if i >= st.len() {
			continue
		}
		fn(w.entity(st.dense[i]), st.values[i])
	}
}

// ForEach2 visits entities carrying both kinds, iterating the smaller store.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	if sa == nil || sb == nil {
		return
	}
	for _, id := range smallest(sa.dense, sb.dense) {
		a, okA := sa.get(id)
		b, okB := sb.get(id)
		if okA && okB {
			fn(w.entity(id), a, b)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	sc := storeFor(w, kc, false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	for _, id := range smallest(sa.dense, sb.dense, sc.dense) {
		a, okA := sa.get(id)
		b, okB := sb.get(id)
		c, okC := sc.get(id)
		if okA && okB && okC {
			fn(w.entity(id), a, b, c)
		}
	}
}

// First returns the first entity carrying kind, for singleton components.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	st := storeFor(w, kind, false)
	if st.len() == 0 {
		return 0, nil, false
	}
	return w.entity(st.dense[0]), st.values[0], true
}

// smallest returns a copy of the shortest id list so callbacks may mutate
// the stores while iterating.
func smallest(lists ...[]entityID) []entityID {
	best := lists[0]
	for _, l := range lists[1:] {
		if len(l) < len(best) {
			best = l
		}
	}
	return append([]entityID(nil), best...)
}
