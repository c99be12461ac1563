package ecs

import (
	"errors"
	"slices"
	"testing"

	"github.com/rouzeris/catroom/ecs/component"
)

func ptr[T any](v T) *T { return &v }

func TestEntityPacking(t *testing.T) {
	cases := []struct {
		name string
		id   entityID
		gen  generation
		str  string
	}{
		{"first_slot", 1, 0, "1v0"},
		{"reused_slot", 7, 3, "7v3"},
		{"high_bits", 0xffffffff, 0xffffffff, "4294967295v4294967295"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := makeEntity(c.id, c.gen)
			if e.id() != c.id || e.generation() != c.gen {
				t.Fatalf("unpacked %d/%d, want %d/%d", e.id(), e.generation(), c.id, c.gen)
			}
			if e.String() != c.str {
				t.Fatalf("String() = %q, want %q", e.String(), c.str)
			}
			if !e.Valid() {
				t.Fatalf("expected valid entity")
			}
		})
	}
	if Entity(0).Valid() {
		t.Fatalf("zero entity must be invalid")
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, k, ptr(1)); err != nil {
		t.Fatal(err)
	}
	if !DestroyEntity(w, old) {
		t.Fatalf("destroy of live entity reported false")
	}
	reused := CreateEntity(w)
	if reused.id() != old.id() || reused.generation() == old.generation() {
		t.Fatalf("expected slot %d reused under a new generation, got %s (old %s)", old.id(), reused, old)
	}
	if err := Add(w, reused, k, ptr(2)); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"is_alive", func(t *testing.T) {
			if IsAlive(w, old) {
				t.Fatalf("stale handle reported alive")
			}
		}},
		{"get", func(t *testing.T) {
			if v, ok := Get(w, old, k); ok {
				t.Fatalf("stale Get returned %d", *v)
			}
		}},
		{"has", func(t *testing.T) {
			if Has(w, old, k) {
				t.Fatalf("stale Has reported true")
			}
		}},
		{"add", func(t *testing.T) {
			if err := Add(w, old, k, ptr(3)); !errors.Is(err, ErrEntityNotAlive) {
				t.Fatalf("expected ErrEntityNotAlive, got %v", err)
			}
		}},
		{"remove", func(t *testing.T) {
			if Remove(w, old, k) {
				t.Fatalf("stale Remove reported true")
			}
		}},
		{"destroy", func(t *testing.T) {
			if DestroyEntity(w, old) {
				t.Fatalf("stale DestroyEntity reported true")
			}
		}},
	}
	for _, c := range cases {
		t.Run(c.name, c.run)
	}

	// none of the stale calls may touch the slot's new owner
	if v, ok := Get(w, reused, k); !ok || *v != 2 {
		t.Fatalf("reused entity lost its component: %v %v", v, ok)
	}
}

func TestDestroyDropsComponents(t *testing.T) {
	w := NewWorld()
	ki := component.NewComponentKind[int]()
	ks := component.NewComponentKind[string]()

	e := CreateEntity(w)
	_ = Add(w, e, ki, ptr(1))
	_ = Add(w, e, ks, ptr("x"))
	DestroyEntity(w, e)

	reused := CreateEntity(w)
	if Has(w, reused, ki) || Has(w, reused, ks) {
		t.Fatalf("components leaked into reused slot %s", reused)
	}
}

func TestEntitiesOrderAfterFrees(t *testing.T) {
	w := NewWorld()
	a := CreateEntity(w)
	b := CreateEntity(w)
	c := CreateEntity(w)
	d := CreateEntity(w)

	DestroyEntity(w, b)
	DestroyEntity(w, d)
	if got, want := Entities(w), []Entity{a, c}; !slices.Equal(got, want) {
		t.Fatalf("after frees got %v, want %v", got, want)
	}

	// the free list is LIFO: d's slot comes back first
	e := CreateEntity(w)
	f := CreateEntity(w)
	if e.id() != d.id() || f.id() != b.id() {
		t.Fatalf("expected slots %d then %d, got %d then %d", d.id(), b.id(), e.id(), f.id())
	}
	if got, want := Entities(w), []Entity{a, f, c, e}; !slices.Equal(got, want) {
		t.Fatalf("entities listed in slot order: got %v, want %v", got, want)
	}

	g := CreateEntity(w)
	if g.id() != 5 {
		t.Fatalf("expected a fresh slot 5 once the free list is empty, got %d", g.id())
	}
	if Entities(nil) != nil {
		t.Fatalf("expected nil for a nil world")
	}
}

func TestSwapRemoveKeepsOthers(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	ents := make([]Entity, 4)
	for i := range ents {
		ents[i] = CreateEntity(w)
		_ = Add(w, ents[i], k, ptr(i*10))
	}
	if !Remove(w, ents[1], k) {
		t.Fatalf("remove reported false")
	}
	if Remove(w, ents[1], k) {
		t.Fatalf("second remove reported true")
	}
	for i, e := range ents {
		v, ok := Get(w, e, k)
		if i == 1 {
			if ok {
				t.Fatalf("removed component still present")
			}
			continue
		}
		if !ok || *v != i*10 {
			t.Fatalf("entity %d: got %v %v, want %d", i, v, ok, i*10)
		}
	}

	// replacing keeps a single entry
	_ = Add(w, ents[0], k, ptr(99))
	n := 0
	ForEach(w, k, func(Entity, *int) { n++ })
	if n != 3 {
		t.Fatalf("expected 3 stored values, got %d", n)
	}
}

func TestForEachRemovingVisited(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	for i := 0; i < 5; i++ {
		_ = Add(w, CreateEntity(w), k, ptr(i))
	}

	seen := map[int]bool{}
	ForEach(w, k, func(e Entity, v *int) {
		seen[*v] = true
		Remove(w, e, k)
	})
	if len(seen) != 5 {
		t.Fatalf("expected every value once, saw %v", seen)
	}
	if _, _, ok := First(w, k); ok {
		t.Fatalf("expected empty store")
	}
}

func TestForEach2Intersection(t *testing.T) {
	w := NewWorld()
	ki := component.NewComponentKind[int]()
	ks := component.NewComponentKind[string]()

	var both []Entity
	for i := 0; i < 6; i++ {
		e := CreateEntity(w)
		_ = Add(w, e, ki, ptr(i))
		if i%3 == 0 {
			_ = Add(w, e, ks, ptr("s"))
			both = append(both, e)
		}
	}

	var got []Entity
	ForEach2(w, ki, ks, func(e Entity, _ *int, _ *string) { got = append(got, e) })
	if !slices.Equal(got, both) {
		t.Fatalf("got %v, want %v", got, both)
	}

	ForEach2(w, ki, component.NewComponentKind[float64](), func(Entity, *int, *float64) {
		t.Fatalf("empty store must visit nothing")
	})
}

func TestForEach3SurvivesMutation(t *testing.T) {
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()
	kc := component.NewComponentKind[bool]()

	setup := func() (*World, []Entity) {
		w := NewWorld()
		ents := make([]Entity, 4)
		for i := range ents {
			ents[i] = CreateEntity(w)
			_ = Add(w, ents[i], ka, ptr(i))
			_ = Add(w, ents[i], kb, ptr("b"))
			_ = Add(w, ents[i], kc, ptr(true))
		}
		return w, ents
	}

	cases := []struct {
		name    string
		mutate  func(w *World, ents []Entity, e Entity)
		visited []int
		left    int
	}{
		{
			name:    "remove_visited",
			mutate:  func(w *World, _ []Entity, e Entity) { Remove(w, e, kb) },
			visited: []int{0, 1, 2, 3},
			left:    0,
		},
		{
			name: "remove_later",
			mutate: func(w *World, ents []Entity, e Entity) {
				if e == ents[0] {
					Remove(w, ents[2], kc)
				}
			},
			visited: []int{0, 1, 3},
			left:    4,
		},
		{
			name: "destroy_later",
			mutate: func(w *World, ents []Entity, e Entity) {
				if e == ents[1] {
					DestroyEntity(w, ents[3])
				}
			},
			visited: []int{0, 1, 2},
			left:    3,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, ents := setup()
			var visited []int
			ForEach3(w, ka, kb, kc, func(e Entity, a *int, _ *string, _ *bool) {
				visited = append(visited, *a)
				c.mutate(w, ents, e)
			})
			if !slices.Equal(visited, c.visited) {
				t.Fatalf("visited %v, want %v", visited, c.visited)
			}
			left := 0
			ForEach(w, kb, func(Entity, *string) { left++ })
			if left != c.left {
				t.Fatalf("expected %d strings left, got %d", c.left, left)
			}
		})
	}
}

func TestFirst(t *testing.T) {
	k := component.NewComponentKind[string]()

	cases := []struct {
		name  string
		world func() *World
		want  string
		ok    bool
	}{
		{"nil_world", func() *World { return nil }, "", false},
		{"no_store", NewWorld, "", false},
		{"emptied_store", func() *World {
			w := NewWorld()
			e := CreateEntity(w)
			_ = Add(w, e, k, ptr("gone"))
			Remove(w, e, k)
			return w
		}, "", false},
		{"singleton", func() *World {
			w := NewWorld()
			_ = Add(w, CreateEntity(w), k, ptr("room"))
			return w
		}, "room", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := c.world()
			e, v, ok := First(w, k)
			if ok != c.ok {
				t.Fatalf("ok = %v, want %v", ok, c.ok)
			}
			if !ok {
				return
			}
			if *v != c.want || !IsAlive(w, e) {
				t.Fatalf("got %q on %s", *v, e)
			}
		})
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	k := component.NewComponentKind[int]()

	cases := []struct {
		name string
		err  error
		want error
	}{
		{"nil_value", Add(w, e, k, nil), component.ErrNilComponent},
		{"zero_kind", Add(w, e, component.ComponentKind[int]{}, ptr(1)), component.ErrInvalidComponentKind},
		{"nil_world", Add(nil, e, k, ptr(1)), ErrEntityNotAlive},
		{"zero_entity", Add(w, 0, k, ptr(1)), ErrEntityNotAlive},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !errors.Is(c.err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, c.err)
			}
		})
	}
}

type recordSystem struct {
	name string
	log  *[]string
}

func (r recordSystem) Update(*World) { *r.log = append(*r.log, r.name) }

func TestSchedulerOrder(t *testing.T) {
	var log []string
	s := NewScheduler(recordSystem{"a", &log}, nil, recordSystem{"b", &log})
	s.Add(recordSystem{"c", &log})
	s.Add(nil)
	s.Update(NewWorld())
	if !slices.Equal(log, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected order %v", log)
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("expected 3 systems, got %d", len(s.Systems()))
	}
}
