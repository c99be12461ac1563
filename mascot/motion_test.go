package mascot

import (
	"math"
	"testing"
)

func TestWalkDirection(t *testing.T) {
	cases := []struct {
		name      string
		x, target float64
		want      Direction
	}{
		{"target_right", 10, 20, Direction{Animation: AnimWalkRight, FacingRight: true}},
		{"target_left", 20, 10, Direction{Animation: AnimWalkLeft, FacingRight: false}},
		{"tie_faces_left", 20, 20, Direction{Animation: AnimWalkLeft, FacingRight: false}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := WalkDirection(c.x, c.target); got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}

func walkTicks(t *testing.T, in Integrator, from, to Point) int {
	t.Helper()
	start := math.Hypot(to.X-from.X, to.Y-from.Y)
	pos := from
	for n := 1; n <= 100000; n++ {
		prev := math.Hypot(to.X-pos.X, to.Y-pos.Y)
		next, arrived := in.Step(pos, to)
		if arrived {
			if next != to {
				t.Fatalf("arrival must snap to target, got %+v", next)
			}
			return n
		}
		remaining := math.Hypot(to.X-next.X, to.Y-next.Y)
		if remaining >= prev {
			t.Fatalf("tick %d did not close distance: %v -> %v", n, prev, remaining)
		}
		if math.Hypot(next.X-from.X, next.Y-from.Y) > start {
			t.Fatalf("tick %d overshot target", n)
		}
		pos = next
	}
	t.Fatalf("never arrived")
	return 0
}

func TestIntegratorExactTicks(t *testing.T) {
	in := Integrator{Speed: 0.35, Tolerance: 0}
	got := walkTicks(t, in, Point{X: 10, Y: 50}, Point{X: 50, Y: 50})
	if want := int(math.Ceil(40 / 0.35)); got != want {
		t.Fatalf("expected %d ticks, got %d", want, got)
	}
}

func TestIntegratorToleranceBound(t *testing.T) {
	cases := []struct {
		name     string
		from, to Point
	}{
		{"horizontal", Point{X: 10, Y: 50}, Point{X: 50, Y: 50}},
		{"diagonal", Point{X: 15, Y: 35}, Point{X: 39, Y: 67}},
		{"leftward", Point{X: 75, Y: 72}, Point{X: 15, Y: 40}},
		{"short", Point{X: 40, Y: 40}, Point{X: 41.5, Y: 40}},
	}
	in := Integrator{Speed: 0.35, Tolerance: 1.0}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := math.Hypot(c.to.X-c.from.X, c.to.Y-c.from.Y)
			lo := int(math.Ceil((d - in.Tolerance) / in.Speed))
			hi := int(math.Ceil(d / in.Speed))
			got := walkTicks(t, in, c.from, c.to)
			if got < lo || got > hi {
				t.Fatalf("expected ticks in [%d,%d], got %d", lo, hi, got)
			}
		})
	}
}

func TestIntegratorAlreadyThere(t *testing.T) {
	in := Integrator{Speed: 0.35, Tolerance: 1.0}
	p := Point{X: 30, Y: 30}
	next, arrived := in.Step(p, Point{X: 30.5, Y: 30})
	if !arrived || next != (Point{X: 30.5, Y: 30}) {
		t.Fatalf("expected snap within tolerance, got %+v arrived=%v", next, arrived)
	}
	next, arrived = in.Step(p, p)
	if !arrived || next != p {
		t.Fatalf("expected zero-length walk to arrive, got %+v arrived=%v", next, arrived)
	}
}
