package entity

import (
	"errors"
	"testing"

	"github.com/rouzeris/catroom/ecs"
	"github.com/rouzeris/catroom/ecs/component"
	"github.com/rouzeris/catroom/ecs/system"
	"github.com/rouzeris/catroom/mascot"
	"github.com/rouzeris/catroom/prefabs"
)

func TestBuildMascotFromPrefabs(t *testing.T) {
	for _, name := range []string{"cat.yaml", "cat_scripted.yaml"} {
		t.Run(name, func(t *testing.T) {
			spec, err := prefabs.LoadMascotSpec(name)
			if err != nil {
				t.Fatal(err)
			}
			w := ecs.NewWorld()
			e, err := BuildMascot(w, spec, mascot.WithRand(mascot.NewRand(5)))
			if err != nil {
				t.Fatalf("BuildMascot: %v", err)
			}

			brain, ok := ecs.Get(w, e, component.MascotBrainComponent.Kind())
			if !ok || brain.Mascot == nil {
				t.Fatalf("expected a mascot brain")
			}
			if brain.Sheet != "sprites/cat" || brain.Scale != 3 {
				t.Fatalf("unexpected brain %+v", brain)
			}
			hb, ok := ecs.Get(w, e, component.HitboxComponent.Kind())
			if !ok || hb.Width != 96 || hb.Height != 96 {
				t.Fatalf("unexpected hitbox %+v", hb)
			}
			if got := brain.Mascot.Snapshot().Behavior; got != mascot.Idle {
				t.Fatalf("expected Idle, got %s", got)
			}
			brain.Mascot.Decide()
			if got := brain.Mascot.Snapshot().Behavior; got == mascot.Deciding || got == mascot.Surprised {
				t.Fatalf("decider produced %s", got)
			}
		})
	}
}

func TestBuildMascotRejectsBadSpec(t *testing.T) {
	spec := &prefabs.MascotSpec{Name: "broken", Walk: prefabs.WalkSpec{Left: "Moonwalk"}}
	if _, err := BuildMascot(ecs.NewWorld(), spec); !errors.Is(err, mascot.ErrUnknownAnimation) {
		t.Fatalf("expected ErrUnknownAnimation, got %v", err)
	}
	spec = &prefabs.MascotSpec{Name: "noscript", Decider: "scripts/missing.tengo"}
	if _, err := BuildMascot(ecs.NewWorld(), spec); err == nil {
		t.Fatalf("expected error for missing decider script")
	}
}

func TestUnmount(t *testing.T) {
	spec, err := prefabs.LoadMascotSpec("cat.yaml")
	if err != nil {
		t.Fatal(err)
	}
	w := ecs.NewWorld()
	e, err := BuildMascot(w, spec)
	if err != nil {
		t.Fatal(err)
	}
	brain, _ := ecs.Get(w, e, component.MascotBrainComponent.Kind())
	m := brain.Mascot

	if err := Unmount(w, e); err != nil {
		t.Fatalf("Unmount: %v", err)
	}
	if !m.Closed() {
		t.Fatalf("mascot not closed")
	}
	if ecs.IsAlive(w, e) {
		t.Fatalf("entity still alive")
	}
	if err := Unmount(w, e); !errors.Is(err, ecs.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}

	// remounting in the same world starts a fresh mascot
	e2, err := BuildMascot(w, spec)
	if err != nil {
		t.Fatal(err)
	}
	system.NewMascotSystem().Update(w)
	brain2, _ := ecs.Get(w, e2, component.MascotBrainComponent.Kind())
	if brain2.Mascot == m || brain2.Mascot.Closed() {
		t.Fatalf("remount reused the closed mascot")
	}
}

func TestBuildFollower(t *testing.T) {
	spec, err := prefabs.LoadFollowerSpec("follower.yaml")
	if err != nil {
		t.Fatal(err)
	}
	w := ecs.NewWorld()
	e, err := BuildFollower(w, spec, 800, 600)
	if err != nil {
		t.Fatalf("BuildFollower: %v", err)
	}
	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !sprite.Sheet.Atlas() || sprite.Image != "sprites/catplayer/atlas.png" {
		t.Fatalf("unexpected sprite %+v", sprite)
	}
	if r := sprite.Sheet.FrameRect("attack", 2, true); r.Min.X != 64 || r.Min.Y != 480 || r.Dx() != 32 {
		t.Fatalf("unexpected attack frame rect %v", r)
	}
	if err := Unmount(w, e); err != nil {
		t.Fatal(err)
	}
	if _, err := BuildFollower(w, spec, 50, 50); !errors.Is(err, mascot.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for a tiny room, got %v", err)
	}
}

func TestFitRoom(t *testing.T) {
	cases := []struct {
		name   string
		spec   prefabs.RoomSpec
		sw, sh float64
		want   component.Room
	}{
		{"fits", prefabs.RoomSpec{Width: 512, Height: 512}, 768, 768, component.Room{X: 128, Y: 128, Width: 512, Height: 512}},
		{"scaled_down", prefabs.RoomSpec{Width: 1536, Height: 1536}, 768, 384, component.Room{X: 192, Y: 0, Width: 384, Height: 384}},
		{"defaults_to_screen", prefabs.RoomSpec{}, 640, 480, component.Room{Width: 640, Height: 480}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FitRoom(c.spec, c.sw, c.sh); got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}
