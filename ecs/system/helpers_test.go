package system

import (
	"testing"

	"github.com/rouzeris/catroom/ecs"
	"github.com/rouzeris/catroom/ecs/component"
	"github.com/rouzeris/catroom/mascot"
)

func newInput(t *testing.T, w *ecs.World, in component.Input) *component.Input {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &in); err != nil {
		t.Fatal(err)
	}
	_, got, _ := ecs.First(w, component.InputComponent.Kind())
	return got
}

func newRoom(t *testing.T, w *ecs.World, room component.Room) {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.RoomComponent.Kind(), &room); err != nil {
		t.Fatal(err)
	}
}

func newMascotEntity(t *testing.T, w *ecs.World, cfg mascot.Config, opts ...mascot.MachineOption) (ecs.Entity, *mascot.Mascot) {
	t.Helper()
	m, err := mascot.New(cfg, mascot.DefaultCatalog(), opts...)
	if err != nil {
		t.Fatalf("mascot.New: %v", err)
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.MascotBrainComponent.Kind(), &component.MascotBrain{Name: "cat", Mascot: m, Step: 16, Scale: 3, Sheet: "sprites/cat"}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		t.Fatal(err)
	}
	sprite := &component.Sprite{Sheet: component.SpriteSheet{FrameWidth: 32, FrameHeight: 32}}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), sprite); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.HitboxComponent.Kind(), &component.Hitbox{Width: 96, Height: 96}); err != nil {
		t.Fatal(err)
	}
	return e, m
}
