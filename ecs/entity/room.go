package entity

import (
	"fmt"
	"math"

	"github.com/rouzeris/catroom/ecs"
	"github.com/rouzeris/catroom/ecs/component"
	"github.com/rouzeris/catroom/prefabs"
)

// BuildRoom adds the room singleton, centered on a screenW×screenH screen.
// A room larger than the screen is scaled down to fit, keeping its aspect.
func BuildRoom(w *ecs.World, spec prefabs.RoomSpec, screenW, screenH float64) (ecs.Entity, error) {
	room := FitRoom(spec, screenW, screenH)
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.RoomComponent.Kind(), &room); err != nil {
		return 0, fmt.Errorf("room: add room: %w", err)
	}
	return e, nil
}

// FitRoom computes the on-screen rectangle of spec.
func FitRoom(spec prefabs.RoomSpec, screenW, screenH float64) component.Room {
	rw, rh := spec.Width, spec.Height
	if rw <= 0 || rh <= 0 {
		rw, rh = screenW, screenH
	}
	scale := math.Min(1, math.Min(screenW/rw, screenH/rh))
	rw, rh = rw*scale, rh*scale
	return component.Room{
		X:          (screenW - rw) / 2,
		Y:          (screenH - rh) / 2,
		Width:      rw,
		Height:     rh,
		Background: spec.Background,
	}
}

// BuildInput adds the input singleton the host writes into each frame.
func BuildInput(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("input: add input: %w", err)
	}
	return e, nil
}
