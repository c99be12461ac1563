package system

import (
	"github.com/rouzeris/catroom/ecs"
	"github.com/rouzeris/catroom/ecs/component"
)

// ClickSystem turns a pointer press over a mascot's hitbox into a
// ClickRequest for the MascotSystem to consume.
type ClickSystem struct{}

func NewClickSystem() *ClickSystem {
	return &ClickSystem{}
}

func (s *ClickSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, in, ok := ecs.First(w, component.InputComponent.Kind())
	if !ok || !in.PointerPressed {
		return
	}

	var hits []ecs.Entity
	ecs.ForEach3(w, component.MascotBrainComponent.Kind(), component.TransformComponent.Kind(), component.HitboxComponent.Kind(), func(e ecs.Entity, _ *component.MascotBrain, t *component.Transform, hb *component.Hitbox) {
		if hb.Contains(*t, in.PointerX, in.PointerY) {
			hits = append(hits, e)
		}
	})
	for _, e := range hits {
		_ = ecs.Add(w, e, component.ClickRequestComponent.Kind(), &component.ClickRequest{X: in.PointerX, Y: in.PointerY})
	}
}
