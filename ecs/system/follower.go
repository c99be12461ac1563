package system

import (
	"github.com/rouzeris/catroom/ecs"
	"github.com/rouzeris/catroom/ecs/component"
	"github.com/rouzeris/catroom/mascot"
)

// FollowerSystem feeds player input to keyboard-driven followers. A
// pointer press is an attack toward the pointer.
type FollowerSystem struct {
	lastW, lastH float64
}

func NewFollowerSystem() *FollowerSystem {
	return &FollowerSystem{}
}

func (s *FollowerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	var in component.Input
	if _, input, ok := ecs.First(w, component.InputComponent.Kind()); ok {
		in = *input
	}
	_, room, hasRoom := ecs.First(w, component.RoomComponent.Kind())
	resized := hasRoom && (room.Width != s.lastW || room.Height != s.lastH)
	if hasRoom {
		s.lastW, s.lastH = room.Width, room.Height
	}
	originX, originY := 0.0, 0.0
	if hasRoom {
		originX, originY = room.X, room.Y
	}

	ecs.ForEach3(w, component.FollowerBrainComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, brain *component.FollowerBrain, t *component.Transform, sprite *component.Sprite) {
		f := brain.Follower
		if f == nil {
			return
		}
		if resized {
			f.Resize(room.Width, room.Height)
		}

		f.Update(mascot.FollowerInput{
			MoveX:   in.MoveX,
			MoveY:   in.MoveY,
			Attack:  in.PointerPressed,
			AttackX: in.PointerX - originX,
		}, brain.Step)

		snap := f.Snapshot()
		scale := brain.Scale
		if scale <= 0 {
			scale = 1
		}
		t.X = originX + snap.X
		t.Y = originY + snap.Y
		t.ScaleX, t.ScaleY = scale, scale

		sprite.Animation = snap.AnimationKey
		sprite.Frame = snap.FrameIndex
		sprite.FacingLeft = !snap.FacingRight
	})
}
