package system

import (
	"path"

	"github.com/rouzeris/catroom/ecs"
	"github.com/rouzeris/catroom/ecs/component"
)

// MascotSystem drives every mounted mascot one fixed step per frame and
// copies its snapshot into the entity's Transform and Sprite.
type MascotSystem struct{}

func NewMascotSystem() *MascotSystem {
	return &MascotSystem{}
}

func (s *MascotSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	room := component.Room{Width: 100, Height: 100}
	if _, r, ok := ecs.First(w, component.RoomComponent.Kind()); ok {
		room = *r
	}
	decide := false
	if _, in, ok := ecs.First(w, component.InputComponent.Kind()); ok {
		decide = in.Decide
	}

	ecs.ForEach3(w, component.MascotBrainComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, brain *component.MascotBrain, t *component.Transform, sprite *component.Sprite) {
		m := brain.Mascot
		if m == nil || m.Closed() {
			return
		}

		if _, ok := ecs.Get(w, e, component.ClickRequestComponent.Kind()); ok {
			m.Click()
			ecs.Remove(w, e, component.ClickRequestComponent.Kind())
		}
		if decide {
			m.Decide()
		}
		m.Tick(brain.Step)

		snap := m.Snapshot()
		sprite.Image = path.Join(brain.Sheet, snap.AnimationKey)
		sprite.Animation = snap.AnimationKey
		sprite.Frame = snap.FrameIndex
		// walk strips already face the right way
		sprite.FacingLeft = false

		scale := brain.Scale
		if scale <= 0 {
			scale = 1
		}
		x, y := room.ToPixels(snap.X, snap.Y)
		t.ScaleX, t.ScaleY = scale, scale
		t.X = x - float64(sprite.Sheet.FrameWidth)*scale/2
		t.Y = y - float64(sprite.Sheet.FrameHeight)*scale
	})
}
