package entity

import (
	"fmt"

	"github.com/rouzeris/catroom/ecs"
	"github.com/rouzeris/catroom/ecs/component"
	"github.com/rouzeris/catroom/ecs/system"
	"github.com/rouzeris/catroom/mascot"
	"github.com/rouzeris/catroom/prefabs"
)

const defaultStepMs = 1000.0 / 60

// BuildMascot mounts the cat described by spec. Extra machine options (a
// seeded source in tests) are applied after the prefab's own decider.
func BuildMascot(w *ecs.World, spec *prefabs.MascotSpec, opts ...mascot.MachineOption) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("mascot: nil spec")
	}
	cfg, err := spec.Config()
	if err != nil {
		return 0, fmt.Errorf("mascot %s: %w", spec.Name, err)
	}
	catalog := spec.Catalog()

	if spec.Decider != "" {
		src, err := prefabs.LoadScript(spec.Decider)
		if err != nil {
			return 0, fmt.Errorf("mascot %s: load decider: %w", spec.Name, err)
		}
		decider, err := system.NewScriptDecider(spec.Decider, src, cfg.Guards)
		if err != nil {
			return 0, fmt.Errorf("mascot %s: %w", spec.Name, err)
		}
		opts = append([]mascot.MachineOption{mascot.WithDecider(decider)}, opts...)
	}

	m, err := mascot.New(cfg, catalog, opts...)
	if err != nil {
		return 0, fmt.Errorf("mascot %s: %w", spec.Name, err)
	}

	step := spec.StepMs
	if step <= 0 {
		step = defaultStepMs
	}
	scale := spriteScale(spec.Sprite)
	sheet := sheetFromSpec(spec.Sprite)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.MascotBrainComponent.Kind(), &component.MascotBrain{
		Name:   spec.Name,
		Mascot: m,
		Step:   step,
		Scale:  scale,
		Sheet:  spec.Sprite.Sheet,
	}); err != nil {
		return 0, fmt.Errorf("mascot: add brain: %w", err)
	}
	if err := addBody(w, e, sheet, scale, spec.RenderLayer); err != nil {
		return 0, fmt.Errorf("mascot: %w", err)
	}
	if err := ecs.Add(w, e, component.HitboxComponent.Kind(), &component.Hitbox{
		Width:  float64(sheet.FrameWidth) * scale,
		Height: float64(sheet.FrameHeight) * scale,
	}); err != nil {
		return 0, fmt.Errorf("mascot: add hitbox: %w", err)
	}
	return e, nil
}

// BuildFollower mounts the keyboard-driven follower in a room of w×h px.
func BuildFollower(w *ecs.World, spec *prefabs.FollowerSpec, roomW, roomH float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("follower: nil spec")
	}
	f, err := mascot.NewFollower(spec.Config(roomW, roomH), spec.Catalog())
	if err != nil {
		return 0, fmt.Errorf("follower %s: %w", spec.Name, err)
	}

	step := spec.StepMs
	if step <= 0 {
		step = defaultStepMs
	}
	scale := spriteScale(spec.Sprite)
	sheet := sheetFromSpec(spec.Sprite)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.FollowerBrainComponent.Kind(), &component.FollowerBrain{
		Name:     spec.Name,
		Follower: f,
		Step:     step,
		Scale:    scale,
	}); err != nil {
		return 0, fmt.Errorf("follower: add brain: %w", err)
	}
	if err := addBody(w, e, sheet, scale, spec.RenderLayer); err != nil {
		return 0, fmt.Errorf("follower: %w", err)
	}
	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	sprite.Image = spec.Sprite.Sheet
	sprite.Animation = mascot.FollowIdle
	return e, nil
}

// Unmount closes the entity's mascot or follower and destroys the entity.
// Nothing ticks a closed mascot, so the host may keep painting its last
// snapshot until the entity is gone.
func Unmount(w *ecs.World, e ecs.Entity) error {
	if !ecs.IsAlive(w, e) {
		return fmt.Errorf("unmount %s: %w", e, ecs.ErrEntityNotAlive)
	}
	if brain, ok := ecs.Get(w, e, component.MascotBrainComponent.Kind()); ok && brain.Mascot != nil {
		_ = brain.Mascot.Close()
	}
	if brain, ok := ecs.Get(w, e, component.FollowerBrainComponent.Kind()); ok && brain.Follower != nil {
		_ = brain.Follower.Close()
	}
	ecs.DestroyEntity(w, e)
	return nil
}

func addBody(w *ecs.World, e ecs.Entity, sheet component.SpriteSheet, scale float64, layer int) error {
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: scale, ScaleY: scale}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Sheet: sheet}); err != nil {
		return fmt.Errorf("add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}); err != nil {
		return fmt.Errorf("add render layer: %w", err)
	}
	return nil
}

func spriteScale(s prefabs.SpriteSpec) float64 {
	if s.Scale <= 0 {
		return 1
	}
	return s.Scale
}

func sheetFromSpec(s prefabs.SpriteSpec) component.SpriteSheet {
	sheet := component.SpriteSheet{FrameWidth: s.FrameWidth, FrameHeight: s.FrameHeight}
	if len(s.Rows) > 0 {
		sheet.Rows = make(map[string]component.SheetRow, len(s.Rows))
		for key, row := range s.Rows {
			sheet.Rows[key] = component.SheetRow{Y: row.Y, YLeft: row.YLeft}
		}
	}
	return sheet
}
