package prefabs

import (
	"fmt"

	"github.com/rouzeris/catroom/mascot"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RectSpec struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// RangeSpec is a millisecond range [min, max).
type RangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type AnimationSpec struct {
	Frames     int     `yaml:"frames"`
	DurationMs float64 `yaml:"duration_ms"`
}

type SheetRowSpec struct {
	Y     int `yaml:"y"`
	YLeft int `yaml:"y_left"`
}

type SpriteSpec struct {
	// Sheet is an image directory holding one strip per animation, or a
	// single atlas image when Rows is set.
	Sheet       string                  `yaml:"sheet"`
	FrameWidth  int                     `yaml:"frame_width"`
	FrameHeight int                     `yaml:"frame_height"`
	Scale       float64                 `yaml:"scale"`
	Rows        map[string]SheetRowSpec `yaml:"rows"`
}

type RoomSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background"`
}

type IdleSpec struct {
	Animations []string  `yaml:"animations"`
	Duration   RangeSpec `yaml:"duration"`
}

type WalkSpec struct {
	Right string `yaml:"right"`
	Left  string `yaml:"left"`
}

type GuardSpec struct {
	Behavior string  `yaml:"behavior"`
	Weight   float64 `yaml:"weight"`
}

type ActivitySpec struct {
	Behavior  string    `yaml:"behavior"`
	Animation string    `yaml:"animation"`
	Duration  RangeSpec `yaml:"duration"`
}

// MascotSpec is the cat prefab. Zero fields keep the built-in tuning.
type MascotSpec struct {
	Name        string                   `yaml:"name"`
	Start       *PointSpec               `yaml:"start"`
	WalkArea    *RectSpec                `yaml:"walk_area"`
	Speed       float64                  `yaml:"speed"`
	Tolerance   *float64                 `yaml:"tolerance"`
	Idle        IdleSpec                 `yaml:"idle"`
	Walk        WalkSpec                 `yaml:"walk"`
	Guards      []GuardSpec              `yaml:"guards"`
	Activities  []ActivitySpec           `yaml:"activities"`
	Decider     string                   `yaml:"decider"`
	Animations  map[string]AnimationSpec `yaml:"animations"`
	Sprite      SpriteSpec               `yaml:"sprite"`
	RenderLayer int                      `yaml:"render_layer"`
	Room        RoomSpec                 `yaml:"room"`
	StepMs      float64                  `yaml:"step_ms"`
}

func LoadMascotSpec(name string) (*MascotSpec, error) {
	spec, err := LoadSpec[MascotSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Catalog returns the animation table of the prefab, or the default cat
// catalog when the prefab lists none.
func (s *MascotSpec) Catalog() mascot.Catalog {
	if len(s.Animations) == 0 {
		return mascot.DefaultCatalog()
	}
	return catalogFromSpec(s.Animations)
}

// Config overlays the prefab on mascot.DefaultConfig. Guards and activities
// replace the defaults wholesale when present.
func (s *MascotSpec) Config() (mascot.Config, error) {
	cfg := mascot.DefaultConfig()
	if s.Start != nil {
		cfg.Start = mascot.Point{X: s.Start.X, Y: s.Start.Y}
	}
	if s.WalkArea != nil {
		cfg.WalkArea = mascot.Rect{MinX: s.WalkArea.MinX, MaxX: s.WalkArea.MaxX, MinY: s.WalkArea.MinY, MaxY: s.WalkArea.MaxY}
	}
	if s.Speed != 0 {
		cfg.Speed = s.Speed
	}
	if s.Tolerance != nil {
		cfg.Tolerance = *s.Tolerance
	}
	if len(s.Idle.Animations) > 0 {
		cfg.IdleAnimations = append([]string(nil), s.Idle.Animations...)
	}
	if s.Idle.Duration != (RangeSpec{}) {
		cfg.IdleDuration = mascot.Range(s.Idle.Duration)
	}
	if s.Walk.Right != "" {
		cfg.WalkRightAnimation = s.Walk.Right
	}
	if s.Walk.Left != "" {
		cfg.WalkLeftAnimation = s.Walk.Left
	}

	if len(s.Guards) > 0 {
		cfg.Guards = make([]mascot.Guard, 0, len(s.Guards))
		for _, g := range s.Guards {
			b, ok := mascot.ParseBehavior(g.Behavior)
			if !ok {
				return mascot.Config{}, fmt.Errorf("%w: unknown guard behavior %q", mascot.ErrInvalidConfig, g.Behavior)
			}
			cfg.Guards = append(cfg.Guards, mascot.Guard{Behavior: b, Weight: g.Weight})
		}
	}

	if len(s.Activities) > 0 {
		cfg.Activities = make(map[mascot.Behavior]mascot.Activity, len(s.Activities))
		for _, a := range s.Activities {
			b, ok := mascot.ParseBehavior(a.Behavior)
			if !ok {
				return mascot.Config{}, fmt.Errorf("%w: unknown activity behavior %q", mascot.ErrInvalidConfig, a.Behavior)
			}
			if _, dup := cfg.Activities[b]; dup {
				return mascot.Config{}, fmt.Errorf("%w: duplicate activity %s", mascot.ErrInvalidConfig, b)
			}
			cfg.Activities[b] = mascot.Activity{Animation: a.Animation, Duration: mascot.Range(a.Duration)}
		}
	}

	return cfg, nil
}

// FollowerSpec is the top-down follower prefab.
type FollowerSpec struct {
	Name         string                   `yaml:"name"`
	Speed        float64                  `yaml:"speed"`
	AttackMs     float64                  `yaml:"attack_ms"`
	SleepAfterMs float64                  `yaml:"sleep_after_ms"`
	MaxElapsedMs float64                  `yaml:"max_elapsed_ms"`
	Animations   map[string]AnimationSpec `yaml:"animations"`
	Sprite       SpriteSpec               `yaml:"sprite"`
	RenderLayer  int                      `yaml:"render_layer"`
	StepMs       float64                  `yaml:"step_ms"`
}

func LoadFollowerSpec(name string) (*FollowerSpec, error) {
	spec, err := LoadSpec[FollowerSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *FollowerSpec) Catalog() mascot.Catalog {
	if len(s.Animations) == 0 {
		return mascot.DefaultFollowerCatalog()
	}
	return catalogFromSpec(s.Animations)
}

// Config returns the follower tuning for a room of w×h pixels. The drawn
// sprite size comes from the sheet frame size and scale.
func (s *FollowerSpec) Config(w, h float64) mascot.FollowerConfig {
	cfg := mascot.DefaultFollowerConfig(w, h)
	if s.Speed != 0 {
		cfg.Speed = s.Speed
	}
	if s.AttackMs != 0 {
		cfg.Attack = s.AttackMs
	}
	if s.SleepAfterMs != 0 {
		cfg.SleepAfter = s.SleepAfterMs
	}
	if s.MaxElapsedMs != 0 {
		cfg.MaxElapsed = s.MaxElapsedMs
	}
	if s.Sprite.FrameWidth > 0 {
		scale := s.Sprite.Scale
		if scale <= 0 {
			scale = 1
		}
		cfg.Size = float64(s.Sprite.FrameWidth) * scale
	}
	return cfg
}

func catalogFromSpec(anims map[string]AnimationSpec) mascot.Catalog {
	cat := make(mascot.Catalog, len(anims))
	for key, a := range anims {
		cat[key] = mascot.AnimationDescriptor{FrameCount: a.Frames, FrameDuration: a.DurationMs}
	}
	return cat
}
