package mascot

import (
	"fmt"
	"math"
	"slices"
)

// Point is a position in room-relative percentage coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect bounds the area random walk targets are drawn from.
type Rect struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Guard fires with probability Weight when the machine is deciding.
type Guard struct {
	Behavior Behavior
	Weight   float64
}

// Activity is the entry data of a timed behavior.
type Activity struct {
	Animation string
	Duration  Range
}

// Config holds the tunables of one mascot.
type Config struct {
	Start     Point
	WalkArea  Rect
	Speed     float64 // percentage units per tick
	Tolerance float64 // arrival distance

	IdleAnimations []string
	IdleDuration   Range

	WalkRightAnimation string
	WalkLeftAnimation  string

	// Guards are evaluated in order; the first one to fire wins.
	Guards     []Guard
	Activities map[Behavior]Activity
}

// DefaultConfig returns the cat's standard tuning.
func DefaultConfig() Config {
	return Config{
		Start:     Point{X: 45, Y: 55},
		WalkArea:  Rect{MinX: 15, MaxX: 75, MinY: 35, MaxY: 72},
		Speed:     0.35,
		Tolerance: 1.0,

		IdleAnimations: []string{AnimIdle, AnimIdle, AnimSitting, AnimWaiting, AnimSleepy},
		IdleDuration:   Range{Min: 3000, Max: 6000},

		WalkRightAnimation: AnimWalkRight,
		WalkLeftAnimation:  AnimWalkLeft,

		Guards: []Guard{
			{Behavior: Walking, Weight: 0.35},
			{Behavior: Sleeping, Weight: 0.12},
			{Behavior: Dancing, Weight: 0.10},
			{Behavior: Eating, Weight: 0.10},
			{Behavior: Scratching, Weight: 0.10},
			{Behavior: Boxing, Weight: 0.08},
			{Behavior: LayingDown, Weight: 0.10},
		},
		Activities: map[Behavior]Activity{
			Sleeping:   {Animation: AnimSleep, Duration: Range{Min: 6000, Max: 12000}},
			Dancing:    {Animation: AnimDance, Duration: Range{Min: 2000, Max: 4000}},
			Eating:     {Animation: AnimEatingFull, Duration: Range{Min: 3000, Max: 5000}},
			Scratching: {Animation: AnimScratching, Duration: Range{Min: 2000, Max: 4000}},
			Boxing:     {Animation: AnimBox2, Duration: Range{Min: 4000, Max: 8000}},
			LayingDown: {Animation: AnimLayDown, Duration: Range{Min: 4000, Max: 8000}},
			Surprised:  {Animation: AnimSurprised, Duration: Range{Min: 1000, Max: 2000}},
		},
	}
}

// AnimationKeys returns every animation key the machine can select.
func (c Config) AnimationKeys() []string {
	keys := append([]string(nil), c.IdleAnimations...)
	keys = append(keys, c.WalkRightAnimation, c.WalkLeftAnimation)
	for _, b := range Behaviors {
		if act, ok := c.Activities[b]; ok {
			keys = append(keys, act.Animation)
		}
	}
	slices.Sort(keys)
	return slices.Compact(keys)
}

// Validate checks the config is internally consistent and that every
// animation it can select exists in cat.
func (c Config) Validate(cat Catalog) error {
	if err := cat.Validate(); err != nil {
		return err
	}
	if !(c.WalkArea.MinX <= c.WalkArea.MaxX && c.WalkArea.MinY <= c.WalkArea.MaxY) {
		return fmt.Errorf("%w: walk area %+v is inverted", ErrInvalidConfig, c.WalkArea)
	}
	if !(c.Speed > 0) {
		return fmt.Errorf("%w: speed must be positive, got %v", ErrInvalidConfig, c.Speed)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("%w: negative tolerance %v", ErrInvalidConfig, c.Tolerance)
	}
	if len(c.IdleAnimations) == 0 {
		return fmt.Errorf("%w: no idle animations", ErrInvalidConfig)
	}
	if err := validateRange("idle", c.IdleDuration); err != nil {
		return err
	}
	if _, ok := c.Activities[Surprised]; !ok {
		return fmt.Errorf("%w: missing %s activity", ErrInvalidConfig, Surprised)
	}
	for _, g := range c.Guards {
		if g.Behavior == Deciding || g.Behavior == Surprised {
			return fmt.Errorf("%w: %s cannot be chosen by a guard", ErrInvalidConfig, g.Behavior)
		}
		if g.Behavior != Idle && g.Behavior != Walking {
			if _, ok := c.Activities[g.Behavior]; !ok {
				return fmt.Errorf("%w: guard for %s has no activity", ErrInvalidConfig, g.Behavior)
			}
		}
		if !(g.Weight >= 0 && g.Weight <= 1) {
			return fmt.Errorf("%w: guard weight %v for %s outside [0,1]", ErrInvalidConfig, g.Weight, g.Behavior)
		}
	}
	for b, act := range c.Activities {
		if !b.Timed() || b == Idle {
			return fmt.Errorf("%w: %s cannot be an activity", ErrInvalidConfig, b)
		}
		if err := validateRange(b.String(), act.Duration); err != nil {
			return err
		}
	}
	for _, key := range c.AnimationKeys() {
		if _, err := cat.Lookup(key); err != nil {
			return err
		}
	}
	return nil
}

func validateRange(name string, r Range) error {
	// written so NaN fails too
	if !(r.Min >= 0 && r.Max >= r.Min) || math.IsInf(r.Max, 1) {
		return fmt.Errorf("%w: %s duration [%v, %v) is invalid", ErrInvalidConfig, name, r.Min, r.Max)
	}
	return nil
}
