package mascot

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownAnimation = errors.New("mascot: unknown animation")
	ErrInvalidConfig    = errors.New("mascot: invalid config")
	ErrClosed           = errors.New("mascot: closed")
)

// Animation keys of the cat sprite set.
const (
	AnimIdle       = "Idle"
	AnimSitting    = "Sitting"
	AnimWaiting    = "Waiting"
	AnimSleepy     = "Sleepy"
	AnimWalkRight  = "WalkRight"
	AnimWalkLeft   = "WalkLeft"
	AnimSleep      = "Sleep"
	AnimLayDown    = "LayDown"
	AnimDance      = "Dance"
	AnimExcited    = "Excited"
	AnimScratching = "Scratching"
	AnimEatingFull = "EatingFull"
	AnimSurprised  = "Surprised"
	AnimCry        = "Cry"
	AnimBox1       = "Box1"
	AnimBox2       = "Box2"
	AnimSad        = "Sad"
)

// AnimationDescriptor describes one visual frame cycle.
type AnimationDescriptor struct {
	FrameCount    int
	FrameDuration float64 // ms per frame
}

// Catalog maps animation keys to their frame cycles. It is treated as
// immutable once handed to a machine or animator.
type Catalog map[string]AnimationDescriptor

// DefaultCatalog returns the cycles of the bundled cat sprite set.
func DefaultCatalog() Catalog {
	return Catalog{
		AnimIdle:       {FrameCount: 13, FrameDuration: 150},
		AnimSitting:    {FrameCount: 6, FrameDuration: 200},
		AnimWaiting:    {FrameCount: 12, FrameDuration: 150},
		AnimSleepy:     {FrameCount: 9, FrameDuration: 250},
		AnimWalkRight:  {FrameCount: 10, FrameDuration: 100},
		AnimWalkLeft:   {FrameCount: 10, FrameDuration: 100},
		AnimSleep:      {FrameCount: 4, FrameDuration: 400},
		AnimLayDown:    {FrameCount: 8, FrameDuration: 200},
		AnimDance:      {FrameCount: 12, FrameDuration: 150},
		AnimExcited:    {FrameCount: 12, FrameDuration: 120},
		AnimScratching: {FrameCount: 12, FrameDuration: 120},
		AnimEatingFull: {FrameCount: 15, FrameDuration: 150},
		AnimSurprised:  {FrameCount: 4, FrameDuration: 200},
		AnimCry:        {FrameCount: 4, FrameDuration: 250},
		AnimBox1:       {FrameCount: 4, FrameDuration: 300},
		AnimBox2:       {FrameCount: 12, FrameDuration: 200},
		AnimSad:        {FrameCount: 9, FrameDuration: 200},
	}
}

// Lookup returns the descriptor for key or an ErrUnknownAnimation error.
func (c Catalog) Lookup(key string) (AnimationDescriptor, error) {
	d, ok := c[key]
	if !ok {
		return AnimationDescriptor{}, fmt.Errorf("%w: %q", ErrUnknownAnimation, key)
	}
	return d, nil
}

func (c Catalog) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// Keys returns the catalog keys sorted by name.
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks every descriptor has at least one frame and a positive
// frame duration.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: empty catalog", ErrInvalidConfig)
	}
	for _, key := range c.Keys() {
		d := c[key]
		if d.FrameCount < 1 {
			return fmt.Errorf("%w: animation %q has %d frames", ErrInvalidConfig, key, d.FrameCount)
		}
		if !(d.FrameDuration > 0) {
			return fmt.Errorf("%w: animation %q has frame duration %v", ErrInvalidConfig, key, d.FrameDuration)
		}
	}
	return nil
}
