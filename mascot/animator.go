package mascot

// Animator cycles the frame index of the current animation on its own
// cadence.
type Animator struct {
	catalog Catalog
	key     string
	desc    AnimationDescriptor
	frame   int
	elapsed float64
}

// NewAnimator returns an animator playing key from frame 0.
func NewAnimator(catalog Catalog, key string) (*Animator, error) {
	desc, err := catalog.Lookup(key)
	if err != nil {
		return nil, err
	}
	return &Animator{catalog: catalog, key: key, desc: desc}, nil
}

// SetAnimation switches to key, restarting from frame 0. Setting the key
// already playing is a no-op. An unknown key leaves the animator untouched.
func (a *Animator) SetAnimation(key string) (changed bool, err error) {
	if key == a.key {
		return false, nil
	}
	desc, err := a.catalog.Lookup(key)
	if err != nil {
		return false, err
	}
	a.key = key
	a.desc = desc
	a.Reset()
	return true, nil
}

// Reset rewinds to frame 0 and restarts the frame timer.
func (a *Animator) Reset() {
	a.frame = 0
	a.elapsed = 0
}

// Tick accumulates elapsed milliseconds and advances at most one frame.
func (a *Animator) Tick(elapsedMs float64) bool {
	if !validElapsed(elapsedMs) {
		return false
	}
	a.elapsed += elapsedMs
	if a.elapsed < a.desc.FrameDuration {
		return false
	}
	a.frame = (a.frame + 1) % a.desc.FrameCount
	a.elapsed = 0
	return true
}

func (a *Animator) Key() string { return a.key }

func (a *Animator) Frame() int { return a.frame }
