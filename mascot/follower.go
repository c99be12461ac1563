package mascot

import (
	"fmt"
	"math"
	"sync"

	"github.com/jakecoffman/cp"
)

// Follower animation keys.
const (
	FollowIdle   = "idle"
	FollowWalk   = "walk"
	FollowAttack = "attack"
	FollowSleep  = "sleep"
)

// FollowerConfig tunes the top-down follower mode. Distances are pixels.
type FollowerConfig struct {
	Speed      float64 // per tick
	Width      float64 // room size
	Height     float64
	Size       float64 // sprite edge
	Attack     float64 // ms
	SleepAfter float64 // ms without movement
	MaxElapsed float64 // tick duration cap, ms
}

// DefaultFollowerConfig returns the follower tuning for a room of w×h pixels.
func DefaultFollowerConfig(w, h float64) FollowerConfig {
	return FollowerConfig{
		Speed:      3,
		Width:      w,
		Height:     h,
		Size:       96,
		Attack:     400,
		SleepAfter: 8000,
		MaxElapsed: 33,
	}
}

// DefaultFollowerCatalog returns the follower sprite cycles.
func DefaultFollowerCatalog() Catalog {
	return Catalog{
		FollowIdle:   {FrameCount: 3, FrameDuration: 200},
		FollowWalk:   {FrameCount: 3, FrameDuration: 150},
		FollowAttack: {FrameCount: 4, FrameDuration: 100},
		FollowSleep:  {FrameCount: 5, FrameDuration: 300},
	}
}

// FollowerInput is one tick of player input.
type FollowerInput struct {
	MoveX   float64 // -1, 0 or 1
	MoveY   float64
	Attack  bool
	AttackX float64 // pointer x of the attack click
}

// FollowerSnapshot is what the presentation layer paints.
type FollowerSnapshot struct {
	X            float64
	Y            float64
	AnimationKey string
	FrameIndex   int
	FacingRight  bool
}

// Follower is the keyboard-driven top-down mode. It reuses the frame
// animator and the catalog but has no behavior machine: input decides.
type Follower struct {
	mu          sync.Mutex
	cfg         FollowerConfig
	pos         cp.Vector
	facingRight bool
	animator    *Animator
	idleTimer   float64
	attackTimer float64
	closed      bool
}

// NewFollower places the follower centered at the bottom of the room.
func NewFollower(cfg FollowerConfig, catalog Catalog) (*Follower, error) {
	for _, key := range []string{FollowIdle, FollowWalk, FollowAttack, FollowSleep} {
		if _, err := catalog.Lookup(key); err != nil {
			return nil, err
		}
	}
	if !(cfg.Speed > 0) || cfg.Width < cfg.Size || cfg.Height < cfg.Size {
		return nil, fmt.Errorf("%w: follower config %+v", ErrInvalidConfig, cfg)
	}
	animator, err := NewAnimator(catalog, FollowIdle)
	if err != nil {
		return nil, err
	}
	return &Follower{
		cfg:         cfg,
		pos:         cp.Vector{X: (cfg.Width - cfg.Size) / 2, Y: math.Max(0, cfg.Height-cfg.Size-20)},
		facingRight: true,
		animator:    animator,
	}, nil
}

// Update applies one tick of input.
func (f *Follower) Update(in FollowerInput, elapsedMs float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || !validElapsed(elapsedMs) {
		return
	}
	dt := elapsedMs
	if f.cfg.MaxElapsed > 0 {
		dt = math.Min(dt, f.cfg.MaxElapsed)
	}

	if in.Attack {
		f.facingRight = in.AttackX > f.pos.X+f.cfg.Size/2
		f.attackTimer = f.cfg.Attack
		f.idleTimer = 0
		f.setAnimation(FollowAttack, true)
	}

	if f.attackTimer > 0 {
		f.attackTimer = math.Max(0, f.attackTimer-dt)
	}

	if f.attackTimer <= 0 {
		f.move(in, dt)
	}

	f.animator.Tick(dt)
}

func (f *Follower) move(in FollowerInput, dt float64) {
	dir := cp.Vector{X: sign(in.MoveX), Y: sign(in.MoveY)}
	if dir.X != 0 {
		f.facingRight = dir.X > 0
	}
	moving := dir.X != 0 || dir.Y != 0
	if moving {
		f.pos = f.pos.Add(dir.Normalize().Mult(f.cfg.Speed))
		f.pos.X = clamp(f.pos.X, 0, f.cfg.Width-f.cfg.Size)
		f.pos.Y = clamp(f.pos.Y, 0, f.cfg.Height-f.cfg.Size)
	}

	next := f.animator.Key()
	switch {
	case moving:
		next = FollowWalk
		f.idleTimer = 0
	case next == FollowSleep:
		// asleep until there is input
	default:
		f.idleTimer += dt
		next = FollowIdle
		if f.idleTimer > f.cfg.SleepAfter {
			next = FollowSleep
		}
	}
	f.setAnimation(next, false)
}

func (f *Follower) setAnimation(key string, restart bool) {
	changed, err := f.animator.SetAnimation(key)
	if err != nil {
		return
	}
	if restart && !changed {
		f.animator.Reset()
	}
}

func (f *Follower) Snapshot() FollowerSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FollowerSnapshot{
		X:            f.pos.X,
		Y:            f.pos.Y,
		AnimationKey: f.animator.Key(),
		FrameIndex:   f.animator.Frame(),
		FacingRight:  f.facingRight,
	}
}

// Resize updates the room bounds, e.g. after a window resize.
func (f *Follower) Resize(w, h float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cfg.Width = math.Max(w, f.cfg.Size)
	f.cfg.Height = math.Max(h, f.cfg.Size)
	f.pos.X = clamp(f.pos.X, 0, f.cfg.Width-f.cfg.Size)
	f.pos.Y = clamp(f.pos.Y, 0, f.cfg.Height-f.cfg.Size)
}

func (f *Follower) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	f.closed = true
	return nil
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
