package mascot

import (
	"log"
	"sync"
)

// Snapshot is the read-only view a presentation layer paints from.
type Snapshot struct {
	X            float64  `yaml:"x"`
	Y            float64  `yaml:"y"`
	TargetX      float64  `yaml:"target_x"`
	TargetY      float64  `yaml:"target_y"`
	AnimationKey string   `yaml:"animation"`
	FrameIndex   int      `yaml:"frame"`
	FacingRight  bool     `yaml:"facing_right"`
	Behavior     Behavior `yaml:"behavior"`
}

// Mascot wires the machine, the motion integrator and the frame animator
// together behind one lock. All methods are safe to call from the host
// scheduler and from input handlers concurrently.
type Mascot struct {
	mu       sync.Mutex
	machine  *Machine
	animator *Animator
	motion   Integrator
	closed   bool
}

// New builds a mascot in its default Idle state.
func New(cfg Config, catalog Catalog, opts ...MachineOption) (*Mascot, error) {
	machine, err := NewMachine(cfg, catalog, opts...)
	if err != nil {
		return nil, err
	}
	animator, err := NewAnimator(catalog, machine.State().Animation)
	if err != nil {
		return nil, err
	}
	return &Mascot{
		machine:  machine,
		animator: animator,
		motion:   Integrator{Speed: cfg.Speed, Tolerance: cfg.Tolerance},
	}, nil
}

// Tick runs one scheduler step of elapsedMs milliseconds.
func (m *Mascot) Tick(elapsedMs float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || !validElapsed(elapsedMs) {
		return
	}

	m.machine.OnTick(elapsedMs)
	if s := m.machine.State(); s.Behavior == Walking {
		next, arrived := m.motion.Step(s.Position, s.Target)
		if arrived {
			m.machine.OnArrived(next.X, next.Y)
		} else {
			m.machine.Send(Moved{X: next.X, Y: next.Y})
		}
	}

	if m.syncAnimation() {
		return
	}
	m.animator.Tick(elapsedMs)
}

// Click delivers a pointer press.
func (m *Mascot) Click() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.machine.OnClick()
	m.syncAnimation()
}

// Decide asks an idle mascot to pick its next behavior now.
func (m *Mascot) Decide() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.machine.Decide()
	m.syncAnimation()
}

// Snapshot returns the current view. It keeps working after Close so a
// host can paint the last frame.
func (m *Mascot) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.machine.State()
	return Snapshot{
		X:            s.Position.X,
		Y:            s.Position.Y,
		TargetX:      s.Target.X,
		TargetY:      s.Target.Y,
		AnimationKey: m.animator.Key(),
		FrameIndex:   m.animator.Frame(),
		FacingRight:  s.FacingRight,
		Behavior:     s.Behavior,
	}
}

// Close detaches the mascot from its host; every later signal is dropped.
func (m *Mascot) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.closed = true
	return nil
}

func (m *Mascot) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// syncAnimation points the animator at the machine's animation and reports
// whether it restarted.
func (m *Mascot) syncAnimation() bool {
	changed, err := m.animator.SetAnimation(m.machine.State().Animation)
	if err != nil {
		log.Printf("mascot: %v", err)
		return false
	}
	return changed
}
