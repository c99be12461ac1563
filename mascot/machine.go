package mascot

import (
	"fmt"
	"log"
)

// State is the machine's full state. Machines hand out copies only.
type State struct {
	Behavior    Behavior
	Position    Point
	Target      Point
	Timer       float64 // ms left in the current timed behavior
	FacingRight bool
	Animation   string
}

// Event is a signal delivered to the machine.
type Event interface {
	event()
}

// Tick advances behavior timers by Elapsed milliseconds.
type Tick struct{ Elapsed float64 }

// Decide asks an idle mascot to pick its next behavior right away.
type Decide struct{}

// Moved records an intermediate walk position.
type Moved struct{ X, Y float64 }

// Arrived reports the end of a walk at X, Y.
type Arrived struct{ X, Y float64 }

// Click is a pointer press on the mascot.
type Click struct{}

func (Tick) event()    {}
func (Decide) event()  {}
func (Moved) event()   {}
func (Arrived) event() {}
func (Click) event()   {}

// MachineOption customizes a Machine.
type MachineOption func(*Machine)

// WithRand replaces the machine's random source.
func WithRand(rng Rand) MachineOption {
	return func(m *Machine) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithDecider replaces the weighted guards with d.
func WithDecider(d Decider) MachineOption {
	return func(m *Machine) {
		if d != nil {
			m.decider = d
		}
	}
}

// Machine is the behavior state machine of one mascot. It is not safe for
// concurrent use; Mascot serializes access.
type Machine struct {
	cfg     Config
	catalog Catalog
	rng     Rand
	decider Decider
	state   State
}

// NewMachine validates cfg against catalog and enters Idle at cfg.Start.
func NewMachine(cfg Config, catalog Catalog, opts ...MachineOption) (*Machine, error) {
	if err := cfg.Validate(catalog); err != nil {
		return nil, err
	}
	m := &Machine{
		cfg:     cfg,
		catalog: catalog,
		rng:     NewRand(0),
		decider: Guards(cfg.Guards),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.state = m.enter(State{
		Position:    cfg.Start,
		Target:      cfg.Start,
		FacingRight: true,
		Animation:   AnimIdle,
	}, Idle)
	return m, nil
}

// State returns a copy of the current state.
func (m *Machine) State() State { return m.state }

// Send delivers ev and returns the resulting state.
func (m *Machine) Send(ev Event) State {
	m.state = m.transition(m.state, ev)
	return m.state
}

// OnTick advances the active timer. Walking ignores ticks; its exit is the
// arrival signal.
func (m *Machine) OnTick(elapsedMs float64) { m.Send(Tick{Elapsed: elapsedMs}) }

// OnArrived commits the arrival position and returns to Idle. Outside
// Walking it does nothing.
func (m *Machine) OnArrived(x, y float64) { m.Send(Arrived{X: x, Y: y}) }

// OnClick forces Surprised from any state.
func (m *Machine) OnClick() { m.Send(Click{}) }

// Decide ends the current idle period immediately.
func (m *Machine) Decide() { m.Send(Decide{}) }

func (m *Machine) transition(s State, ev Event) State {
	switch ev := ev.(type) {
	case Click:
		return m.enter(s, Surprised)
	case Tick:
		if !validElapsed(ev.Elapsed) || s.Behavior == Walking {
			return s
		}
		s.Timer -= ev.Elapsed
		if s.Timer > 0 {
			return s
		}
		if s.Behavior == Idle {
			return m.decide(s)
		}
		return m.enter(s, Idle)
	case Decide:
		if s.Behavior != Idle {
			return s
		}
		return m.decide(s)
	case Moved:
		if s.Behavior != Walking {
			return s
		}
		s.Position = Point{X: ev.X, Y: ev.Y}
		return s
	case Arrived:
		if s.Behavior != Walking {
			return s
		}
		s.Position = Point{X: ev.X, Y: ev.Y}
		return m.enter(s, Idle)
	}
	return s
}

func (m *Machine) decide(s State) State {
	s.Behavior = Deciding
	next := m.decider.Decide(DecisionContext{Position: s.Position, Rand: m.rng})
	if !m.decidable(next) {
		log.Printf("mascot: decider chose %s, falling back to %s", next, Idle)
		next = Idle
	}
	return m.enter(s, next)
}

func (m *Machine) decidable(b Behavior) bool {
	switch b {
	case Idle, Walking:
		return true
	case Deciding, Surprised:
		return false
	}
	_, ok := m.cfg.Activities[b]
	return ok
}

// enter runs the entry action of b. Timers are always re-drawn and any
// walk target is dropped unless b is Walking.
func (m *Machine) enter(s State, b Behavior) State {
	s.Behavior = b
	s.Target = s.Position

	var anim string
	switch b {
	case Idle:
		anim = pick(m.rng, m.cfg.IdleAnimations)
		s.Timer = m.cfg.IdleDuration.Sample(m.rng)
	case Walking:
		area := m.cfg.WalkArea
		s.Target = Point{
			X: area.MinX + m.rng.Float64()*(area.MaxX-area.MinX),
			Y: area.MinY + m.rng.Float64()*(area.MaxY-area.MinY),
		}
		dir := walkDirection(s.Position.X, s.Target.X, m.cfg.WalkRightAnimation, m.cfg.WalkLeftAnimation)
		s.FacingRight = dir.FacingRight
		anim = dir.Animation
		s.Timer = 0
	default:
		act := m.cfg.Activities[b]
		anim = act.Animation
		s.Timer = act.Duration.Sample(m.rng)
	}

	if err := m.checkAnimation(anim); err != nil {
		log.Printf("mascot: %s: %v", b, err)
		return s
	}
	s.Animation = anim
	return s
}

func (m *Machine) checkAnimation(key string) error {
	if _, err := m.catalog.Lookup(key); err != nil {
		return fmt.Errorf("entering with animation %q: %w", key, err)
	}
	return nil
}
