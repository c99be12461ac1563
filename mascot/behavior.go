package mascot

import "strings"

//go:generate stringer -type=Behavior

// Behavior is the mascot's current top-level activity.
type Behavior int

const (
	Idle Behavior = iota
	Walking
	Sleeping
	Dancing
	Eating
	Scratching
	Boxing
	LayingDown
	Surprised
	// Deciding is transient: the machine resolves it inside the transition
	// that entered it, so it never shows up in a snapshot.
	Deciding
)

// Behaviors lists every behavior in declaration order.
var Behaviors = []Behavior{Idle, Walking, Sleeping, Dancing, Eating, Scratching, Boxing, LayingDown, Surprised, Deciding}

// ParseBehavior resolves a behavior by name, ignoring case.
func ParseBehavior(name string) (Behavior, bool) {
	name = strings.TrimSpace(name)
	for _, b := range Behaviors {
		if strings.EqualFold(b.String(), name) {
			return b, true
		}
	}
	return Idle, false
}

// Timed reports whether the behavior ends on timer expiry.
func (b Behavior) Timed() bool {
	switch b {
	case Idle, Sleeping, Dancing, Eating, Scratching, Boxing, LayingDown, Surprised:
		return true
	}
	return false
}

// MarshalText implements encoding.TextMarshaler.
func (b Behavior) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}
