package component

import "github.com/rouzeris/catroom/mascot"

// FollowerBrain attaches a keyboard-driven follower to an entity.
type FollowerBrain struct {
	Name     string
	Follower *mascot.Follower
	Step     float64
	Scale    float64
}

var FollowerBrainComponent = NewComponent[FollowerBrain]()
