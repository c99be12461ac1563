package component

import "github.com/rouzeris/catroom/mascot"

// MascotBrain attaches a running mascot to an entity. Step is the fixed
// tick length in ms handed to the mascot each frame.
type MascotBrain struct {
	Name   string
	Mascot *mascot.Mascot
	Step   float64
	Scale  float64
	Sheet  string // image directory, one strip per animation key
}

var MascotBrainComponent = NewComponent[MascotBrain]()
