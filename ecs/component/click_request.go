package component

// ClickRequest is a one-shot signal asking the MascotSystem to surprise the
// mascot. Systems add it and the MascotSystem removes it once consumed.
type ClickRequest struct {
	X float64
	Y float64
}

var ClickRequestComponent = NewComponent[ClickRequest]()
