package component

// Room is the on-screen rectangle mascot percentages are mapped into.
type Room struct {
	X          float64
	Y          float64
	Width      float64
	Height     float64
	Background string
}

// ToPixels maps a position in room percent to screen pixels.
func (r Room) ToPixels(px, py float64) (float64, float64) {
	return r.X + px/100*r.Width, r.Y + py/100*r.Height
}

var RoomComponent = NewComponent[Room]()
