package component

// Hitbox is a clickable area relative to the entity transform, in pixels.
type Hitbox struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

// Contains reports whether the pointer at px, py falls inside the box for
// an entity drawn at t.
func (h Hitbox) Contains(t Transform, px, py float64) bool {
	x := t.X + h.OffsetX
	y := t.Y + h.OffsetY
	return px >= x && px < x+h.Width && py >= y && py < y+h.Height
}

var HitboxComponent = NewComponent[Hitbox]()
