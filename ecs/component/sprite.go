package component

import "image"

// Sprite names the sheet image and frame a renderer should draw. Image is a
// registry key, not a loaded image, so systems stay headless.
type Sprite struct {
	Image      string
	Animation  string
	Frame      int
	FacingLeft bool
	Sheet      SpriteSheet
}

// SheetRow locates an animation inside an atlas: one row per facing.
type SheetRow struct {
	Y     int
	YLeft int
}

// SpriteSheet describes how frames are cut out of an image. Without Rows
// every animation is its own horizontal strip starting at y=0.
type SpriteSheet struct {
	FrameWidth  int
	FrameHeight int
	Rows        map[string]SheetRow
}

// FrameRect returns the source rectangle of frame in animation.
func (s SpriteSheet) FrameRect(animation string, frame int, facingLeft bool) image.Rectangle {
	if frame < 0 {
		frame = 0
	}
	x := frame * s.FrameWidth
	y := 0
	if row, ok := s.Rows[animation]; ok {
		y = row.Y
		if facingLeft {
			y = row.YLeft
		}
	}
	return image.Rect(x, y, x+s.FrameWidth, y+s.FrameHeight)
}

// Atlas reports whether the sheet packs all animations into one image.
func (s SpriteSheet) Atlas() bool {
	return len(s.Rows) > 0
}

var SpriteComponent = NewComponent[Sprite]()
