package render

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rouzeris/catroom/ecs"
	"github.com/rouzeris/catroom/ecs/component"
	"golang.org/x/image/colornames"
)

// RenderSystem draws the room and every sprite in layer order. A sprite
// whose sheet is missing is drawn as a labelled placeholder box.
type RenderSystem struct {
	Debug bool
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{Debug: debug}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	screen.Fill(colornames.Antiquewhite)
	if _, room, ok := ecs.First(w, component.RoomComponent.Kind()); ok {
		r.drawRoom(screen, room)
	}

	type drawable struct {
		e     ecs.Entity
		layer int
	}
	var items []drawable
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.Transform, _ *component.Sprite) {
		layer := 0
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer = l.Index
		}
		items = append(items, drawable{e: e, layer: layer})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	for _, it := range items {
		t, _ := ecs.Get(w, it.e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, it.e, component.SpriteComponent.Kind())
		r.drawSprite(screen, t, s)
	}
}

func (r *RenderSystem) drawRoom(screen *ebiten.Image, room *component.Room) {
	if room.Background != "" {
		if bg, err := LoadImage(room.Background); err == nil {
			op := &ebiten.DrawImageOptions{}
			b := bg.Bounds()
			op.GeoM.Scale(room.Width/float64(b.Dx()), room.Height/float64(b.Dy()))
			op.GeoM.Translate(room.X, room.Y)
			op.Filter = ebiten.FilterNearest
			screen.DrawImage(bg, op)
			return
		}
	}
	vector.FillRect(screen, float32(room.X), float32(room.Y), float32(room.Width), float32(room.Height), colornames.Wheat, false)
	vector.StrokeRect(screen, float32(room.X), float32(room.Y), float32(room.Width), float32(room.Height), 2, colornames.Saddlebrown, false)
}

func (r *RenderSystem) drawSprite(screen *ebiten.Image, t *component.Transform, s *component.Sprite) {
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	fw := float64(s.Sheet.FrameWidth)
	fh := float64(s.Sheet.FrameHeight)

	sheet, err := LoadImage(s.Image)
	if err != nil {
		r.drawPlaceholder(screen, t.X, t.Y, fw*sx, fh*sy, s)
		return
	}

	rect := s.Sheet.FrameRect(s.Animation, s.Frame, s.FacingLeft)
	if !rect.In(sheet.Bounds()) {
		r.drawPlaceholder(screen, t.X, t.Y, fw*sx, fh*sy, s)
		return
	}
	frame := sheet.SubImage(rect).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(t.X, t.Y)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, op)

	if r.Debug {
		vector.StrokeRect(screen, float32(t.X), float32(t.Y), float32(fw*sx), float32(fh*sy), 1, colornames.Red, false)
	}
}

func (r *RenderSystem) drawPlaceholder(screen *ebiten.Image, x, y, w, h float64, s *component.Sprite) {
	if w <= 0 || h <= 0 {
		w, h = 32, 32
	}
	var fill color.Color = colornames.Sandybrown
	if s.FacingLeft {
		fill = colornames.Peru
	}
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), fill, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, colornames.Black, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s\n%d", s.Animation, s.Frame), int(x)+2, int(y)+2)
}
