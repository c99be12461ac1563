package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rouzeris/catroom/assets"
	"github.com/rouzeris/catroom/ecs/render"
	"github.com/rouzeris/catroom/mascot"
	"github.com/rouzeris/catroom/prefabs"
	"golang.org/x/image/colornames"
)

const (
	screenWidth  = 960
	screenHeight = 640
	tickMs       = 1000.0 / 60
)

// viewer previews one catalog animation at a time: an animated frame, the
// frame strip with the current frame outlined, and the playback controls.
type viewer struct {
	catalog  mascot.Catalog
	keys     []string
	selected int
	animator *mascot.Animator
	playing  bool
	speed    float64

	sheetDir string
	frameW   int
	frameH   int
	scale    float64
}

func newViewer(catalog mascot.Catalog, sprite prefabs.SpriteSpec, start string) (*viewer, error) {
	keys := catalog.Keys()
	if len(keys) == 0 {
		return nil, fmt.Errorf("empty catalog")
	}
	selected := 0
	for i, k := range keys {
		if k == start {
			selected = i
		}
	}
	animator, err := mascot.NewAnimator(catalog, keys[selected])
	if err != nil {
		return nil, err
	}
	scale := sprite.Scale
	if scale <= 0 {
		scale = 1
	}
	return &viewer{
		catalog:  catalog,
		keys:     keys,
		selected: selected,
		animator: animator,
		playing:  true,
		speed:    1,
		sheetDir: sprite.Sheet,
		frameW:   sprite.FrameWidth,
		frameH:   sprite.FrameHeight,
		scale:    scale,
	}, nil
}

func (v *viewer) selectAnimation(delta int) {
	v.selected = (v.selected + delta + len(v.keys)) % len(v.keys)
	if _, err := v.animator.SetAnimation(v.keys[v.selected]); err != nil {
		log.Printf("sprites: %v", err)
	}
}

func (v *viewer) scrub(delta int) {
	v.playing = false
	desc, err := v.catalog.Lookup(v.animator.Key())
	if err != nil {
		return
	}
	target := (v.animator.Frame() + delta + desc.FrameCount) % desc.FrameCount
	v.animator.Reset()
	for v.animator.Frame() != target {
		v.animator.Tick(desc.FrameDuration)
	}
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		v.selectAnimation(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		v.selectAnimation(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.playing = !v.playing
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		v.scrub(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		v.scrub(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		v.speed = min(4, v.speed+0.25)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		v.speed = max(0.25, v.speed-0.25)
	}
	if v.playing {
		v.animator.Tick(tickMs * v.speed)
	}
	return nil
}

// sheet returns the strip for key, or nil when it cannot be loaded.
func (v *viewer) sheet(key string) *ebiten.Image {
	img, err := render.LoadImage(path.Join(v.sheetDir, key))
	if err != nil {
		return nil
	}
	return img
}

func (v *viewer) drawFrame(screen *ebiten.Image, sheet *ebiten.Image, frame int, x, y float64, outline bool) {
	w := float64(v.frameW) * v.scale
	h := float64(v.frameH) * v.scale
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), colornames.Lightblue, false)
	if sheet != nil {
		r := image.Rect(frame*v.frameW, 0, (frame+1)*v.frameW, v.frameH)
		if r.In(sheet.Bounds()) {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(v.scale, v.scale)
			op.GeoM.Translate(x, y)
			op.Filter = ebiten.FilterNearest
			screen.DrawImage(sheet.SubImage(r).(*ebiten.Image), op)
		}
	} else {
		ebitenutil.DebugPrintAt(screen, fmt.Sprint(frame), int(x)+4, int(y)+4)
	}
	stroke := colornames.Lightgray
	if outline {
		stroke = colornames.Tomato
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, stroke, false)
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Oldlace)

	key := v.animator.Key()
	desc, err := v.catalog.Lookup(key)
	if err != nil {
		ebitenutil.DebugPrintAt(screen, err.Error(), 16, 16)
		return
	}
	sheet := v.sheet(key)

	state := "playing"
	if !v.playing {
		state = "paused"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  (%df @ %gms)  %s  speed %.2gx  frame %d/%d",
		key, desc.FrameCount, desc.FrameDuration, state, v.speed, v.animator.Frame(), desc.FrameCount-1), 16, 16)
	ebitenutil.DebugPrintAt(screen, "up/down: animation  space: play/pause  left/right: step  -/=: speed", 16, 32)

	v.drawFrame(screen, sheet, v.animator.Frame(), 16, 64, false)

	w := float64(v.frameW)*v.scale + 4
	perRow := max(1, int((screenWidth-32)/w))
	for i := 0; i < desc.FrameCount; i++ {
		x := 16 + float64(i%perRow)*w
		y := 64 + float64(v.frameH)*v.scale + 24 + float64(i/perRow)*(float64(v.frameH)*v.scale+4)
		v.drawFrame(screen, sheet, i, x, y, i == v.animator.Frame())
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	prefab := flag.String("prefab", "cat.yaml", "mascot prefab whose catalog to preview")
	start := flag.String("anim", mascot.AnimWalkRight, "animation to start on")
	assetRoot := flag.String("assets", "assets", "directory holding sprite sheets")
	prefabRoot := flag.String("prefabs", "prefabs", "directory whose prefabs override the embedded ones")
	flag.Parse()

	assets.SetRoot(*assetRoot)
	prefabs.SetRoot(*prefabRoot)

	spec, err := prefabs.LoadMascotSpec(*prefab)
	if err != nil {
		log.Fatal(err)
	}
	v, err := newViewer(spec.Catalog(), spec.Sprite, *start)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("catroom sprites")
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
