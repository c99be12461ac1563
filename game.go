package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rouzeris/catroom/common"
	"github.com/rouzeris/catroom/ecs"
	"github.com/rouzeris/catroom/ecs/component"
	"github.com/rouzeris/catroom/ecs/entity"
	"github.com/rouzeris/catroom/ecs/render"
	"github.com/rouzeris/catroom/ecs/system"
	"github.com/rouzeris/catroom/mascot"
	"github.com/rouzeris/catroom/prefabs"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"
)

const (
	modeRoom     = "room"
	modeFollower = "follower"
)

type Options struct {
	Mode   string
	Prefab string
	Debug  bool
	Seed   uint64
	Watch  bool
}

type Game struct {
	opts Options

	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *render.RenderSystem
	ui        *ebitenui.UI

	subject   ecs.Entity
	watcher   *prefabs.Watcher
	clipboard bool

	paused bool
	status string
	frames int
}

func NewGame(opts Options) (*Game, error) {
	if opts.Prefab == "" {
		opts.Prefab = "cat.yaml"
		if opts.Mode == modeFollower {
			opts.Prefab = "follower.yaml"
		}
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}

	g := &Game{
		opts:   opts,
		world:  ecs.NewWorld(),
		render: render.NewRenderSystem(opts.Debug),
	}

	switch opts.Mode {
	case modeRoom:
		g.scheduler = ecs.NewScheduler(render.NewInputSystem(), system.NewClickSystem(), system.NewMascotSystem())
	case modeFollower:
		g.scheduler = ecs.NewScheduler(render.NewInputSystem(), system.NewFollowerSystem())
	default:
		return nil, fmt.Errorf("unknown mode %q", opts.Mode)
	}

	if _, err := entity.BuildInput(g.world); err != nil {
		return nil, err
	}
	if err := g.mount(); err != nil {
		return nil, err
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Root())
		if err != nil {
			log.Printf("prefabs: watch %s: %v", prefabs.Root(), err)
		} else {
			g.watcher = w
		}
	}

	if opts.Debug {
		if err := clipboard.Init(); err != nil {
			log.Printf("clipboard unavailable: %v", err)
		} else {
			g.clipboard = true
		}
	}

	g.ui = NewPauseUI(g)
	return g, nil
}

// mount builds the room and the subject from the current prefab. The room
// comes from the mascot prefab in room mode and fills the screen otherwise.
func (g *Game) mount() error {
	switch g.opts.Mode {
	case modeRoom:
		spec, err := prefabs.LoadMascotSpec(g.opts.Prefab)
		if err != nil {
			return err
		}
		if err := g.setRoom(spec.Room); err != nil {
			return err
		}
		e, err := entity.BuildMascot(g.world, spec, mascot.WithRand(mascot.NewRand(g.opts.Seed)))
		if err != nil {
			return err
		}
		g.subject = e
	case modeFollower:
		spec, err := prefabs.LoadFollowerSpec(g.opts.Prefab)
		if err != nil {
			return err
		}
		if err := g.setRoom(prefabs.RoomSpec{}); err != nil {
			return err
		}
		_, room, _ := ecs.First(g.world, component.RoomComponent.Kind())
		e, err := entity.BuildFollower(g.world, spec, room.Width, room.Height)
		if err != nil {
			return err
		}
		g.subject = e
	}
	return nil
}

func (g *Game) setRoom(spec prefabs.RoomSpec) error {
	if e, _, ok := ecs.First(g.world, component.RoomComponent.Kind()); ok {
		ecs.DestroyEntity(g.world, e)
	}
	_, err := entity.BuildRoom(g.world, spec, common.BaseWidth, common.BaseHeight)
	return err
}

// Remount unmounts the current subject and mounts a fresh one from disk. A
// prefab that fails to load leaves the old subject running.
func (g *Game) Remount() {
	old := g.subject
	if err := g.mount(); err != nil {
		log.Printf("remount %s: %v", g.opts.Prefab, err)
		g.status = "reload failed: " + err.Error()
		return
	}
	if ecs.IsAlive(g.world, old) {
		if err := entity.Unmount(g.world, old); err != nil {
			log.Printf("unmount: %v", err)
		}
	}
	render.ForgetImages()
	g.status = "reloaded " + g.opts.Prefab
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}

	g.drainWatcher()

	if g.paused {
		g.ui.Update()
		return nil
	}

	g.scheduler.Update(g.world)

	if g.opts.Debug && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySnapshot()
	}
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefabs: %s changed", name)
			g.Remount()
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefabs: watch: %v", err)
			}
			return
		default:
			return
		}
	}
}

func (g *Game) copySnapshot() {
	brain, ok := ecs.Get(g.world, g.subject, component.MascotBrainComponent.Kind())
	if !ok || brain.Mascot == nil {
		return
	}
	data, err := yaml.Marshal(brain.Mascot.Snapshot())
	if err != nil {
		log.Printf("snapshot: %v", err)
		return
	}
	if !g.clipboard {
		log.Printf("snapshot:\n%s", data)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.status = "snapshot copied"
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.opts.Debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) debugText() string {
	text := fmt.Sprintf("FPS: %.1f  mode: %s", ebiten.ActualFPS(), g.opts.Mode)
	if brain, ok := ecs.Get(g.world, g.subject, component.MascotBrainComponent.Kind()); ok && brain.Mascot != nil {
		s := brain.Mascot.Snapshot()
		text += fmt.Sprintf("\n%s %s[%d] (%.1f,%.1f) -> (%.1f,%.1f)", s.Behavior, s.AnimationKey, s.FrameIndex, s.X, s.Y, s.TargetX, s.TargetY)
	}
	if g.status != "" {
		text += "\n" + g.status
	}
	return text
}

func (g *Game) Close() error {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if ecs.IsAlive(g.world, g.subject) {
		return entity.Unmount(g.world, g.subject)
	}
	return nil
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
