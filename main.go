package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rouzeris/catroom/assets"
	"github.com/rouzeris/catroom/common"
	"github.com/rouzeris/catroom/prefabs"
)

func main() {
	mode := flag.String("mode", modeRoom, "room (autonomous cat) or follower (keyboard-driven cat)")
	prefab := flag.String("prefab", "", "prefab file (default cat.yaml or follower.yaml)")
	debug := flag.Bool("debug", false, "enable debug overlay; C copies the mascot snapshot")
	seed := flag.Uint64("seed", 0, "random seed for the behavior machine (0 = time based)")
	assetRoot := flag.String("assets", "assets", "directory holding sprite sheets")
	prefabRoot := flag.String("prefabs", "prefabs", "directory whose prefabs override the embedded ones")
	watch := flag.Bool("watch", false, "remount the mascot when prefabs or scripts change on disk")
	flag.Parse()

	assets.SetRoot(*assetRoot)
	prefabs.SetRoot(*prefabRoot)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("catroom")

	game, err := NewGame(Options{
		Mode:   *mode,
		Prefab: *prefab,
		Debug:  *debug,
		Seed:   *seed,
		Watch:  *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
