package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/memorylane/assets"
	"github.com/milk9111/memorylane/common"
	"github.com/milk9111/memorylane/levels"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (hitboxes, FPS, hot reload of prefabs/)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", levels.DefaultLevel, "level name in levels/ (basename, .json optional)")
	sprites := flag.String("sprites", assets.DefaultSpriteDir, "directory holding the sprite sheets")
	mute := flag.Bool("mute", false, "disable sound effects")
	seed := flag.Int64("seed", 0, "random seed for hearts, birds and fireworks (0 picks one)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("Memory Lane")

	game, err := NewGame(GameOptions{
		Level:   *levelName,
		Sprites: *sprites,
		Debug:   *debug,
		Mute:    *mute,
		Seed:    *seed,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
