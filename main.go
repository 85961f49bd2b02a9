package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/softcursor/pkg/app"
	"github.com/decker502/softcursor/pkg/config"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	configPath := flag.String("config", "", "optional cursor config YAML path")
	flag.Parse()

	demo, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Soft Cursor Demo")

	// Start the demo loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(demo); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
