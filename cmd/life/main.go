//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/juju/gnuflag"

	"gridlife/internal/app"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(gnuflag.NewFlagSet(os.Args[0], gnuflag.ExitOnError), os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	if err := cfg.ConfigureLogging(); err != nil {
		log.Fatal(err)
	}

	w := app.NewWindow(cfg)
	defer w.Close()

	ebiten.SetWindowTitle("gridlife")
	ebiten.SetWindowSize(cfg.Width+app.PanelWidth, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}
