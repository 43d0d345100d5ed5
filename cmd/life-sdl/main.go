//go:build sdl

// Command life-sdl runs the board in an SDL2 window driven by the keyboard and
// mouse. The window title carries the generation and population.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/juju/gnuflag"
	"github.com/juju/loggo"
	"github.com/veandco/go-sdl2/sdl"
	"gopkg.in/errgo.v1"

	"gridlife/internal/app"
	"gridlife/internal/core"
	"gridlife/internal/loop"
	"gridlife/internal/render"
	"gridlife/internal/ui"
)

var logger = loggo.GetLogger("gridlife.sdl")

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(gnuflag.NewFlagSet(os.Args[0], gnuflag.ExitOnError), os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	if err := cfg.ConfigureLogging(); err != nil {
		log.Fatal(err)
	}
	if err := run(cfg); err != nil {
		logger.Criticalf("%v", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errgo.Notef(err, "cannot initialise SDL")
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("gridlife", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height), sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return errgo.Notef(err, "cannot create window")
	}
	defer window.Destroy()

	sr, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return errgo.Notef(err, "cannot create renderer")
	}
	defer sr.Destroy()

	out := render.NewSDL(sr)
	frames := loop.NewFrameQueue()
	clock := loop.NewClock()
	sched := app.New(cfg, core.ViewportSize{Width: cfg.Width, Height: cfg.Height}, out, frames)

	quit := false
	settings := cfg.Settings()
	settings.Width = 0
	controls := ui.NewControls(settings, app.Callbacks(sched, func() { quit = true }))
	defer controls.Close()

	sched.Start()
	defer sched.Stop()

	var shown ui.Status
	for !quit {
		for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
			switch e := e.(type) {
			case *sdl.QuitEvent:
				quit = true
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
					controls.Apply(ui.KeyAction(rune(e.Keysym.Sym)))
				}
			case *sdl.MouseButtonEvent:
				if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
					sched.RegisterInput(app.PointerClicked{Point: core.Point{X: float64(e.X), Y: float64(e.Y)}})
				}
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					sched.RegisterInput(app.ViewportResized{Size: core.ViewportSize{Width: int(e.Data1), Height: int(e.Data2)}})
				}
			}
		}
		frames.Advance(clock.Now())
		if err := out.Err(); err != nil {
			return errgo.Notef(err, "cannot draw frame")
		}
		if st := app.Status(sched.State()); st != shown {
			shown = st
			window.SetTitle(fmt.Sprintf("gridlife - generation %d, population %d", st.Generation, st.Population))
		}
	}
	frameCount, updates := sched.Counts()
	logger.Infof("quit after %d frames, %d updates", frameCount, updates)
	return nil
}
