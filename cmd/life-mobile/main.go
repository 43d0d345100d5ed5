//go:build xmobile

// Command life-mobile runs the board full screen through golang.org/x/mobile.
// Touches toggle cells; a hardware keyboard drives the usual key bindings.
package main

import (
	"context"
	"log"
	"os"

	"github.com/juju/gnuflag"
	"github.com/juju/loggo"
	mobile "golang.org/x/mobile/app"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	"gridlife/internal/app"
	"gridlife/internal/core"
	"gridlife/internal/gfx"
	"gridlife/internal/loop"
	"gridlife/internal/ui"
)

var logger = loggo.GetLogger("gridlife.mobile")

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(gnuflag.NewFlagSet(os.Args[0], gnuflag.ExitOnError), os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	if err := cfg.ConfigureLogging(); err != nil {
		log.Fatal(err)
	}
	loader := gfx.Embedded()
	if cfg.ShaderDir != "" {
		loader = gfx.Dir(cfg.ShaderDir)
	}

	frames := loop.NewFrameQueue()
	clock := loop.NewClock()
	out := &surface{}
	sched := app.New(cfg, core.ViewportSize{Width: cfg.Width, Height: cfg.Height}, out, frames)
	settings := cfg.Settings()
	settings.Width = 0
	controls := ui.NewControls(settings, app.Callbacks(sched, nil))
	defer controls.Close()

	mobile.Main(func(a mobile.App) {
		var glctx gl.Context
		var program *gfx.ProgramInfo
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ = e.DrawContext.(gl.Context)
					if glctx == nil {
						continue
					}
					info, r, err := loadRenderer(context.Background(), gfx.FromMobile(glctx), loader)
					if err != nil {
						logger.Criticalf("%v", err)
						os.Exit(1)
					}
					program, out.gl = info, r
					sched.Start()
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					sched.Stop()
					if glctx != nil && program != nil {
						gfx.FromMobile(glctx).DeleteProgram(program.Program)
					}
					glctx, program, out.gl = nil, nil, nil
				}
			case size.Event:
				sched.RegisterInput(app.ViewportResized{Size: core.ViewportSize{Width: e.WidthPx, Height: e.HeightPx}})
			case touch.Event:
				if e.Type == touch.TypeBegin {
					sched.RegisterInput(app.PointerClicked{Point: core.Point{X: float64(e.X), Y: float64(e.Y)}})
				}
			case key.Event:
				if e.Direction != key.DirPress {
					continue
				}
				r := e.Rune
				if e.Code == key.CodeEscape {
					r = ui.KeyEscape
				}
				controls.Apply(ui.KeyAction(r))
			case paint.Event:
				if glctx == nil || e.External {
					continue
				}
				frames.Advance(clock.Now())
				a.Publish()
				a.Send(paint.Event{})
			}
		}
	})
}
