// Command life-sweep runs headless boards over a grid of seeds and densities
// and reports the longest-lived patterns.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	flag "github.com/juju/gnuflag"
	"github.com/juju/loggo"
	"gopkg.in/errgo.v1"

	"gridlife/internal/core"
	"gridlife/internal/render"
)

var logger = loggo.GetLogger("gridlife.sweep")

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	rows := flag.Int("rows", 64, "grid rows")
	columns := flag.Int("columns", 64, "grid columns")
	seeds := flag.Int("seeds", 32, "seeds per density, starting at 1")
	top := flag.Int("top", 5, "results to report")
	pngDir := flag.String("png", "", "write the final board of each top result to this directory")
	logSpec := flag.String("log", "<root>=INFO", "loggo logging specification")
	flag.Parse(true)

	if err := loggo.ConfigureLoggers(*logSpec); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log specification: %v\n", err)
		os.Exit(2)
	}

	size := core.GridSize{Rows: *rows, Columns: *columns}.Clamp(core.MinGrid, core.MaxGrid)
	densities := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	var sets []scenario
	for _, d := range densities {
		for s := 1; s <= *seeds; s++ {
			sets = append(sets, scenario{seed: int64(s), density: d, size: size})
		}
	}

	fmt.Printf("Sweeping %d scenarios on %dx%d (%d workers, %d steps)\n", len(sets), size.Rows, size.Columns, *workers, *steps)

	jobs := make(chan scenario)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				res, _ := run(sc, *steps)
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []result
	for res := range results {
		all = append(all, res)
		logger.Debugf("%s: %s", res.scenario, res)
	}
	rank(all)

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		fmt.Printf("%2d) %s %s\n", i+1, all[i].scenario, all[i])
	}

	if *pngDir == "" {
		return
	}
	for i := 0; i < len(all) && i < *top; i++ {
		path := filepath.Join(*pngDir, fmt.Sprintf("top%02d-seed%d-density%.2f.png", i+1, all[i].scenario.seed, all[i].scenario.density))
		if err := writeFinal(path, all[i].scenario, *steps); err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
		logger.Infof("wrote %s", path)
	}
}

// rank orders results by how long they kept changing, then by final
// population.
func rank(all []result) {
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.lifetime() != b.lifetime() {
			return a.lifetime() > b.lifetime()
		}
		if a.final != b.final {
			return a.final > b.final
		}
		if a.scenario.density != b.scenario.density {
			return a.scenario.density < b.scenario.density
		}
		return a.scenario.seed < b.scenario.seed
	})
}

func writeFinal(path string, sc scenario, steps int) error {
	_, b := run(sc, steps)
	img := render.NewImage()
	render.Frame(img, b)
	f, err := os.Create(path)
	if err != nil {
		return errgo.Notef(err, "cannot create image")
	}
	if err := img.WritePNG(f); err != nil {
		f.Close()
		return errgo.Mask(err)
	}
	return errgo.Mask(f.Close())
}
