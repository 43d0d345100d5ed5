package main

import (
	"fmt"

	"gridlife/internal/board"
	"gridlife/internal/core"
)

// cellPixels is the size of one cell in written images.
const cellPixels = 6

type scenario struct {
	seed    int64
	density float64
	size    core.GridSize
}

func (s scenario) String() string {
	return fmt.Sprintf("seed=%d density=%.2f", s.seed, s.density)
}

type result struct {
	scenario scenario
	initial  int
	peak     int
	final    int
	// settled is the first generation whose pattern repeats one of the two
	// before it, or zero if the board never settled.
	settled int
	steps   int
}

func (r result) lifetime() int {
	if r.settled == 0 {
		return r.steps
	}
	return r.settled
}

func (r result) String() string {
	settled := "never settled"
	if r.settled > 0 {
		settled = fmt.Sprintf("settled at %d", r.settled)
	}
	return fmt.Sprintf("population %d->%d (peak %d), %s", r.initial, r.final, r.peak, settled)
}

// run seeds a board for sc and steps it until it settles into a still life or
// period-two oscillator, or until steps generations have passed.
func run(sc scenario, steps int) (result, *board.Board) {
	viewport := core.ViewportSize{Width: sc.size.Columns*cellPixels + 1, Height: sc.size.Rows*cellPixels + 1}
	b := board.New(viewport, 1, sc.size)
	b.Seed(core.NewRNG(sc.seed), sc.density)

	res := result{scenario: sc, steps: steps}
	res.initial = b.Population()
	res.peak = res.initial
	history := []string{snapshot(b)}
	for gen := 1; gen <= steps; gen++ {
		b.Step()
		pop := b.Population()
		if pop > res.peak {
			res.peak = pop
		}
		snap := snapshot(b)
		if repeats(history, snap) {
			res.settled = gen
			break
		}
		history = append(history, snap)
		if len(history) > 2 {
			history = history[1:]
		}
	}
	res.final = b.Population()
	return res, b
}

func repeats(history []string, snap string) bool {
	for _, h := range history {
		if h == snap {
			return true
		}
	}
	return false
}

func snapshot(b *board.Board) string {
	size := b.Size()
	buf := make([]byte, 0, size.Rows*size.Columns)
	for _, row := range b.Cells {
		for _, cell := range row {
			if cell.Alive() {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
		}
	}
	return string(buf)
}
