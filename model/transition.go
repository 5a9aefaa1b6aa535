package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-step/utils"
)

// ErrNegativeGenerations is returned by Advance when asked to step backwards
var ErrNegativeGenerations = errors.New("generations must not be negative")

// Next calculates the next generation of g. Every cell is derived from g alone,
// so all updates are simultaneous. g is not modified.
func Next(g *Grid) *Grid {
	next := newGrid(g.width, g.height)
	next.fillRows(g, 0, g.height)
	return next
}

// NextParallel calculates the same generation as Next, splitting rows across
// up to workers goroutines. workers <= 0 uses runtime.NumCPU().
func NextParallel(g *Grid, workers int) *Grid {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		eg            errgroup.Group
		next          = newGrid(g.width, g.height)
		rowsPerWorker = (g.height + workers - 1) / workers // Ceiling division
	)
	eg.SetLimit(workers)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		// Each band writes only rows [startRow, endRow) of next
		eg.Go(func() error {
			next.fillRows(g, startRow, endRow)
			return nil
		})
	}

	_ = eg.Wait() // bands never return an error
	return next
}

// fillRows writes the successor of rows [startRow, endRow) of prev into g
func (g *Grid) fillRows(prev *Grid, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := range prev.width {
			g.cells[g.index(x, y)] = Coordinate{X: x, Y: y}.NextStateIn(prev)
		}
	}
}

// Step calculates the next generation based on configuration
func Step(g *Grid, config utils.Config) *Grid {
	if config.UseParallel {
		return NextParallel(g, config.Workers)
	}
	return Next(g)
}

// Advance applies Step the given number of times. Zero generations returns g itself.
func Advance(g *Grid, generations int, config utils.Config) (*Grid, error) {
	if generations < 0 {
		return nil, errors.Wrapf(ErrNegativeGenerations, "[Advance] generations: %d", generations)
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[Advance] invalid config")
	}

	for range generations {
		g = Step(g, config)
	}
	return g, nil
}
