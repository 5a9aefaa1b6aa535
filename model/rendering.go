package model

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
)

// ErrUnknownCell is returned by Parse for runes that are not a cell marker
var ErrUnknownCell = errors.New("unknown cell marker")

// String renders the grid one line per row, two columns per cell
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.height * (g.width*len(gridPosBlock) + 1))
	for y := range g.height {
		for _, alive := range g.row(y) {
			if alive {
				b.WriteString(gridPosBlock)
			} else {
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse reads a plaintext pattern: one row per non-blank line,
// '#' or 'O' for alive and '.' for dead.
func Parse(text string) (*Grid, error) {
	var rows [][]bool
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		row := make([]bool, 0, len(line))
		for _, r := range line {
			switch r {
			case '#', 'O':
				row = append(row, true)
			case '.':
				row = append(row, false)
			default:
				return nil, errors.Wrapf(ErrUnknownCell, "[Parse] line %d: %q", i+1, r)
			}
		}
		rows = append(rows, row)
	}

	g, err := FromRows(rows)
	if err != nil {
		return nil, errors.Wrap(err, "[Parse] failed to build grid")
	}
	return g, nil
}
