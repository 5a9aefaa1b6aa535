package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrJaggedGrid is returned when rows of a grid have different lengths
	ErrJaggedGrid = errors.New("grid rows must all have the same length")
	// ErrNegativeDimension is returned when a grid is requested with a negative width or height
	ErrNegativeDimension = errors.New("grid dimensions must not be negative")
)

// Grid represents an immutable rectangular board of alive/dead cells.
// Cells are stored row-major in a single buffer, so every row has the same width.
type Grid struct {
	width  int
	height int
	cells  []bool
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, errors.Wrapf(ErrNegativeDimension, "[NewGrid] %dx%d", width, height)
	}
	return newGrid(width, height), nil
}

func newGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// FromRows copies nested rows into a new grid. Row y becomes the cells at y,
// and index x within a row becomes the cell at x.
func FromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 {
		return newGrid(0, 0), nil
	}

	width := len(rows[0])
	g := newGrid(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrJaggedGrid, "[FromRows] row %d has %d cells, expected %d", y, len(row), width)
		}
		copy(g.cells[y*width:(y+1)*width], row)
	}
	return g, nil
}

// MustFromRows is like FromRows but panics on malformed input.
func MustFromRows(rows [][]bool) *Grid {
	g, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Rows returns a copy of the grid as nested rows
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.height)
	for y := range g.height {
		rows[y] = make([]bool, g.width)
		copy(rows[y], g.row(y))
	}
	return rows
}

func (g *Grid) row(y int) []bool {
	return g.cells[y*g.width : (y+1)*g.width]
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, alive := range g.cells {
		if other.cells[i] != alive {
			return false
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the grid's dimensions and cell states.
// Grids that are Equal always share a hash.
func (g *Grid) Hash() string {
	h := md5.New()

	var dims [16]byte
	binary.BigEndian.PutUint64(dims[:8], uint64(g.width))
	binary.BigEndian.PutUint64(dims[8:], uint64(g.height))
	h.Write(dims[:])

	for _, alive := range g.cells {
		if alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
