package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Shape is a (rows, cols) pair.
type Shape struct {
	Rows, Cols int
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// Len returns the number of cells.
func (s Shape) Len() int {
	return s.Rows * s.Cols
}

// Grid is a row-major matrix of float64 values.
type Grid struct {
	r, c int
	data []float64
}

// New returns a zero-filled rows×cols grid.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	return &Grid{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Scalar returns a 1×1 grid holding v.
func Scalar(v float64) *Grid {
	return &Grid{r: 1, c: 1, data: []float64{v}}
}

// Fill returns a rows×cols grid with every cell set to v.
func Fill(rows, cols int, v float64) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range g.data {
		g.data[i] = v
	}
	return g, nil
}

// FromRows copies a rectangular slice of rows into a new grid.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBadShape)
	}
	c := len(rows[0])
	g := &Grid{r: len(rows), c: c, data: make([]float64, 0, len(rows)*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrBadShape, i, len(row), c)
		}
		g.data = append(g.data, row...)
	}
	return g, nil
}

// Row returns a 1×n grid.
func Row(values ...float64) (*Grid, error) {
	return FromRows([][]float64{values})
}

// Column returns an m×1 grid.
func Column(values ...float64) (*Grid, error) {
	rows := make([][]float64, len(values))
	for i, v := range values {
		rows[i] = []float64{v}
	}
	return FromRows(rows)
}

func (g *Grid) Rows() int    { return g.r }
func (g *Grid) Cols() int    { return g.c }
func (g *Grid) Shape() Shape { return Shape{Rows: g.r, Cols: g.c} }
func (g *Grid) Len() int     { return len(g.data) }

// At returns the value at (i, j). It panics when out of range, like slice indexing.
func (g *Grid) At(i, j int) float64 {
	if i < 0 || i >= g.r || j < 0 || j >= g.c {
		panic(fmt.Sprintf("grid: index (%d,%d) out of range for %s", i, j, g.Shape()))
	}
	return g.data[i*g.c+j]
}

// Scalar returns the single value of a 1×1 grid, or the first cell otherwise.
func (g *Grid) Scalar() float64 {
	return g.data[0]
}

// Values returns a copy of the row-major backing data.
func (g *Grid) Values() []float64 {
	out := make([]float64, len(g.data))
	copy(out, g.data)
	return out
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	return &Grid{r: g.r, c: g.c, data: g.Values()}
}

// IsFinite reports whether no cell is NaN or ±Inf.
func (g *Grid) IsFinite() bool {
	for _, v := range g.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// String renders the grid as a literal accepted by Parse.
func (g *Grid) String() string {
	var b strings.Builder
	for i := 0; i < g.r; i++ {
		if i > 0 {
			b.WriteString(";")
		}
		for j := 0; j < g.c; j++ {
			if j > 0 {
				b.WriteString(",")
			}
			b.WriteString(strconv.FormatFloat(g.data[i*g.c+j], 'g', -1, 64))
		}
	}
	return b.String()
}
