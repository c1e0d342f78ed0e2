/*package geom contains routines for reasoning over flat slices as if they
were periodic 3D grids.
*/
package geom

import (
	"math"
)

// Vec is a position or velocity inside the simulation box.
type Vec [3]float64

// Grid provides an interface for reasoning over a 1D slice as if it were a
// cubic periodic 3D grid. Values are ordered x-fastest, so that
// idx = x + y*Width + z*Area.
type Grid struct {
	Width, Area, Volume int
	BoxLength           float64
	CellWidth           float64
	CellVolume          float64
}

// NewGrid returns a new Grid instance with the given side length in cells
// spanning a periodic box of the given physical length.
func NewGrid(width int, boxLength float64) *Grid {
	g := &Grid{}
	g.Init(width, boxLength)
	return g
}

// Init initializes a Grid instance.
func (g *Grid) Init(width int, boxLength float64) {
	g.Width = width
	g.Area = width * width
	g.Volume = width * width * width
	g.BoxLength = boxLength
	g.CellWidth = boxLength / float64(width)
	g.CellVolume = g.CellWidth * g.CellWidth * g.CellWidth
}

// Idx returns the grid index corresponding to a set of cell coordinates.
// The coordinates must already be within the grid.
func (g *Grid) Idx(x, y, z int) int {
	return x + y*g.Width + z*g.Area
}

// PIdx returns the grid index corresponding to a set of cell coordinates,
// wrapping each coordinate periodically first.
func (g *Grid) PIdx(x, y, z int) int {
	return WrapIdx(x, g.Width) + WrapIdx(y, g.Width)*g.Width +
		WrapIdx(z, g.Width)*g.Area
}

// Coords returns the x, y, z cell coordinates of a point from its grid index.
func (g *Grid) Coords(idx int) (x, y, z int) {
	x = idx % g.Width
	y = (idx % g.Area) / g.Width
	z = idx / g.Area
	return x, y, z
}

// WrapIdx computes the positive modulo i % width.
func WrapIdx(i, width int) int {
	m := i % width
	if m < 0 {
		m += width
	}
	return m
}

// Wrap reduces a coordinate into [0, length). All continuous-coordinate
// modular arithmetic in the simulation goes through this function.
func Wrap(x, length float64) float64 {
	m := math.Mod(x, length)
	if m < 0 {
		m += length
	}
	return m
}

// WrapDist returns the shortest periodic displacement from x1 to x2.
func WrapDist(x1, x2, length float64) float64 {
	d := x2 - x1
	if d > length/2 {
		d -= length
	} else if d < -length/2 {
		d += length
	}
	return d
}
