/*package gravity solves the Poisson equation on a periodic density grid and
differentiates the potential into a force field.
*/
package gravity

import (
	"errors"
	"math"

	"github.com/baryfold/gopm/fourier"
	"github.com/baryfold/gopm/geom"
)

// G is the gravitational constant in simulation code units.
const G = 1.0

// ErrNonFinite is returned when the solved force field contains NaN or Inf
// values. Callers annotate it with the step at which it was detected.
var ErrNonFinite = errors.New("gravity: non-finite value in force field")

// Solver converts a density grid into a gravitational force field. The
// density is forward-transformed, multiplied by the Green's function
// -4*pi*G/k^2 with the k=0 mode zeroed, inverse-transformed into a
// potential, and differentiated with centered finite differences. Zeroing
// the k=0 mode subtracts the mean density, so the mean of the resulting
// force field is zero and Solve can be handed raw densities rather than
// overdensity contrasts.
//
// A Solver owns its output buffers; the slices returned by Solve are valid
// until the next call.
type Solver struct {
	g      *geom.Grid
	ft     *fourier.Transform
	growth float64

	ks         []float64
	phi        []float64
	fx, fy, fz []float64
}

// NewSolver creates a Solver for the given grid. growth is a uniform scalar
// multiplier applied to the force field to mimic late-time nonlinear
// structure growth; 1 disables it.
func NewSolver(g *geom.Grid, growth float64) (*Solver, error) {
	ft, err := fourier.New(g.Width)
	if err != nil {
		return nil, err
	}

	return &Solver{
		g:      g,
		ft:     ft,
		growth: growth,
		ks:     fourier.Freqs(g.Width, g.BoxLength),
		phi:    make([]float64, g.Volume),
		fx:     make([]float64, g.Volume),
		fy:     make([]float64, g.Volume),
		fz:     make([]float64, g.Volume),
	}, nil
}

// Solve computes the force field sourced by rhos, one component per axis.
func (s *Solver) Solve(rhos []float64) (fx, fy, fz []float64, err error) {
	spec := s.ft.Forward(rhos)

	n := s.g.Width
	idx := 0
	for z := 0; z < n; z++ {
		kz := s.ks[z]
		for y := 0; y < n; y++ {
			ky := s.ks[y]
			for x := 0; x < n; x++ {
				kx := s.ks[x]
				k2 := kx*kx + ky*ky + kz*kz
				if k2 == 0 {
					spec[idx] = 0
				} else {
					spec[idx] *= complex(-4*math.Pi*G/k2, 0)
				}
				idx++
			}
		}
	}

	copy(s.phi, s.ft.InverseReal(spec))
	s.differentiate()

	for i := range s.fx {
		if !finite(s.fx[i]) || !finite(s.fy[i]) || !finite(s.fz[i]) {
			return nil, nil, nil, ErrNonFinite
		}
	}
	return s.fx, s.fy, s.fz, nil
}

// Potential returns the potential computed by the last Solve call. Used for
// energy diagnostics.
func (s *Solver) Potential() []float64 { return s.phi }

// differentiate computes F = -grad(phi) with centered finite differences
// and periodic wraparound, then applies the growth multiplier.
func (s *Solver) differentiate() {
	g := s.g
	inv2h := s.growth * 0.5 / g.CellWidth

	for z := 0; z < g.Width; z++ {
		for y := 0; y < g.Width; y++ {
			for x := 0; x < g.Width; x++ {
				i := g.Idx(x, y, z)
				s.fx[i] = -(s.phi[g.PIdx(x+1, y, z)] -
					s.phi[g.PIdx(x-1, y, z)]) * inv2h
				s.fy[i] = -(s.phi[g.PIdx(x, y+1, z)] -
					s.phi[g.PIdx(x, y-1, z)]) * inv2h
				s.fz[i] = -(s.phi[g.PIdx(x, y, z+1)] -
					s.phi[g.PIdx(x, y, z-1)]) * inv2h
			}
		}
	}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
