/*package integrate advances particle ensembles through time with a
symplectic kick-drift-kick scheme on a periodic particle-mesh grid.
*/
package integrate

import (
	"errors"
	"fmt"
	"math"

	"github.com/baryfold/gopm/density"
	"github.com/baryfold/gopm/geom"
	"github.com/baryfold/gopm/gravity"
)

// InstabilityError reports non-finite particle state or fields detected
// after an integration step.
type InstabilityError struct {
	Step int
	Err  error
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("integrate: step %d: %s", e.Step, e.Err.Error())
}

func (e *InstabilityError) Unwrap() error { return e.Err }

var errNonFiniteState = errors.New("non-finite particle position or velocity")

// Stepper advances an ensemble with fixed time step dt. Each step performs
// a half kick from the current force field, a full drift with periodic
// wraparound, a density and force refresh at the new positions, and a
// second half kick from the refreshed field.
//
// A Stepper owns the density grid and force buffers for one run and is not
// safe for concurrent use. Concurrent runs each get their own Stepper.
type Stepper struct {
	g      *geom.Grid
	solver *gravity.Solver
	dt     float64
	mass   float64

	rhos       []float64
	fx, fy, fz []float64
	step       int
	primed     bool
}

// NewStepper creates a Stepper for the given grid and solver. mass is the
// common particle mass used for density deposits.
func NewStepper(
	g *geom.Grid, solver *gravity.Solver, dt, mass float64,
) (*Stepper, error) {
	if dt <= 0 {
		return nil, errors.New("integrate: time step must be positive")
	}
	if mass <= 0 {
		return nil, errors.New("integrate: particle mass must be positive")
	}

	return &Stepper{
		g:      g,
		solver: solver,
		dt:     dt,
		mass:   mass,
		rhos:   make([]float64, g.Volume),
	}, nil
}

// Prime computes the density and force field at the current particle
// positions. Step calls it automatically on first use.
func (st *Stepper) Prime(xs []geom.Vec) error {
	if err := st.refresh(xs); err != nil {
		return &InstabilityError{Step: st.step, Err: err}
	}
	st.primed = true
	return nil
}

// Step advances the ensemble by one time step, mutating xs and vs in place.
func (st *Stepper) Step(xs, vs []geom.Vec) error {
	if !st.primed {
		if err := st.Prime(xs); err != nil {
			return err
		}
	}
	st.step++

	half := st.dt / 2
	st.kick(xs, vs, half)

	L := st.g.BoxLength
	for i := range xs {
		for d := 0; d < 3; d++ {
			xs[i][d] = geom.Wrap(xs[i][d]+st.dt*vs[i][d], L)
		}
	}

	if err := st.refresh(xs); err != nil {
		return &InstabilityError{Step: st.step, Err: err}
	}
	st.kick(xs, vs, half)

	if err := checkFinite(xs, vs); err != nil {
		return &InstabilityError{Step: st.step, Err: err}
	}
	return nil
}

// Run applies exactly steps time steps. There is no convergence check; the
// loop either completes or fails on the first instability.
func (st *Stepper) Run(xs, vs []geom.Vec, steps int) error {
	for i := 0; i < steps; i++ {
		if err := st.Step(xs, vs); err != nil {
			return err
		}
	}
	return nil
}

// Rhos returns the density grid from the most recent refresh.
func (st *Stepper) Rhos() []float64 { return st.rhos }

// KineticEnergy returns the total kinetic energy of the ensemble.
func (st *Stepper) KineticEnergy(vs []geom.Vec) float64 {
	sum := 0.0
	for _, v := range vs {
		sum += v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
	}
	return 0.5 * st.mass * sum
}

// PotentialEnergy returns the grid estimate of the ensemble's gravitational
// potential energy, 1/2 * sum(rho * phi) * dV, using the potential from the
// most recent refresh.
func (st *Stepper) PotentialEnergy() float64 {
	phi := st.solver.Potential()
	sum := 0.0
	for i, rho := range st.rhos {
		sum += rho * phi[i]
	}
	return 0.5 * sum * st.g.CellVolume
}

func (st *Stepper) kick(xs, vs []geom.Vec, dt float64) {
	for i := range xs {
		f := density.InterpolateVec(st.g, st.fx, st.fy, st.fz, xs[i])
		vs[i][0] += dt * f[0]
		vs[i][1] += dt * f[1]
		vs[i][2] += dt * f[2]
	}
}

func (st *Stepper) refresh(xs []geom.Vec) error {
	density.Clear(st.rhos)
	density.Deposit(st.g, st.rhos, xs, st.mass)

	fx, fy, fz, err := st.solver.Solve(st.rhos)
	if err != nil {
		return err
	}
	st.fx, st.fy, st.fz = fx, fy, fz
	return nil
}

func checkFinite(xs, vs []geom.Vec) error {
	for i := range xs {
		for d := 0; d < 3; d++ {
			if math.IsNaN(xs[i][d]) || math.IsInf(xs[i][d], 0) ||
				math.IsNaN(vs[i][d]) || math.IsInf(vs[i][d], 0) {
				return errNonFiniteState
			}
		}
	}
	return nil
}
