/*package gopm runs particle-mesh N-body gravity simulations over periodic
boxes and projects the results into log-stabilized surface-density maps.

The package is the orchestration layer: initial conditions come from the ic
package, time evolution from integrate and gravity, and the final map from
project. A single call to Run takes a Config and returns the finished map
plus its summary statistics. Runs are deterministic for a fixed seed, and
independent runs share no mutable state, so callers may run them
concurrently as long as they partition seeds.
*/
package gopm

import (
	"github.com/baryfold/gopm/project"
)

// Config enumerates every knob of a simulation run.
type Config struct {
	// GridWidth is the side length of the force grid in cells. It must be
	// a power of two.
	GridWidth int
	// BoxLength is the physical side length of the periodic box.
	BoxLength float64

	// Particles is the number of particles in the ensemble. The count is
	// fixed for the whole run.
	Particles int
	// ParticleMass is the uniform mass per particle.
	ParticleMass float64

	// Steps is the exact number of kick-drift-kick steps to apply.
	Steps int
	// Dt is the fixed time step.
	Dt float64
	// Growth uniformly amplifies grid forces to mimic late-time nonlinear
	// structure growth. It is a tuning knob with no physical derivation;
	// 1 disables it.
	Growth float64

	// Contrast is the standard deviation the initial overdensity field is
	// scaled to before particles are drawn.
	Contrast float64
	// VelocitySigma is the standard deviation of the initial Gaussian
	// velocity perturbations.
	VelocitySigma float64
	// Seed seeds the run's random generator. Identical seeds and configs
	// reproduce identical output.
	Seed uint64

	// ProjectionAxis selects the line of sight: 0, 1, or 2.
	ProjectionAxis int
	// MapHeight and MapWidth are the output map dimensions.
	MapHeight, MapWidth int
	// TargetMean and TargetStd, when TargetStd is positive, affinely
	// rescale the log map to match a reference distribution for the
	// downstream model. TargetStd = 0 disables the rescale.
	TargetMean, TargetStd float64
}

// DefaultConfig returns the configuration used by the demo pipeline.
func DefaultConfig() Config {
	return Config{
		GridWidth:      32,
		BoxLength:      25.0,
		Particles:      4096,
		ParticleMass:   1.0,
		Steps:          10,
		Dt:             0.01,
		Growth:         1.0,
		Contrast:       1.0,
		VelocitySigma:  0.05,
		Seed:           42,
		ProjectionAxis: 2,
		MapHeight:      256,
		MapWidth:       256,
	}
}

// Validate reports the first configuration error, or nil.
func (c *Config) Validate() error {
	switch {
	case c.GridWidth < 2 || c.GridWidth&(c.GridWidth-1) != 0:
		return ErrGridWidth
	case c.BoxLength <= 0:
		return ErrBoxLength
	case c.Particles <= 0:
		return ErrParticles
	case c.ParticleMass <= 0:
		return ErrParticleMass
	case c.Steps < 0:
		return ErrSteps
	case c.Dt <= 0:
		return ErrTimeStep
	case c.Growth < 0:
		return ErrGrowth
	case c.ProjectionAxis < 0 || c.ProjectionAxis > 2:
		return ErrProjectionAxis
	case c.MapHeight <= 0 || c.MapWidth <= 0:
		return ErrMapSize
	}
	return nil
}

// Result is the sole artifact of a completed run. The map is row major,
// MapHeight rows of MapWidth values, holding log(1 + surface density), and
// should be treated as immutable once returned.
type Result struct {
	Map           []float64
	Height, Width int
	// Stats summarizes Map so downstream consumers don't recompute it.
	Stats project.MapStats
}
