/*package io reads simulation config files and writes finished maps and
particle snapshots to disk.
*/
package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/baryfold/gopm"
)

const ExampleSimFile = `[Sim]

#######################
# Required Parameters #
#######################

# Width of the force grid in cells. Must be a power of two.
GridWidth = 32

# Physical side length of the periodic box.
BoxLength = 25.0

# Number of particles in the ensemble.
Particles = 4096

# Number of kick-drift-kick steps and the fixed step size.
Steps = 10
Dt = 0.01

#######################
# Optional Parameters #
#######################

# Uniform mass per particle.
# ParticleMass = 1.0

# Force amplification factor mimicking late-time structure growth. This is
# a tuning knob, not a physical parameter; 1 disables it.
# Growth = 1.0

# Standard deviation the initial overdensity field is scaled to, and the
# spread of the initial Gaussian velocity perturbations.
# Contrast = 1.0
# VelocitySigma = 0.05

# Random seed. Identical seeds reproduce identical maps. Batch producers
# must give every run its own seed.
# Seed = 42

# Line of sight for the projection. Must be one of [ X | Y | Z ].
# ProjectionAxis = Z

# Output map dimensions.
# MapHeight = 256
# MapWidth = 256

# When TargetStd is positive, the log map is affinely rescaled to these
# moments to stay in-distribution for the downstream correction model.
# TargetMean = 0.0
# TargetStd = 0.0`

// SimConfig mirrors gopm.Config with the string-valued fields a config file
// uses.
type SimConfig struct {
	GridWidth      int
	BoxLength      float64
	Particles      int
	ParticleMass   float64
	Steps          int
	Dt             float64
	Growth         float64
	Contrast       float64
	VelocitySigma  float64
	Seed           int64
	ProjectionAxis string
	MapHeight      int
	MapWidth       int
	TargetMean     float64
	TargetStd      float64
}

// SimWrapper wraps SimConfig so gcfg can bind the [Sim] section.
type SimWrapper struct {
	Sim SimConfig
}

// DefaultSimWrapper returns a wrapper pre-filled with the defaults that the
// config file may override.
func DefaultSimWrapper() *SimWrapper {
	def := gopm.DefaultConfig()
	return &SimWrapper{Sim: SimConfig{
		GridWidth:      def.GridWidth,
		BoxLength:      def.BoxLength,
		Particles:      def.Particles,
		ParticleMass:   def.ParticleMass,
		Steps:          def.Steps,
		Dt:             def.Dt,
		Growth:         def.Growth,
		Contrast:       def.Contrast,
		VelocitySigma:  def.VelocitySigma,
		Seed:           int64(def.Seed),
		ProjectionAxis: "Z",
		MapHeight:      def.MapHeight,
		MapWidth:       def.MapWidth,
	}}
}

func (con *SimConfig) ValidProjectionAxis() bool {
	switch con.ProjectionAxis {
	case "X", "Y", "Z":
		return true
	}
	return false
}

func (con *SimConfig) ValidSeed() bool {
	return con.Seed >= 0
}

// Convert translates a parsed SimConfig into a gopm.Config, without
// validating the numeric fields; gopm.Config.Validate does that.
func (con *SimConfig) Convert() (gopm.Config, error) {
	if !con.ValidProjectionAxis() {
		return gopm.Config{}, fmt.Errorf(
			"io: invalid 'ProjectionAxis' value %q", con.ProjectionAxis,
		)
	}
	if !con.ValidSeed() {
		return gopm.Config{}, fmt.Errorf(
			"io: invalid 'Seed' value %d", con.Seed,
		)
	}

	axis := 2
	switch con.ProjectionAxis {
	case "X":
		axis = 0
	case "Y":
		axis = 1
	}

	return gopm.Config{
		GridWidth:      con.GridWidth,
		BoxLength:      con.BoxLength,
		Particles:      con.Particles,
		ParticleMass:   con.ParticleMass,
		Steps:          con.Steps,
		Dt:             con.Dt,
		Growth:         con.Growth,
		Contrast:       con.Contrast,
		VelocitySigma:  con.VelocitySigma,
		Seed:           uint64(con.Seed),
		ProjectionAxis: axis,
		MapHeight:      con.MapHeight,
		MapWidth:       con.MapWidth,
		TargetMean:     con.TargetMean,
		TargetStd:      con.TargetStd,
	}, nil
}

// ReadSimFile reads a [Sim] config file and returns the run configuration
// it describes.
func ReadSimFile(path string) (gopm.Config, error) {
	wrap := DefaultSimWrapper()
	if err := gcfg.ReadFileInto(wrap, path); err != nil {
		return gopm.Config{}, err
	}
	return wrap.Sim.Convert()
}
