package gopm

import (
	"golang.org/x/exp/rand"

	"github.com/baryfold/gopm/geom"
	"github.com/baryfold/gopm/gravity"
	"github.com/baryfold/gopm/ic"
	"github.com/baryfold/gopm/integrate"
	"github.com/baryfold/gopm/project"
)

// Run executes one complete simulation: initial-condition sampling, Steps
// kick-drift-kick iterations, and projection into a log-stabilized surface
// density map. On any error no partial result is returned.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	xs, vs, err := ic.Sample(ic.Params{
		GridWidth:     cfg.GridWidth,
		BoxLength:     cfg.BoxLength,
		Particles:     cfg.Particles,
		Contrast:      cfg.Contrast,
		VelocitySigma: cfg.VelocitySigma,
	}, rng)
	if err != nil {
		return nil, err
	}

	g := geom.NewGrid(cfg.GridWidth, cfg.BoxLength)
	solver, err := gravity.NewSolver(g, cfg.Growth)
	if err != nil {
		return nil, err
	}
	stepper, err := integrate.NewStepper(g, solver, cfg.Dt, cfg.ParticleMass)
	if err != nil {
		return nil, err
	}

	if err := stepper.Run(xs, vs, cfg.Steps); err != nil {
		return nil, err
	}

	vals, err := project.Project(
		xs, cfg.ParticleMass, cfg.ProjectionAxis,
		cfg.MapHeight, cfg.MapWidth, cfg.BoxLength,
	)
	if err != nil {
		return nil, err
	}
	project.Log1p(vals)
	project.MatchMoments(vals, cfg.TargetMean, cfg.TargetStd)

	return &Result{
		Map:    vals,
		Height: cfg.MapHeight,
		Width:  cfg.MapWidth,
		Stats:  project.Stats(vals),
	}, nil
}
