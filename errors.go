package gopm

import (
	"errors"

	"github.com/baryfold/gopm/integrate"
)

// Configuration errors are fatal and reported before any work starts.
var (
	ErrGridWidth      = errors.New("gopm: grid width must be a power of two")
	ErrBoxLength      = errors.New("gopm: box length must be positive")
	ErrParticles      = errors.New("gopm: particle count must be positive")
	ErrParticleMass   = errors.New("gopm: particle mass must be positive")
	ErrSteps          = errors.New("gopm: step count must be non-negative")
	ErrTimeStep       = errors.New("gopm: time step must be positive")
	ErrGrowth         = errors.New("gopm: growth factor must be non-negative")
	ErrProjectionAxis = errors.New("gopm: projection axis must be 0, 1, or 2")
	ErrMapSize        = errors.New("gopm: map dimensions must be positive")
)

// InstabilityError is returned by Run when non-finite values appear during
// integration. It carries the step index at which they were detected.
type InstabilityError = integrate.InstabilityError
