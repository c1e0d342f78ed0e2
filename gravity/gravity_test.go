package gravity

import (
	"math"
	"testing"

	"github.com/baryfold/gopm/density"
	"github.com/baryfold/gopm/geom"
)

func TestUniformDensityGivesNoForce(t *testing.T) {
	g := geom.NewGrid(16, 10.0)
	s, err := NewSolver(g, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	rhos := make([]float64, g.Volume)
	for i := range rhos {
		rhos[i] = 1.0
	}

	fx, fy, fz, err := s.Solve(rhos)
	if err != nil {
		t.Fatal(err)
	}

	for i := range fx {
		if math.Abs(fx[i]) > 1e-9 || math.Abs(fy[i]) > 1e-9 ||
			math.Abs(fz[i]) > 1e-9 {
			t.Fatalf("Expected zero force at %d, got (%g, %g, %g).",
				i, fx[i], fy[i], fz[i])
		}
	}
}

func TestForceFieldHasZeroMean(t *testing.T) {
	g := geom.NewGrid(16, 25.0)
	s, err := NewSolver(g, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	// A single off-center point mass.
	rhos := make([]float64, g.Volume)
	xs := []geom.Vec{{3.1, 17.9, 8.4}}
	density.Deposit(g, rhos, xs, 100.0)

	fx, fy, fz, err := s.Solve(rhos)
	if err != nil {
		t.Fatal(err)
	}

	var mx, my, mz float64
	for i := range fx {
		mx += fx[i]
		my += fy[i]
		mz += fz[i]
	}
	n := float64(len(fx))
	mx, my, mz = mx/n, my/n, mz/n

	if math.Abs(mx) > 1e-8 || math.Abs(my) > 1e-8 || math.Abs(mz) > 1e-8 {
		t.Errorf("Expected zero-mean force field, got (%g, %g, %g).",
			mx, my, mz)
	}
}

// A point mass at a grid node must pull symmetric cells with equal and
// opposite force along the axis through the mass.
func TestPointMassForceSymmetry(t *testing.T) {
	g := geom.NewGrid(16, 16.0)
	s, err := NewSolver(g, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	rhos := make([]float64, g.Volume)
	density.Deposit(g, rhos, []geom.Vec{{8, 8, 8}}, 1000.0)

	fx, _, _, err := s.Solve(rhos)
	if err != nil {
		t.Fatal(err)
	}

	for d := 1; d <= 4; d++ {
		left := fx[g.Idx(8-d, 8, 8)]
		right := fx[g.Idx(8+d, 8, 8)]
		if math.Abs(left+right) > 1e-8*(math.Abs(left)+1e-12) {
			t.Errorf("d=%d) Expected antisymmetric fx, got %g and %g.",
				d, left, right)
		}
		if d <= 2 && left <= 0 {
			t.Errorf("d=%d) Expected attraction toward the mass, fx = %g.",
				d, left)
		}
	}
}

func TestGrowthScalesForces(t *testing.T) {
	g := geom.NewGrid(8, 8.0)
	s1, _ := NewSolver(g, 1.0)
	s2, _ := NewSolver(g, 2.5)

	rhos := make([]float64, g.Volume)
	density.Deposit(g, rhos, []geom.Vec{{2.2, 3.3, 4.4}}, 10.0)

	fx1, _, _, err := s1.Solve(rhos)
	if err != nil {
		t.Fatal(err)
	}
	fx2, _, _, err := s2.Solve(rhos)
	if err != nil {
		t.Fatal(err)
	}

	for i := range fx1 {
		if math.Abs(fx2[i]-2.5*fx1[i]) > 1e-10+1e-8*math.Abs(fx1[i]) {
			t.Fatalf("Expected fx2 = 2.5*fx1 at %d: %g vs %g.",
				i, fx2[i], fx1[i])
		}
	}
}

func TestSolveRejectsNonFinite(t *testing.T) {
	g := geom.NewGrid(8, 8.0)
	s, _ := NewSolver(g, 1.0)

	rhos := make([]float64, g.Volume)
	rhos[0] = math.NaN()

	if _, _, _, err := s.Solve(rhos); err == nil {
		t.Errorf("Expected an error for NaN input density.")
	}
}
