package fourier

import (
	"math"
	"math/cmplx"
	"testing"

	"golang.org/x/exp/rand"
)

func TestNewRejectsBadWidths(t *testing.T) {
	for _, width := range []int{-8, 0, 1, 3, 12, 100} {
		if _, err := New(width); err == nil {
			t.Errorf("Expected New(%d) to fail.", width)
		}
	}
	for _, width := range []int{2, 4, 8, 32, 128} {
		if _, err := New(width); err != nil {
			t.Errorf("Expected New(%d) to succeed, got %v.", width, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	n := 8
	ft, err := New(n)
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(99))
	vals := make([]float64, n*n*n)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	out := ft.InverseReal(ft.Forward(vals))

	for i := range vals {
		if math.Abs(out[i]-vals[i]) > 1e-10 {
			t.Fatalf("Round trip differs at %d: %g != %g.",
				i, out[i], vals[i])
		}
	}
}

// A constant grid transforms to a pure k=0 mode with amplitude equal to the
// grid sum.
func TestForwardConstantGrid(t *testing.T) {
	n := 4
	ft, err := New(n)
	if err != nil {
		t.Fatal(err)
	}

	vals := make([]float64, n*n*n)
	for i := range vals {
		vals[i] = 2.5
	}

	spec := ft.Forward(vals)
	want := 2.5 * float64(n*n*n)
	if math.Abs(real(spec[0])-want) > 1e-10 || math.Abs(imag(spec[0])) > 1e-10 {
		t.Errorf("Expected spec[0] = %g, got %v.", want, spec[0])
	}
	for i := 1; i < len(spec); i++ {
		if cmplx.Abs(spec[i]) > 1e-9 {
			t.Errorf("Expected spec[%d] = 0, got %v.", i, spec[i])
			break
		}
	}
}

// Real input must produce a conjugate-symmetric spectrum.
func TestForwardHermitianSymmetry(t *testing.T) {
	n := 4
	ft, _ := New(n)

	rng := rand.New(rand.NewSource(12))
	vals := make([]float64, n*n*n)
	for i := range vals {
		vals[i] = rng.Float64()
	}
	spec := ft.Forward(vals)

	idx := func(x, y, z int) int { return x + y*n + z*n*n }
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				a := spec[idx(x, y, z)]
				b := spec[idx((n-x)%n, (n-y)%n, (n-z)%n)]
				if cmplx.Abs(a-cmplx.Conj(b)) > 1e-9 {
					t.Fatalf("Spectrum not Hermitian at (%d, %d, %d): "+
						"%v vs conj(%v).", x, y, z, a, b)
				}
			}
		}
	}
}

func TestFreqs(t *testing.T) {
	ks := Freqs(4, 2*math.Pi)

	want := []float64{0, 1, -2, -1}
	for i := range want {
		if math.Abs(ks[i]-want[i]) > 1e-12 {
			t.Errorf("%d) Expected k = %g, got %g.", i, want[i], ks[i])
		}
	}
}

func BenchmarkForward32(b *testing.B) {
	n := 32
	ft, _ := New(n)
	vals := make([]float64, n*n*n)
	for i := range vals {
		vals[i] = float64(i % 17)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ft.Forward(vals)
	}
}
