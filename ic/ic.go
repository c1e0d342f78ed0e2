/*package ic synthesizes initial particle distributions from a
Fourier-synthesized Gaussian overdensity field.
*/
package ic

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/baryfold/gopm/fourier"
	"github.com/baryfold/gopm/geom"
)

// Params controls initial-condition sampling.
type Params struct {
	// GridWidth is the side length in cells of the synthesis grid. Must be
	// a power of two.
	GridWidth int
	// BoxLength is the physical side length of the periodic box.
	BoxLength float64
	// Particles is the number of particles to draw.
	Particles int
	// Contrast scales the overdensity field to this standard deviation
	// before particles are drawn from it. Zero leaves the raw field.
	Contrast float64
	// VelocitySigma is the standard deviation of the Gaussian velocity
	// perturbation applied independently to each component.
	VelocitySigma float64
}

// Sample draws an initial particle ensemble whose number density follows an
// overdensity field with mode amplitudes proportional to k^(-1/2). The k=0
// mode is excluded, so the field has zero mean. All randomness comes from
// rng, so a fixed seed reproduces the ensemble exactly.
func Sample(p Params, rng *rand.Rand) (xs, vs []geom.Vec, err error) {
	if p.Particles <= 0 {
		return nil, nil, errors.New("ic: particle count must be positive")
	}
	if p.BoxLength <= 0 {
		return nil, nil, errors.New("ic: box length must be positive")
	}

	delta, err := overdensityField(p, rng)
	if err != nil {
		return nil, nil, err
	}

	g := geom.NewGrid(p.GridWidth, p.BoxLength)

	// Cumulative cell weights for inverse-CDF sampling. Cells emptied by
	// the max(1+delta, 0) clip get zero weight.
	cum := make([]float64, g.Volume)
	total := 0.0
	for i, d := range delta {
		w := 1 + d
		if w < 0 {
			w = 0
		}
		total += w
		cum[i] = total
	}
	if total <= 0 {
		return nil, nil, errors.New("ic: degenerate overdensity field")
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
	cw := g.CellWidth

	xs = make([]geom.Vec, p.Particles)
	vs = make([]geom.Vec, p.Particles)
	for i := range xs {
		u := rng.Float64() * total
		cell := sort.SearchFloat64s(cum, u)
		if cell == g.Volume {
			cell--
		}
		cx, cy, cz := g.Coords(cell)

		// Uniform placement inside the host cell keeps positions in [0, L).
		xs[i] = geom.Vec{
			(float64(cx) + rng.Float64()) * cw,
			(float64(cy) + rng.Float64()) * cw,
			(float64(cz) + rng.Float64()) * cw,
		}
		vs[i] = geom.Vec{
			normal.Rand() * p.VelocitySigma,
			normal.Rand() * p.VelocitySigma,
			normal.Rand() * p.VelocitySigma,
		}
	}

	return xs, vs, nil
}

// overdensityField realizes a real zero-mean Gaussian random field with
// power spectrum P(k) ~ 1/k. Each nonzero mode gets an independent complex
// Gaussian amplitude scaled by k^(-1/2); taking the real part of the
// inverse transform projects onto the Hermitian-symmetric component, which
// only changes the field's normalization.
func overdensityField(p Params, rng *rand.Rand) ([]float64, error) {
	ft, err := fourier.New(p.GridWidth)
	if err != nil {
		return nil, fmt.Errorf("ic: %w", err)
	}

	n := p.GridWidth
	ks := fourier.Freqs(n, p.BoxLength)
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}

	spec := make([]complex128, n*n*n)
	idx := 0
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				k2 := ks[x]*ks[x] + ks[y]*ks[y] + ks[z]*ks[z]
				if k2 > 0 {
					amp := math.Pow(k2, -0.25)
					spec[idx] = complex(
						amp*normal.Rand(), amp*normal.Rand(),
					)
				}
				idx++
			}
		}
	}

	delta := ft.InverseReal(spec)

	if p.Contrast > 0 {
		std := stat.StdDev(delta, nil)
		if std > 0 {
			scale := p.Contrast / std
			for i := range delta {
				delta[i] *= scale
			}
		}
	}
	return delta, nil
}
