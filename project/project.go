/*package project collapses 3D particle distributions into 2D surface
density maps along a chosen line of sight.
*/
package project

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/baryfold/gopm/geom"
)

// MapStats holds the summary statistics of a finished map, exposed so that
// downstream consumers never have to recompute them from particle data.
type MapStats struct {
	Mean, Std, Min, Max float64
}

// Project bins particle mass onto a height x width surface-density map via
// cloud-in-cell weights restricted to the two axes perpendicular to axis.
// The map is stored row major: index = i + j*width, where i runs along the
// first retained axis and j along the second. Values are mass per unit
// area.
func Project(
	xs []geom.Vec, mass float64, axis, height, width int, boxLength float64,
) ([]float64, error) {
	if axis < 0 || axis > 2 {
		return nil, fmt.Errorf("project: invalid projection axis %d", axis)
	}
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf(
			"project: invalid map dimensions %dx%d", height, width,
		)
	}

	iDim, jDim := 0, 1
	switch axis {
	case 0:
		iDim, jDim = 1, 2
	case 1:
		iDim, jDim = 0, 2
	}

	cwI := boxLength / float64(width)
	cwJ := boxLength / float64(height)
	frac := mass / (cwI * cwJ)

	vals := make([]float64, height*width)
	for _, pt := range xs {
		ig, jg := pt[iDim]/cwI, pt[jDim]/cwJ
		i0 := int(math.Floor(ig))
		j0 := int(math.Floor(jg))
		di, dj := ig-float64(i0), jg-float64(j0)
		ti, tj := 1-di, 1-dj

		i1 := geom.WrapIdx(i0+1, width)
		j1 := geom.WrapIdx(j0+1, height)
		i0 = geom.WrapIdx(i0, width)
		j0 = geom.WrapIdx(j0, height)

		vals[i0+j0*width] += ti * tj * frac
		vals[i1+j0*width] += di * tj * frac
		vals[i0+j1*width] += ti * dj * frac
		vals[i1+j1*width] += di * dj * frac
	}

	return vals, nil
}

// Log1p applies the dynamic-range compression log(1 + x) elementwise.
func Log1p(vals []float64) {
	for i, v := range vals {
		vals[i] = math.Log1p(v)
	}
}

// MatchMoments affinely rescales vals so its mean and standard deviation
// match the given targets. This exists to keep maps in-distribution for a
// downstream model calibrated against a reference dataset; it is a pure
// post-process with no physical meaning. A non-positive targetStd disables
// the transform.
func MatchMoments(vals []float64, targetMean, targetStd float64) {
	if targetStd <= 0 {
		return
	}

	mean := stat.Mean(vals, nil)
	std := stat.StdDev(vals, nil)
	if std == 0 {
		return
	}

	scale := targetStd / std
	for i, v := range vals {
		vals[i] = (v-mean)*scale + targetMean
	}
}

// Stats computes the summary statistics of a map.
func Stats(vals []float64) MapStats {
	return MapStats{
		Mean: stat.Mean(vals, nil),
		Std:  stat.StdDev(vals, nil),
		Min:  floats.Min(vals),
		Max:  floats.Max(vals),
	}
}
