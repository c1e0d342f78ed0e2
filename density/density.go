/*package density deposits sequences of particle positions onto a density
grid and interpolates grid fields back to particle positions.

Both directions use the same cloud-in-cell (CIC) weights: a particle's
contribution is split across the 8 surrounding grid nodes with trilinear
weights that sum to 1, wrapping periodically at the box edges. Using the
same weights for deposit and read-back keeps the force a particle feels
consistent with the density it sources.
*/
package density

import (
	"math"

	"github.com/baryfold/gopm/geom"
)

// Deposit accumulates the mass of every particle in xs onto rhos via CIC.
// rhos holds mass per cell volume, so after depositing all particles the
// grid integrates to the total particle mass.
func Deposit(g *geom.Grid, rhos []float64, xs []geom.Vec, mass float64) {
	if len(rhos) != g.Volume {
		panic("density: grid length doesn't match grid width")
	}

	frac := mass / g.CellVolume
	cw := g.CellWidth

	for _, pt := range xs {
		xg, yg, zg := pt[0]/cw, pt[1]/cw, pt[2]/cw
		x0 := int(math.Floor(xg))
		y0 := int(math.Floor(yg))
		z0 := int(math.Floor(zg))
		dx, dy, dz := xg-float64(x0), yg-float64(y0), zg-float64(z0)
		tx, ty, tz := 1-dx, 1-dy, 1-dz

		rhos[g.PIdx(x0, y0, z0)] += tx * ty * tz * frac
		rhos[g.PIdx(x0+1, y0, z0)] += dx * ty * tz * frac
		rhos[g.PIdx(x0, y0+1, z0)] += tx * dy * tz * frac
		rhos[g.PIdx(x0, y0, z0+1)] += tx * ty * dz * frac
		rhos[g.PIdx(x0+1, y0+1, z0)] += dx * dy * tz * frac
		rhos[g.PIdx(x0+1, y0, z0+1)] += dx * ty * dz * frac
		rhos[g.PIdx(x0, y0+1, z0+1)] += tx * dy * dz * frac
		rhos[g.PIdx(x0+1, y0+1, z0+1)] += dx * dy * dz * frac
	}
}

// Clear zeroes a density grid so it can be repopulated.
func Clear(rhos []float64) {
	for i := range rhos {
		rhos[i] = 0
	}
}

// Interpolate returns the CIC-weighted value of a grid field at pt.
func Interpolate(g *geom.Grid, field []float64, pt geom.Vec) float64 {
	cw := g.CellWidth
	xg, yg, zg := pt[0]/cw, pt[1]/cw, pt[2]/cw
	x0 := int(math.Floor(xg))
	y0 := int(math.Floor(yg))
	z0 := int(math.Floor(zg))
	dx, dy, dz := xg-float64(x0), yg-float64(y0), zg-float64(z0)
	tx, ty, tz := 1-dx, 1-dy, 1-dz

	return field[g.PIdx(x0, y0, z0)]*tx*ty*tz +
		field[g.PIdx(x0+1, y0, z0)]*dx*ty*tz +
		field[g.PIdx(x0, y0+1, z0)]*tx*dy*tz +
		field[g.PIdx(x0, y0, z0+1)]*tx*ty*dz +
		field[g.PIdx(x0+1, y0+1, z0)]*dx*dy*tz +
		field[g.PIdx(x0+1, y0, z0+1)]*dx*ty*dz +
		field[g.PIdx(x0, y0+1, z0+1)]*tx*dy*dz +
		field[g.PIdx(x0+1, y0+1, z0+1)]*dx*dy*dz
}

// InterpolateVec returns the CIC-weighted vector assembled from three
// per-axis grid fields at pt. Used to read per-particle forces off the grid.
func InterpolateVec(g *geom.Grid, fx, fy, fz []float64, pt geom.Vec) geom.Vec {
	return geom.Vec{
		Interpolate(g, fx, pt),
		Interpolate(g, fy, pt),
		Interpolate(g, fz, pt),
	}
}
