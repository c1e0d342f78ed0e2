/*package fourier computes forward and inverse discrete Fourier transforms
over cubic periodic lattices stored as flat slices.
*/
package fourier

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// Transform performs 3D DFTs on a cubic grid of fixed side length by
// applying 1D FFTs one axis at a time. A Transform is not safe for
// concurrent use; allocate one per simulation run.
type Transform struct {
	width, area, volume int
	line                []complex128
}

// New creates a Transform for grids with the given side length in cells.
// The side length must be a power of two.
func New(width int) (*Transform, error) {
	if width < 2 || !isPowerOfTwo(width) {
		return nil, fmt.Errorf(
			"fourier: grid width %d is not a power of two", width,
		)
	}

	return &Transform{
		width:  width,
		area:   width * width,
		volume: width * width * width,
		line:   make([]complex128, width),
	}, nil
}

// Width returns the grid side length the Transform was created for.
func (t *Transform) Width() int { return t.width }

// Forward transforms a real grid into its complex frequency-domain
// representation. The input slice is left unmodified.
func (t *Transform) Forward(vals []float64) []complex128 {
	if len(vals) != t.volume {
		panic("fourier: grid length doesn't match transform width")
	}

	buf := make([]complex128, t.volume)
	for i, v := range vals {
		buf[i] = complex(v, 0)
	}
	t.apply(buf, false)
	return buf
}

// Inverse transforms a frequency-domain grid back to real space, returning
// the real part. The inverse includes the 1/N^3 normalization, so
// InverseReal(Forward(vals)) reproduces vals up to floating-point error.
// The input slice is modified in place.
func (t *Transform) InverseReal(spec []complex128) []float64 {
	if len(spec) != t.volume {
		panic("fourier: grid length doesn't match transform width")
	}

	t.apply(spec, true)
	vals := make([]float64, t.volume)
	for i, c := range spec {
		vals[i] = real(c)
	}
	return vals
}

// apply runs 1D transforms along each of the three axes in turn. The x axis
// is contiguous in memory; y and z are strided.
func (t *Transform) apply(buf []complex128, inverse bool) {
	n := t.width

	for off := 0; off < t.volume; off += n {
		copy(t.line, buf[off:off+n])
		copy(buf[off:off+n], t.transformLine(inverse))
	}

	for z := 0; z < n; z++ {
		for x := 0; x < n; x++ {
			base := x + z*t.area
			for y := 0; y < n; y++ {
				t.line[y] = buf[base+y*n]
			}
			out := t.transformLine(inverse)
			for y := 0; y < n; y++ {
				buf[base+y*n] = out[y]
			}
		}
	}

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			base := x + y*n
			for z := 0; z < n; z++ {
				t.line[z] = buf[base+z*t.area]
			}
			out := t.transformLine(inverse)
			for z := 0; z < n; z++ {
				buf[base+z*t.area] = out[z]
			}
		}
	}
}

func (t *Transform) transformLine(inverse bool) []complex128 {
	if inverse {
		return fft.IFFT(t.line)
	}
	return fft.FFT(t.line)
}

// Freqs returns the angular wavenumber associated with each 1D grid index,
// following the standard FFT frequency convention: indices below width/2
// are non-negative frequencies and the rest are negative.
func Freqs(width int, boxLength float64) []float64 {
	ks := make([]float64, width)
	scale := 2 * math.Pi / boxLength
	for i := range ks {
		freq := i
		if i >= (width+1)/2 {
			freq = i - width
		}
		ks[i] = float64(freq) * scale
	}
	return ks
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
