package io

import (
	"fmt"
	"os"
	"strings"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/baryfold/gopm/geom"
)

// WriteMapNpy writes a map to a NumPy .npy file, the dense-array format the
// reference-map pipeline and the downstream model consume. The array shape
// is height x width.
func WriteMapNpy(path string, vals []float64, height, width int) error {
	if len(vals) != height*width {
		return fmt.Errorf(
			"io: map length %d doesn't match %dx%d", len(vals), height, width,
		)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	m := mat.NewDense(height, width, vals)
	return npyio.Write(f, m)
}

// WriteMapTxt writes a map as whitespace-separated text, one row per line.
// Useful for eyeballing small maps while debugging.
func WriteMapTxt(path string, vals []float64, height, width int) error {
	if len(vals) != height*width {
		return fmt.Errorf(
			"io: map length %d doesn't match %dx%d", len(vals), height, width,
		)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	line := make([]string, width)
	for j := 0; j < height; j++ {
		row := vals[j*width : (j+1)*width]
		for i, v := range row {
			line[i] = fmt.Sprintf("%.6e", v)
		}
		if _, err := fmt.Fprintln(f, strings.Join(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// WriteParticleCSV writes particle positions as x,y,z CSV rows.
func WriteParticleCSV(path string, xs []geom.Vec) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, "x,y,z"); err != nil {
		return err
	}
	for _, x := range xs {
		_, err := fmt.Fprintf(f, "%g,%g,%g\n", x[0], x[1], x[2])
		if err != nil {
			return err
		}
	}
	return nil
}
