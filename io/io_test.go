package io

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baryfold/gopm/geom"
)

func TestReadSimFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.config")
	text := `[Sim]
GridWidth = 64
BoxLength = 100.0
Particles = 32768
Steps = 20
Dt = 0.005
Growth = 2.5
Seed = 7
ProjectionAxis = X
MapHeight = 128
MapWidth = 128
`
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))

	cfg, err := ReadSimFile(path)
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.GridWidth)
	assert.Equal(t, 100.0, cfg.BoxLength)
	assert.Equal(t, 32768, cfg.Particles)
	assert.Equal(t, 20, cfg.Steps)
	assert.Equal(t, 0.005, cfg.Dt)
	assert.Equal(t, 2.5, cfg.Growth)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 0, cfg.ProjectionAxis)
	assert.Equal(t, 128, cfg.MapHeight)

	// Fields the file omits keep their defaults.
	assert.Equal(t, 1.0, cfg.ParticleMass)
	assert.NoError(t, cfg.Validate())
}

func TestReadSimFileBadAxis(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.config")
	text := "[Sim]\nProjectionAxis = W\n"
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))

	_, err := ReadSimFile(path)
	assert.Error(t, err)
}

func TestExampleSimFileParses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "example.config")
	require.NoError(t, os.WriteFile(path, []byte(ExampleSimFile), 0644))

	cfg, err := ReadSimFile(path)
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
}

func TestWriteMapNpy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.npy")

	vals := []float64{1, 2, 3, 4, 5, 6}
	require.NoError(t, WriteMapNpy(path, vals, 2, 3))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 6*8, "npy file too small")
	assert.Equal(t, "\x93NUMPY", string(data[:6]))

	assert.Error(t, WriteMapNpy(path, vals, 4, 4))
}

func TestWriteMapTxt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.txt")

	vals := []float64{1, 2, 3, 4}
	require.NoError(t, WriteMapTxt(path, vals, 2, 2))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 2, len(strings.Fields(lines[0])))
}

func TestWriteParticleCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parts.csv")

	xs := []geom.Vec{{1, 2, 3}, {4.5, 5.5, 6.5}}
	require.NoError(t, WriteParticleCSV(path, xs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "x,y,z", lines[0])
	assert.Equal(t, "1,2,3", lines[1])
}
