package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenarios(t *testing.T) {
	got, err := loadScenarios("scenarios.yaml", 7)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, scenario{Name: "single chain", Width: 1, Height: 100, Iters: 7}, got[0])
	assert.Equal(t, "wide fan-out", got[1].label())
	assert.Equal(t, 50, got[2].Iters)
}

func TestLoadScenariosRejectsEmptyGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios:\n  - name: flat\n    width: 0\n    height: 3\n"), 0644))

	_, err := loadScenarios(path, 1)
	assert.ErrorContains(t, err, `"flat"`)

	_, err = loadScenarios(filepath.Join(t.TempDir(), "missing.yaml"), 1)
	assert.Error(t, err)
}

func TestDefaultScenarios(t *testing.T) {
	got := defaultScenarios(3)
	require.Len(t, got, len(ww)*len(hh))
	assert.Equal(t, "propagate: 1 * 1", got[0].label())
	assert.Equal(t, "propagate: 100 * 100", got[len(got)-1].label())
}
