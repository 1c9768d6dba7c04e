package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plbecker/scikit-learn/internal/config"
)

const smallExperiment = `
data:
  samples: 90
  labeled: 9
compare:
  labeled_counts: [6, 12]
  workers: 2
sweep:
  thresholds: [0.6, 0.95]
  workers: 2
logging:
  level: error
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallExperiment), 0o600))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", path}, args...))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", "--threshold", "0.8")
	require.NoError(t, err)
	assert.Contains(t, out, "TERMINATION")
	assert.Contains(t, out, "0.8")
}

func TestRun_FlagValidation(t *testing.T) {
	_, err := execute(t, "run", "--threshold", "1.5")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestSweep_WritesTextfile(t *testing.T) {
	prom := filepath.Join(t.TempDir(), "sweep.prom")
	out, err := execute(t, "--metrics-textfile", prom, "sweep", "--thresholds", "0.55,0.99")
	require.NoError(t, err)
	assert.Contains(t, out, "0.55")
	assert.Contains(t, out, "0.99")

	raw, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "selftrain_fits_total")
	assert.Contains(t, string(raw), `run="t=0.99,l=9"`)
}

func TestCompare(t *testing.T) {
	out, err := execute(t, "compare", "--labeled", "6,20")
	require.NoError(t, err)
	assert.Contains(t, out, "SUPERVISED ACC")
	assert.Contains(t, out, "20")
}

func TestMissingConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml"), "run"})
	cmd.SetOut(&bytes.Buffer{})
	assert.ErrorIs(t, cmd.Execute(), os.ErrNotExist)
}
