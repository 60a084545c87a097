package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveStep(t *testing.T) {
	t.Parallel()

	r := NewRecorder()

	r.ObserveStep("build", 1500*time.Millisecond, nil)
	r.ObserveStep("build", 2*time.Second, errors.New("exit status 1"))

	assert.InDelta(t, 2.0, testutil.ToFloat64(r.stepDuration.WithLabelValues("build")), 0.0001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(r.stepResults.WithLabelValues("build", "succeeded")), 0.0001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(r.stepResults.WithLabelValues("build", "failed")), 0.0001)
}

func TestRecorder_ObserveRun(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	now := time.Unix(1700000000, 0)

	r.ObserveRun(now, nil)
	assert.InDelta(t, 1.0, testutil.ToFloat64(r.lastRunStatus), 0.0001)
	assert.InDelta(t, 1700000000.0, testutil.ToFloat64(r.lastRunTime), 0.0001)

	r.ObserveRun(now, errors.New("upload failed"))
	assert.InDelta(t, 0.0, testutil.ToFloat64(r.lastRunStatus), 0.0001)
}

func TestRecorder_WriteTextfile(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.ObserveStep("preflight", time.Second, nil)

	path := filepath.Join(t.TempDir(), "nace_publish.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `nace_publish_step_duration_seconds{step="preflight"} 1`)
	assert.Contains(t, string(data), `nace_publish_step_results_total{result="succeeded",step="preflight"} 1`)
}

func TestRecorder_WriteTextfileBadPath(t *testing.T) {
	t.Parallel()

	r := NewRecorder()

	require.ErrorContains(t, r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom")), "writing metrics")
}
