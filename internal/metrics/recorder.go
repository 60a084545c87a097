package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type stepResult string

var (
	succeeded stepResult = "succeeded"
	failed    stepResult = "failed"
)

// Recorder collects step timings of one publish run for export as a
// node_exporter textfile.
type Recorder struct {
	registry *prometheus.Registry

	stepDuration  *prometheus.GaugeVec
	stepResults   *prometheus.CounterVec
	lastRunStatus prometheus.Gauge // 1 - succeeded, 0 - failed
	lastRunTime   prometheus.Gauge
}

func NewRecorder() *Recorder {
	stepDuration := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nace_publish_step_duration_seconds",
			Help: "Wall clock duration of the last execution of a publish step",
		}, []string{"step"})

	stepResults := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nace_publish_step_results_total",
			Help: "Publish step executions, grouped by step and 'succeeded' or 'failed'",
		}, []string{"step", "result"})

	lastRunStatus := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "nace_publish_last_run_success",
			Help: "Whether the last publish run succeeded",
		})

	lastRunTime := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "nace_publish_last_run_timestamp_seconds",
			Help: "Unix time the last publish run finished",
		})

	registry := prometheus.NewRegistry()
	registry.MustRegister(stepDuration, stepResults, lastRunStatus, lastRunTime)

	return &Recorder{
		registry:      registry,
		stepDuration:  stepDuration,
		stepResults:   stepResults,
		lastRunStatus: lastRunStatus,
		lastRunTime:   lastRunTime,
	}
}

func (r *Recorder) ObserveStep(step string, d time.Duration, err error) {
	r.stepDuration.WithLabelValues(step).Set(d.Seconds())

	result := succeeded
	if err != nil {
		result = failed
	}
	r.stepResults.WithLabelValues(step, string(result)).Inc()
}

func (r *Recorder) ObserveRun(finished time.Time, err error) {
	if err != nil {
		r.lastRunStatus.Set(0)
	} else {
		r.lastRunStatus.Set(1)
	}
	r.lastRunTime.Set(float64(finished.Unix()))
}

// WriteTextfile writes all metrics in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}

	return nil
}
