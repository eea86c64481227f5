// Package metrics counts wizard activity with Prometheus collectors.
//
// There is no scrape endpoint. The collectors live in a private registry
// that can be written to a node-exporter textfile when the program exits.
package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/stepform/internal/form"
)

const namespace = "stepform"

// Recorder owns the collectors. A nil *Recorder records nothing.
type Recorder struct {
	registry *prometheus.Registry

	stepTransitions    *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	submissions        *prometheus.CounterVec
	submitDuration     prometheus.Histogram
	draftSaves         *prometheus.CounterVec
	draftRestores      *prometheus.CounterVec
}

// New registers every collector in a fresh registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		stepTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "wizard",
				Name:      "step_transitions_total",
				Help:      "Step changes by origin step, destination step and direction",
			},
			[]string{"from", "to", "direction"},
		),
		validationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "wizard",
				Name:      "validation_failures_total",
				Help:      "Fields that blocked advancing to the next step",
			},
			[]string{"field"},
		),
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "wizard",
				Name:      "submissions_total",
				Help:      "Submissions by result",
			},
			[]string{"result"},
		),
		submitDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "wizard",
				Name:      "submit_duration_seconds",
				Help:      "Time spent waiting on the submitter",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
			},
		),
		draftSaves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "draft",
				Name:      "saves_total",
				Help:      "Autosaves by result",
			},
			[]string{"result"},
		),
		draftRestores: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "draft",
				Name:      "restores_total",
				Help:      "Draft restore attempts at startup by outcome",
			},
			[]string{"outcome"},
		),
	}

	r.registry.MustRegister(
		r.stepTransitions,
		r.validationFailures,
		r.submissions,
		r.submitDuration,
		r.draftSaves,
		r.draftRestores,
	)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// RecordTransition records a step change.
func (r *Recorder) RecordTransition(from, to int) {
	if r == nil {
		return
	}
	direction := "forward"
	if to < from {
		direction = "backward"
	}
	r.stepTransitions.WithLabelValues(strconv.Itoa(from), strconv.Itoa(to), direction).Inc()
}

// RecordValidationFailure records each field that blocked advancing.
func (r *Recorder) RecordValidationFailure(err error) {
	if r == nil || err == nil {
		return
	}
	var verrs form.ValidationErrors
	if !errors.As(err, &verrs) {
		return
	}
	for _, fe := range verrs {
		r.validationFailures.WithLabelValues(string(fe.Field)).Inc()
	}
}

// RecordSubmit records the outcome and duration of a submission.
func (r *Recorder) RecordSubmit(d time.Duration, err error) {
	if r == nil {
		return
	}
	r.submissions.WithLabelValues(result(err)).Inc()
	r.submitDuration.Observe(d.Seconds())
}

// RecordDraftSave implements draft.SaveRecorder.
func (r *Recorder) RecordDraftSave(err error) {
	if r == nil {
		return
	}
	r.draftSaves.WithLabelValues(result(err)).Inc()
}

// RecordRestore records whether a draft was found at startup.
// outcome is one of "restored", "empty" or "error".
func (r *Recorder) RecordRestore(outcome string) {
	if r == nil {
		return
	}
	r.draftRestores.WithLabelValues(outcome).Inc()
}

// WriteTextfile writes every collector to path in the text exposition
// format, replacing the file atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
