package wizard

import (
	"context"
	"time"

	"github.com/imamik/stepform/internal/form"
)

// DefaultSubmitDelay is how long SimulatedSubmitter pretends the network
// round trip takes.
const DefaultSubmitDelay = 2 * time.Second

// Submitter delivers a completed record.
type Submitter interface {
	Submit(ctx context.Context, data form.Data) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, data form.Data) error

// Submit implements Submitter.
func (f SubmitterFunc) Submit(ctx context.Context, data form.Data) error {
	return f(ctx, data)
}

// SimulatedSubmitter waits a fixed delay and succeeds. It only fails when
// ctx ends first.
type SimulatedSubmitter struct {
	Delay time.Duration
}

// Submit implements Submitter.
func (s SimulatedSubmitter) Submit(ctx context.Context, _ form.Data) error {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Receipt confirms a successful submission.
type Receipt struct {
	ID          string
	SubmittedAt time.Time
	Data        form.Data
}
