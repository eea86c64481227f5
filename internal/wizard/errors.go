package wizard

import "errors"

var (
	// ErrNotFinalStep is returned by Submit before the confirmation step.
	ErrNotFinalStep = errors.New("submit is only available on the final step")

	// ErrSubmitInProgress is returned while a submission is pending.
	ErrSubmitInProgress = errors.New("a submission is already in progress")
)
