// Package tui provides the Bubble Tea terminal UI for the step wizard.
package tui

import "github.com/imamik/stepform/internal/wizard"

// SubmittedMsg carries the outcome of a submission.
type SubmittedMsg struct {
	Receipt *wizard.Receipt
	Err     error
}
