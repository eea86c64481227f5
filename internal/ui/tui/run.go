package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/stepform/internal/wizard"
)

// Run shows the wizard until the user quits. It returns the receipt of a
// successful submission, or nil when the user left before submitting.
// Quitting cancels a pending submission, which keeps the draft.
func Run(ctx context.Context, w *wizard.Wizard, router *wizard.Router) (*wizard.Receipt, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewModel(ctx, w, router)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Receipt == nil && fm.Err != nil {
		return nil, fm.Err
	}
	return fm.Receipt, nil
}
