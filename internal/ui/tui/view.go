package tui

import (
	"fmt"
	"strings"

	"github.com/imamik/stepform/internal/form"
	"github.com/imamik/stepform/internal/wizard"
)

const (
	thankYouTitle = "Thank You!"
	thankYouBody  = "Thank you for filling the form. We appreciate you taking the time to share your details."
)

func renderView(m Model) string {
	var b strings.Builder

	if m.router.Current() == wizard.RouteThankYou {
		renderThankYou(&b, m)
		return b.String()
	}

	renderHeader(&b)
	renderSteps(&b, m)

	if m.form != nil {
		b.WriteString("\n")
		b.WriteString(m.form.View())
	} else {
		renderConfirmation(&b, m)
	}

	if m.Err != nil {
		b.WriteString("\n")
		b.WriteString(failedStyle.Render(fmt.Sprintf("  Error: %v", m.Err)))
		b.WriteString("\n")
	}

	renderFooter(&b, m)
	return b.String()
}

func renderHeader(b *strings.Builder) {
	b.WriteString(titleStyle.Render("stepform"))
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Multi-step form"))
	b.WriteString("\n")
}

// renderSteps draws the step navigation: completed steps are checked, the
// active one shows the direction it was entered from.
func renderSteps(b *strings.Builder, m Model) {
	current := m.wizard.Current()
	marker := forwardMark
	if m.wizard.Direction() == wizard.Backward {
		marker = backMark
	}

	for i, step := range m.wizard.Steps() {
		switch {
		case i < current:
			fmt.Fprintf(b, "  %s %s\n", doneStyle.Render(checkMark), doneStyle.Render(step.ID+"  "+step.Name))
		case i == current:
			fmt.Fprintf(b, "  %s %s\n", activeStyle.Render(marker), activeStyle.Render(step.ID+"  "+step.Name))
		default:
			fmt.Fprintf(b, "  %s %s\n", dimStyle.Render(pending), dimStyle.Render(step.ID+"  "+step.Name))
		}
	}
}

func renderConfirmation(b *strings.Builder, m Model) {
	step := m.wizard.Step()
	b.WriteString(sectionStyle.Render("  " + step.Name))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("  " + step.Description))
	b.WriteString("\n\n")

	data := m.wizard.Data()
	for _, f := range form.Fields {
		fmt.Fprintf(b, "  %s %s\n", labelStyle.Render(form.Label(f)), activeStyle.Render(data.Get(f)))
	}

	b.WriteString("\n")
	if m.submitting {
		fmt.Fprintf(b, "  %s %s\n", m.spinner.View(), activeStyle.Render("Submitting..."))
	}
}

func renderThankYou(b *strings.Builder, m Model) {
	b.WriteString(thankYouStyle.Render(thankYouTitle))
	b.WriteString("\n\n")
	b.WriteString(thankYouBody)
	b.WriteString("\n")
	if m.Receipt != nil {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Reference: " + m.Receipt.ID))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render("enter/q: exit"))
	b.WriteString("\n")
}

func renderFooter(b *strings.Builder, m Model) {
	var keys []string
	switch {
	case m.submitting:
		keys = append(keys, "ctrl+c: cancel (draft is kept)")
	case m.form == nil:
		keys = append(keys, "enter: submit", "esc: back", "ctrl+c: quit")
	case m.wizard.IsFirst():
		keys = append(keys, "ctrl+c: quit (draft is kept)")
	default:
		keys = append(keys, "esc: back", "ctrl+c: quit (draft is kept)")
	}
	b.WriteString(footerStyle.Render(strings.Join(keys, "  ")))
	b.WriteString("\n")
}
