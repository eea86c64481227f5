package tui

import (
	"context"
	"errors"
	"slices"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/imamik/stepform/internal/form"
	"github.com/imamik/stepform/internal/wizard"
)

// Model is the Bubble Tea model for the wizard and thank-you screens.
type Model struct {
	ctx    context.Context
	wizard *wizard.Wizard
	router *wizard.Router

	// values is bound to the inputs of the active form. It is a pointer so
	// every copy of the model edits the same record.
	values *form.Data
	form   *huh.Form

	spinner    spinner.Model
	submitting bool

	// Outcome
	Receipt  *wizard.Receipt
	Err      error
	Quitting bool

	// UI state
	Width  int
	Height int
}

// NewModel creates a model showing the wizard's current step.
func NewModel(ctx context.Context, w *wizard.Wizard, router *wizard.Router) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = activeStyle

	m := Model{
		ctx:     ctx,
		wizard:  w,
		router:  router,
		values:  &form.Data{},
		spinner: s,
	}
	*m.values = w.Data()
	m.form = newStepForm(w.Step(), m.values)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.form == nil {
		return nil
	}
	return m.form.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.router.Current() == wizard.RouteThankYou {
			switch msg.String() {
			case "q", "enter", "esc":
				return m, tea.Quit
			}
			return m, nil
		}
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			cmd := m.retreat()
			return m, cmd
		case "enter":
			if m.form == nil {
				return m.startSubmit()
			}
		}

	case SubmittedMsg:
		m.submitting = false
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Receipt = msg.Receipt
		m.form = nil
		*m.values = form.Data{}
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.form == nil {
		return m, nil
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}
	m.sync()

	switch m.form.State {
	case huh.StateCompleted:
		next := m.advance()
		return m, tea.Batch(cmd, next)
	case huh.StateAborted:
		m.Quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// sync pushes edits made in the form into the wizard, which autosaves them.
func (m Model) sync() {
	current := m.wizard.Data()
	for _, f := range form.Fields {
		if v := m.values.Get(f); v != current.Get(f) {
			_ = m.wizard.Set(m.ctx, f, v)
		}
	}
}

func (m *Model) advance() tea.Cmd {
	if err := m.wizard.Advance(); err != nil {
		return m.rebuild(m.wizard.Focus())
	}
	return m.rebuild("")
}

func (m *Model) retreat() tea.Cmd {
	if !m.wizard.Retreat() {
		return nil
	}
	m.Err = nil
	return m.rebuild("")
}

func (m Model) startSubmit() (tea.Model, tea.Cmd) {
	m.submitting = true
	m.Err = nil
	return m, tea.Batch(m.spinner.Tick, submitCmd(m.ctx, m.wizard))
}

func submitCmd(ctx context.Context, w *wizard.Wizard) tea.Cmd {
	return func() tea.Msg {
		receipt, err := w.Submit(ctx)
		return SubmittedMsg{Receipt: receipt, Err: err}
	}
}

// rebuild replaces the form with one for the active step, focused on
// focus when it names one of the step's fields.
func (m *Model) rebuild(focus form.Field) tea.Cmd {
	*m.values = m.wizard.Data()
	step := m.wizard.Step()
	m.form = newStepForm(step, m.values)
	if m.form == nil {
		return nil
	}

	cmds := []tea.Cmd{m.form.Init()}
	for i := 0; i < slices.Index(step.Fields, focus); i++ {
		cmds = append(cmds, m.form.NextField())
	}
	return tea.Batch(cmds...)
}

// newStepForm returns the input form for step, or nil for a step without
// fields.
func newStepForm(step wizard.Step, values *form.Data) *huh.Form {
	if step.Confirms() {
		return nil
	}

	fields := make([]huh.Field, 0, len(step.Fields))
	for _, f := range step.Fields {
		spec, _ := form.Lookup(f)
		fields = append(fields, huh.NewInput().
			Key(string(f)).
			Title(spec.String()).
			Placeholder(spec.Placeholder).
			Value(values.Ptr(f)).
			Validate(validator(f)))
	}

	return huh.NewForm(
		huh.NewGroup(fields...).
			Title(step.Name).
			Description(step.Description),
	).WithShowHelp(true).WithShowErrors(true)
}

// validator adapts a field rule to huh, which shows the error text inline.
func validator(f form.Field) func(string) error {
	return func(value string) error {
		err := form.Validate(f, value)
		var fe *form.FieldError
		if errors.As(err, &fe) {
			return errors.New(fe.Message)
		}
		return err
	}
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
