package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/imamik/stepform/internal/form"
)

// Direction is the sense of the most recent step transition.
type Direction int

// Transition directions.
const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// DraftStore persists the in-progress record.
type DraftStore interface {
	Load(ctx context.Context) (form.Data, bool, error)
	Clear(ctx context.Context) error
}

// Observer is notified with the full record after every change.
type Observer func(ctx context.Context, data form.Data)

// Recorder receives wizard events. *metrics.Recorder implements it.
type Recorder interface {
	RecordTransition(from, to int)
	RecordValidationFailure(err error)
	RecordSubmit(d time.Duration, err error)
	RecordRestore(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordTransition(int, int)         {}
func (nopRecorder) RecordValidationFailure(error)     {}
func (nopRecorder) RecordSubmit(time.Duration, error) {}
func (nopRecorder) RecordRestore(string)              {}

// Option configures a Wizard.
type Option func(*Wizard)

// WithStore sets the draft store used by Restore and Submit.
func WithStore(store DraftStore) Option {
	return func(w *Wizard) {
		w.store = store
	}
}

// WithObserver registers a change observer.
func WithObserver(o Observer) Option {
	return func(w *Wizard) {
		w.observers = append(w.observers, o)
	}
}

// WithSubmitter replaces the default SimulatedSubmitter.
func WithSubmitter(s Submitter) Option {
	return func(w *Wizard) {
		w.submitter = s
	}
}

// WithNavigator sets where Submit navigates on success.
func WithNavigator(n Navigator) Option {
	return func(w *Wizard) {
		w.nav = n
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(w *Wizard) {
		if r != nil {
			w.recorder = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(w *Wizard) {
		w.logger = l
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) {
		w.now = now
	}
}

// Wizard is the step state machine. It is safe for concurrent use.
type Wizard struct {
	// notifyMu orders observer notifications against the start of a
	// submission: Submit takes it exclusively to flip the submitting flag.
	notifyMu sync.RWMutex

	mu         sync.Mutex
	steps      []Step
	data       form.Data
	current    int
	previous   int
	submitting bool
	errs       form.ValidationErrors
	focus      form.Field

	store     DraftStore
	observers []Observer
	submitter Submitter
	nav       Navigator
	recorder  Recorder
	logger    logr.Logger
	now       func() time.Time
}

// New creates a wizard positioned at step 0 with an empty record.
func New(opts ...Option) *Wizard {
	w := &Wizard{
		steps:     DefaultSteps,
		submitter: SimulatedSubmitter{Delay: DefaultSubmitDelay},
		recorder:  nopRecorder{},
		logger:    logr.Discard(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.nav == nil {
		w.nav = NewRouter()
	}
	return w
}

// Restore loads the saved draft, if any, into the record. A draft that
// cannot be read is logged and the wizard keeps its empty record.
func (w *Wizard) Restore(ctx context.Context) (bool, error) {
	if w.store == nil {
		return false, nil
	}

	data, ok, err := w.store.Load(ctx)
	switch {
	case err != nil:
		w.recorder.RecordRestore("error")
		w.logger.Error(err, "failed to restore draft")
		return false, fmt.Errorf("failed to restore draft: %w", err)
	case !ok:
		w.recorder.RecordRestore("empty")
		return false, nil
	}

	w.mu.Lock()
	w.data = data
	w.mu.Unlock()

	w.recorder.RecordRestore("restored")
	w.logger.V(1).Info("draft restored")
	return true, nil
}

// Set changes one field and clears its recorded error.
func (w *Wizard) Set(ctx context.Context, field form.Field, value string) error {
	w.mu.Lock()
	if w.data.Get(field) == value {
		w.mu.Unlock()
		return nil
	}
	if err := w.data.Set(field, value); err != nil {
		w.mu.Unlock()
		return err
	}
	w.errs = w.errs.Without(field)
	w.mu.Unlock()

	w.notify(ctx)
	return nil
}

// Update replaces the whole record.
func (w *Wizard) Update(ctx context.Context, data form.Data) {
	w.mu.Lock()
	w.data = data
	w.errs = nil
	w.mu.Unlock()

	w.notify(ctx)
}

func (w *Wizard) notify(ctx context.Context) {
	w.notifyMu.RLock()
	defer w.notifyMu.RUnlock()

	w.mu.Lock()
	suspended := w.submitting
	data := w.data
	observers := w.observers
	w.mu.Unlock()

	if suspended {
		return
	}
	for _, o := range observers {
		o(ctx, data)
	}
}

// Advance validates the current step and moves to the next one. On the
// final step it does nothing.
func (w *Wizard) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.submitting {
		return ErrSubmitInProgress
	}
	if w.current == len(w.steps)-1 {
		return nil
	}

	if err := form.ValidateFields(w.data, w.steps[w.current].Fields...); err != nil {
		var verrs form.ValidationErrors
		if errors.As(err, &verrs) {
			w.errs = verrs
			w.focus, _ = verrs.First()
		}
		w.recorder.RecordValidationFailure(err)
		return err
	}

	w.errs = nil
	w.focus = ""
	w.move(w.current + 1)
	return nil
}

// Retreat moves to the previous step. It reports false at step 0 and
// while a submission is pending.
func (w *Wizard) Retreat() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.submitting || w.current == 0 {
		return false
	}
	w.move(w.current - 1)
	return true
}

func (w *Wizard) move(to int) {
	w.recorder.RecordTransition(w.current, to)
	w.previous = w.current
	w.current = to
}

// Submit validates every field and delivers the record from the final step.
// A record that fails validation is returned as form.ValidationErrors with
// the focus on the first failing field. Change observers are
// suspended until it returns. On success the draft is cleared, the record
// and step are reset and the navigator is sent to RouteThankYou. On failure
// the record and draft are left as they were.
func (w *Wizard) Submit(ctx context.Context) (*Receipt, error) {
	w.notifyMu.Lock()
	w.mu.Lock()
	switch {
	case w.submitting:
		w.mu.Unlock()
		w.notifyMu.Unlock()
		return nil, ErrSubmitInProgress
	case w.current != len(w.steps)-1:
		w.mu.Unlock()
		w.notifyMu.Unlock()
		return nil, ErrNotFinalStep
	}
	if err := form.ValidateAll(w.data); err != nil {
		var verrs form.ValidationErrors
		if errors.As(err, &verrs) {
			w.errs = verrs
			w.focus, _ = verrs.First()
		}
		w.mu.Unlock()
		w.notifyMu.Unlock()
		w.recorder.RecordValidationFailure(err)
		return nil, err
	}
	w.submitting = true
	data := w.data
	w.mu.Unlock()
	w.notifyMu.Unlock()

	start := w.now()
	err := w.submitter.Submit(ctx, data)
	w.recorder.RecordSubmit(w.now().Sub(start), err)
	if err != nil {
		w.mu.Lock()
		w.submitting = false
		w.mu.Unlock()
		w.logger.Error(err, "submission failed")
		return nil, fmt.Errorf("failed to submit form: %w", err)
	}

	if w.store != nil {
		if err := w.store.Clear(ctx); err != nil {
			w.logger.Error(err, "failed to clear draft after submission")
		}
	}

	w.mu.Lock()
	w.data = form.Data{}
	w.errs = nil
	w.focus = ""
	w.previous = w.current
	w.current = 0
	w.submitting = false
	w.mu.Unlock()

	receipt := &Receipt{
		ID:          uuid.NewString(),
		SubmittedAt: start,
		Data:        data,
	}
	w.logger.Info("form submitted", "receipt", receipt.ID)
	w.logger.V(1).Info("submitted record",
		"receipt", receipt.ID,
		"name", data.Name,
		"email", data.Email,
		"phone", data.Phone,
		"address1", data.Address1,
		"address2", data.Address2,
		"city", data.City,
		"state", data.State,
		"zip", data.Zip,
	)

	w.nav.Navigate(RouteThankYou)
	return receipt, nil
}

// Current returns the active step index.
func (w *Wizard) Current() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Previous returns the step index before the last transition.
func (w *Wizard) Previous() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.previous
}

// Step returns the active step.
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.steps[w.current]
}

// Steps returns the step table.
func (w *Wizard) Steps() []Step {
	return append([]Step(nil), w.steps...)
}

// Direction reports forward when current >= previous.
func (w *Wizard) Direction() Direction {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.current >= w.previous {
		return Forward
	}
	return Backward
}

// Data returns a copy of the record.
func (w *Wizard) Data() form.Data {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.data
}

// Errors returns the errors recorded by the last failed Advance.
func (w *Wizard) Errors() form.ValidationErrors {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append(form.ValidationErrors(nil), w.errs...)
}

// FieldError returns the recorded message for field, or "".
func (w *Wizard) FieldError(field form.Field) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if fe, ok := w.errs.For(field); ok {
		return fe.Message
	}
	return ""
}

// Focus returns the first invalid field of the last failed Advance.
func (w *Wizard) Focus() form.Field {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.focus
}

// Submitting reports whether a submission is pending.
func (w *Wizard) Submitting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitting
}

// IsFirst reports whether the active step is the first.
func (w *Wizard) IsFirst() bool {
	return w.Current() == 0
}

// IsLast reports whether the active step is the confirmation step.
func (w *Wizard) IsLast() bool {
	return w.Current() == len(w.steps)-1
}
