package testing

import (
	"context"
	"testing"

	"github.com/go-logr/logr"

	"github.com/imamik/stepform/internal/draft"
	"github.com/imamik/stepform/internal/form"
	"github.com/imamik/stepform/internal/wizard"
)

// WizardFixture is a wizard that autosaves into an in-memory draft store
// and submits instantly.
type WizardFixture struct {
	Wizard  *wizard.Wizard
	Router  *wizard.Router
	Store   *draft.Store
	Backend *draft.MemoryBackend
}

// NewWizardFixture creates a fixture. Extra options are applied after the
// defaults, so they can replace the submitter or navigator.
func NewWizardFixture(t *testing.T, opts ...wizard.Option) *WizardFixture {
	t.Helper()

	backend := draft.NewMemoryBackend()
	store := draft.New(backend)
	router := wizard.NewRouter()
	t.Cleanup(func() { _ = store.Close() })

	base := []wizard.Option{
		wizard.WithStore(store),
		wizard.WithObserver(draft.Autosave(store, logr.Discard(), nil)),
		wizard.WithNavigator(router),
		wizard.WithSubmitter(InstantSubmitter()),
	}

	return &WizardFixture{
		Wizard:  wizard.New(append(base, opts...)...),
		Router:  router,
		Store:   store,
		Backend: backend,
	}
}

// AtConfirmation fills the wizard with data and advances to the last step.
func (f *WizardFixture) AtConfirmation(t *testing.T, data form.Data) {
	t.Helper()
	f.Wizard.Update(context.Background(), data)
	for !f.Wizard.IsLast() {
		if err := f.Wizard.Advance(); err != nil {
			t.Fatalf("advance from step %d: %v", f.Wizard.Current(), err)
		}
	}
}

// Draft returns the saved draft, failing the test on a load error.
func (f *WizardFixture) Draft(t *testing.T) (form.Data, bool) {
	t.Helper()
	data, found, err := f.Store.Load(context.Background())
	if err != nil {
		t.Fatalf("load draft: %v", err)
	}
	return data, found
}

// InstantSubmitter succeeds immediately.
func InstantSubmitter() wizard.Submitter {
	return wizard.SubmitterFunc(func(context.Context, form.Data) error { return nil })
}

// FailingSubmitter always returns err.
func FailingSubmitter(err error) wizard.Submitter {
	return wizard.SubmitterFunc(func(context.Context, form.Data) error { return err })
}
