package draft

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/imamik/stepform/internal/form"
)

// SaveRecorder observes the outcome of every autosave.
type SaveRecorder interface {
	RecordDraftSave(err error)
}

// Autosave returns a change observer that writes every change to store.
// Failures are logged and recorded, never returned.
func Autosave(store *Store, logger logr.Logger, recorder SaveRecorder) func(context.Context, form.Data) {
	return func(ctx context.Context, data form.Data) {
		err := store.Save(ctx, data)
		if recorder != nil {
			recorder.RecordDraftSave(err)
		}
		if err != nil {
			logger.Error(err, "autosave failed", "key", store.Key())
			return
		}
		logger.V(1).Info("draft saved", "key", store.Key())
	}
}
