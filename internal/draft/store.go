package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/imamik/stepform/internal/form"
)

// DefaultKey is the key drafts are stored under unless configured otherwise.
const DefaultKey = "formData"

// Store loads, saves and clears the single draft record.
type Store struct {
	backend Backend
	key     string
	sealer  *Sealer
}

// Option customizes a Store during construction.
type Option func(*Store)

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithSealer encrypts drafts before they reach the backend.
func WithSealer(sealer *Sealer) Option {
	return func(s *Store) {
		s.sealer = sealer
	}
}

// New builds a Store over backend.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		key:     DefaultKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the key the draft is stored under.
func (s *Store) Key() string {
	return s.key
}

// Load returns the saved draft. When no draft exists it returns the zero
// record and false.
func (s *Store) Load(ctx context.Context) (form.Data, bool, error) {
	raw, err := s.backend.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return form.Data{}, false, nil
		}
		return form.Data{}, false, fmt.Errorf("failed to load draft: %w", err)
	}

	if IsSealed(raw) {
		if s.sealer == nil {
			return form.Data{}, false, fmt.Errorf("%w: no passphrase configured", ErrSealed)
		}
		if raw, err = s.sealer.Open(raw); err != nil {
			return form.Data{}, false, err
		}
	}

	var data form.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return form.Data{}, false, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return data, true, nil
}

// Save replaces the draft with data.
func (s *Store) Save(ctx context.Context, data form.Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if s.sealer != nil {
		if raw, err = s.sealer.Seal(raw); err != nil {
			return err
		}
	}
	if err := s.backend.Put(ctx, s.key, raw); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Clear deletes the draft. Clearing a missing draft succeeds.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.backend.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
