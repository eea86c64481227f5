package handlers

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/stepform/internal/config"
	"github.com/imamik/stepform/internal/draft"
	"github.com/imamik/stepform/internal/form"
	"github.com/imamik/stepform/internal/platform/s3"
	testutil "github.com/imamik/stepform/internal/testing"
	"github.com/imamik/stepform/internal/wizard"
)

// setupState points the state directory at a temp dir, clears STEPFORM_*
// variables and returns the draft directory.
func setupState(t *testing.T) string {
	t.Helper()
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)
	for _, v := range []string{
		config.EnvDraftBackend, config.EnvDraftDir, config.EnvDraftKey,
		config.EnvDraftPassphrase, config.EnvLogLevel, config.EnvMetricsTextfile,
		config.EnvS3AccessKey, config.EnvS3SecretKey,
	} {
		t.Setenv(v, "")
	}
	t.Setenv(config.EnvSubmitDelay, "1ms")
	return filepath.Join(state, "stepform")
}

// saveAndRestoreRunFactories saves and restores run factory functions.
func saveAndRestoreRunFactories(t *testing.T) {
	origIsTTY := isInteractiveTTY
	origRunTUI := runTUI
	origStdin := stdin
	origS3 := newS3Client

	t.Cleanup(func() {
		isInteractiveTTY = origIsTTY
		runTUI = origRunTUI
		stdin = origStdin
		newS3Client = origS3
	})
}

const completeInput = `
name: Jane Doe
email: jane@example.com
phone: 555-0100
address1: 1 Main St
city: Springfield
state: IL
zip: "62701"
`

func TestRun_InputSubmits(t *testing.T) {
	dir := setupState(t)
	input := testutil.WriteFile(t, "input.yaml", completeInput)

	var err error
	output := testutil.CaptureStdout(t, func() {
		err = Run(context.Background(), RunOptions{InputPath: input})
	})
	require.NoError(t, err)

	assert.Contains(t, output, "Step 1  Personal Information: ok")
	assert.Contains(t, output, "Step 2  Address Information: ok")
	assert.Contains(t, output, "Springfield")
	assert.Contains(t, output, "Thank You!")
	assert.Contains(t, output, "Reference: ")

	_, statErr := os.Stat(filepath.Join(dir, "formData.json"))
	assert.True(t, os.IsNotExist(statErr), "draft should be removed after submit")
}

func TestRun_InputJSON(t *testing.T) {
	dir := setupState(t)
	input := testutil.WriteFile(t, "input.json", `{"name":"Jane","email":"a@b.com","phone":"1","address1":"1 Main St","city":"X","state":"Y","zip":"1"}`)

	var err error
	output := testutil.CaptureStdout(t, func() {
		err = Run(context.Background(), RunOptions{InputPath: input, Ephemeral: true})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Thank You!")
	assert.NoDirExists(t, dir, "an ephemeral run leaves no state behind")
}

func TestRun_InputStopsAtInvalidStep(t *testing.T) {
	setupState(t)
	input := testutil.WriteFile(t, "input.yaml", "name: Jane\nemail: not-an-email\nphone: \"1\"\n")

	var err error
	output := testutil.CaptureStdout(t, func() {
		err = Run(context.Background(), RunOptions{InputPath: input})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Personal Information is incomplete")
	assert.ErrorIs(t, err, form.ErrInvalidEmail)
	assert.Contains(t, output, "Invalid email address")

	// The draft keeps what was read so the UI can continue from it.
	output = testutil.CaptureStdout(t, func() {
		err = DraftShow(context.Background(), "")
	})
	require.NoError(t, err)
	assert.Contains(t, output, "name: Jane")
	assert.Contains(t, output, "email: not-an-email")
}

func TestRun_InputErrors(t *testing.T) {
	setupState(t)

	err := Run(context.Background(), RunOptions{InputPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorContains(t, err, "failed to read input")

	input := testutil.WriteFile(t, "input.yaml", "nickname: JD\n")
	err = Run(context.Background(), RunOptions{InputPath: input})
	assert.ErrorContains(t, err, "failed to parse input")
}

func TestRun_InputFromStdin(t *testing.T) {
	setupState(t)
	saveAndRestoreRunFactories(t)
	stdin = bytes.NewBufferString(completeInput)

	var err error
	output := testutil.CaptureStdout(t, func() {
		err = Run(context.Background(), RunOptions{InputPath: "-", Ephemeral: true})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Thank You!")
}

func TestRun_NotInteractive(t *testing.T) {
	setupState(t)
	saveAndRestoreRunFactories(t)
	isInteractiveTTY = func() bool { return false }

	err := Run(context.Background(), RunOptions{})
	assert.ErrorIs(t, err, ErrNotInteractive)
}

func TestRun_TUIQuitKeepsDraft(t *testing.T) {
	setupState(t)
	saveAndRestoreRunFactories(t)
	isInteractiveTTY = func() bool { return true }
	runTUI = func(ctx context.Context, w *wizard.Wizard, _ *wizard.Router) (*wizard.Receipt, error) {
		require.NoError(t, w.Set(ctx, form.FieldName, "Jane"))
		return nil, nil
	}

	output := testutil.CaptureStdout(t, func() {
		require.NoError(t, Run(context.Background(), RunOptions{}))
	})
	assert.Contains(t, output, "Your answers are saved")

	// A second run restores the draft.
	var restored form.Data
	runTUI = func(_ context.Context, w *wizard.Wizard, _ *wizard.Router) (*wizard.Receipt, error) {
		restored = w.Data()
		return &wizard.Receipt{ID: "ref-1"}, nil
	}
	output = testutil.CaptureStdout(t, func() {
		require.NoError(t, Run(context.Background(), RunOptions{}))
	})
	assert.Equal(t, "Jane", restored.Name)
	assert.Contains(t, output, "Submitted. Reference: ref-1")
}

func TestRun_CorruptDraftStartsEmpty(t *testing.T) {
	dir := setupState(t)
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "formData.json"), []byte("{not json"), 0o600))

	saveAndRestoreRunFactories(t)
	isInteractiveTTY = func() bool { return true }
	var seen form.Data
	runTUI = func(_ context.Context, w *wizard.Wizard, _ *wizard.Router) (*wizard.Receipt, error) {
		seen = w.Data()
		return nil, nil
	}

	output := testutil.CaptureStdout(t, func() {
		require.NoError(t, Run(context.Background(), RunOptions{}))
	})
	assert.Contains(t, output, "Warning: the saved draft could not be read")
	assert.True(t, seen.IsZero())
}

func TestRun_WritesMetricsTextfile(t *testing.T) {
	setupState(t)
	textfile := filepath.Join(t.TempDir(), "stepform.prom")
	t.Setenv(config.EnvMetricsTextfile, textfile)
	input := testutil.WriteFile(t, "input.yaml", completeInput)

	testutil.CaptureStdout(t, func() {
		require.NoError(t, Run(context.Background(), RunOptions{InputPath: input}))
	})

	content, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `stepform_wizard_submissions_total{result="success"} 1`)
	assert.Contains(t, string(content), "stepform_draft_saves_total")
}

func TestRun_SealedDraft(t *testing.T) {
	dir := setupState(t)
	t.Setenv(config.EnvDraftPassphrase, "correct horse")
	input := testutil.WriteFile(t, "input.yaml", "name: Jane\n")

	testutil.CaptureStdout(t, func() {
		assert.Error(t, Run(context.Background(), RunOptions{InputPath: input}))
	})

	raw, err := os.ReadFile(filepath.Join(dir, "formData.json"))
	require.NoError(t, err)
	assert.True(t, draft.IsSealed(raw))
	assert.NotContains(t, string(raw), "Jane")

	output := testutil.CaptureStdout(t, func() {
		require.NoError(t, DraftShow(context.Background(), ""))
	})
	assert.Contains(t, output, "name: Jane")
}

func TestDraftShowAndClear(t *testing.T) {
	setupState(t)

	output := testutil.CaptureStdout(t, func() {
		require.NoError(t, DraftShow(context.Background(), ""))
	})
	assert.Contains(t, output, "No saved draft.")

	input := testutil.WriteFile(t, "input.yaml", "name: Jane\n")
	testutil.CaptureStdout(t, func() {
		_ = Run(context.Background(), RunOptions{InputPath: input})
	})

	output = testutil.CaptureStdout(t, func() {
		require.NoError(t, DraftClear(context.Background(), ""))
	})
	assert.Contains(t, output, "Draft cleared.")

	output = testutil.CaptureStdout(t, func() {
		require.NoError(t, DraftShow(context.Background(), ""))
	})
	assert.Contains(t, output, "No saved draft.")
}

func TestDraftShow_BadConfig(t *testing.T) {
	setupState(t)
	cfg := testutil.WriteFile(t, "stepform.yaml", "draft:\n  backend: redis\n")

	err := DraftShow(context.Background(), cfg)
	assert.ErrorIs(t, err, config.ErrUnknownBackend)
}

type fakeObjects struct {
	objects map[string][]byte
}

func (f *fakeObjects) PutObject(_ context.Context, key string, data []byte, _ string) error {
	f.objects[key] = data
	return nil
}

func (f *fakeObjects) GetObject(_ context.Context, key string) ([]byte, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, s3.ErrObjectNotFound
	}
	return data, nil
}

func (f *fakeObjects) DeleteObject(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func TestNewBackend(t *testing.T) {
	saveAndRestoreRunFactories(t)
	objects := &fakeObjects{objects: map[string][]byte{}}
	newS3Client = func(context.Context, s3.Options) (draft.ObjectClient, error) {
		return objects, nil
	}

	dir := t.TempDir()
	tests := []struct {
		name string
		cfg  config.DraftConfig
		want any
	}{
		{name: "file", cfg: config.DraftConfig{Backend: config.BackendFile, Dir: dir}, want: &draft.FileBackend{}},
		{name: "sqlite", cfg: config.DraftConfig{Backend: config.BackendSQLite, Dir: filepath.Join(dir, "db")}, want: &draft.SQLiteBackend{}},
		{name: "s3", cfg: config.DraftConfig{Backend: config.BackendS3, S3: config.S3Config{Bucket: "forms", Prefix: "p"}}, want: &draft.S3Backend{}},
		{name: "memory", cfg: config.DraftConfig{Backend: config.BackendMemory}, want: &draft.MemoryBackend{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, err := newBackend(context.Background(), tt.cfg, logr.Discard())
			require.NoError(t, err)
			t.Cleanup(func() { _ = backend.Close() })
			assert.IsType(t, tt.want, backend)

			store := draft.New(backend)
			require.NoError(t, store.Save(context.Background(), form.Data{Name: "Jane"}))
			got, found, err := store.Load(context.Background())
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "Jane", got.Name)
		})
	}

	_, err := newBackend(context.Background(), config.DraftConfig{Backend: "redis"}, logr.Discard())
	assert.ErrorIs(t, err, config.ErrUnknownBackend)
}
