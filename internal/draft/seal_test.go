package draft

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSealer uses cheap Argon2 parameters so tests stay fast.
func testSealer(t *testing.T, passphrase string) *Sealer {
	t.Helper()
	s, err := NewSealer(passphrase)
	require.NoError(t, err)
	s.memory = 1024
	s.threads = 1
	return s
}

func TestSealer_RoundTrip(t *testing.T) {
	s := testSealer(t, "correct horse")
	plain := []byte(`{"name":"Jane"}`)

	sealed, err := s.Seal(plain)
	require.NoError(t, err)
	assert.True(t, IsSealed(sealed))
	assert.False(t, bytes.Contains(sealed, []byte("Jane")))

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, plain, opened)
}

func TestSealer_FreshSaltAndNonce(t *testing.T) {
	s := testSealer(t, "correct horse")

	a, err := s.Seal([]byte("same"))
	require.NoError(t, err)
	b, err := s.Seal([]byte("same"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSealer_WrongPassphrase(t *testing.T) {
	sealed, err := testSealer(t, "correct horse").Seal([]byte("secret"))
	require.NoError(t, err)

	_, err = testSealer(t, "battery staple").Open(sealed)
	assert.ErrorIs(t, err, ErrSealed)
}

func TestSealer_Tampered(t *testing.T) {
	s := testSealer(t, "correct horse")
	sealed, err := s.Seal([]byte("secret"))
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xff
	_, err = s.Open(sealed)
	assert.ErrorIs(t, err, ErrSealed)

	_, err = s.Open(sealMagic)
	assert.ErrorIs(t, err, ErrSealed)

	_, err = s.Open([]byte("plain"))
	assert.ErrorIs(t, err, ErrSealed)
}

func TestNewSealer_EmptyPassphrase(t *testing.T) {
	_, err := NewSealer("")
	assert.Error(t, err)
}

func TestStore_Sealed(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	store := New(backend, WithSealer(testSealer(t, "pw")))

	require.NoError(t, store.Save(ctx, sampleData()))

	raw, err := backend.Get(ctx, DefaultKey)
	require.NoError(t, err)
	assert.True(t, IsSealed(raw))

	data, ok, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sampleData(), data)

	_, _, err = New(backend).Load(ctx)
	assert.ErrorIs(t, err, ErrSealed, "sealed draft without a passphrase")

	_, _, err = New(backend, WithSealer(testSealer(t, "other"))).Load(ctx)
	assert.ErrorIs(t, err, ErrSealed)
}

func TestStore_SealedStoreReadsPlainDraft(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	require.NoError(t, New(backend).Save(ctx, sampleData()))

	data, ok, err := New(backend, WithSealer(testSealer(t, "pw"))).Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sampleData(), data)
}
