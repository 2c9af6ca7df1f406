package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyStore_GetAbsentKey(t *testing.T) {
	store, err := NewKeyStore(t.TempDir())
	require.NoError(t, err)

	value, err := store.Get(KeyToken)
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestKeyStore_SetGetDelete(t *testing.T) {
	store, err := NewKeyStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyToken, "abc.def.ghi"))
	value, err := store.Get(KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", value)

	require.NoError(t, store.Delete(KeyToken))
	value, err = store.Get(KeyToken)
	require.NoError(t, err)
	assert.Empty(t, value)

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete(KeyToken))
}

func TestKeyStore_IndependentKeys(t *testing.T) {
	store, err := NewKeyStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyToken, "tok"))
	require.NoError(t, store.Set(KeyTheme, "dark"))
	require.NoError(t, store.Delete(KeyToken))

	theme, err := store.Get(KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestKeyStore_CreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	store, err := NewKeyStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyTheme, "light"))
}
