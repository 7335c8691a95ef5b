package vault_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/juliaos/evm-signer/internal/vault"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageWriteExclusive(t *testing.T) {
	storage := vault.NewStorage(vault.FixedBaseDir(t.TempDir()))

	require.NoError(t, storage.WriteExclusive("alice", []byte("first")))

	err := storage.WriteExclusive("alice", []byte("second"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, vault.ErrExists))

	// losing write must not have touched the record
	data, err := storage.Read("alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)
}

func TestStorageReadMissing(t *testing.T) {
	storage := vault.NewStorage(vault.FixedBaseDir(t.TempDir()))

	data, err := storage.Read("nobody")
	require.Error(t, err)
	assert.True(t, errors.Is(err, vault.ErrNotFound))
	assert.Nil(t, data)
}

func TestStorageExists(t *testing.T) {
	storage := vault.NewStorage(vault.FixedBaseDir(t.TempDir()))

	exists, err := storage.Exists("alice")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, storage.WriteExclusive("alice", []byte("record")))

	exists, err = storage.Exists("alice")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStorageRejectsTraversal(t *testing.T) {
	storage := vault.NewStorage(vault.FixedBaseDir(t.TempDir()))

	for _, identifier := range []string{"", ".", "..", "../alice", "a/b", `a\b`} {
		_, err := storage.PathFor(identifier)
		require.Error(t, err, "identifier %q", identifier)
		assert.True(t, errors.Is(err, vault.ErrInvalidIdentifier), "identifier %q", identifier)
	}
}

func TestStorageCreatesBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "keys")
	storage := vault.NewStorage(vault.FixedBaseDir(base))

	require.NoError(t, storage.WriteExclusive("alice", []byte("record")))

	info, err := os.Stat(filepath.Join(base, "alice.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
