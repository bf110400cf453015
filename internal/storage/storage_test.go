package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepositoryRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	repo, err := NewFileRepository(path)
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()

	_, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Save(ctx, []byte(`{"users":[]}`)))
	blob, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"users":[]}`, string(blob))

	// Saves overwrite, last write wins.
	require.NoError(t, repo.Save(ctx, []byte(`{"users":[1]}`)))
	blob, _, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"users":[1]}`, string(blob))
}

func TestSQLiteRepositoryRoundtrip(t *testing.T) {
	ctx := context.Background()
	repo, err := OpenSQL(ctx, SQLOptions{
		Dialect:    DialectSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "state.sqlite"),
	})
	require.NoError(t, err)
	defer repo.Close()

	_, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Save(ctx, []byte(`{"spinsAvailable":3}`)))
	require.NoError(t, repo.Save(ctx, []byte(`{"spinsAvailable":2}`)))

	blob, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"spinsAvailable":2}`, string(blob))
}

func TestOpenSQLRejectsUnknownDialect(t *testing.T) {
	_, err := OpenSQL(context.Background(), SQLOptions{Dialect: Dialect("oracle")})
	assert.Error(t, err)
}

func TestOpenSQLPostgresRequiresDSN(t *testing.T) {
	_, err := OpenSQL(context.Background(), SQLOptions{Dialect: DialectPostgres})
	assert.Error(t, err)
}
