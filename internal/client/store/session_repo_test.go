package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/collegecupid/cupid-cli/internal/common"
)

func testRepo(t *testing.T) *SQLiteSessionRepository {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "session.db")
	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSQLiteSessionRepository(db)
}

func TestSetAllAndGet(t *testing.T) {
	ctx := context.Background()
	repo := testRepo(t)

	err := repo.SetAll(ctx, map[string]string{
		"accessToken": "at",
		"userEmail":   "a@b.edu",
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "accessToken")
	require.NoError(t, err)
	require.Equal(t, "at", got)
}

func TestGet_Missing(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.Get(context.Background(), "nope")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestSetAll_Upserts(t *testing.T) {
	ctx := context.Background()
	repo := testRepo(t)

	require.NoError(t, repo.SetAll(ctx, map[string]string{"accessToken": "old"}))
	require.NoError(t, repo.SetAll(ctx, map[string]string{"accessToken": "new"}))

	got, err := repo.Get(ctx, "accessToken")
	require.NoError(t, err)
	require.Equal(t, "new", got)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	repo := testRepo(t)

	fields := map[string]string{
		"accessToken": "at",
		"userEmail":   "a@b.edu",
		"displayName": "",
	}
	require.NoError(t, repo.SetAll(ctx, fields))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, fields, got)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	repo := testRepo(t)

	require.NoError(t, repo.SetAll(ctx, map[string]string{"accessToken": "at"}))
	require.NoError(t, repo.Clear(ctx))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestOpen_MigratesTwice(t *testing.T) {
	// Reopening the same database must be a no-op for the schema.
	dsn := filepath.Join(t.TempDir(), "session.db")

	db1, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	require.NoError(t, db1.Close())

	db2, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	require.NoError(t, db2.Close())
}
