package repositories

import (
	"context"
	"testing"
	"tsp-tour-service/internal/platform/db"
	"tsp-tour-service/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemoryStore(t *testing.T) ports.ProblemStore {
	t.Helper()

	conn, driver, err := db.Open("sqlite://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.Equal(t, db.DriverSQLite, driver)

	require.NoError(t, InitSchema(context.Background(), conn))

	store, err := NewProblemStore(conn, driver)
	require.NoError(t, err)
	return store
}

func TestSqliteProblemRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openMemoryStore(t)

	got, err := store.ListProblems(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.SaveProblems(ctx, []ports.ProblemFile{
		{Path: "b.tsp", Body: []byte("NAME: b\n")},
		{Path: "a.tsp", Body: []byte("NAME: a\n")},
	}))

	// Replacing a path keeps a single row with the new body.
	require.NoError(t, store.SaveProblems(ctx, []ports.ProblemFile{
		{Path: "b.tsp", Body: []byte("NAME: b2\n")},
	}))

	got, err = store.ListProblems(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a.tsp", got[0].Path)
	assert.Equal(t, "NAME: a\n", string(got[0].Body))
	assert.Equal(t, "b.tsp", got[1].Path)
	assert.Equal(t, "NAME: b2\n", string(got[1].Body))
}

func TestSaveProblemsValidation(t *testing.T) {
	ctx := context.Background()
	store := openMemoryStore(t)

	err := store.SaveProblems(ctx, []ports.ProblemFile{{Path: "", Body: []byte("x")}})
	require.Error(t, err)

	err = store.SaveProblems(ctx, []ports.ProblemFile{
		{Path: "a.tsp", Body: []byte("1")},
		{Path: "a.tsp", Body: []byte("2")},
	})
	require.Error(t, err)

	require.NoError(t, store.SaveProblems(ctx, nil))
}

func TestNewProblemStoreDrivers(t *testing.T) {
	s, err := NewProblemStore(nil, db.DriverPostgres)
	require.NoError(t, err)
	assert.IsType(t, &SQLProblemRepository{}, s)

	_, err = NewProblemStore(nil, "mysql")
	require.Error(t, err)
}

func TestNilDB(t *testing.T) {
	_, err := NewSqliteProblemRepository(nil).ListProblems(context.Background())
	require.Error(t, err)

	_, err = NewSQLProblemRepository(nil).ListProblems(context.Background())
	require.Error(t, err)

	require.Error(t, InitSchema(context.Background(), nil))
}
