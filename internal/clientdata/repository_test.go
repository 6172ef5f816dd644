package clientdata

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisebid/n2b/internal/database"
)

type testRecord struct {
	Name  string
	Price int64
}

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := database.New(database.Config{
		Path:    filepath.Join(t.TempDir(), "cache.db"),
		Profile: database.ProfileCache,
		Name:    "cache-test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitSchema(db.Conn()))
	return NewRepository(db.Conn())
}

func TestRepository_StoreAndGetIfFresh(t *testing.T) {
	repo := newTestRepo(t)

	stored := []testRecord{{Name: "아스팔트", Price: 95000}}
	require.NoError(t, repo.Store("material_prices", "토목:아스팔트", stored, time.Hour))

	var got []testRecord
	fresh, err := repo.GetIfFresh("material_prices", "토목:아스팔트", &got)
	assert.NoError(t, err)
	assert.True(t, fresh)
	assert.Equal(t, stored, got)
}

func TestRepository_GetIfFresh_MissingKey(t *testing.T) {
	repo := newTestRepo(t)

	var got []testRecord
	fresh, err := repo.GetIfFresh("material_prices", "없는키", &got)
	assert.NoError(t, err)
	assert.False(t, fresh)
}

func TestRepository_ExpiredIsStaleButRetrievable(t *testing.T) {
	repo := newTestRepo(t)

	stored := []testRecord{{Name: "레미콘", Price: 80000}}
	require.NoError(t, repo.Store("market_prices", "토목:레미콘", stored, -time.Minute))

	var got []testRecord
	fresh, err := repo.GetIfFresh("market_prices", "토목:레미콘", &got)
	assert.NoError(t, err)
	assert.False(t, fresh)

	// Stale fallback still reads the expired row.
	found, err := repo.Get("market_prices", "토목:레미콘", &got)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, stored, got)
}

func TestRepository_StoreOverwrites(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Store("announcements", "도로", []testRecord{{Name: "old"}}, time.Hour))
	require.NoError(t, repo.Store("announcements", "도로", []testRecord{{Name: "new"}}, time.Hour))

	var got []testRecord
	_, err := repo.Get("announcements", "도로", &got)
	assert.NoError(t, err)
	assert.Equal(t, "new", got[0].Name)
}

func TestRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Store("award_results", "도로", []testRecord{{Name: "x"}}, time.Hour))
	require.NoError(t, repo.Delete("award_results", "도로"))

	var got []testRecord
	found, err := repo.Get("award_results", "도로", &got)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestRepository_DeleteAllExpired(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Store("material_prices", "a", []testRecord{{}}, -time.Minute))
	require.NoError(t, repo.Store("material_prices", "b", []testRecord{{}}, time.Hour))
	require.NoError(t, repo.Store("announcements", "c", []testRecord{{}}, -time.Minute))

	deleted, err := repo.DeleteAllExpired()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), deleted["material_prices"])
	assert.Equal(t, int64(1), deleted["announcements"])
	assert.Equal(t, int64(0), deleted["market_prices"])

	var got []testRecord
	fresh, err := repo.GetIfFresh("material_prices", "b", &got)
	assert.NoError(t, err)
	assert.True(t, fresh)
}

func TestRepository_RejectsUnknownTable(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Store("positions; DROP TABLE announcements", "k", []testRecord{}, time.Hour)
	assert.Error(t, err)

	var got []testRecord
	_, err = repo.GetIfFresh("unknown_table", "k", &got)
	assert.Error(t, err)
}
