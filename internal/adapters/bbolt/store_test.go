package bbolt

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XingYu-Zhong/CodeRepoIndex/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshots.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreLoadMissingRepositoryReturnsNil(t *testing.T) {
	store := openTestStore(t)

	snapshot, err := store.Load("nonexistent", "v1")

	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestStoreLatestVersionMissingRepositoryReturnsEmpty(t *testing.T) {
	store := openTestStore(t)

	versionID, err := store.LatestVersion("nonexistent")

	require.NoError(t, err)
	assert.Empty(t, versionID)
}

func TestStoreSaveThenLoadRoundTrips(t *testing.T) {
	store := openTestStore(t)
	snapshot := &model.Snapshot{
		RepositoryID: "repo-1",
		VersionID:    "v1",
		Files:        map[string]string{"a.go": "hash-a", "b.go": "hash-b"},
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}

	require.NoError(t, store.Save(snapshot))

	loaded, err := store.Load("repo-1", "v1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, snapshot.RepositoryID, loaded.RepositoryID)
	assert.Equal(t, snapshot.VersionID, loaded.VersionID)
	assert.Equal(t, snapshot.Files, loaded.Files)
	assert.True(t, snapshot.CreatedAt.Equal(loaded.CreatedAt))
}

func TestStoreSaveAdvancesLatestVersion(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save(&model.Snapshot{RepositoryID: "repo-1", VersionID: "v1", Files: map[string]string{}}))
	require.NoError(t, store.Save(&model.Snapshot{RepositoryID: "repo-1", VersionID: "v2", Files: map[string]string{}}))

	versionID, err := store.LatestVersion("repo-1")
	require.NoError(t, err)
	assert.Equal(t, "v2", versionID)
}

func TestStoreDeleteRepositoryRemovesAllVersions(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Save(&model.Snapshot{RepositoryID: "repo-1", VersionID: "v1", Files: map[string]string{}}))

	require.NoError(t, store.DeleteRepository("repo-1"))

	versionID, err := store.LatestVersion("repo-1")
	require.NoError(t, err)
	assert.Empty(t, versionID)

	loaded, err := store.Load("repo-1", "v1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStoreDeleteRepositoryIdempotent(t *testing.T) {
	store := openTestStore(t)

	assert.NoError(t, store.DeleteRepository("never-existed"))
}

func TestStoreSaveNilSnapshotErrors(t *testing.T) {
	store := openTestStore(t)

	err := store.Save(nil)

	assert.Error(t, err)
}

func TestStoreRepositoriesAreIsolated(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Save(&model.Snapshot{RepositoryID: "repo-a", VersionID: "v1", Files: map[string]string{"x": "1"}}))
	require.NoError(t, store.Save(&model.Snapshot{RepositoryID: "repo-b", VersionID: "v1", Files: map[string]string{"x": "2"}}))

	a, err := store.Load("repo-a", "v1")
	require.NoError(t, err)
	b, err := store.Load("repo-b", "v1")
	require.NoError(t, err)

	assert.Equal(t, "1", a.Files["x"])
	assert.Equal(t, "2", b.Files["x"])
}
