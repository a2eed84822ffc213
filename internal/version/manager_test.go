package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XingYu-Zhong/CodeRepoIndex/internal/model"
)

func TestDiffNoPriorSnapshotEverythingAdded(t *testing.T) {
	current := map[string]string{
		"a.go": "hash-a",
		"b.go": "hash-b",
	}

	plan := Diff(nil, current)

	assert.Equal(t, map[string]bool{"a.go": true, "b.go": true}, plan.Added)
	assert.Empty(t, plan.Modified)
	assert.Empty(t, plan.Deleted)
	assert.Empty(t, plan.Unchanged)
}

func TestDiffIdenticalSnapshotEverythingUnchanged(t *testing.T) {
	prior := &model.Snapshot{Files: map[string]string{
		"a.go": "hash-a",
		"b.go": "hash-b",
	}}
	current := map[string]string{
		"a.go": "hash-a",
		"b.go": "hash-b",
	}

	plan := Diff(prior, current)

	assert.Empty(t, plan.Added)
	assert.Empty(t, plan.Modified)
	assert.Empty(t, plan.Deleted)
	assert.Equal(t, map[string]bool{"a.go": true, "b.go": true}, plan.Unchanged)
}

func TestDiffAddedModifiedDeletedUnchanged(t *testing.T) {
	prior := &model.Snapshot{Files: map[string]string{
		"kept.go":    "hash-kept",
		"changed.go": "hash-old",
		"gone.go":    "hash-gone",
	}}
	current := map[string]string{
		"kept.go":    "hash-kept",
		"changed.go": "hash-new",
		"new.go":     "hash-new-file",
	}

	plan := Diff(prior, current)

	assert.Equal(t, map[string]bool{"new.go": true}, plan.Added)
	assert.Equal(t, map[string]bool{"changed.go": true}, plan.Modified)
	assert.Equal(t, map[string]bool{"gone.go": true}, plan.Deleted)
	assert.Equal(t, map[string]bool{"kept.go": true}, plan.Unchanged)
}

func TestDiffEmptyCurrentDeletesEverything(t *testing.T) {
	prior := &model.Snapshot{Files: map[string]string{"a.go": "hash-a"}}

	plan := Diff(prior, map[string]string{})

	assert.Equal(t, map[string]bool{"a.go": true}, plan.Deleted)
	assert.Empty(t, plan.Added)
	assert.Empty(t, plan.Modified)
	assert.Empty(t, plan.Unchanged)
}

// fakeStore is a minimal in-memory ports.SnapshotStore for Manager tests
// that don't need real bbolt persistence.
type fakeStore struct {
	byRepo map[string]map[string]*model.Snapshot
	latest map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		byRepo: make(map[string]map[string]*model.Snapshot),
		latest: make(map[string]string),
	}
}

func (f *fakeStore) Load(repositoryID, versionID string) (*model.Snapshot, error) {
	versions, ok := f.byRepo[repositoryID]
	if !ok {
		return nil, nil
	}
	return versions[versionID], nil
}

func (f *fakeStore) LatestVersion(repositoryID string) (string, error) {
	return f.latest[repositoryID], nil
}

func (f *fakeStore) Save(snapshot *model.Snapshot) error {
	if f.byRepo[snapshot.RepositoryID] == nil {
		f.byRepo[snapshot.RepositoryID] = make(map[string]*model.Snapshot)
	}
	f.byRepo[snapshot.RepositoryID][snapshot.VersionID] = snapshot
	f.latest[snapshot.RepositoryID] = snapshot.VersionID
	return nil
}

func (f *fakeStore) DeleteRepository(repositoryID string) error {
	delete(f.byRepo, repositoryID)
	delete(f.latest, repositoryID)
	return nil
}

func TestManagerLoadReturnsNilForUnknownRepository(t *testing.T) {
	m := NewManager(newFakeStore())

	snapshot, err := m.Load("unknown-repo")

	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestManagerSaveThenLoadRoundTrips(t *testing.T) {
	m := NewManager(newFakeStore())
	hashes := map[string]string{"a.go": "hash-a"}

	require.NoError(t, m.Save("repo-1", "v1", hashes))

	snapshot, err := m.Load("repo-1")
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, "repo-1", snapshot.RepositoryID)
	assert.Equal(t, "v1", snapshot.VersionID)
	assert.Equal(t, hashes, snapshot.Files)
}

func TestManagerSaveTwiceAdvancesLatest(t *testing.T) {
	m := NewManager(newFakeStore())

	require.NoError(t, m.Save("repo-1", "v1", map[string]string{"a.go": "hash-a"}))
	require.NoError(t, m.Save("repo-1", "v2", map[string]string{"a.go": "hash-a-2"}))

	snapshot, err := m.Load("repo-1")
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, "v2", snapshot.VersionID)
}
