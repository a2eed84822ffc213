package ports

import "github.com/XingYu-Zhong/CodeRepoIndex/internal/model"

// SnapshotStore persists Version Manager Snapshots to durable storage. The
// backing store (bbolt) is repository-scoped: each repository_id gets its
// own bucket, one key per version_id.
//
// Crash safety: Save must be transactional — a crash mid-write must not
// corrupt a previously committed snapshot.
type SnapshotStore interface {
	// Load retrieves the snapshot for (repositoryID, versionID). Returns
	// nil, nil if none exists.
	Load(repositoryID, versionID string) (*model.Snapshot, error)

	// LatestVersion returns the most recently saved version_id for a
	// repository, or "" if none exists.
	LatestVersion(repositoryID string) (string, error)

	// Save persists a snapshot, overwriting any prior snapshot with the
	// same (repository_id, version_id).
	Save(snapshot *model.Snapshot) error

	// DeleteRepository removes all snapshots for a repository. Idempotent.
	DeleteRepository(repositoryID string) error
}
