// Package version implements the Version Manager (§4.4): loading a
// repository's last snapshot, diffing it against a freshly computed
// content-hash map, and persisting the new snapshot once a run completes.
package version

import (
	"fmt"
	"time"

	"github.com/XingYu-Zhong/CodeRepoIndex/internal/model"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/ports"
)

// Manager is the Version Manager. It holds no state of its own beyond the
// SnapshotStore it's wired to — Diff is pure set arithmetic, independently
// testable without a store at all.
type Manager struct {
	store ports.SnapshotStore
}

// NewManager builds a Manager over store.
func NewManager(store ports.SnapshotStore) *Manager {
	return &Manager{store: store}
}

// Load returns the most recent snapshot for repositoryID, or nil if the
// repository has never been indexed (a fresh full run should follow).
func (m *Manager) Load(repositoryID string) (*model.Snapshot, error) {
	versionID, err := m.store.LatestVersion(repositoryID)
	if err != nil {
		return nil, fmt.Errorf("version: latest version: %w", err)
	}
	if versionID == "" {
		return nil, nil
	}
	return m.store.Load(repositoryID, versionID)
}

// Diff partitions currentHashes (path -> content hash, freshly computed by a
// directory walk) against prior (which may be nil, meaning "no prior
// snapshot: everything is added"), per §4.4's set arithmetic:
//
//	added     = dom(current) \ dom(prior.Files)
//	deleted   = dom(prior.Files) \ dom(current)
//	modified  = { p in dom(current) ∩ dom(prior.Files) : current[p] != prior.Files[p] }
//	unchanged = { p in dom(current) ∩ dom(prior.Files) : current[p] == prior.Files[p] }
func Diff(prior *model.Snapshot, currentHashes map[string]string) model.UpdatePlan {
	plan := model.NewUpdatePlan()

	var priorFiles map[string]string
	if prior != nil {
		priorFiles = prior.Files
	}

	for path, hash := range currentHashes {
		oldHash, existed := priorFiles[path]
		switch {
		case !existed:
			plan.Added[path] = true
		case oldHash != hash:
			plan.Modified[path] = true
		default:
			plan.Unchanged[path] = true
		}
	}
	for path := range priorFiles {
		if _, stillPresent := currentHashes[path]; !stillPresent {
			plan.Deleted[path] = true
		}
	}

	return plan
}

// Save persists a new snapshot for repositoryID built from currentHashes,
// stamped with versionID and the current time.
func (m *Manager) Save(repositoryID, versionID string, currentHashes map[string]string) error {
	snapshot := &model.Snapshot{
		RepositoryID: repositoryID,
		VersionID:    versionID,
		Files:        currentHashes,
		CreatedAt:    time.Now(),
	}
	if err := m.store.Save(snapshot); err != nil {
		return fmt.Errorf("version: save snapshot: %w", err)
	}
	return nil
}

// DeleteRepository removes every snapshot recorded for repositoryID.
func (m *Manager) DeleteRepository(repositoryID string) error {
	return m.store.DeleteRepository(repositoryID)
}
