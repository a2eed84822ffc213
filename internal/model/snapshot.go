package model

import "time"

// Snapshot records a content-hash per path for one (repository, version),
// the durable state the Version Manager diffs incremental runs against.
type Snapshot struct {
	RepositoryID string
	VersionID    string
	Files        map[string]string // path -> content hash
	CreatedAt    time.Time
}

// UpdatePlan is the set-level diff between two snapshots (§4.4), partitioning
// paths into added, modified, deleted, and unchanged.
type UpdatePlan struct {
	Added     map[string]bool
	Modified  map[string]bool
	Deleted   map[string]bool
	Unchanged map[string]bool
}

// NewUpdatePlan returns an UpdatePlan with all four sets initialized empty.
func NewUpdatePlan() UpdatePlan {
	return UpdatePlan{
		Added:     make(map[string]bool),
		Modified:  make(map[string]bool),
		Deleted:   make(map[string]bool),
		Unchanged: make(map[string]bool),
	}
}

// ToDispatch returns the set of paths that must be routed to the
// Extractor/Chunker: added ∪ modified (§4.3 step 4).
func (p UpdatePlan) ToDispatch() []string {
	out := make([]string, 0, len(p.Added)+len(p.Modified))
	for path := range p.Added {
		out = append(out, path)
	}
	for path := range p.Modified {
		out = append(out, path)
	}
	return out
}
