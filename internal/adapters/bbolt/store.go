// Package bbolt implements ports.SnapshotStore using bbolt (embedded B+
// tree). Each repository gets its own top-level bucket; within that bucket,
// one key per version ID holds a JSON-serialized Snapshot, plus a sentinel
// key tracking the most recently saved version. Writes are transactional —
// a crash mid-write cannot corrupt a previously committed snapshot.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/XingYu-Zhong/CodeRepoIndex/internal/model"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/ports"
)

var keyLatest = []byte("__latest__")

var _ ports.SnapshotStore = (*Store)(nil)

// Store implements ports.SnapshotStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// snapshotJSON is the wire form of a Snapshot, with an explicit format
// version so a future schema change can detect and migrate old records.
type snapshotJSON struct {
	FormatVersion int               `json:"format_version"`
	RepositoryID  string            `json:"repository_id"`
	VersionID     string            `json:"version_id"`
	Files         map[string]string `json:"files"`
	CreatedAt     time.Time         `json:"created_at"`
}

const snapshotFormatVersion = 1

// Save persists snapshot under its repository's bucket, keyed by version ID,
// and advances that repository's latest-version pointer.
func (s *Store) Save(snapshot *model.Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("bbolt: nil snapshot")
	}
	if snapshot.RepositoryID == "" || snapshot.VersionID == "" {
		return fmt.Errorf("bbolt: snapshot missing repository_id or version_id")
	}

	sj := snapshotJSON{
		FormatVersion: snapshotFormatVersion,
		RepositoryID:  snapshot.RepositoryID,
		VersionID:     snapshot.VersionID,
		Files:         snapshot.Files,
		CreatedAt:     snapshot.CreatedAt,
	}
	data, err := json.Marshal(sj)
	if err != nil {
		return fmt.Errorf("bbolt: marshal snapshot: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		repo, err := tx.CreateBucketIfNotExists([]byte(snapshot.RepositoryID))
		if err != nil {
			return err
		}
		if err := repo.Put([]byte(snapshot.VersionID), data); err != nil {
			return err
		}
		return repo.Put(keyLatest, []byte(snapshot.VersionID))
	})
}

// Load retrieves the snapshot for versionID within repositoryID.
// Returns nil, nil if no such snapshot exists.
func (s *Store) Load(repositoryID, versionID string) (*model.Snapshot, error) {
	var data []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		repo := tx.Bucket([]byte(repositoryID))
		if repo == nil {
			return nil
		}
		if v := repo.Get([]byte(versionID)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var sj snapshotJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return nil, fmt.Errorf("bbolt: unmarshal snapshot: %w", err)
	}
	return &model.Snapshot{
		RepositoryID: sj.RepositoryID,
		VersionID:    sj.VersionID,
		Files:        sj.Files,
		CreatedAt:    sj.CreatedAt,
	}, nil
}

// LatestVersion returns the most recently saved version ID for repositoryID,
// or "" with a nil error if the repository has never been saved.
func (s *Store) LatestVersion(repositoryID string) (string, error) {
	var versionID string

	err := s.db.View(func(tx *bolt.Tx) error {
		repo := tx.Bucket([]byte(repositoryID))
		if repo == nil {
			return nil
		}
		if v := repo.Get(keyLatest); v != nil {
			versionID = string(v)
		}
		return nil
	})
	return versionID, err
}

// DeleteRepository removes every snapshot recorded for repositoryID.
// Idempotent: deleting a repository with no snapshots is not an error.
func (s *Store) DeleteRepository(repositoryID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(repositoryID)); err == bolt.ErrBucketNotFound {
			return nil // idempotent
		} else {
			return err
		}
	})
}
