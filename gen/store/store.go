// Package store persists search jobs, the seeds they matched and compressed
// biome map snapshots of those seeds.
package store

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/df-mc/biomegen/gen"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a job or snapshot does not exist.
var ErrNotFound = errors.New("store: not found")

// Job is a search and the configuration it runs with.
type Job struct {
	ID      uuid.UUID
	Created time.Time
	Config  gen.UserConfig
}

// NewJob creates a Job with a random ID for the configuration passed.
func NewJob(conf gen.UserConfig) Job {
	return Job{ID: uuid.New(), Created: time.Now().UTC().Truncate(time.Millisecond), Config: conf}
}

// Store keeps jobs and their results. Implementations are safe for
// concurrent use.
type Store interface {
	// CreateJob stores j. Storing a job with an existing ID replaces it.
	CreateJob(j Job) error
	// Job returns the job with the ID passed, or ErrNotFound.
	Job(id uuid.UUID) (Job, error)
	// PutMatch records that seed matched job id. Recording a seed twice has
	// no effect.
	PutMatch(id uuid.UUID, seed int64) error
	// Matches returns the seeds matched by job id in increasing order.
	Matches(id uuid.UUID) iter.Seq2[int64, error]
	// PutSnapshot stores a biome map of seed for job id, replacing any
	// previous one.
	PutSnapshot(id uuid.UUID, seed int64, g gen.Grid) error
	// Snapshot returns the biome map stored for seed, or ErrNotFound.
	Snapshot(id uuid.UUID, seed int64) (gen.Grid, error)
	Close() error
}

// Open opens the store of the backend named, either "leveldb" or "sqlite",
// at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "leveldb":
		return OpenLevelDB(path)
	case "sqlite":
		return OpenSQLite(path)
	}
	return nil, fmt.Errorf("unknown store backend %q", backend)
}
