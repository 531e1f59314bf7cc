package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"

	"github.com/df-mc/biomegen/gen"
	"github.com/df-mc/goleveldb/leveldb"
	"github.com/df-mc/goleveldb/leveldb/opt"
	"github.com/df-mc/goleveldb/leveldb/util"
	"github.com/google/uuid"
)

// Key prefixes. Each is followed by the 16 bytes of a job ID, and for
// matches and snapshots by a seed key.
const (
	prefixJob      = 'j'
	prefixMatch    = 'm'
	prefixSnapshot = 's'
)

// LevelDB is a Store backed by a LevelDB database.
type LevelDB struct {
	db *leveldb.DB
}

// OpenLevelDB opens or creates the LevelDB database in the directory at path.
func OpenLevelDB(path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{Compression: opt.NoCompression})
	if err != nil {
		return nil, fmt.Errorf("open leveldb store: %w", err)
	}
	return &LevelDB{db: db}, nil
}

func key(prefix byte, id uuid.UUID, rest ...byte) []byte {
	k := make([]byte, 0, 1+len(id)+len(rest))
	k = append(k, prefix)
	k = append(k, id[:]...)
	return append(k, rest...)
}

// CreateJob ...
func (l *LevelDB) CreateJob(j Job) error {
	b, err := json.Marshal(j)
	if err != nil {
		return fmt.Errorf("encode job: %w", err)
	}
	if err := l.db.Put(key(prefixJob, j.ID), b, nil); err != nil {
		return fmt.Errorf("store job %v: %w", j.ID, err)
	}
	return nil
}

// Job ...
func (l *LevelDB) Job(id uuid.UUID) (Job, error) {
	b, err := l.db.Get(key(prefixJob, id), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return Job{}, fmt.Errorf("job %v: %w", id, ErrNotFound)
	} else if err != nil {
		return Job{}, fmt.Errorf("read job %v: %w", id, err)
	}
	var j Job
	if err := json.Unmarshal(b, &j); err != nil {
		return Job{}, fmt.Errorf("decode job %v: %w", id, err)
	}
	return j, nil
}

func (l *LevelDB) checkJob(id uuid.UUID) error {
	ok, err := l.db.Has(key(prefixJob, id), nil)
	if err != nil {
		return fmt.Errorf("read job %v: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("job %v: %w", id, ErrNotFound)
	}
	return nil
}

// PutMatch ...
func (l *LevelDB) PutMatch(id uuid.UUID, seed int64) error {
	if err := l.checkJob(id); err != nil {
		return err
	}
	if err := l.db.Put(key(prefixMatch, id, seedKey(seed)...), nil, nil); err != nil {
		return fmt.Errorf("store match %d: %w", seed, err)
	}
	return nil
}

// Matches iterates the match keys of the job, which are sorted by seed.
func (l *LevelDB) Matches(id uuid.UUID) iter.Seq2[int64, error] {
	return func(yield func(int64, error) bool) {
		prefix := key(prefixMatch, id)
		it := l.db.NewIterator(util.BytesPrefix(prefix), nil)
		defer it.Release()
		for it.Next() {
			seed, err := parseSeedKey(it.Key()[len(prefix):])
			if !yield(seed, err) || err != nil {
				return
			}
		}
		if err := it.Error(); err != nil {
			yield(0, fmt.Errorf("iterate matches: %w", err))
		}
	}
}

// PutSnapshot ...
func (l *LevelDB) PutSnapshot(id uuid.UUID, seed int64, g gen.Grid) error {
	if err := l.checkJob(id); err != nil {
		return err
	}
	if err := l.db.Put(key(prefixSnapshot, id, seedKey(seed)...), encodeGrid(g), nil); err != nil {
		return fmt.Errorf("store snapshot of %d: %w", seed, err)
	}
	return nil
}

// Snapshot ...
func (l *LevelDB) Snapshot(id uuid.UUID, seed int64) (gen.Grid, error) {
	b, err := l.db.Get(key(prefixSnapshot, id, seedKey(seed)...), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return gen.Grid{}, fmt.Errorf("snapshot of %d: %w", seed, ErrNotFound)
	} else if err != nil {
		return gen.Grid{}, fmt.Errorf("read snapshot of %d: %w", seed, err)
	}
	return decodeGrid(b)
}

// Close ...
func (l *LevelDB) Close() error {
	return l.db.Close()
}
