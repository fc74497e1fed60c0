package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// Bucket names, one per collection.
const (
	BucketVolunteers  = "volunteers"
	BucketEmergencies = "emergencies"
	BucketTasks       = "tasks"
)

var buckets = []string{BucketVolunteers, BucketEmergencies, BucketTasks}

// Store wraps BoltDB as the single local key-value store behind all three
// record collections. Records are JSON values keyed by record id.
type Store struct {
	db     *bolt.DB
	logger *zap.Logger
}

// Open initializes the BoltDB file and ensures all collection buckets exist.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, logger: logger}, nil
}

// View runs a read-only transaction.
func (s *Store) View(fn func(tx *bolt.Tx) error) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return s.db.View(fn)
}

// Update runs a read-write transaction. Bolt serializes writers, which is
// what makes compare-and-set operations on records atomic.
func (s *Store) Update(fn func(tx *bolt.Tx) error) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return s.db.Update(fn)
}

// Seed populates any empty collection from the fixture. Collections that
// already hold records are left untouched, so seeding is idempotent and only
// effective on first run.
func (s *Store) Seed(fix Fixture) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := seedBucket(tx, BucketVolunteers, len(fix.Volunteers), func(i int) (string, any) {
			return fix.Volunteers[i].ID, fix.Volunteers[i]
		}); err != nil {
			return err
		}
		if err := seedBucket(tx, BucketEmergencies, len(fix.Emergencies), func(i int) (string, any) {
			return fix.Emergencies[i].ID, fix.Emergencies[i]
		}); err != nil {
			return err
		}
		return seedBucket(tx, BucketTasks, len(fix.Tasks), func(i int) (string, any) {
			return fix.Tasks[i].ID, fix.Tasks[i]
		})
	})
}

func seedBucket(tx *bolt.Tx, name string, n int, record func(i int) (string, any)) error {
	b := tx.Bucket([]byte(name))
	if b.Stats().KeyN > 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		id, v := record(i)
		payload, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if err := b.Put([]byte(id), payload); err != nil {
			return err
		}
	}
	return nil
}

// Counts returns the number of records per collection.
func (s *Store) Counts() (map[string]int, error) {
	if s == nil || s.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}
	counts := make(map[string]int, len(buckets))
	err := s.db.View(func(tx *bolt.Tx) error {
		for _, name := range buckets {
			counts[name] = tx.Bucket([]byte(name)).Stats().KeyN
		}
		return nil
	})
	return counts, err
}

// Stats exposes Bolt statistics for monitoring endpoints.
func (s *Store) Stats() bolt.Stats {
	if s == nil || s.db == nil {
		return bolt.Stats{}
	}
	return s.db.Stats()
}

// Close closes the Bolt database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
