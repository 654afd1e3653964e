// Package tracker records packages installed through pkgscout with BoltDB.
package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const bucketInstalls = "installs"

// Install is one tracked installation.
type Install struct {
	Name        string    `json:"name"`
	Source      string    `json:"source"`
	Version     string    `json:"version"`
	InstalledAt time.Time `json:"installed_at"`
	Via         string    `json:"via"` // the command that performed the install
}

// Store persists tracked installs.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the install database at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open install database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketInstalls))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize install database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record saves one install. The timestamp keys the entry, keeping records
// in chronological order.
func (s *Store) Record(install Install) error {
	if install.InstalledAt.IsZero() {
		install.InstalledAt = time.Now()
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketInstalls))
		if bucket == nil {
			return fmt.Errorf("installs bucket not found")
		}

		data, err := json.Marshal(install)
		if err != nil {
			return fmt.Errorf("failed to marshal install: %w", err)
		}

		key := []byte(install.InstalledAt.Format(time.RFC3339Nano))
		return bucket.Put(key, data)
	})
}

// List returns tracked installs, newest first. A limit <= 0 returns all.
func (s *Store) List(limit int) ([]Install, error) {
	var installs []Install

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketInstalls))
		if bucket == nil {
			return nil
		}

		cursor := bucket.Cursor()
		for k, v := cursor.Last(); k != nil && (limit <= 0 || len(installs) < limit); k, v = cursor.Prev() {
			var install Install
			if err := json.Unmarshal(v, &install); err != nil {
				continue // Skip malformed entries
			}
			installs = append(installs, install)
		}
		return nil
	})

	return installs, err
}

// Remove deletes every record for the named package and reports how many
// entries were removed.
func (s *Store) Remove(name string) (int, error) {
	var deleted int

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketInstalls))
		if bucket == nil {
			return nil
		}

		var toDelete [][]byte
		cursor := bucket.Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			var install Install
			if err := json.Unmarshal(v, &install); err != nil {
				continue
			}
			if install.Name == name {
				toDelete = append(toDelete, k)
			}
		}

		for _, k := range toDelete {
			if err := bucket.Delete(k); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})

	return deleted, err
}

// Count returns the total number of tracked installs.
func (s *Store) Count() (int, error) {
	var count int

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketInstalls))
		if bucket == nil {
			return nil
		}
		count = bucket.Stats().KeyN
		return nil
	})

	return count, err
}

// Clear removes all tracked installs.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(bucketInstalls)); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return err
		}
		_, err := tx.CreateBucket([]byte(bucketInstalls))
		return err
	})
}
