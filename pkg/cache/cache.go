package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"pkgscout/pkg/source"
)

const bucketResults = "results"

// Defaults for freshness and capacity.
const (
	DefaultTTL        = time.Hour
	DefaultMaxEntries = 512
)

// Options tune one cache instance.
type Options struct {
	// TTL is the freshness window; zero means DefaultTTL.
	TTL time.Duration

	// MaxEntries bounds the total entry count across all sources; zero
	// means DefaultMaxEntries. When the bound is hit, the least-accessed
	// entry is evicted, oldest first among equals.
	MaxEntries int
}

// Cache stores search results in a BoltDB file, one nested bucket per
// source under a single results bucket. BoltDB serializes writers, so
// concurrent write-through from fanned-out adapters is safe.
type Cache struct {
	db         *bbolt.DB
	ttl        time.Duration
	maxEntries int
}

// Open opens or creates the cache database at path.
func Open(path string, opts Options) (*Cache, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketResults))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cache bucket: %w", err)
	}

	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	maxEntries := opts.MaxEntries
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &Cache{db: db, ttl: ttl, maxEntries: maxEntries}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// TTL returns the freshness window.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get returns the cached results for (query, src) if a fresh entry exists.
// Expired entries are purged on access and reported as a miss, as are
// database errors; a broken cache degrades to slower searches, never to a
// failed one.
func (c *Cache) Get(query, src string) ([]source.Record, bool) {
	var results []source.Record
	hit := false

	err := c.db.Update(func(tx *bbolt.Tx) error {
		bucket := sourceBucket(tx, src)
		if bucket == nil {
			return nil
		}

		raw := bucket.Get([]byte(query))
		if raw == nil {
			return nil
		}

		var entry Entry
		if err := json.Unmarshal(raw, &entry); err != nil {
			// Malformed entries are dropped, not surfaced.
			return bucket.Delete([]byte(query))
		}

		if entry.IsExpired(c.ttl, time.Now()) {
			return bucket.Delete([]byte(query))
		}

		entry.AccessCount++
		updated, err := json.Marshal(&entry)
		if err != nil {
			return err
		}
		if err := bucket.Put([]byte(query), updated); err != nil {
			return err
		}

		results = entry.Results
		hit = true
		return nil
	})
	if err != nil {
		return nil, false
	}

	return results, hit
}

// Set inserts or overwrites the entry for (query, src), stamping the
// current time and resetting its access count. Inserting past the capacity
// bound evicts the least-accessed entry first.
func (c *Cache) Set(query, src string, records []source.Record) error {
	entry := Entry{
		Query:     query,
		Source:    src,
		Results:   records,
		CreatedAt: time.Now(),
	}
	data, err := json.Marshal(&entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	return c.db.Update(func(tx *bbolt.Tx) error {
		results := tx.Bucket([]byte(bucketResults))
		if results == nil {
			return fmt.Errorf("results bucket not found")
		}

		bucket, err := results.CreateBucketIfNotExists([]byte(src))
		if err != nil {
			return fmt.Errorf("failed to create source bucket: %w", err)
		}

		// Overwrites do not grow the cache; only fresh keys can push it
		// over capacity.
		if bucket.Get([]byte(query)) == nil && c.countEntries(tx) >= c.maxEntries {
			if err := c.evictOne(tx); err != nil {
				return err
			}
		}

		return bucket.Put([]byte(query), data)
	})
}

// Clear removes all entries for one source, or every entry when src is
// empty. It returns the number of entries removed.
func (c *Cache) Clear(src string) (int, error) {
	removed := 0

	err := c.db.Update(func(tx *bbolt.Tx) error {
		results := tx.Bucket([]byte(bucketResults))
		if results == nil {
			return nil
		}

		clearOne := func(name []byte) error {
			bucket := results.Bucket(name)
			if bucket == nil {
				return nil
			}
			removed += bucket.Stats().KeyN
			err := results.DeleteBucket(name)
			if errors.Is(err, bbolt.ErrBucketNotFound) {
				return nil
			}
			return err
		}

		if src != "" {
			return clearOne([]byte(src))
		}

		var names [][]byte
		err := results.ForEachBucket(func(name []byte) error {
			names = append(names, append([]byte(nil), name...))
			return nil
		})
		if err != nil {
			return err
		}
		for _, name := range names {
			if err := clearOne(name); err != nil {
				return err
			}
		}
		return nil
	})

	return removed, err
}

// Stats describes the cache contents for the stats command.
type Stats struct {
	Total     int
	Valid     int
	PerSource map[string]int
	AvgAccess float64
}

// Stats walks the cache and summarizes it. Expired entries count toward
// Total but not Valid; they are not purged here.
func (c *Cache) Stats() (Stats, error) {
	stats := Stats{PerSource: make(map[string]int)}
	accessSum := 0
	now := time.Now()

	err := c.db.View(func(tx *bbolt.Tx) error {
		results := tx.Bucket([]byte(bucketResults))
		if results == nil {
			return nil
		}

		return results.ForEachBucket(func(name []byte) error {
			bucket := results.Bucket(name)
			if bucket == nil {
				return nil
			}

			return bucket.ForEach(func(_, raw []byte) error {
				var entry Entry
				if err := json.Unmarshal(raw, &entry); err != nil {
					return nil
				}

				stats.Total++
				stats.PerSource[string(name)]++
				accessSum += entry.AccessCount
				if !entry.IsExpired(c.ttl, now) {
					stats.Valid++
				}
				return nil
			})
		})
	})
	if err != nil {
		return Stats{}, err
	}

	if stats.Total > 0 {
		stats.AvgAccess = float64(accessSum) / float64(stats.Total)
	}
	return stats, nil
}

// countEntries totals the keys across all source buckets.
func (c *Cache) countEntries(tx *bbolt.Tx) int {
	results := tx.Bucket([]byte(bucketResults))
	if results == nil {
		return 0
	}

	count := 0
	_ = results.ForEachBucket(func(name []byte) error {
		if bucket := results.Bucket(name); bucket != nil {
			count += bucket.Stats().KeyN
		}
		return nil
	})
	return count
}

// evictOne removes the least-accessed entry, preferring the oldest among
// equally-accessed ones.
func (c *Cache) evictOne(tx *bbolt.Tx) error {
	results := tx.Bucket([]byte(bucketResults))
	if results == nil {
		return nil
	}

	var (
		victimBucket []byte
		victimKey    []byte
		victim       *Entry
	)

	err := results.ForEachBucket(func(name []byte) error {
		bucket := results.Bucket(name)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, raw []byte) error {
			var entry Entry
			if err := json.Unmarshal(raw, &entry); err != nil {
				// A malformed entry is the best possible victim.
				victimBucket = append([]byte(nil), name...)
				victimKey = append([]byte(nil), k...)
				victim = &Entry{AccessCount: -1}
				return nil
			}

			worse := victim == nil ||
				entry.AccessCount < victim.AccessCount ||
				(entry.AccessCount == victim.AccessCount && entry.CreatedAt.Before(victim.CreatedAt))
			if worse {
				victimBucket = append([]byte(nil), name...)
				victimKey = append([]byte(nil), k...)
				e := entry
				victim = &e
			}
			return nil
		})
	})
	if err != nil {
		return err
	}

	if victimKey == nil {
		return nil
	}
	bucket := results.Bucket(victimBucket)
	if bucket == nil {
		return nil
	}
	return bucket.Delete(victimKey)
}

// sourceBucket returns the nested bucket for src, or nil when absent.
func sourceBucket(tx *bbolt.Tx, src string) *bbolt.Bucket {
	results := tx.Bucket([]byte(bucketResults))
	if results == nil {
		return nil
	}
	return results.Bucket([]byte(src))
}
