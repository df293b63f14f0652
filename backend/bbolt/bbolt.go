// Package bbolt is a persistent backend on top of an embedded bbolt database.
// Entries survive restarts; expiry is checked on read and expired entries are
// removed lazily.
package bbolt

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"

	"github.com/unkn0wn-root/nscache/backend"
)

// DefaultBucket is used when New is given an empty bucket name.
const DefaultBucket = "nscache"

// ErrClosed is returned by every operation after Close.
var ErrClosed = errors.New("bbolt backend: closed")

type entry struct {
	Value     string `msgpack:"v"`
	ExpiresAt int64  `msgpack:"e,omitempty"` // unix nanos; 0 => no expiry
}

func (e entry) expired(now time.Time) bool {
	return e.ExpiresAt != 0 && now.UnixNano() >= e.ExpiresAt
}

type Backend struct {
	db     *bbolt.DB
	bucket []byte
	now    func() time.Time

	mu     sync.RWMutex
	closed bool
}

var _ backend.Backend = (*Backend)(nil)

// New creates the bucket if needed. The backend takes ownership of db:
// Close closes it.
func New(db *bbolt.DB, bucket string) (*Backend, error) {
	if db == nil {
		return nil, errors.New("bbolt backend: nil db")
	}
	if bucket == "" {
		bucket = DefaultBucket
	}
	b := &Backend{db: db, bucket: []byte(bucket), now: time.Now}
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(b.bucket)
		return err
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Backend) Get(_ context.Context, key string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return "", false, ErrClosed
	}

	var (
		e     entry
		found bool
	)
	err := b.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(b.bucket).Get([]byte(key))
		if data == nil {
			return nil
		}
		found = true
		return msgpack.Unmarshal(data, &e)
	})
	if err != nil || !found {
		return "", false, err
	}
	if e.expired(b.now()) {
		return "", false, b.deleteExpired(key)
	}
	return e.Value, true, nil
}

// deleteExpired re-checks expiry inside the write tx; a concurrent Set may
// have refreshed the entry.
func (b *Backend) deleteExpired(key string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bk := tx.Bucket(b.bucket)
		data := bk.Get([]byte(key))
		if data == nil {
			return nil
		}
		var e entry
		if err := msgpack.Unmarshal(data, &e); err == nil && !e.expired(b.now()) {
			return nil
		}
		return bk.Delete([]byte(key))
	})
}

func (b *Backend) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrClosed
	}

	e := entry{Value: value}
	if ttl > 0 {
		e.ExpiresAt = b.now().Add(ttl).UnixNano()
	}
	data, err := msgpack.Marshal(e)
	if err != nil {
		return err
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(b.bucket).Put([]byte(key), data)
	})
}

func (b *Backend) Delete(_ context.Context, key string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrClosed
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(b.bucket).Delete([]byte(key))
	})
}

// Close closes the database. Calling Close more than once is a no-op.
func (b *Backend) Close(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	return b.db.Close()
}
