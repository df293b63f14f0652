package ristretto

import (
	"context"
	"errors"
	"time"

	rc "github.com/dgraph-io/ristretto"

	"github.com/unkn0wn-root/nscache/backend"
)

type Backend struct {
	c    *rc.Cache
	sync bool
}

var _ backend.Backend = (*Backend)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64 // in bytes; each entry costs len(value)
	BufferItems int64
	Metrics     bool
	// SyncWrites blocks Set until ristretto has applied the write, so a
	// following Get observes it. Off by default (ristretto sets are async).
	SyncWrites bool
}

func New(cfg Config) (*Backend, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Backend{c: c, sync: cfg.SyncWrites}, nil
}

func (b *Backend) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := b.c.Get(key)
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		// drop unexpected entry shape
		b.c.Del(key)
		return "", false, nil
	}
	return s, true, nil
}

// Set returns backend.ErrRejected when ristretto drops the write
// (contention on the set buffer).
func (b *Backend) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if !b.c.SetWithTTL(key, value, int64(len(value)), ttl) {
		return backend.ErrRejected
	}
	if b.sync {
		b.c.Wait()
	}
	return nil
}

func (b *Backend) Delete(_ context.Context, key string) error {
	b.c.Del(key)
	return nil
}

func (b *Backend) Close(_ context.Context) error {
	b.c.Wait()
	b.c.Close()
	return nil
}

// Metrics exposes ristretto counters; nil unless Config.Metrics is set.
func (b *Backend) Metrics() *rc.Metrics { return b.c.Metrics }
