package nscache

import (
	"context"
	"time"

	"github.com/unkn0wn-root/nscache/backend"
	c "github.com/unkn0wn-root/nscache/codec"
)

// Client is a namespaced view over a shared backend.
// V is the caller's value type. Serialization is handled by a pluggable Codec[V].
type Client[V any] interface {
	Namespace() string

	// PhysicalKey returns the key sent to the backend for key.
	PhysicalKey(key string) string

	// Get returns (v, true, nil) on hit and (zero, false, nil) on miss.
	// Under ReturnEmpty, failures also read as a miss.
	Get(ctx context.Context, key string) (v V, ok bool, err error)
	Set(ctx context.Context, key string, value V, opts ...SetOption) error
	Delete(ctx context.Context, key string) error
}

// Options configure a Client.
// Only Namespace and Backend are required; others have sensible defaults.
type Options[V any] struct {
	// Required
	Namespace string          // e.g. plugin id: "catalog", "search", "scaffolder"
	Backend   backend.Backend // shared; never closed by the client

	Codec        c.Codec[V]    // nil => codec.JSON[V]
	DefaultTTL   time.Duration // 0 => 10m
	OnError      ErrorMode     // default ReturnEmpty
	MaxKeyLength int           // 0 => 250; must exceed 44 (hashed key length)
	Logger       Logger        // if nil, NopLogger is used
	Hooks        Hooks         // if nil, NopHooks is used
}

func New[V any](opts Options[V]) (Client[V], error) {
	return newClient[V](opts)
}

// SetOption tunes a single Set call.
type SetOption func(*setOptions)

type setOptions struct {
	ttl time.Duration
}

// WithTTL overrides the client's DefaultTTL for one Set.
// Non-positive values are ignored.
func WithTTL(ttl time.Duration) SetOption {
	return func(o *setOptions) { o.ttl = ttl }
}
