// Package backend defines the storage contract nscache wraps.
//
// A backend is a plain string key/value store with per-entry TTL. It knows
// nothing about namespaces: nscache derives every key it sends (base64 of
// "<namespace>:<key>", or a SHA-256 digest for long keys) and serializes every
// value before the call. Implementations MUST return on Get exactly the string
// previously passed to Set for the same key.
//
// Backends are shared and owned by the caller. nscache never closes them.
package backend

import (
	"context"
	"errors"
	"time"
)

// ErrRejected is returned by Set when the store refused the write
// (admission policy, memory pressure).
var ErrRejected = errors.New("backend: write rejected")

// Backend is a minimal string store with TTLs.
// Must be safe for concurrent use.
type Backend interface {
	// Get returns (value, true, nil) on hit; ("", false, nil) on miss.
	// If an IO/remote error happens, return ("", false, err).
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value with the given TTL. ttl <= 0 means no expiry,
	// unless the store only supports a global lifetime.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
