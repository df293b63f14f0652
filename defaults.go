package nscache

import (
	"time"

	"github.com/unkn0wn-root/nscache/internal/keys"
)

const (
	DefaultTTL          = 10 * time.Minute
	DefaultMaxKeyLength = keys.DefaultMaxLength
)

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
