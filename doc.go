// Package nscache lets independent consumers (plugins, tenants) share one
// key/value cache backend without key collisions.
//
// Each Client is bound to a namespace. It derives every backend key from
// (namespace, key), serializes values with a pluggable Codec[V] (JSON by
// default), applies a default TTL and handles failures with one configured
// ErrorMode for Get, Set and Delete alike.
//
// Components:
//   - Backend: string store with TTL (e.g. Redis, Ristretto, BigCache, bbolt).
//     Shared and owned by the caller.
//   - Codec[V]: (de)serializes V <-> []byte.
//   - Manager: hands out clients for distinct namespaces over one backend.
//
// Keys:
//
//	base64("<ns>:<key>")           - when the encoding fits MaxKeyLength (250)
//	base64(sha256("<ns>:<key>"))   - otherwise, always 44 characters
//
// Error modes:
//
//	ReturnEmpty (default)  failures read as a miss on Get and as success on Set/Delete
//	Reject                 backend errors are returned unchanged
//
// Usage:
//
//	c, _ := nscache.New[Profile](nscache.Options[Profile]{
//	    Namespace:  "catalog",
//	    Backend:    rdb,
//	    DefaultTTL: time.Minute,
//	})
//	_ = c.Set(ctx, "user:42", p, nscache.WithTTL(time.Hour))
//	p, ok, err := c.Get(ctx, "user:42")
package nscache
