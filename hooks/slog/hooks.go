// Package slog reports nscache hook events through log/slog.
// Hits and misses are not logged; use hooks/prom or hooks/otel to count them.
package slog

import (
	"crypto/sha256"
	"encoding/hex"
	stdslog "log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/nscache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	FailureEvery   uint64
	KeyHashedEvery uint64
	// Optional redactor for error text, which may embed keys or values.
	// Defaults to leaving errors untouched.
	Redact func(string) string
}

type Hooks struct {
	l    *stdslog.Logger
	opts Options

	failureCtr   atomic.Uint64
	keyHashedCtr atomic.Uint64
}

var _ nscache.Hooks = (*Hooks)(nil)

func New(l *stdslog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

// HashRedact replaces s with the first 8 bytes of its SHA-256, hex encoded.
func HashRedact(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Hit(string)  {}
func (h *Hooks) Miss(string) {}

func (h *Hooks) KeyHashed(ns string, candidateLen int) {
	if h.l == nil || !sample(h.opts.KeyHashedEvery, &h.keyHashedCtr) {
		return
	}
	h.l.Debug("nscache.key_hashed",
		"ns", ns,
		"candidate_len", candidateLen)
}

func (h *Hooks) Failure(ns string, op nscache.Op, kind nscache.FailureKind, swallowed bool, err error) {
	if h.l == nil || !sample(h.opts.FailureEvery, &h.failureCtr) {
		return
	}
	msg := ""
	if err != nil {
		msg = err.Error()
		if h.opts.Redact != nil {
			msg = h.opts.Redact(msg)
		}
	}
	args := []any{
		"ns", ns,
		"op", string(op),
		"kind", string(kind),
		"swallowed", swallowed,
		"err", msg,
	}
	if swallowed {
		h.l.Warn("nscache.failure", args...)
		return
	}
	h.l.Error("nscache.failure", args...)
}
