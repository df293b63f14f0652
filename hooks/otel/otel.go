// Package otel records nscache events as OpenTelemetry metrics.
package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/unkn0wn-root/nscache"
)

// ScopeName is the instrumentation scope to request a Meter under.
const ScopeName = "github.com/unkn0wn-root/nscache"

type Hooks struct {
	lookups  metric.Int64Counter
	hashed   metric.Int64Counter
	failures metric.Int64Counter
}

var _ nscache.Hooks = (*Hooks)(nil)

// New creates the instruments on meter:
//
//	nscache.lookups   {namespace, result=hit|miss}
//	nscache.hashed_keys {namespace}
//	nscache.failures  {namespace, op, kind, swallowed}
func New(meter metric.Meter) (*Hooks, error) {
	lookups, err := meter.Int64Counter(
		"nscache.lookups",
		metric.WithDescription("Cache lookups by result"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, fmt.Errorf("nscache otel: lookups counter: %w", err)
	}
	hashed, err := meter.Int64Counter(
		"nscache.hashed_keys",
		metric.WithDescription("Keys replaced by a digest because they exceeded the key bound"),
		metric.WithUnit("{key}"),
	)
	if err != nil {
		return nil, fmt.Errorf("nscache otel: hashed keys counter: %w", err)
	}
	failures, err := meter.Int64Counter(
		"nscache.failures",
		metric.WithDescription("Failed cache operations"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("nscache otel: failures counter: %w", err)
	}
	return &Hooks{lookups: lookups, hashed: hashed, failures: failures}, nil
}

func (h *Hooks) Hit(ns string)  { h.lookup(ns, "hit") }
func (h *Hooks) Miss(ns string) { h.lookup(ns, "miss") }

func (h *Hooks) lookup(ns, result string) {
	h.lookups.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("namespace", ns),
		attribute.String("result", result),
	))
}

func (h *Hooks) KeyHashed(ns string, _ int) {
	h.hashed.Add(context.Background(), 1, metric.WithAttributes(attribute.String("namespace", ns)))
}

func (h *Hooks) Failure(ns string, op nscache.Op, kind nscache.FailureKind, swallowed bool, _ error) {
	h.failures.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("namespace", ns),
		attribute.String("op", string(op)),
		attribute.String("kind", string(kind)),
		attribute.Bool("swallowed", swallowed),
	))
}
