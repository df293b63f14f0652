// Package prom counts nscache events with Prometheus counters.
//
//	hooks, err := prom.New(prometheus.DefaultRegisterer)
//	client, _ := nscache.New[V](nscache.Options[V]{..., Hooks: hooks})
package prom

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/unkn0wn-root/nscache"
)

type Hooks struct {
	hits     *prometheus.CounterVec
	misses   *prometheus.CounterVec
	hashed   *prometheus.CounterVec
	failures *prometheus.CounterVec
}

var _ nscache.Hooks = (*Hooks)(nil)

// New registers the nscache counters on reg. A nil reg skips registration,
// which is handy when the caller collects the counters itself.
func New(reg prometheus.Registerer) (*Hooks, error) {
	h := &Hooks{
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nscache_hits_total",
			Help: "Total number of cache hits.",
		}, []string{"namespace"}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nscache_misses_total",
			Help: "Total number of cache misses.",
		}, []string{"namespace"}),
		hashed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nscache_hashed_keys_total",
			Help: "Total number of keys replaced by a digest because they exceeded the key bound.",
		}, []string{"namespace"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nscache_failures_total",
			Help: "Total number of failed cache operations.",
		}, []string{"namespace", "op", "kind", "swallowed"}),
	}
	if reg == nil {
		return h, nil
	}
	for _, c := range h.Collectors() {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Collectors returns every counter owned by h.
func (h *Hooks) Collectors() []prometheus.Collector {
	return []prometheus.Collector{h.hits, h.misses, h.hashed, h.failures}
}

func (h *Hooks) Hit(ns string)  { h.hits.WithLabelValues(ns).Inc() }
func (h *Hooks) Miss(ns string) { h.misses.WithLabelValues(ns).Inc() }

func (h *Hooks) KeyHashed(ns string, _ int) { h.hashed.WithLabelValues(ns).Inc() }

func (h *Hooks) Failure(ns string, op nscache.Op, kind nscache.FailureKind, swallowed bool, _ error) {
	h.failures.WithLabelValues(ns, string(op), string(kind), strconv.FormatBool(swallowed)).Inc()
}
