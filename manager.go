package nscache

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/unkn0wn-root/nscache/backend"
	c "github.com/unkn0wn-root/nscache/codec"
)

var ErrNamespaceInUse = errors.New("nscache: namespace already in use")

// ManagerConfig holds the defaults every client of a Manager starts from.
type ManagerConfig struct {
	Backend      backend.Backend // required; shared by all clients
	DefaultTTL   time.Duration
	OnError      ErrorMode
	MaxKeyLength int
	Logger       Logger
	Hooks        Hooks
}

// Manager hands out one Client per namespace over a single shared backend.
// It owns nothing: closing the backend is the caller's job.
type Manager struct {
	cfg ManagerConfig

	mu    sync.Mutex
	inUse map[string]struct{}
}

func NewManager(cfg ManagerConfig) (*Manager, error) {
	if cfg.Backend == nil {
		return nil, fmt.Errorf("nscache: backend is required")
	}
	if cfg.DefaultTTL < 0 {
		return nil, fmt.Errorf("nscache: negative default ttl %s", cfg.DefaultTTL)
	}
	if !cfg.OnError.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownErrorMode, uint8(cfg.OnError))
	}
	return &Manager{cfg: cfg, inUse: make(map[string]struct{})}, nil
}

// ClientOption overrides a Manager default for one namespace.
type ClientOption[V any] func(*Options[V])

func ClientTTL[V any](ttl time.Duration) ClientOption[V] {
	return func(o *Options[V]) { o.DefaultTTL = ttl }
}

func ClientErrorMode[V any](m ErrorMode) ClientOption[V] {
	return func(o *Options[V]) { o.OnError = m }
}

func ClientCodec[V any](codec c.Codec[V]) ClientOption[V] {
	return func(o *Options[V]) { o.Codec = codec }
}

// ForNamespace returns a client for namespace. Each namespace can be claimed
// once per Manager; a second claim fails with ErrNamespaceInUse.
func ForNamespace[V any](m *Manager, namespace string, opts ...ClientOption[V]) (Client[V], error) {
	o := Options[V]{
		Namespace:    namespace,
		Backend:      m.cfg.Backend,
		DefaultTTL:   m.cfg.DefaultTTL,
		OnError:      m.cfg.OnError,
		MaxKeyLength: m.cfg.MaxKeyLength,
		Logger:       m.cfg.Logger,
		Hooks:        m.cfg.Hooks,
	}
	for _, opt := range opts {
		opt(&o)
	}

	cl, err := newClient[V](o)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.inUse[namespace]; ok {
		return nil, fmt.Errorf("%w: %q", ErrNamespaceInUse, namespace)
	}
	m.inUse[namespace] = struct{}{}
	return cl, nil
}

// Namespaces lists the namespaces claimed so far, in no particular order.
func (m *Manager) Namespaces() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.inUse))
	for ns := range m.inUse {
		out = append(out, ns)
	}
	return out
}
