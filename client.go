package nscache

import (
	"context"
	"fmt"
	"time"

	"github.com/unkn0wn-root/nscache/backend"
	c "github.com/unkn0wn-root/nscache/codec"
	"github.com/unkn0wn-root/nscache/internal/keys"
)

type client[V any] struct {
	ns         string
	backend    backend.Backend
	codec      c.Codec[V]
	defaultTTL time.Duration
	onError    ErrorMode
	maxKeyLen  int
	log        Logger
	hooks      Hooks
}

func newClient[V any](opts Options[V]) (*client[V], error) {
	if opts.Backend == nil {
		return nil, fmt.Errorf("nscache: backend is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("nscache: namespace is required")
	}
	if opts.DefaultTTL < 0 {
		return nil, fmt.Errorf("nscache: negative default ttl %s", opts.DefaultTTL)
	}
	if !opts.OnError.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownErrorMode, uint8(opts.OnError))
	}

	cl := &client[V]{
		ns:      opts.Namespace,
		backend: opts.Backend,
		onError: opts.OnError,
	}

	// defaults
	cl.codec = coalesce[c.Codec[V]](opts.Codec, c.JSON[V]{})
	cl.defaultTTL = coalesce(opts.DefaultTTL, DefaultTTL)
	cl.maxKeyLen = coalesce(opts.MaxKeyLength, DefaultMaxKeyLength)
	cl.log = coalesce[Logger](opts.Logger, NopLogger{})
	cl.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})

	if cl.maxKeyLen <= keys.HashedLength {
		return nil, fmt.Errorf("nscache: max key length %d must exceed hashed key length %d",
			cl.maxKeyLen, keys.HashedLength)
	}
	return cl, nil
}

func (cl *client[V]) Namespace() string { return cl.ns }

func (cl *client[V]) PhysicalKey(key string) string {
	pk, hashed := keys.Physical(cl.ns, key, cl.maxKeyLen)
	if hashed {
		n := len(keys.Candidate(cl.ns, key))
		cl.hooks.KeyHashed(cl.ns, n)
		cl.log.Debug("key exceeds backend bound; using digest", Fields{"ns": cl.ns, "len": n})
	}
	return pk
}

func (cl *client[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	k := cl.PhysicalKey(key)
	raw, ok, err := cl.backend.Get(ctx, k)
	if err != nil {
		return zero, false, cl.fail(OpGet, FailureBackend, key, err)
	}
	if !ok {
		cl.hooks.Miss(cl.ns)
		return zero, false, nil
	}
	v, err := cl.codec.Decode([]byte(raw))
	if err != nil {
		return zero, false, cl.fail(OpGet, FailureDecode, key, &CodecError{Op: OpGet, Key: key, Err: err})
	}
	cl.hooks.Hit(cl.ns)
	return v, true, nil
}

func (cl *client[V]) Set(ctx context.Context, key string, value V, opts ...SetOption) error {
	var o setOptions
	for _, opt := range opts {
		opt(&o)
	}
	ttl := o.ttl
	if ttl <= 0 {
		ttl = cl.defaultTTL
	}

	k := cl.PhysicalKey(key)
	payload, err := cl.codec.Encode(value)
	if err != nil {
		return cl.fail(OpSet, FailureEncode, key, &CodecError{Op: OpSet, Key: key, Err: err})
	}
	if err := cl.backend.Set(ctx, k, string(payload), ttl); err != nil {
		return cl.fail(OpSet, FailureBackend, key, err)
	}
	return nil
}

func (cl *client[V]) Delete(ctx context.Context, key string) error {
	k := cl.PhysicalKey(key)
	if err := cl.backend.Delete(ctx, k); err != nil {
		return cl.fail(OpDelete, FailureBackend, key, err)
	}
	return nil
}

// fail applies the client's ErrorMode. It returns nil when the failure is
// swallowed and err itself otherwise.
func (cl *client[V]) fail(op Op, kind FailureKind, key string, err error) error {
	swallow := cl.onError == ReturnEmpty
	cl.hooks.Failure(cl.ns, op, kind, swallow, err)

	f := Fields{"ns": cl.ns, "op": string(op), "kind": string(kind), "key": key, "err": err}
	if swallow {
		cl.log.Warn("cache failure ignored", f)
		return nil
	}
	cl.log.Debug("cache failure returned to caller", f)
	return err
}
