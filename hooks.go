package nscache

// Op names the client operation that produced an event.
type Op string

const (
	OpGet    Op = "get"
	OpSet    Op = "set"
	OpDelete Op = "delete"
)

// FailureKind tells backend failures apart from codec failures.
type FailureKind string

const (
	FailureBackend FailureKind = "backend"
	FailureDecode  FailureKind = "decode"
	FailureEncode  FailureKind = "encode"
)

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The client calls them on hot paths.
type Hooks interface {
	// Get found a value / found nothing. Swallowed failures are not misses.
	Hit(namespace string)
	Miss(namespace string)

	// The key was too long to encode and a digest was used instead.
	// candidateLen is len("<namespace>:<key>") in bytes.
	KeyHashed(namespace string, candidateLen int)

	// An operation failed. swallowed is true under ReturnEmpty.
	Failure(namespace string, op Op, kind FailureKind, swallowed bool, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Hit(string)                                  {}
func (NopHooks) Miss(string)                                 {}
func (NopHooks) KeyHashed(string, int)                       {}
func (NopHooks) Failure(string, Op, FailureKind, bool, error) {}
