package nscache

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorMode selects how a client treats backend and codec failures.
// It is fixed per client; there is no per-call override.
type ErrorMode uint8

const (
	// ReturnEmpty swallows failures: Get reports a miss, Set and Delete succeed.
	ReturnEmpty ErrorMode = iota
	// Reject returns failures to the caller. Backend errors are passed through unchanged.
	Reject
)

var ErrUnknownErrorMode = errors.New("nscache: unknown error mode")

func (m ErrorMode) String() string {
	switch m {
	case ReturnEmpty:
		return "returnEmpty"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("ErrorMode(%d)", uint8(m))
	}
}

// ParseErrorMode accepts "returnEmpty" and "reject" (case-insensitive).
// "return_empty" and "return-empty" are also recognized.
func ParseErrorMode(s string) (ErrorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "returnempty", "return_empty", "return-empty":
		return ReturnEmpty, nil
	case "reject":
		return Reject, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownErrorMode, s)
}

func (m ErrorMode) MarshalText() ([]byte, error) {
	if m > Reject {
		return nil, fmt.Errorf("%w: %d", ErrUnknownErrorMode, uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *ErrorMode) UnmarshalText(b []byte) error {
	v, err := ParseErrorMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m ErrorMode) valid() bool { return m <= Reject }
