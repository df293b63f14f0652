package nscache

import (
	"fmt"
)

// CodecError reports a value that could not be encoded on Set or decoded on Get.
// Key is the caller's logical key.
type CodecError struct {
	Op  Op
	Key string
	Err error
}

func (e *CodecError) Error() string {
	switch e.Op {
	case OpSet:
		return fmt.Sprintf("nscache: encode %q: %v", e.Key, e.Err)
	default:
		return fmt.Sprintf("nscache: decode %q: %v", e.Key, e.Err)
	}
}

func (e *CodecError) Unwrap() error { return e.Err }
