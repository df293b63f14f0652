package slog

import (
	"bytes"
	"errors"
	stdslog "log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/nscache"
)

func newBufLogger() (*stdslog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug})
	return stdslog.New(h), &buf
}

func TestFailureLevels(t *testing.T) {
	l, buf := newBufLogger()
	h := New(l, Options{})

	h.Failure("catalog", nscache.OpGet, nscache.FailureBackend, true, errors.New("timeout"))
	h.Failure("catalog", nscache.OpSet, nscache.FailureEncode, false, errors.New("bad value"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "level=WARN") || !strings.Contains(lines[0], "op=get") ||
		!strings.Contains(lines[0], "swallowed=true") || !strings.Contains(lines[0], "err=timeout") {
		t.Fatalf("swallowed line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "level=ERROR") || !strings.Contains(lines[1], "kind=encode") {
		t.Fatalf("propagated line = %q", lines[1])
	}
}

func TestSamplingAndRedaction(t *testing.T) {
	l, buf := newBufLogger()
	h := New(l, Options{FailureEvery: 3, Redact: HashRedact})

	for i := 0; i < 9; i++ {
		h.Failure("ns", nscache.OpDelete, nscache.FailureBackend, true, errors.New("secret-key"))
	}
	out := buf.String()
	if n := strings.Count(out, "nscache.failure"); n != 3 {
		t.Fatalf("sampled %d lines, want 3", n)
	}
	if strings.Contains(out, "secret-key") {
		t.Fatalf("error text not redacted: %q", out)
	}
	if !strings.Contains(out, HashRedact("secret-key")) {
		t.Fatalf("redacted digest missing: %q", out)
	}
}

func TestKeyHashedAndNilLogger(t *testing.T) {
	l, buf := newBufLogger()
	New(l, Options{}).KeyHashed("search", 512)
	if !strings.Contains(buf.String(), "candidate_len=512") {
		t.Fatalf("KeyHashed line = %q", buf.String())
	}

	quiet := New(nil, Options{})
	quiet.Hit("ns")
	quiet.Miss("ns")
	quiet.KeyHashed("ns", 1)
	quiet.Failure("ns", nscache.OpGet, nscache.FailureDecode, true, nil)
}
