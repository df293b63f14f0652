package bbolt

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.etcd.io/bbolt"
)

func openTempDB(t *testing.T) (*bbolt.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nscache.db")
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		t.Fatalf("bbolt.Open: %v", err)
	}
	return db, path
}

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	db, _ := openTempDB(t)
	b, err := New(db, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = b.Close(context.Background()) })
	return b
}

func TestSetGetDelete(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	if _, ok, err := b.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("expected miss, ok=%v err=%v", ok, err)
	}
	if err := b.Set(ctx, "k", `{"some":"value"}`, time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := b.Get(ctx, "k")
	if err != nil || !ok || got != `{"some":"value"}` {
		t.Fatalf("Get: got=%q ok=%v err=%v", got, ok, err)
	}
	if err := b.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := b.Get(ctx, "k"); ok {
		t.Fatalf("expected miss after Delete")
	}
	if err := b.Delete(ctx, "never-set"); err != nil {
		t.Fatalf("Delete on missing key: %v", err)
	}
}

func TestEmptyValueIsAHit(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	if err := b.Set(ctx, "empty", "", 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := b.Get(ctx, "empty")
	if err != nil || !ok || got != "" {
		t.Fatalf("Get: got=%q ok=%v err=%v", got, ok, err)
	}
}

func TestExpiry(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	now := time.Unix(1_700_000_000, 0)
	b.now = func() time.Time { return now }

	if err := b.Set(ctx, "short", "v", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := b.Set(ctx, "forever", "v", 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	now = now.Add(2 * time.Minute)

	if _, ok, err := b.Get(ctx, "short"); ok || err != nil {
		t.Fatalf("expired entry should miss, ok=%v err=%v", ok, err)
	}
	if _, ok, _ := b.Get(ctx, "forever"); !ok {
		t.Fatalf("entry without ttl should not expire")
	}

	err := b.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(b.bucket).Get([]byte("short")) != nil {
			return errors.New("expired entry still stored")
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	db, path := openTempDB(t)
	b, err := New(db, "plugins")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := b.Set(ctx, "k", "v", time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := b.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db2, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	b2, err := New(db2, "plugins")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer b2.Close(ctx)

	if got, ok, err := b2.Get(ctx, "k"); err != nil || !ok || got != "v" {
		t.Fatalf("Get after reopen: got=%q ok=%v err=%v", got, ok, err)
	}
}

func TestClosed(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)

	if err := b.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := b.Close(ctx); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, _, err := b.Get(ctx, "k"); !errors.Is(err, ErrClosed) {
		t.Fatalf("Get after Close: %v", err)
	}
	if err := b.Set(ctx, "k", "v", 0); !errors.Is(err, ErrClosed) {
		t.Fatalf("Set after Close: %v", err)
	}
	if err := b.Delete(ctx, "k"); !errors.Is(err, ErrClosed) {
		t.Fatalf("Delete after Close: %v", err)
	}
}

func TestNewRequiresDB(t *testing.T) {
	if _, err := New(nil, ""); err == nil {
		t.Fatalf("New(nil) should fail")
	}
}
