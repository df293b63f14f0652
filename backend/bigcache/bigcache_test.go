package bigcache

import (
	"context"
	"testing"
	"time"
)

func TestSetGetDelete(t *testing.T) {
	ctx := context.Background()
	b, err := New(Config{LifeWindow: time.Minute, HardMaxCacheSizeMB: 8})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer b.Close(ctx)

	if _, ok, err := b.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("expected miss, ok=%v err=%v", ok, err)
	}
	if err := b.Set(ctx, "k", "value", 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := b.Get(ctx, "k")
	if err != nil || !ok || got != "value" {
		t.Fatalf("Get: got=%q ok=%v err=%v", got, ok, err)
	}
	if b.Len() != 1 {
		t.Fatalf("Len = %d, want 1", b.Len())
	}
	if err := b.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := b.Get(ctx, "k"); ok {
		t.Fatalf("expected miss after Delete")
	}
}

func TestDeleteMissingIsNotAnError(t *testing.T) {
	ctx := context.Background()
	b, err := New(Config{LifeWindow: time.Minute})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer b.Close(ctx)

	if err := b.Delete(ctx, "never-set"); err != nil {
		t.Fatalf("Delete on missing key: %v", err)
	}
}
