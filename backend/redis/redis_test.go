package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

func TestNewRequiresClient(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrNilClient) {
		t.Fatalf("New without client: got %v, want ErrNilClient", err)
	}
}

// unreachable returns a client pointed at a closed port so every command fails fast.
func unreachable(t *testing.T) goredis.UniversalClient {
	t.Helper()
	return goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestTransportErrorsSurface(t *testing.T) {
	ctx := context.Background()
	b, err := New(Config{Client: unreachable(t), CloseClient: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer b.Close(ctx)

	if _, ok, err := b.Get(ctx, "k"); err == nil || ok {
		t.Fatalf("Get against dead server: ok=%v err=%v", ok, err)
	}
	if err := b.Set(ctx, "k", "v", time.Minute); err == nil {
		t.Fatalf("Set against dead server should fail")
	}
	if err := b.Delete(ctx, "k"); err == nil {
		t.Fatalf("Delete against dead server should fail")
	}
}

func TestCloseOnlyWhenOwned(t *testing.T) {
	ctx := context.Background()
	client := unreachable(t)
	defer client.Close()

	b, _ := New(Config{Client: client})
	if err := b.Close(ctx); err != nil {
		t.Fatalf("Close (not owned): %v", err)
	}
	// client must still be usable, i.e. not ErrClosed
	if err := client.Ping(ctx).Err(); errors.Is(err, goredis.ErrClosed) {
		t.Fatalf("shared client was closed by backend")
	}

	owned, _ := New(Config{Client: unreachable(t), CloseClient: true})
	if err := owned.Close(ctx); err != nil {
		t.Fatalf("Close (owned): %v", err)
	}
	if err := owned.Close(ctx); err != nil {
		t.Fatalf("second Close should be a no-op, got %v", err)
	}
}
