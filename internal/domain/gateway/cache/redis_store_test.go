package cache

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	pkgredis "travel-weather-api/pkg/redis"
)

func newMiniredisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)

	host, portStr, err := net.SplitHostPort(server.Addr())
	if err != nil {
		t.Fatalf("failed to split miniredis addr: %v", err)
	}
	port, _ := strconv.Atoi(portStr)

	client := pkgredis.NewClient(pkgredis.NewRedisConfig().WithHost(host).WithPort(port))
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client), server
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newMiniredisStore(t)
	ctx := context.Background()

	if _, ok := store.Get(ctx, "placeid:Paris"); ok {
		t.Error("expected miss on empty store")
	}

	store.SetWithTTL(ctx, "placeid:Paris", "place-123", time.Hour)

	value, ok := store.Get(ctx, "placeid:Paris")
	if !ok || value != "place-123" {
		t.Errorf("Get = %q, %v; want place-123, true", value, ok)
	}
	if !store.Exists(ctx, "placeid:Paris") {
		t.Error("Exists should report the live entry")
	}
}

func TestRedisStoreExpiry(t *testing.T) {
	store, server := newMiniredisStore(t)
	ctx := context.Background()

	store.SetWithTTL(ctx, "weather:paris:2026-08-30", "{}", 6*time.Hour)

	server.FastForward(5 * time.Hour)
	if _, ok := store.Get(ctx, "weather:paris:2026-08-30"); !ok {
		t.Error("entry should still be live before TTL")
	}

	server.FastForward(2 * time.Hour)
	if _, ok := store.Get(ctx, "weather:paris:2026-08-30"); ok {
		t.Error("entry should have expired after TTL")
	}
}

func TestRedisStoreBackendDownDegradesToMiss(t *testing.T) {
	store, server := newMiniredisStore(t)
	ctx := context.Background()

	store.SetWithTTL(ctx, "key", "value", time.Hour)
	server.Close()

	if _, ok := store.Get(ctx, "key"); ok {
		t.Error("expected miss when backend is down")
	}
	if store.Exists(ctx, "key") {
		t.Error("Exists should report false when backend is down")
	}
	// must not panic
	store.SetWithTTL(ctx, "key", "value", time.Hour)
}
