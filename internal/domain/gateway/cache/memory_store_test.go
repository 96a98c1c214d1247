package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, ok := store.Get(ctx, "weather:paris:2026-08-30"); ok {
		t.Error("expected miss on empty store")
	}

	store.SetWithTTL(ctx, "weather:paris:2026-08-30", `{"city":"Paris"}`, time.Hour)

	value, ok := store.Get(ctx, "weather:paris:2026-08-30")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if value != `{"city":"Paris"}` {
		t.Errorf("value = %q, want stored payload", value)
	}
	if !store.Exists(ctx, "weather:paris:2026-08-30") {
		t.Error("Exists should report the live entry")
	}
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.SetWithTTL(ctx, "key", "first", time.Hour)
	store.SetWithTTL(ctx, "key", "second", time.Hour)

	value, ok := store.Get(ctx, "key")
	if !ok || value != "second" {
		t.Errorf("Get = %q, %v; want second, true", value, ok)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	current := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	store.SetWithTTL(ctx, "key", "value", 6*time.Hour)

	current = current.Add(5 * time.Hour)
	if _, ok := store.Get(ctx, "key"); !ok {
		t.Error("entry should still be live before TTL")
	}

	current = current.Add(2 * time.Hour)
	if _, ok := store.Get(ctx, "key"); ok {
		t.Error("entry should have expired after TTL")
	}
	if store.Exists(ctx, "key") {
		t.Error("Exists should report expired entry as absent")
	}
}
