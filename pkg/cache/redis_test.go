package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/SamWeninger/shopping-assistant/pkg/config"
)

// newTestConfig returns a config pointing to REDIS_URL env var, falling back to localhost.
func newTestConfig(url string) *config.Config {
	return &config.Config{
		RedisURL: url,
	}
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(newTestConfig("not-a-valid-url"))
	if err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	_, err := NewRedisClient(newTestConfig("redis://localhost:19999"))
	if err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

func TestRedisOptions(t *testing.T) {
	opts, err := redisOptions("redis://:secret@cache.internal:6380/2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "cache.internal:6380" || opts.DB != 2 || opts.Password != "secret" {
		t.Fatalf("url not parsed: addr=%q db=%d", opts.Addr, opts.DB)
	}
	if opts.ReadTimeout > time.Second || opts.MaxRetries > 1 {
		t.Fatalf("cache timeouts too lax: read=%s retries=%d", opts.ReadTimeout, opts.MaxRetries)
	}
}

// Integration tests, skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	t.Run("NewRedisClient_Success", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck
	})

	t.Run("Ping_Success", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		if err := rc.Ping(context.Background()); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("Close_Idempotent", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := rc.Close(); err != nil {
			t.Fatalf("first Close failed: %v", err)
		}
	})

	t.Run("ListCache_RoundTripAndInvalidate", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		ctx := context.Background()
		lc := NewListCache(rc)
		want := &CachedList{
			ID:           uuid.New(),
			Name:         "Weekly Groceries",
			CreatedBy:    "user123",
			CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
			AllowedUsers: []string{"user123", "user456"},
			Version:      3,
		}
		if err := lc.Set(ctx, want); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, err := lc.Get(ctx, want.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Name != want.Name || got.Version != 3 || len(got.AllowedUsers) != 2 || !got.CreatedAt.Equal(want.CreatedAt) {
			t.Fatalf("unexpected cached list %+v", got)
		}

		if err := lc.Invalidate(ctx, want.ID, 4); err != nil {
			t.Fatalf("Invalidate: %v", err)
		}
		if _, err := lc.Get(ctx, want.ID); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil after invalidate, got %v", err)
		}
	})

	t.Run("ListCache_VersionedWrites", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		ctx := context.Background()
		lc := NewListCache(rc)
		id := uuid.New()
		snapshot := func(version int64, members ...string) *CachedList {
			return &CachedList{ID: id, Name: "Groceries", CreatedBy: "user123", CreatedAt: time.Now().UTC(), AllowedUsers: members, Version: version}
		}

		// A reader that fetched version 1 loses to an invalidation for version 2.
		if err := lc.Invalidate(ctx, id, 2); err != nil {
			t.Fatalf("Invalidate: %v", err)
		}
		if err := lc.Set(ctx, snapshot(1, "user123", "user456")); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if _, err := lc.Get(ctx, id); !errors.Is(err, redis.Nil) {
			t.Fatalf("stale fill was cached: %v", err)
		}

		if err := lc.Set(ctx, snapshot(2, "user123")); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := lc.Set(ctx, snapshot(1, "user123", "user456")); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := lc.Invalidate(ctx, id, 2); err != nil {
			t.Fatalf("Invalidate: %v", err)
		}
		got, err := lc.Get(ctx, id)
		if err != nil || got.Version != 2 || len(got.AllowedUsers) != 1 {
			t.Fatalf("expected version 2 to survive, got %+v, %v", got, err)
		}

		if err := lc.MarkDeleted(ctx, id); err != nil {
			t.Fatalf("MarkDeleted: %v", err)
		}
		if err := lc.Set(ctx, snapshot(3, "user123")); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if _, err := lc.Get(ctx, id); !errors.Is(err, redis.Nil) {
			t.Fatalf("deleted list cached again: %v", err)
		}
	})

	t.Run("Client_NotNil", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		if rc.Client() == nil {
			t.Fatal("expected non-nil underlying client")
		}
	})
}
