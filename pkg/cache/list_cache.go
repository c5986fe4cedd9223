package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ListCacheTTL bounds how long a list snapshot may be served without a
	// store read. Every mutation also invalidates the entry explicitly, and
	// markers live for the same TTL.
	ListCacheTTL = 15 * time.Minute

	listCacheKeyPrefix = "shoppinglist"

	fieldStale   = "stale"
	fieldDeleted = "deleted"
)

// KEYS[1] list key. ARGV[1] version, ARGV[2] ttl in ms, ARGV[3..] hash fields.
var setListScript = redis.NewScript(`
if redis.call('HEXISTS', KEYS[1], 'deleted') == 1 then
	return 0
end
local cur = redis.call('HGET', KEYS[1], 'version')
if cur and tonumber(cur) > tonumber(ARGV[1]) then
	return 0
end
redis.call('DEL', KEYS[1])
redis.call('HSET', KEYS[1], unpack(ARGV, 3))
redis.call('PEXPIRE', KEYS[1], ARGV[2])
return 1
`)

// KEYS[1] list key. ARGV[1] version, ARGV[2] ttl in ms.
var invalidateListScript = redis.NewScript(`
if redis.call('HEXISTS', KEYS[1], 'deleted') == 1 then
	return 0
end
local cur = redis.call('HGET', KEYS[1], 'version')
if cur and tonumber(cur) >= tonumber(ARGV[1]) then
	return 0
end
redis.call('DEL', KEYS[1])
redis.call('HSET', KEYS[1], 'version', ARGV[1], 'stale', '1')
redis.call('PEXPIRE', KEYS[1], ARGV[2])
return 1
`)

// CachedList is the denormalized read model of a list stored as a Redis hash.
// Membership is cached so authorization can be evaluated on a hit; callers
// must still run the membership check after retrieval.
type CachedList struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	AllowedUsers []string  `json:"allowed_users"`
	Version      int64     `json:"version"`
}

// ListCache provides read-through cache entries for lists.
// Key format: "shoppinglist:{listID}"
type ListCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewListCache creates a ListCache backed by the given RedisClient.
func NewListCache(r *RedisClient) *ListCache {
	return &ListCache{client: r, ttl: ListCacheTTL}
}

// Get returns the cached list. Returns redis.Nil when the key does not exist,
// has expired, or holds a stale or deleted marker.
func (c *ListCache) Get(ctx context.Context, listID uuid.UUID) (*CachedList, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(listID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 || vals[fieldStale] != "" || vals[fieldDeleted] != "" {
		return nil, redis.Nil
	}
	return decodeList(vals)
}

// Set writes the list hash and its TTL unless the key already holds a newer
// version, a stale marker above l.Version, or a deleted marker. A reader that
// fetched the store before a concurrent write can therefore never put its
// older snapshot back.
func (c *ListCache) Set(ctx context.Context, l *CachedList) error {
	members, err := json.Marshal(l.AllowedUsers)
	if err != nil {
		return fmt.Errorf("cache encode members: %w", err)
	}
	args := []any{
		l.Version, c.ttl.Milliseconds(),
		"id", l.ID.String(),
		"name", l.Name,
		"created_by", l.CreatedBy,
		"created_at", l.CreatedAt.UTC().Format(time.RFC3339Nano),
		"allowed_users", string(members),
		"version", strconv.FormatInt(l.Version, 10),
	}
	if err := setListScript.Run(ctx, c.client.Client(), []string{c.key(l.ID)}, args...).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate replaces any entry older than version with a stale marker.
// Reads miss on the marker and Set only succeeds again from version on.
// Entries at or above version are left alone, so redelivered or reordered
// invalidations are harmless.
func (c *ListCache) Invalidate(ctx context.Context, listID uuid.UUID, version int64) error {
	err := invalidateListScript.Run(ctx, c.client.Client(), []string{c.key(listID)}, version, c.ttl.Milliseconds()).Err()
	if err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

// MarkDeleted replaces the entry with a deleted marker that rejects every Set
// until it expires.
func (c *ListCache) MarkDeleted(ctx context.Context, listID uuid.UUID) error {
	key := c.key(listID)
	pipe := c.client.Client().TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fieldDeleted, "1")
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache mark deleted: %w", err)
	}
	return nil
}

func (c *ListCache) key(listID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", listCacheKeyPrefix, listID)
}

func decodeList(vals map[string]string) (*CachedList, error) {
	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}
	version, err := strconv.ParseInt(vals["version"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse version: %w", err)
	}
	var members []string
	if err := json.Unmarshal([]byte(vals["allowed_users"]), &members); err != nil {
		return nil, fmt.Errorf("cache parse allowed_users: %w", err)
	}
	return &CachedList{
		ID:           id,
		Name:         vals["name"],
		CreatedBy:    vals["created_by"],
		CreatedAt:    createdAt,
		AllowedUsers: members,
		Version:      version,
	}, nil
}
