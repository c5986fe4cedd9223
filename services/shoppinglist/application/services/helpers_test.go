package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/SamWeninger/shopping-assistant/pkg/app"
	"github.com/SamWeninger/shopping-assistant/pkg/cache"
	"github.com/SamWeninger/shopping-assistant/pkg/config"
	"github.com/SamWeninger/shopping-assistant/pkg/logger"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/models"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/repositories"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/infrastructure/persistence/memory"
)

func testApp() *app.Application {
	return &app.Application{
		Config: &config.Config{ReceiptUploadTTL: time.Hour},
		Logger: logger.Nop(),
	}
}

type fixture struct {
	svc     *Services
	store   *memory.Store
	objects *fakeObjects
	cache   *fakeCache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:   memory.NewStore(),
		objects: newFakeObjects(),
		cache:   newFakeCache(),
	}
	f.svc = Wire(f.store, f.objects, f.cache, testApp())
	return f
}

func (f *fixture) createList(t *testing.T, name, createdBy string, users ...string) *models.List {
	t.Helper()
	l, err := f.svc.Lists.Create(context.Background(), name, createdBy, users)
	if err != nil {
		t.Fatalf("Create(%q): %v", name, err)
	}
	return l
}

// fakeObjects implements repositories.ObjectStore in memory.
type fakeObjects struct {
	mu         sync.Mutex
	uploaded   map[string]bool
	presignErr error
	existsErr  error
	presigned  []string
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{uploaded: make(map[string]bool)}
}

func (o *fakeObjects) PresignPut(_ context.Context, key, contentType string, ttl time.Duration) (*repositories.UploadURL, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.presignErr != nil {
		return nil, o.presignErr
	}
	o.presigned = append(o.presigned, key)
	return &repositories.UploadURL{
		URL:       "https://upload.example/" + key + "?ct=" + contentType,
		Method:    "PUT",
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}

func (o *fakeObjects) PublicURL(key string) string {
	return "https://receipts.example/" + key
}

func (o *fakeObjects) Exists(_ context.Context, key string) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.existsErr != nil {
		return false, o.existsErr
	}
	return o.uploaded[key], nil
}

// fakeCache implements ListCache in memory with the same version rules as
// the Redis scripts in pkg/cache.
type fakeCache struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*cacheEntry
	hits    int
}

type cacheEntry struct {
	list    *cache.CachedList // nil for markers
	version int64
	deleted bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[uuid.UUID]*cacheEntry)}
}

func (c *fakeCache) Get(_ context.Context, id uuid.UUID) (*cache.CachedList, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[id]
	if !ok || e.list == nil {
		return nil, redis.Nil
	}
	c.hits++
	cp := *e.list
	return &cp, nil
}

func (c *fakeCache) Set(_ context.Context, l *cache.CachedList) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[l.ID]; ok && (e.deleted || e.version > l.Version) {
		return nil
	}
	cp := *l
	c.entries[l.ID] = &cacheEntry{list: &cp, version: l.Version}
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, id uuid.UUID, version int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[id]; ok && (e.deleted || e.version >= version) {
		return nil
	}
	c.entries[id] = &cacheEntry{version: version}
	return nil
}

func (c *fakeCache) MarkDeleted(_ context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = &cacheEntry{deleted: true}
	return nil
}

// has reports whether a readable snapshot is cached.
func (c *fakeCache) has(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[id]
	return ok && e.list != nil
}

// evict drops the key entirely, as a TTL expiry would.
func (c *fakeCache) evict(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}

var errUnavailable = errors.New("connection refused")

// flakyLists fails the first failGets Get calls with a transport error.
type flakyLists struct {
	repositories.ListRepository
	mu       sync.Mutex
	failGets int
	gets     int
}

func (r *flakyLists) Get(ctx context.Context, id uuid.UUID) (*models.List, error) {
	r.mu.Lock()
	r.gets++
	fail := r.gets <= r.failGets
	r.mu.Unlock()
	if fail {
		return nil, errUnavailable
	}
	return r.ListRepository.Get(ctx, id)
}

// racingLists lets another writer update membership just before the
// service's own conditional write.
type racingLists struct {
	repositories.ListRepository
	raced bool
}

func (r *racingLists) UpdateMembers(ctx context.Context, l *models.List, expected int64) error {
	if !r.raced {
		r.raced = true
		other, err := r.ListRepository.Get(ctx, l.ID)
		if err != nil {
			return err
		}
		_, _ = other.AddMember("intruder")
		if err := r.ListRepository.UpdateMembers(ctx, other, other.Version); err != nil {
			return err
		}
	}
	return r.ListRepository.UpdateMembers(ctx, l, expected)
}

// failingReceipts rejects every Create.
type failingReceipts struct {
	repositories.ReceiptRepository
}

func (failingReceipts) Create(context.Context, *models.Receipt) error { return errUnavailable }

// interleavedLists calls during after its first store read and
// before that read returns, reproducing a writer that commits while a reader
// is between its store read and its cache fill.
type interleavedLists struct {
	repositories.ListRepository
	during func()
	ran    bool
}

func (r *interleavedLists) Get(ctx context.Context, id uuid.UUID) (*models.List, error) {
	l, err := r.ListRepository.Get(ctx, id)
	if err == nil && !r.ran && r.during != nil {
		r.ran = true
		r.during()
	}
	return l, err
}
