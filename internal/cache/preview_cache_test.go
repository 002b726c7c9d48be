package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"frontdesk/internal/domain/models"

	"github.com/redis/go-redis/v9"
)

// memoryRedis answers GET and SET from a map; other commands are not used by the cache.
type memoryRedis struct {
	redis.UniversalClient
	data    map[string]string
	ttls    map[string]time.Duration
	failGet error
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if m.failGet != nil {
		return redis.NewStringResult("", m.failGet)
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memoryRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	}
	m.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func sampleInput() models.ChargeInput {
	return models.ChargeInput{
		Rooms: []models.RoomSelection{{RoomNumber: "101", BaseRate: 2000}},
		Stay: models.StayPeriod{
			CheckIn:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		Rates: models.ChargeRates{CGSTPercent: 6, SGSTPercent: 6},
	}
}

func TestPreviewKeyStable(t *testing.T) {
	a, err := PreviewKey(sampleInput(), false, false)
	if err != nil {
		t.Fatalf("PreviewKey error: %v", err)
	}
	b, _ := PreviewKey(sampleInput(), false, false)
	if a != b {
		t.Fatalf("identical input should give identical keys")
	}
	if !strings.HasPrefix(a, previewKeyPrefix) {
		t.Fatalf("missing prefix: %s", a)
	}
}

func TestPreviewKeyVariesWithInputAndOptions(t *testing.T) {
	base, _ := PreviewKey(sampleInput(), false, false)

	rounded, _ := PreviewKey(sampleInput(), true, false)
	if rounded == base {
		t.Fatalf("rounding should change the key")
	}

	in := sampleInput()
	in.Rates.DiscountPercent = 5
	discounted, _ := PreviewKey(in, false, false)
	if discounted == base {
		t.Fatalf("rates should change the key")
	}
}

func TestRedisPreviewCacheMissReturnsNil(t *testing.T) {
	c := newRedisPreviewCache(newMemoryRedis(), 0)
	got, err := c.Get(context.Background(), "pricing_preview:missing")
	if err != nil || got != nil {
		t.Fatalf("miss should be nil, nil; got %+v, %v", got, err)
	}
}

func TestRedisPreviewCacheRoundTrip(t *testing.T) {
	store := newMemoryRedis()
	c := newRedisPreviewCache(store, 0)
	want := models.ChargeBreakdown{RoomNights: 2, RoomSubtotal: 4000, CGSTAmount: 240, SGSTAmount: 240, GrandTotal: 4480, BalanceDue: 4480}

	if err := c.Set(context.Background(), "pricing_preview:k", want); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if store.ttls["pricing_preview:k"] != defaultCacheTTL {
		t.Fatalf("expected default ttl, got %v", store.ttls["pricing_preview:k"])
	}
	got, err := c.Get(context.Background(), "pricing_preview:k")
	if err != nil || got == nil {
		t.Fatalf("Get: %+v, %v", got, err)
	}
	if *got != want {
		t.Fatalf("round trip mismatch: %+v != %+v", *got, want)
	}
}

func TestRedisPreviewCacheErrors(t *testing.T) {
	store := newMemoryRedis()
	c := newRedisPreviewCache(store, time.Minute)

	store.data["pricing_preview:bad"] = "not json"
	if _, err := c.Get(context.Background(), "pricing_preview:bad"); err == nil {
		t.Fatalf("expected decode error for corrupt entry")
	}

	store.failGet = errors.New("connection refused")
	if _, err := c.Get(context.Background(), "pricing_preview:bad"); err == nil || errors.Is(err, redis.Nil) {
		t.Fatalf("expected transport error, got %v", err)
	}
}
