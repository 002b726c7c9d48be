package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	intconfig "frontdesk/internal/config"
	"frontdesk/internal/domain/models"

	"github.com/redis/go-redis/v9"
)

const (
	previewKeyPrefix = "pricing_preview:"
	defaultCacheTTL  = 10 * time.Minute
)

// PreviewCache stores computed breakdowns by request fingerprint. Get returns nil, nil on a miss.
type PreviewCache interface {
	Get(ctx context.Context, key string) (*models.ChargeBreakdown, error)
	Set(ctx context.Context, key string, b models.ChargeBreakdown) error
}

// PreviewKey fingerprints a resolved calculator input together with its options.
func PreviewKey(in models.ChargeInput, rounding, strict bool) (string, error) {
	payload, err := json.Marshal(struct {
		Input    models.ChargeInput `json:"input"`
		Rounding bool               `json:"rounding"`
		Strict   bool               `json:"strict"`
	}{in, rounding, strict})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return previewKeyPrefix + hex.EncodeToString(sum[:]), nil
}

// RedisPreviewCache implements PreviewCache using Redis.
type RedisPreviewCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisPreviewCache(cfg intconfig.RedisConfig) *RedisPreviewCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return newRedisPreviewCache(client, cfg.TTL)
}

func newRedisPreviewCache(client redis.UniversalClient, ttl time.Duration) *RedisPreviewCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &RedisPreviewCache{client: client, ttl: ttl}
}

func (c *RedisPreviewCache) Get(ctx context.Context, key string) (*models.ChargeBreakdown, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var b models.ChargeBreakdown
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *RedisPreviewCache) Set(ctx context.Context, key string, b models.ChargeBreakdown) error {
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *RedisPreviewCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisPreviewCache) Close() error {
	return c.client.Close()
}
