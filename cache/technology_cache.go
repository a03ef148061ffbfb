package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/camden-git/hrmbackend/models"
)

var ErrMiss = errors.New("cache miss")

const technologyCatalogKey = "hrm:technology:catalog"

// TechnologyCache keeps the active technology catalog in Redis as one JSON document
type TechnologyCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTechnologyCache(client *redis.Client, ttl time.Duration) *TechnologyCache {
	return &TechnologyCache{client: client, ttl: ttl}
}

// NewRedisClient creates a client and verifies the connection
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return client, nil
}

// GetTechnologies returns the cached catalog or ErrMiss
func (c *TechnologyCache) GetTechnologies(ctx context.Context) ([]models.Technology, error) {
	val, err := c.client.Get(ctx, technologyCatalogKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("failed to read technology catalog from cache: %w", err)
	}

	var technologies []models.Technology
	if err := json.Unmarshal(val, &technologies); err != nil {
		return nil, fmt.Errorf("failed to decode cached technology catalog: %w", err)
	}
	return technologies, nil
}

func (c *TechnologyCache) SetTechnologies(ctx context.Context, technologies []models.Technology) error {
	data, err := json.Marshal(technologies)
	if err != nil {
		return fmt.Errorf("failed to encode technology catalog: %w", err)
	}
	if err := c.client.Set(ctx, technologyCatalogKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write technology catalog to cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached catalog so the next read goes to the store
func (c *TechnologyCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, technologyCatalogKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate technology catalog cache: %w", err)
	}
	return nil
}
