package services

import (
	"fmt"
	"sync"
	"time"

	"fre-insights/internal/config"
	"fre-insights/internal/models"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/google/uuid"
)

// InsightsCache holds computed reports per user and period.
// Keys are tracked per user so an import can drop everything the user has cached.
type InsightsCache struct {
	cache *ristretto.Cache[string, *models.InsightsReport]
	ttl   time.Duration

	mu   sync.Mutex
	keys map[uuid.UUID]map[string]struct{}
}

func NewInsightsCache(cfg config.InsightsConfig) (*InsightsCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, *models.InsightsReport]{
		NumCounters:        cfg.CacheNumCounters,
		MaxCost:            cfg.CacheMaxCost,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize insights cache: %w", err)
	}

	return &InsightsCache{
		cache: cache,
		ttl:   cfg.CacheTTL,
		keys:  make(map[uuid.UUID]map[string]struct{}),
	}, nil
}

func insightsKey(userID uuid.UUID, month, year, lookbackMonths int) string {
	return fmt.Sprintf("%s:%d:%d:%d", userID, month, year, lookbackMonths)
}

func (c *InsightsCache) Get(key string) (*models.InsightsReport, bool) {
	return c.cache.Get(key)
}

// Set stores the report and waits until it is visible to Get
func (c *InsightsCache) Set(userID uuid.UUID, key string, report *models.InsightsReport) {
	c.mu.Lock()
	userKeys, ok := c.keys[userID]
	if !ok {
		userKeys = make(map[string]struct{})
		c.keys[userID] = userKeys
	}
	userKeys[key] = struct{}{}
	c.mu.Unlock()

	c.cache.SetWithTTL(key, report, 1, c.ttl)
	c.cache.Wait()
}

func (c *InsightsCache) InvalidateUser(userID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.keys[userID] {
		c.cache.Del(key)
	}
	delete(c.keys, userID)
}

func (c *InsightsCache) Close() {
	c.cache.Close()
}
