package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segyhp/easy-service/internal/domain"
	"github.com/segyhp/easy-service/pkg/utils"

	"github.com/redis/go-redis/v9"
)

const statsKeyPrefix = "agreements:stats:"

// StatisticsCache keeps agreement statistics per period and day.
// Get reports a miss with found == false and a nil error.
type StatisticsCache interface {
	Get(ctx context.Context, period domain.Period, today time.Time) (stats *domain.Statistics, found bool, err error)
	Set(ctx context.Context, period domain.Period, today time.Time, stats *domain.Statistics) error
	Invalidate(ctx context.Context) error
}

func StatisticsKey(period domain.Period, today time.Time) string {
	return fmt.Sprintf("%s%s:%s", statsKeyPrefix, period, utils.Day(today).Format("2006-01-02"))
}

type redisStatisticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStatisticsCache(client *redis.Client, ttl time.Duration) StatisticsCache {
	return &redisStatisticsCache{client: client, ttl: ttl}
}

func (c *redisStatisticsCache) Get(ctx context.Context, period domain.Period, today time.Time) (*domain.Statistics, bool, error) {
	data, err := c.client.Get(ctx, StatisticsKey(period, today)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var stats domain.Statistics
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached statistics: %w", err)
	}
	return &stats, true, nil
}

func (c *redisStatisticsCache) Set(ctx context.Context, period domain.Period, today time.Time, stats *domain.Statistics) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode statistics: %w", err)
	}
	return c.client.Set(ctx, StatisticsKey(period, today), data, c.ttl).Err()
}

// Invalidate drops every cached statistics entry.
func (c *redisStatisticsCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, statsKeyPrefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

type noopStatisticsCache struct{}

// NewNoopStatisticsCache is used when Redis is disabled; every Get misses.
func NewNoopStatisticsCache() StatisticsCache {
	return noopStatisticsCache{}
}

func (noopStatisticsCache) Get(context.Context, domain.Period, time.Time) (*domain.Statistics, bool, error) {
	return nil, false, nil
}

func (noopStatisticsCache) Set(context.Context, domain.Period, time.Time, *domain.Statistics) error {
	return nil
}

func (noopStatisticsCache) Invalidate(context.Context) error {
	return nil
}
