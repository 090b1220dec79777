package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/segyhp/easy-service/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)

func TestStatisticsKey(t *testing.T) {
	assert.Equal(t, "agreements:stats:week:2024-01-17", StatisticsKey(domain.PeriodWeek, today.Add(20*time.Hour)))
}

func TestNoopStatisticsCache(t *testing.T) {
	c := NewNoopStatisticsCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, domain.PeriodAny, today, &domain.Statistics{}))
	stats, found, err := c.Get(ctx, domain.PeriodAny, today)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, stats)
	assert.NoError(t, c.Invalidate(ctx))
}

func TestRedisStatisticsCache(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { client.Close() })
	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err())

	c := NewRedisStatisticsCache(client, time.Minute)
	require.NoError(t, c.Invalidate(ctx))

	_, found, err := c.Get(ctx, domain.PeriodMonth, today)
	require.NoError(t, err)
	assert.False(t, found)

	stats := domain.Summarize([]*domain.Agreement{
		{CustomerID: "12345678909", Value: decimal.NewFromInt(200), CreateDate: today, DaysUntilDue: 30},
	}, today)
	require.NoError(t, c.Set(ctx, domain.PeriodMonth, today, stats))

	cached, found, err := c.Get(ctx, domain.PeriodMonth, today)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, cached.Negotiated.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 1, cached.ByState[domain.StateActive].Quantity)

	require.NoError(t, c.Invalidate(ctx))
	_, found, err = c.Get(ctx, domain.PeriodMonth, today)
	require.NoError(t, err)
	assert.False(t, found)
}
