package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"amur-backend/internal/domain"
)

// OrderSequence allocates per-day order numbers with an atomic INCR, so two
// concurrent placements can never share a number. Counters expire after 48
// hours: the key embeds the date, the next day starts from 1 on its own key.
type OrderSequence struct {
	Client *redis.Client
}

func NewOrderSequence(client *redis.Client) *OrderSequence {
	return &OrderSequence{Client: client}
}

func (s *OrderSequence) Next(ctx context.Context, date string) (int, error) {
	key := "orders:counter:" + date
	n, err := s.Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", key, err)
	}
	if n == 1 {
		s.Client.Expire(ctx, key, 48*time.Hour)
	}
	return int(n), nil
}

// Popularity keeps sorted-set rankings of ordered food quantities, one set per
// day plus an all-time set for the analytics dashboard.
type Popularity struct {
	Client *redis.Client
}

func NewPopularity(client *redis.Client) *Popularity {
	return &Popularity{Client: client}
}

func (p *Popularity) RecordOrder(ctx context.Context, date string, foods []domain.OrderFood) error {
	dayKey := "popularity:daily:" + date
	pipe := p.Client.Pipeline()
	for _, line := range foods {
		pipe.ZIncrBy(ctx, dayKey, float64(line.Quantity), line.FoodID)
		pipe.ZIncrBy(ctx, "popularity:alltime", float64(line.Quantity), line.FoodID)
	}
	pipe.Expire(ctx, dayKey, 30*24*time.Hour)
	_, err := pipe.Exec(ctx)
	return err
}

func (p *Popularity) TopAllTime(ctx context.Context, limit int) (map[string]int, error) {
	if limit <= 0 {
		limit = 10
	}
	entries, err := p.Client.ZRevRangeWithScores(ctx, "popularity:alltime", 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	ranked := make(map[string]int, len(entries))
	for _, entry := range entries {
		foodID, ok := entry.Member.(string)
		if !ok {
			continue
		}
		ranked[foodID] = int(entry.Score)
	}
	return ranked, nil
}
