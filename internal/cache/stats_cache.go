package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"quizhub-service/internal/models"

	"github.com/redis/go-redis/v9"
)

// StatsCache keeps computed quiz statistics in Redis with a short TTL.
// Statistics only need snapshot consistency, so a stale-within-TTL read is
// fine; the cache is invalidated on every result insert anyway. All failures
// degrade to a miss.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(addr, password string, db int, ttl time.Duration) *StatsCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Could not verify Redis connection: %s", err)
	}
	return &StatsCache{client: client, ttl: ttl}
}

func key(quizID string) string {
	return "quiz-stats:" + quizID
}

func (c *StatsCache) Get(ctx context.Context, quizID string) (*models.QuizStats, bool) {
	raw, err := c.client.Get(ctx, key(quizID)).Bytes()
	if err != nil {
		return nil, false
	}
	var stats models.QuizStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (c *StatsCache) Set(ctx context.Context, quizID string, stats models.QuizStats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key(quizID), raw, c.ttl).Err(); err != nil {
		log.Printf("stats cache set failed: %v", err)
	}
}

func (c *StatsCache) Invalidate(ctx context.Context, quizID string) {
	if err := c.client.Del(ctx, key(quizID)).Err(); err != nil {
		log.Printf("stats cache invalidate failed: %v", err)
	}
}

func (c *StatsCache) Close() error {
	return c.client.Close()
}
