package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"mesa-placements/internal/core/domain"
)

// AvailabilityCache implements port.AvailabilityCache with one Redis hash
// per placement, keyed by day. The whole hash is dropped on invalidation and
// expires ttl after its last write. A counter next to the hash holds the
// placement generation; it has no TTL so that it never falls back to a value
// a slow reader may still hold.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

// Connect builds a client from a redis:// URL or a host:port address and
// pings it.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (c *AvailabilityCache) Get(ctx context.Context, placementID int64, day time.Time) (domain.Availability, bool, error) {
	v, err := c.client.HGet(ctx, availabilityKey(placementID), dayField(day)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	switch a := domain.Availability(v); a {
	case domain.AvailabilityAvailable, domain.AvailabilityBooked:
		return a, true, nil
	default:
		return "", false, nil
	}
}

// setIfGeneration writes the field and refreshes the TTL only while the
// generation counter still equals ARGV[1]. A missing counter is generation 0.
var setIfGeneration = redis.NewScript(`
local gen = redis.call('GET', KEYS[2])
if (gen or '0') ~= ARGV[1] then
  return 0
end
redis.call('HSET', KEYS[1], ARGV[2], ARGV[3])
redis.call('PEXPIRE', KEYS[1], ARGV[4])
return 1
`)

func (c *AvailabilityCache) Generation(ctx context.Context, placementID int64) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(placementID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *AvailabilityCache) Set(ctx context.Context, placementID int64, day time.Time, a domain.Availability, gen int64) error {
	keys := []string{availabilityKey(placementID), generationKey(placementID)}
	return setIfGeneration.Run(ctx, c.client, keys,
		strconv.FormatInt(gen, 10), dayField(day), string(a), c.ttl.Milliseconds()).Err()
}

// Invalidate advances the generation and drops the hash in one transaction.
func (c *AvailabilityCache) Invalidate(ctx context.Context, placementID int64) error {
	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, generationKey(placementID))
		p.Del(ctx, availabilityKey(placementID))
		return nil
	})
	return err
}

func availabilityKey(placementID int64) string {
	return fmt.Sprintf("placement:%d:availability", placementID)
}

func generationKey(placementID int64) string {
	return fmt.Sprintf("placement:%d:availability:gen", placementID)
}

func dayField(day time.Time) string {
	return domain.TruncateDate(day).Format(domain.DateLayout)
}
