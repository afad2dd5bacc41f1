package presence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	summaryKeyPrefix = "presence:summary:"

	// DefaultCacheTTL bounds staleness for summaries that miss an
	// explicit invalidation (holiday or leave edits).
	DefaultCacheTTL = 10 * time.Minute
)

func summaryKey(employeeID string, year int, month time.Month) string {
	return fmt.Sprintf("%s%s:%04d-%02d", summaryKeyPrefix, employeeID, year, int(month))
}

// cachedSummary is the stored envelope. Entries carry their write time
// so a key that outlives its TTL on the redis side (persistence restore,
// clock skew) still reads as a miss.
type cachedSummary struct {
	Summary  MonthlySummary `json:"summary"`
	CachedAt time.Time      `json:"cached_at"`
}

// Cache is a read-through cache for monthly summaries. It is purely a
// performance layer: a miss or a redis outage falls back to computing
// from the ledger. Singleflight collapses concurrent misses for the
// same key into one computation.
type Cache struct {
	rdb *redis.Client
	sf  *singleflight.Group
	ttl time.Duration
	now func() time.Time
}

func NewCache(rdb *redis.Client, ttl time.Duration, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		rdb: rdb,
		sf:  &singleflight.Group{},
		ttl: ttl,
		now: now,
	}
}

// GetOrCompute returns the cached summary for the key, or computes,
// stores, and returns it. Cache errors are swallowed: the computed
// value always wins.
func (c *Cache) GetOrCompute(
	ctx context.Context,
	employeeID string,
	year int,
	month time.Month,
	compute func() (MonthlySummary, error),
) (MonthlySummary, error) {
	key := summaryKey(employeeID, year, month)

	if c.rdb != nil {
		if raw, err := c.rdb.Get(ctx, key).Result(); err == nil {
			var entry cachedSummary
			if json.Unmarshal([]byte(raw), &entry) == nil && c.now().Sub(entry.CachedAt) <= c.ttl {
				return entry.Summary, nil
			}
		}
	}

	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		sum, err := compute()
		if err != nil {
			return MonthlySummary{}, err
		}

		if c.rdb != nil {
			entry := cachedSummary{Summary: sum, CachedAt: c.now().UTC()}
			if payload, marshalErr := json.Marshal(entry); marshalErr == nil {
				_ = c.rdb.Set(ctx, key, payload, c.ttl).Err()
			}
		}
		return sum, nil
	})
	if err != nil {
		return MonthlySummary{}, err
	}

	return v.(MonthlySummary), nil
}

// InvalidateSummary drops the cached summary for the month containing
// day. Called by the attendance service after each successful append.
func (c *Cache) InvalidateSummary(ctx context.Context, employeeID string, day time.Time) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, summaryKey(employeeID, day.Year(), day.Month())).Err()
}
