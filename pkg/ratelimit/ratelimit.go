// Package ratelimit is a token bucket limiter kept in Redis so that every
// API instance shares the same per-user budget.
package ratelimit

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type Decision struct {
	Allowed bool
	// Tokens left after this request
	Remaining int
	// Zero when allowed
	RetryAfter time.Duration
}

type Config struct {
	// Bucket size, also the number of requests a fresh key may burst
	Capacity int
	// Tokens added every Interval
	Refill   int
	Interval time.Duration
	Prefix   string
}

func DefaultConfig() Config {
	return Config{
		Capacity: 10,
		Refill:   10,
		Interval: time.Hour,
		Prefix:   "ratelimit:",
	}
}

// KEYS[1] bucket, ARGV: capacity, refill, interval ms, now ms.
// Returns {allowed, remaining, retry after ms}.
const tokenBucketScript = `
local capacity = tonumber(ARGV[1])
local refill = tonumber(ARGV[2])
local interval = tonumber(ARGV[3])
local now = tonumber(ARGV[4])
local state = redis.call('HMGET', KEYS[1], 'tokens', 'ts')
local tokens = tonumber(state[1])
local ts = tonumber(state[2])
if tokens == nil or ts == nil then
  tokens = capacity
  ts = now
end
local refills = math.floor((now - ts) / interval)
if refills > 0 then
  tokens = math.min(capacity, tokens + refills * refill)
  ts = ts + refills * interval
end
local allowed = 0
local retry = 0
if tokens > 0 then
  tokens = tokens - 1
  allowed = 1
else
  retry = interval - (now - ts)
end
redis.call('HSET', KEYS[1], 'tokens', tokens, 'ts', ts)
redis.call('PEXPIRE', KEYS[1], interval * 2)
return {allowed, tokens, retry}
`

type RedisLimiter struct {
	client redis.Cmdable
	cfg    Config
	now    func() time.Time
}

func NewRedisLimiter(client redis.Cmdable, cfg Config) *RedisLimiter {
	def := DefaultConfig()
	if cfg.Capacity <= 0 {
		cfg.Capacity = def.Capacity
	}
	if cfg.Refill <= 0 {
		cfg.Refill = def.Refill
	}
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.Prefix == "" {
		cfg.Prefix = def.Prefix
	}
	return &RedisLimiter{
		client: client,
		cfg:    cfg,
		now:    time.Now,
	}
}

// WithClock replaces time source. Used in tests.
func (l *RedisLimiter) WithClock(now func() time.Time) *RedisLimiter {
	l.now = now
	return l
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	res, err := l.client.Eval(ctx, tokenBucketScript, []string{l.cfg.Prefix + key},
		l.cfg.Capacity,
		l.cfg.Refill,
		l.cfg.Interval.Milliseconds(),
		l.now().UnixMilli(),
	).Int64Slice()
	if err != nil {
		return Decision{}, errors.New("rate limit script error: " + err.Error())
	}
	if len(res) != 3 {
		return Decision{}, errors.New("rate limit script returned unexpected reply")
	}
	return Decision{
		Allowed:    res[0] == 1,
		Remaining:  int(res[1]),
		RetryAfter: time.Duration(res[2]) * time.Millisecond,
	}, nil
}

// AllowAll is used when no Redis is configured.
type AllowAll struct{}

func (AllowAll) Allow(ctx context.Context, key string) (Decision, error) {
	return Decision{Allowed: true, Remaining: -1}, nil
}
