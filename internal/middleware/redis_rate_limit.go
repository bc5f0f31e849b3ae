package middleware

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// tokenBucketScript 在 Redis 中原子地补充并消费令牌。
// KEYS[1] 桶键；ARGV: 每秒补充数, 容量, 当前毫秒时间戳, 过期毫秒数。
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local rate = tonumber(ARGV[1])
local burst = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local ttl = tonumber(ARGV[4])

local data = redis.call("HMGET", key, "tokens", "ts")
local tokens = tonumber(data[1])
local ts = tonumber(data[2])
if tokens == nil or ts == nil then
  tokens = burst
  ts = now
end

local elapsed = math.max(0, now - ts) / 1000
tokens = math.min(burst, tokens + elapsed * rate)

local allowed = 0
if tokens >= 1 then
  tokens = tokens - 1
  allowed = 1
end

redis.call("HSET", key, "tokens", tostring(tokens), "ts", tostring(now))
redis.call("PEXPIRE", key, ttl)
return allowed
`)

var errRedisUnavailable = errors.New("redis client unavailable")

// allowByRedisRateLimit 容量小于等于 0 视为不限流。
func allowByRedisRateLimit(ctx context.Context, client *redis.Client, key string, rps float64, burst int) (bool, error) {
	if burst <= 0 {
		return true, nil
	}
	if client == nil {
		return false, errRedisUnavailable
	}

	ttl := time.Hour
	if rps > 0 {
		refill := time.Duration(math.Ceil(float64(burst)/rps*1000)) * time.Millisecond
		ttl = refill + time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	res, err := tokenBucketScript.Run(ctx, client, []string{key},
		strconv.FormatFloat(rps, 'f', -1, 64),
		burst,
		time.Now().UnixMilli(),
		ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}
