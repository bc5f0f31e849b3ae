package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// 测试内容：验证容量为 0 时 Redis 限流直接放行，空客户端返回错误。
func TestAllowByRedisRateLimit_DisabledAndNilClient(t *testing.T) {
	ok, err := allowByRedisRateLimit(context.Background(), nil, "rate", 1, 0)
	if err != nil || !ok {
		t.Fatalf("期望容量为 0 时放行，实际为 ok=%v err=%v", ok, err)
	}
	ok, err = allowByRedisRateLimit(context.Background(), nil, "rate", 1, 1)
	if err == nil || ok {
		t.Fatalf("期望空客户端返回错误，实际为 ok=%v err=%v", ok, err)
	}
}

// 测试内容：验证 Redis 不可用时返回错误。
func TestAllowByRedisRateLimit_UnavailableRedisReturnsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer func() { _ = client.Close() }()

	ok, err := allowByRedisRateLimit(context.Background(), client, "rate", 1, 1)
	if err == nil || ok {
		t.Fatalf("期望 redis 错误，实际为 ok=%v err=%v", ok, err)
	}
}
