// Package cache 封装可选的 Redis 连接。未启用或不可用时 Client 返回 nil，
// 调用方据此降级为进程内实现。
package cache

import (
	"context"
	"strings"
	"time"

	"os-blog-server/internal/config"
	"os-blog-server/internal/logger"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "os_blog"

type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis 按配置建立连接并 Ping 一次，失败时记录警告并返回不可用实例。
func NewRedis(cfg config.RedisConfig) *Redis {
	r := &Redis{prefix: strings.TrimSpace(cfg.Prefix)}
	if r.prefix == "" {
		r.prefix = defaultPrefix
	}
	if !cfg.Enabled {
		return r
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logger.Warningf("⚠️ Redis 不可用，降级为内存模式: %v", err)
		return r
	}

	r.client = client
	logger.Infof("✅ Redis 已连接: %s (db=%d)", cfg.Addr, cfg.DB)
	return r
}

// NewRedisWithClient 使用现成的客户端，主要用于测试。
func NewRedisWithClient(client *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Redis{client: client, prefix: prefix}
}

// Client 未启用或不可用时返回 nil。
func (r *Redis) Client() *redis.Client {
	if r == nil {
		return nil
	}
	return r.client
}

// Key 基于配置前缀拼接键名，形如 prefix:a:b。
func (r *Redis) Key(parts ...string) string {
	prefix := defaultPrefix
	if r != nil && r.prefix != "" {
		prefix = r.prefix
	}
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ":" + strings.Join(parts, ":")
}

func (r *Redis) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}
