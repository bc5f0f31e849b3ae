package middleware

import (
	"sync"
	"time"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/logger"
	"os-blog-server/internal/modules/common/httpx"
	"os-blog-server/internal/platform/cache"
	"os-blog-server/internal/platform/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL         = 3 * time.Minute
	limiterCleanupInterval = time.Minute
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		return v.(*client).touch()
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		return v.(*client).touch()
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, &client{limiter: limiter, lastSeen: time.Now()})

	return limiter
}

func (c *client) touch() *rate.Limiter {
	c.mu.Lock()
	c.lastSeen = time.Now()
	c.mu.Unlock()
	return c.limiter
}

func (c *client) idleSince(now time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return now.Sub(c.lastSeen)
}

func (i *IPRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()
	for now := range ticker.C {
		i.evictIdle(now)
	}
}

func (i *IPRateLimiter) evictIdle(now time.Time) {
	i.ips.Range(func(key, value interface{}) bool {
		if value.(*client).idleSince(now) > limiterIdleTTL {
			i.ips.Delete(key)
		}
		return true
	})
}

// RateLimitMiddleware 创建一个按客户端 IP 的令牌桶限流中间件，参数在每次请求时从运行时设置读取。
// Redis 可用时使用 Redis 中的共享令牌桶，Redis 出错则降级为进程内限流。
func RateLimitMiddleware(appService *service.AppService, redisCache *cache.Redis, scope, rpsKey, burstKey string) gin.HandlerFunc {
	// 每个 scope（login/upload/comment）共用一个 IPRateLimiter 实例
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		// 检查总开关
		if !appService.GetBool(consts.ConfigRateLimitEnabled) {
			c.Next()
			return
		}

		currentRPS := appService.GetFloat64(rpsKey)
		currentBurst := appService.GetInt(burstKey)
		if currentBurst <= 0 {
			c.Next()
			return
		}

		ip := c.ClientIP()

		if client := redisCache.Client(); client != nil {
			allowed, err := allowByRedisRateLimit(c.Request.Context(), client, redisCache.Key("rate", scope, ip), currentRPS, currentBurst)
			if err == nil {
				if !allowed {
					rejectTooManyRequests(c)
					return
				}
				c.Next()
				return
			}
			logger.Warningf("⚠️ Redis 限流失败，降级为内存限流: %v", err)
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(currentRPS), currentBurst)
		})
		l := limiter.getLimiter(ip)

		// 配置变更后动态更新
		if l.Limit() != rate.Limit(currentRPS) {
			l.SetLimit(rate.Limit(currentRPS))
		}
		if l.Burst() != currentBurst {
			l.SetBurst(currentBurst)
		}

		if !l.Allow() {
			rejectTooManyRequests(c)
			return
		}
		c.Next()
	}
}

func rejectTooManyRequests(c *gin.Context) {
	httpx.AbortWithServiceError(c, service.NewRateLimitedError("请求过于频繁，请稍后再试", "too_many_requests"), "请求过于频繁，请稍后再试")
}
