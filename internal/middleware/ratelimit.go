package middleware

import (
	"net/http"
	"sync"
	"time"

	"alertdesk-backend/config"
	"alertdesk-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client key.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	return &RateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   limit,
		burst:   burst,
		now:     time.Now,
	}
}

// NewFormRateLimiter builds the limiter guarding form writes.
func NewFormRateLimiter(cfg *config.Config) *RateLimiter {
	return NewRateLimiter(cfg.Forms.RateLimit, cfg.Forms.RateBurst)
}

// Allow reports whether key may proceed now.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) > limiterIdleTTL {
		for k, c := range rl.clients {
			if now.Sub(c.lastSeen) > limiterIdleTTL {
				delete(rl.clients, k)
			}
		}
		rl.lastSweep = now
	}

	c, ok := rl.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// RateLimitByIP rejects requests over the per-client budget with 429.
func RateLimitByIP(limiter *RateLimiter) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ip := ctx.ClientIP()
		if !limiter.Allow(ip) {
			log.Warn().Str("client_ip", ip).Str("path", ctx.FullPath()).Msg("Rate limit exceeded")
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, model.NewResponse("too many requests", nil))
			return
		}
		ctx.Next()
	}
}
