package v1

import (
	"net/http"
	"sync"

	"github.com/fredriick/Electrify-sub009/internal/pkg/config"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// maxLimiters bounds the number of tracked clients before the table is reset
const maxLimiters = 10000

// RateLimiter keeps one token bucket per client
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	logger   logger.Logger
}

// NewRateLimiter creates a RateLimiter from settings
func NewRateLimiter(settings *config.RateLimitSettings, logger logger.Logger) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(settings.RequestsPerSecond),
		burst:    settings.Burst,
		logger:   logger,
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if len(rl.limiters) >= maxLimiters {
		rl.limiters = make(map[string]*rate.Limiter)
	}

	limiter, exists := rl.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// Middleware answers 429 once a client exhausts its bucket. Clients are keyed by
// profile ID when authenticated and by IP otherwise.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := "ip:" + ctx.ClientIP()
		if profile := principal(ctx); profile != nil {
			key = "user:" + profile.ID
		}

		if !rl.limiter(key).Allow() {
			rl.logger.Warn("Rate limit exceeded for ", key, " on ", ctx.FullPath())
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Message: "too many requests"})
			return
		}
		ctx.Next()
	}
}
