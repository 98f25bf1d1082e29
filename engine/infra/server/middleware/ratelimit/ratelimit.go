package ratelimit

import (
	"fmt"

	"github.com/aicopilotvisual/aicopilot-visual/pkg/config"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewMiddleware builds a per-client-IP rate limiting middleware backed
// by an in-process store. A disabled config yields a no-op handler.
func NewMiddleware(cfg config.RateLimitConfig) (gin.HandlerFunc, error) {
	if cfg.Disabled {
		return func(c *gin.Context) { c.Next() }, nil
	}
	rate, err := limiter.NewRateFromFormatted(cfg.Rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", cfg.Rate, err)
	}
	return mgin.NewMiddleware(limiter.New(memorystore.NewStore(), rate)), nil
}
