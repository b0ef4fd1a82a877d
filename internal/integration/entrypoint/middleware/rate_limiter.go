package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	domainerror "github.com/levy-tracker/backend/internal/domain/error"
	"github.com/levy-tracker/backend/internal/integration/entrypoint/dto"
)

const (
	defaultMutationsPerWindow = 30
	defaultWindow             = time.Minute
)

// RateLimiter applies a per-caller budget to record mutations.
// Callers are keyed by user id when authenticated and by client IP otherwise.
type RateLimiter struct {
	limiter *limiter.Limiter
}

// NewRateLimiter creates a limiter allowing 30 mutations per minute.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(defaultMutationsPerWindow, defaultWindow)
}

// NewRateLimiterWithConfig creates a limiter allowing limit mutations per period.
// A non-positive limit disables limiting.
func NewRateLimiterWithConfig(limit int, period time.Duration) *RateLimiter {
	if limit <= 0 {
		return &RateLimiter{}
	}
	store := memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          "levy:mutations",
		CleanUpInterval: period,
	})
	return &RateLimiter{
		limiter: limiter.New(store, limiter.Rate{Period: period, Limit: int64(limit)}),
	}
}

// Middleware returns a Gin handler enforcing the budget.
// Rejected requests get 429 with a Retry-After header in whole seconds.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limiter == nil {
			c.Next()
			return
		}

		key := callerKey(c)
		lctx, err := rl.limiter.Get(c.Request.Context(), key)
		if err != nil {
			slog.Error("Failed to read rate limit", "key", key, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "Internal server error during rate limit check",
			})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
		if lctx.Reached {
			slog.Warn("Record mutation rate limit reached", "key", key, "limit", lctx.Limit)
			c.Header("Retry-After", strconv.FormatInt(retryAfterSeconds(lctx.Reset), 10))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many record changes. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

func callerKey(c *gin.Context) string {
	if userID, ok := GetUserIDFromContext(c); ok {
		return "user:" + userID
	}
	if ip := c.ClientIP(); ip != "" {
		return "ip:" + ip
	}
	return "ip:" + c.Request.RemoteAddr
}

// retryAfterSeconds turns the window's reset time (unix seconds) into a delay of at least one second.
func retryAfterSeconds(reset int64) int64 {
	if wait := reset - time.Now().Unix(); wait > 0 {
		return wait
	}
	return 1
}
