package security

import (
	"context"
	"fmt"
	"time"

	"FlowTube.com/config"
	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/session"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RateLimiter is a sliding window limiter kept in a Redis sorted set per key.
type RateLimiter struct {
	redis       redis.Cmdable
	window      time.Duration
	maxRequests int64
	prefix      string
}

type RateLimitResult struct {
	Allowed    bool          `json:"allowed"`
	Remaining  int64         `json:"remaining"`
	RetryAfter time.Duration `json:"retry_after"`
}

// Default guards comment and message writes; nil disables limiting.
var Default *RateLimiter

func NewRateLimiter(rdb redis.Cmdable, prefix string, window time.Duration, maxRequests int64) *RateLimiter {
	return &RateLimiter{redis: rdb, prefix: prefix, window: window, maxRequests: maxRequests}
}

func Init(ctx context.Context) error {
	cfg := config.ConfigInfo
	if !cfg.Limit.Enabled {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return err
	}
	Default = NewRateLimiter(rdb, cfg.Redis.Prefix, cfg.Limit.Window, cfg.Limit.MaxRequests)
	return nil
}

// Allow records one request for key and reports whether it fits in the window.
func (l *RateLimiter) Allow(ctx context.Context, key string) (*RateLimitResult, error) {
	now := time.Now()
	windowStart := now.Add(-l.window)
	zkey := fmt.Sprintf("%s:ratelimit:%s", l.prefix, key)

	pipe := l.redis.TxPipeline()
	pipe.ZRemRangeByScore(ctx, zkey, "0", fmt.Sprintf("%d", windowStart.UnixNano()))
	pipe.ZAdd(ctx, zkey, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: uuid.NewString(),
	})
	countCmd := pipe.ZCard(ctx, zkey)
	pipe.Expire(ctx, zkey, l.window+time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	count := countCmd.Val()
	res := &RateLimitResult{
		Allowed:   count <= l.maxRequests,
		Remaining: l.maxRequests - count,
	}
	if res.Remaining < 0 {
		res.Remaining = 0
	}
	if !res.Allowed {
		res.RetryAfter = l.window
	}
	return res, nil
}

// Middleware limits requests per signed-in user and action. It must run after the
// auth middleware. Limiter failures let the request through.
func Middleware(action string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		l := Default
		sess, err := session.Current(c)
		if l == nil || err != nil {
			c.Next(ctx)
			return
		}
		res, err := l.Allow(ctx, action+":"+sess.UserId)
		if err != nil {
			hlog.CtxWarnf(ctx, "rate limiter unavailable: %v", err)
			c.Next(ctx)
			return
		}
		if !res.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(res.RetryAfter.Seconds())))
			c.AbortWithStatusJSON(consts.StatusOK, utils.H{
				"code":    errno.TooManyReqCode,
				"message": errno.TooManyReqErr.ErrMsg,
				"data":    nil,
			})
			return
		}
		c.Next(ctx)
	}
}
