package security

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRateLimiterAllow(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	l := NewRateLimiter(rdb, "test", time.Minute, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := l.Allow(ctx, "comment:u1")
		if err != nil {
			t.Fatalf("Allow: %v", err)
		}
		if !res.Allowed || res.Remaining != int64(2-i) {
			t.Fatalf("request %d: %+v", i, res)
		}
	}
	res, err := l.Allow(ctx, "comment:u1")
	if err != nil {
		t.Fatal(err)
	}
	if res.Allowed || res.RetryAfter != time.Minute {
		t.Fatalf("fourth request must be limited: %+v", res)
	}

	other, err := l.Allow(ctx, "comment:u2")
	if err != nil || !other.Allowed {
		t.Fatalf("keys must be independent: %+v %v", other, err)
	}
	if ttl := mr.TTL("test:ratelimit:comment:u1"); ttl <= 0 {
		t.Fatalf("expected expiry on limiter key, got %v", ttl)
	}
}
