package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "stay_scout/internal/adapters/redis"
	"stay_scout/internal/domain"
)

func TestCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	var out domain.MatchResult
	ok, err := c.Get(ctx, "match:201:v0:abc", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("expected miss on empty cache")
	}

	in := domain.MatchResult{Score: 80, SuggestedDelta: 6, Confidence: domain.ConfidenceMedium}
	if err := c.Set(ctx, "match:201:v0:abc", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	ok, err = c.Get(ctx, "match:201:v0:abc", &out)
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if out != in {
		t.Fatalf("got %+v, want %+v", out, in)
	}

	if err := c.Del(ctx, "match:201:v0:abc"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ = c.Get(ctx, "match:201:v0:abc", &out); ok {
		t.Fatalf("expected miss after del")
	}
}
