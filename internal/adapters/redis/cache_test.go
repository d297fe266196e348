package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "loanpages/internal/adapters/redis"
	"loanpages/internal/domain"
)

func TestCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	in := domain.ContentBundle{
		Key:   domain.PageKey{Region: "kent", Locality: "ashford", Service: "bridging-loans"},
		Title: "Bridging Loans in Ashford",
	}
	if err := c.Set(ctx, "bundle:kent:ashford:bridging-loans", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out domain.ContentBundle
	ok, err := c.Get(ctx, "bundle:kent:ashford:bridging-loans", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if out.Title != in.Title || out.Key != in.Key {
		t.Fatalf("roundtrip mismatch: %+v", out)
	}
}

func TestCache_MissAndDelete(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	var out domain.ContentBundle
	ok, err := c.Get(ctx, "bundle:none", &out)
	if err != nil || ok {
		t.Fatalf("expected clean miss, ok=%v err=%v", ok, err)
	}

	_ = c.Set(ctx, "bundle:x", domain.ContentBundle{Title: "t"}, 60)
	if err := c.Del(ctx, "bundle:x"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, _ = c.Get(ctx, "bundle:x", &out)
	if ok {
		t.Fatalf("key survived delete")
	}
}
