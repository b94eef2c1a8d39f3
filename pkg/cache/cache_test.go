package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/shashiranjanraj/meera/pkg/cache"
)

func TestConnectUnreachableDegradesToDisabled(t *testing.T) {
	c, err := cache.Connect("127.0.0.1:1", "")
	if err == nil {
		t.Fatal("expected ping against an unreachable redis to error")
	}
	if c == nil {
		t.Fatal("expected a usable disabled cache alongside the error")
	}

	// the degraded cache must behave exactly like Disabled()
	ctx := context.Background()
	var dest []string
	if c.Get(ctx, "k", &dest) {
		t.Error("expected Get to miss on a disabled cache")
	}
	if err := c.Set(ctx, "k", []string{"v"}, time.Minute); err != nil {
		t.Errorf("expected Set to no-op, got %v", err)
	}
	if err := c.Del(ctx, "k"); err != nil {
		t.Errorf("expected Del to no-op, got %v", err)
	}
}

func TestDisabledCacheIsSafe(t *testing.T) {
	c := cache.Disabled()
	ctx := context.Background()

	var dest int
	if c.Get(ctx, "k", &dest) {
		t.Error("expected miss")
	}
	if err := c.Set(ctx, "k", 1, time.Minute); err != nil {
		t.Errorf("set: %v", err)
	}
	if err := c.Del(ctx, "k"); err != nil {
		t.Errorf("del: %v", err)
	}
}
