package cache

import (
	"context"
	"testing"
	"time"

	"github.com/codelamp/go-forum-backend/internal/repo"
)

func TestNew_NilClientDisablesCache(t *testing.T) {
	if c := New(nil, time.Second); c != nil {
		t.Fatalf("expected nil cache for nil client")
	}
}

func TestNilReceiver_AllOpsAreNoops(t *testing.T) {
	var c *StatsCache
	ctx := context.Background()

	// None of these may panic, and Get must read as a miss.
	if got, ok := c.Get(ctx); ok || got != (repo.ForumStats{}) {
		t.Fatalf("nil cache Get = %+v, %v", got, ok)
	}
	c.Set(ctx, repo.ForumStats{TotalUsers: 1})
	c.Invalidate(ctx)
}
