package api

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeRateCounter struct {
	counts      map[string]int64
	expires     map[string]time.Duration
	expireCalls int
	err         error
}

func newFakeRateCounter() *fakeRateCounter {
	return &fakeRateCounter{
		counts:  map[string]int64{},
		expires: map[string]time.Duration{},
	}
}

func (f *fakeRateCounter) Incr(ctx context.Context, key string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.counts[key]++
	cmd.SetVal(f.counts[key])
	return cmd
}

func (f *fakeRateCounter) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx)
	f.expires[key] = expiration
	f.expireCalls++
	cmd.SetVal(true)
	return cmd
}

func TestIncrWithTTLSetsExpiryOnlyOnce(t *testing.T) {
	ctx := context.Background()
	counter := newFakeRateCounter()

	for want := int64(1); want <= 3; want++ {
		got, err := incrWithTTL(ctx, counter, "k", time.Minute)
		if err != nil {
			t.Fatalf("incr: %v", err)
		}
		if got != want {
			t.Fatalf("count = %d, want %d", got, want)
		}
	}

	if counter.expireCalls != 1 || counter.expires["k"] != time.Minute {
		t.Fatalf("expire calls = %d, want a single TTL on first increment", counter.expireCalls)
	}
}

func TestIncrWithTTLPropagatesErrors(t *testing.T) {
	counter := newFakeRateCounter()
	counter.err = errors.New("redis down")

	if _, err := incrWithTTL(context.Background(), counter, "k", time.Minute); err == nil {
		t.Fatalf("expected error")
	}
}
