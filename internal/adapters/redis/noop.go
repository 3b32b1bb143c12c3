package redisad

import "context"

// Noop satisfies domain.Cache without any backend, for CACHE_DISABLED=1 runs.
// Every lookup misses; the match engine is cheap enough to recompute.
type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, any, int) error    { return nil }
func (Noop) Del(context.Context, string) error              { return nil }
