// Package core implements the hivedrive metadata engine: the per-account
// folder tree, the file registry and the capability-based sharing layer
// gating every mutation.
//
// Caller identity is asserted by the host and passed on each call; the
// engine trusts it as-is. One call maps to one store transaction, so a call
// either commits all of its writes or none of them.
package core

import (
	"go.uber.org/zap"

	"github.com/hivedrive/hivedrive/pkg/store"
)

// maxTreeDepth caps every ancestor walk. A chain longer than this is
// treated as malformed rather than walked to exhaustion.
const maxTreeDepth = 255

// Engine orchestrates the folder tree, file registry and sharing tables
// over a single transactional store.
type Engine struct {
	kv store.KV
	l  *zap.Logger
}

// Option is a functor to build an engine with some options
type Option func(*Engine)

// WithLogger sets the zap logger used by the engine
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.l = l
		}
	}
}

// New creates an engine over kv.
func New(kv store.KV, opts ...Option) *Engine {
	e := &Engine{
		kv: kv,
		l:  zap.NewNop(),
	}
	for _, apply := range opts {
		apply(e)
	}
	return e
}
