// Package hivedrive wires a configured store backend to the metadata
// engine: a per-account folder tree plus capability-based sharing, with
// file content living in an external content-addressed store.
package hivedrive

import (
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/hivedrive/hivedrive/pkg/core"
	"github.com/hivedrive/hivedrive/pkg/store"
	"github.com/hivedrive/hivedrive/pkg/store/badgerdb"
	"github.com/hivedrive/hivedrive/pkg/store/localfs"
	"github.com/hivedrive/hivedrive/pkg/store/memory"
	"github.com/hivedrive/hivedrive/pkg/store/traced"
	"github.com/hivedrive/hivedrive/pkg/zlog"
)

// RuntimeOption is a functor to build a runtime with some options
type RuntimeOption func(*Runtime)

// Tracer reports every store transaction to an opentracing tracer.
func Tracer(tr opentracing.Tracer) RuntimeOption {
	return func(r *Runtime) {
		r.tracer = tr
	}
}

// New initializes a runtime from cfg. Nil cfg means defaults.
func New(cfg *Config, opts ...RuntimeOption) (*Runtime, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	logger, err := zlog.New(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}

	r := &Runtime{l: logger}
	for _, configure := range opts {
		configure(r)
	}

	kv, err := openStore(cfg.Store)
	if err != nil {
		return nil, err
	}
	if r.tracer != nil {
		kv = traced.New(r.tracer, kv)
	}
	r.kv = kv
	r.engine = core.New(kv, core.WithLogger(logger))
	return r, nil
}

// Runtime holds the open store and the engine on top of it.
type Runtime struct {
	kv     store.KV
	engine *core.Engine
	l      *zap.Logger
	tracer opentracing.Tracer
}

// Engine exposes the metadata operations.
func (r *Runtime) Engine() *core.Engine {
	return r.engine
}

// Close releases the underlying store.
func (r *Runtime) Close() error {
	return r.kv.Close()
}

func openStore(cfg StoreConfig) (store.KV, error) {
	switch cfg.Backend {
	case BackendMemory:
		return memory.New(), nil
	case BackendLocalFS:
		s := localfs.New(localfs.BaseDir(cfg.Dir))
		if err := s.Initialize(); err != nil {
			return nil, errors.Wrap(err, "initialize localfs store")
		}
		return s, nil
	case BackendBadger, "":
		s := badgerdb.New(cfg.Dir)
		if err := s.Initialize(); err != nil {
			return nil, errors.Wrap(err, "initialize badger store")
		}
		return s, nil
	default:
		return nil, errors.Errorf("unknown store backend %q", cfg.Backend)
	}
}
