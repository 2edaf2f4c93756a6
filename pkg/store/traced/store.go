// Package traced decorates any KV backend with opentracing spans, one per
// transaction.
package traced

import (
	opentracing "github.com/opentracing/opentracing-go"

	"github.com/hivedrive/hivedrive/pkg/store"
)

// New wraps w so every transaction is reported to tr.
func New(tr opentracing.Tracer, w store.KV, options ...opentracing.StartSpanOption) store.KV {
	return &tracedKV{
		tr:      tr,
		w:       w,
		options: options,
	}
}

type tracedKV struct {
	tr      opentracing.Tracer
	w       store.KV
	options []opentracing.StartSpanOption
}

func (t *tracedKV) View(fn func(tx store.Txn) error) (err error) {
	t.traced("kv view", func() { err = t.w.View(fn) })
	return
}

func (t *tracedKV) Update(fn func(tx store.Txn) error) (err error) {
	t.traced("kv update", func() { err = t.w.Update(fn) })
	return
}

func (t *tracedKV) Close() error {
	return t.w.Close()
}

func (t *tracedKV) traced(name string, f func()) {
	sp := t.tr.StartSpan(name, t.options...)
	defer sp.Finish()
	f()
}
