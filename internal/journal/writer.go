// ABOUTME: Write-behind queue that mirrors journal mutations to durable storage
// ABOUTME: A single goroutine applies writes in mutation order; failures are logged, not retried

package journal

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/harper/moodlog/internal/kv"
)

// writeOp is one durable write, or a flush barrier when done is non-nil.
type writeOp struct {
	kind  kv.OpKind
	key   string
	value string
	done  chan struct{}
}

type writer struct {
	store   kv.Store
	logger  *zap.Logger
	queue   chan writeOp
	stopped chan struct{}
	failed  atomic.Int64
}

func newWriter(store kv.Store, logger *zap.Logger, size int) *writer {
	w := &writer{
		store:   store,
		logger:  logger,
		queue:   make(chan writeOp, size),
		stopped: make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *writer) run() {
	defer close(w.stopped)
	for op := range w.queue {
		if op.done != nil {
			close(op.done)
			continue
		}
		w.apply(op)
	}
}

// apply performs one write. No timeout is imposed here; that is a
// property of the backing store.
func (w *writer) apply(op writeOp) {
	ctx := context.Background()

	var err error
	switch op.kind {
	case kv.OpSet:
		err = w.store.Set(ctx, op.key, op.value)
	case kv.OpRemove:
		err = w.store.Remove(ctx, op.key)
	}
	if err != nil {
		w.failed.Add(1)
		w.logger.Error("journal write failed; durable copy is stale until the next write",
			zap.String("op", string(op.kind)),
			zap.String("key", op.key),
			zap.Error(err),
		)
		return
	}
	w.logger.Debug("journal write applied",
		zap.String("op", string(op.kind)),
		zap.String("key", op.key),
		zap.Int("bytes", len(op.value)),
	)
}

// enqueue hands a write to the writer goroutine. It blocks only when the
// queue is full.
func (w *writer) enqueue(op writeOp) {
	w.queue <- op
}

// barrier enqueues a flush marker and returns a channel closed once every
// earlier write has been applied.
func (w *writer) barrier() <-chan struct{} {
	done := make(chan struct{})
	w.queue <- writeOp{done: done}
	return done
}

// stop closes the queue; the writer drains what is left and exits.
func (w *writer) stop() {
	close(w.queue)
}
