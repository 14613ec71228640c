package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelops/hotel-console/internal/api/metrics"
	"github.com/hotelops/hotel-console/internal/core/domain"
	"github.com/hotelops/hotel-console/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	drainTimeout   = 5 * time.Second
)

// Processor handles a single session event.
type Processor interface {
	Process(ctx context.Context, event domain.SessionEvent) error
}

// Dispatcher routes session events to a fixed set of workers using
// consistent hashing on the browsing context id, preserving per-context
// ordering of the audit trail.
type Dispatcher struct {
	workers   []chan domain.SessionEvent
	processor Processor
	log       zerolog.Logger
	wg        sync.WaitGroup
}

var _ ports.SessionAuditor = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, processor Processor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan domain.SessionEvent, numWorkers),
		processor: processor,
		log:       log.With().Str("component", "audit_dispatcher").Logger(),
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.SessionEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. When ctx is cancelled each worker
// writes out its buffered events and stops; Wait blocks until they have.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

func (d *Dispatcher) Wait() { d.wg.Wait() }

// Enqueue hands an event to the worker owning its context id. It never
// blocks: when the worker's buffer is full the event is dropped and counted.
func (d *Dispatcher) Enqueue(event domain.SessionEvent) {
	metrics.SessionTransitionsTotal.WithLabelValues(string(event.Kind)).Inc()

	idx := d.shardIndex(event.ContextID)
	select {
	case d.workers[idx] <- event:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AuditErrorsTotal.WithLabelValues("queue_full").Inc()
		d.log.Warn().
			Str("context_id", event.ContextID).
			Str("kind", string(event.Kind)).
			Int("worker_id", idx).
			Msg("audit queue full, event dropped")
	}
}

// shardIndex maps a context id deterministically to a worker index.
func (d *Dispatcher) shardIndex(contextID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(contextID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.SessionEvent) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			d.drain(ctx, id, ch)
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if ctx.Err() != nil {
				d.drain(ctx, id, ch, event)
				return
			}
			d.process(ctx, id, event)
		}
	}
}

// drain writes the events still buffered for a stopping worker, bounded by
// drainTimeout. Whatever is left after the deadline is counted as dropped.
func (d *Dispatcher) drain(ctx context.Context, id int, ch <-chan domain.SessionEvent, pending ...domain.SessionEvent) {
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drainTimeout)
	defer cancel()

	for _, event := range pending {
		d.process(drainCtx, id, event)
	}
	for {
		if drainCtx.Err() != nil {
			if left := len(ch); left > 0 {
				metrics.AuditErrorsTotal.WithLabelValues("shutdown_dropped").Add(float64(left))
				d.log.Warn().Int("worker_id", id).Int("dropped", left).Msg("audit drain timed out")
			}
			return
		}
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}
			d.process(drainCtx, id, event)
		default:
			metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(0)
			return
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, id int, event domain.SessionEvent) {
	if err := d.processor.Process(ctx, event); err != nil {
		metrics.AuditErrorsTotal.WithLabelValues("insert_failed").Inc()
		d.log.Error().Err(err).
			Str("context_id", event.ContextID).
			Str("kind", string(event.Kind)).
			Int("worker_id", id).
			Msg("session event processing failed")
	}
}
