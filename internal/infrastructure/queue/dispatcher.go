package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/kachra-seth/engagement-system/internal/api/metrics"
	"github.com/kachra-seth/engagement-system/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Applier consumes fill-level reports. Implemented by the fleet service.
type Applier interface {
	ApplyReport(report domain.BinReport) error
}

// Dispatcher routes bin fill-level reports to a fixed set of workers using
// consistent hashing on the bin ID, guaranteeing per-bin ordering of
// reports regardless of which scanner produced them.
type Dispatcher struct {
	workers []chan domain.BinReport
	applier Applier
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, applier Applier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.BinReport, numWorkers),
		applier: applier,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.BinReport, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a report to the worker responsible for its bin. The call
// is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(report domain.BinReport) {
	idx := d.shardIndex(report.BinID)
	d.workers[idx] <- report
	metrics.ReportQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a bin ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(binID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(binID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.BinReport) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case report, ok := <-ch:
			if !ok {
				return
			}
			metrics.ReportQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := d.applier.ApplyReport(report); err != nil {
				d.log.Error().Err(err).
					Str("bin_id", report.BinID).
					Int("worker_id", id).
					Msg("report application failed")
				metrics.ReportsDroppedTotal.WithLabelValues(errReason(err)).Inc()
				continue
			}
			metrics.ReportsAppliedTotal.WithLabelValues(report.Source).Inc()
		}
	}
}

func errReason(err error) string {
	if errors.Is(err, domain.ErrBinNotFound) {
		return "bin_not_found"
	}
	return "apply_failed"
}
