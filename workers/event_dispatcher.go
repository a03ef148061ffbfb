package workers

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/camden-git/hrmbackend/events"
)

const deliverTimeout = 5 * time.Second

// EventDispatcher fans committed change events out to every sink from a fixed worker pool
type EventDispatcher struct {
	JobQueue chan events.Event
	Sinks    []events.Sink
	Wg       sync.WaitGroup
	StopChan chan struct{}
	logger   *zap.Logger
	stopOnce sync.Once
}

func NewEventDispatcher(logger *zap.Logger, queueSize, numWorkers int, sinks ...events.Sink) *EventDispatcher {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if queueSize <= 0 {
		queueSize = 100
	}
	d := &EventDispatcher{
		JobQueue: make(chan events.Event, queueSize),
		Sinks:    sinks,
		StopChan: make(chan struct{}),
		logger:   logger,
	}
	d.Wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go d.worker(i)
	}
	logger.Info("started event dispatch workers", zap.Int("workers", numWorkers), zap.Int("queue_size", queueSize))
	return d
}

// Publish enqueues an event without blocking. Events are dropped when the queue is full.
func (d *EventDispatcher) Publish(event events.Event) {
	select {
	case <-d.StopChan:
		d.logger.Warn("event dispatcher stopped, dropping event", zap.String("event_type", event.Type))
		return
	default:
	}

	select {
	case d.JobQueue <- event:
	default:
		d.logger.Warn("event queue full, dropping event",
			zap.String("event_type", event.Type),
			zap.Uint("entity_id", event.EntityID))
	}
}

func (d *EventDispatcher) worker(id int) {
	defer d.Wg.Done()

	for {
		select {
		case event := <-d.JobQueue:
			d.dispatch(id, event)
		case <-d.StopChan:
			// drain whatever was queued before the stop signal
			for {
				select {
				case event := <-d.JobQueue:
					d.dispatch(id, event)
				default:
					d.logger.Debug("event worker stopping", zap.Int("worker", id))
					return
				}
			}
		}
	}
}

func (d *EventDispatcher) dispatch(workerID int, event events.Event) {
	for _, sink := range d.Sinks {
		ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
		err := sink.Deliver(ctx, event)
		cancel()
		if err != nil {
			d.logger.Error("failed to deliver event",
				zap.Int("worker", workerID),
				zap.String("sink", sink.Name()),
				zap.String("event_type", event.Type),
				zap.Error(err))
		}
	}
}

// Stop signals the workers and waits for the queue to drain
func (d *EventDispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.StopChan)
	})
	d.Wg.Wait()
}
