package notify

import (
	"fmt"
	"log"
	"sync"
)

// Worker is an in-process stand-in for the message queue: order events
// are handed off to a buffered channel and consumed by a single
// background goroutine, so mail-transport latency never sits on the
// request path. It satisfies the same publisher interface as the
// RabbitMQ client and is used when no broker is configured.
type Worker struct {
	dispatcher *Dispatcher
	events     chan []byte
	wg         sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewWorker creates a Worker with the given event buffer size and
// starts its consumer goroutine.
func NewWorker(dispatcher *Dispatcher, buffer int) *Worker {
	w := &Worker{
		dispatcher: dispatcher,
		events:     make(chan []byte, buffer),
	}
	w.wg.Add(1)
	go w.run()
	return w
}

func (w *Worker) run() {
	defer w.wg.Done()
	for body := range w.events {
		if err := w.dispatcher.HandleEvent(body); err != nil {
			log.Printf("Warning: notification dispatch failed: %v", err)
		}
	}
}

// Publish enqueues an event for the background consumer. The handoff
// never blocks: when the buffer is full the event is dropped with a
// log line, preserving the best-effort notification policy.
func (w *Worker) Publish(exchange, routingKey string, body []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return fmt.Errorf("notification worker is closed")
	}

	select {
	case w.events <- body:
		return nil
	default:
		return fmt.Errorf("notification queue full, dropping %s event", routingKey)
	}
}

// Close stops accepting events and waits for the consumer to drain
// what is already queued.
func (w *Worker) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.events)
	w.mu.Unlock()

	w.wg.Wait()
	return nil
}
