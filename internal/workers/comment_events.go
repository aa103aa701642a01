package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-comments/domain"
)

const (
	eventQueueSize = 1024
	eventBatchSize = 100
)

type commentEventWorker struct {
	publisher domain.CommentEventPublisher
	ch        chan domain.CommentEvent
	interval  time.Duration
}

var _ domain.CommentEventWorker = (*commentEventWorker)(nil)

func NewCommentEventWorker(p domain.CommentEventPublisher, flushInterval time.Duration) *commentEventWorker {
	if flushInterval <= 0 {
		flushInterval = time.Second
	}
	return &commentEventWorker{
		publisher: p,
		ch:        make(chan domain.CommentEvent, eventQueueSize),
		interval:  flushInterval,
	}
}

// Send never blocks the request path
func (w *commentEventWorker) Send(ev domain.CommentEvent) {
	select {
	case w.ch <- ev:
	default:
		logrus.WithField("comment", ev.CommentUUID).Warn("CommentEventWorker's channel is full, event dropped")
	}
}

// Start batches events until the batch is full or the ticker fires, and flushes
// what is left when ctx is done.
func (w *commentEventWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	batch := make([]domain.CommentEvent, 0, eventBatchSize)
	for {
		select {
		case ev := <-w.ch:
			batch = append(batch, ev)
			if len(batch) == eventBatchSize {
				w.flush(ctx, batch)
				batch = make([]domain.CommentEvent, 0, eventBatchSize)
			}
		case <-ticker.C:
			if len(batch) > 0 {
				w.flush(ctx, batch)
				batch = make([]domain.CommentEvent, 0, eventBatchSize)
			}
		case <-ctx.Done():
			logrus.Info("shutting down CommentEventWorker, flushing remain events...")
			w.drain(batch)
			return
		}
	}
}

func (w *commentEventWorker) drain(batch []domain.CommentEvent) {
	for {
		select {
		case ev := <-w.ch:
			batch = append(batch, ev)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				w.flush(ctx, batch)
				cancel()
			}
			return
		}
	}
}

func (w *commentEventWorker) flush(ctx context.Context, batch []domain.CommentEvent) {
	if err := w.publisher.Publish(ctx, batch); err != nil {
		logrus.WithField("events", len(batch)).Errorf("failed to publish comment events: %v", err)
	}
}
