package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-comments/domain"
)

const bloomPageSize = 1000

// BloomRefreshWorker keeps the article bloom filter in step with the article
// table, which is written by another service.
type BloomRefreshWorker struct {
	ArticleRepo domain.ArticleDBRepository
	Bloom       domain.BloomRepository
	Interval    time.Duration
}

func NewBloomRefreshWorker(ar domain.ArticleDBRepository, bloom domain.BloomRepository, interval time.Duration) *BloomRefreshWorker {
	return &BloomRefreshWorker{
		ArticleRepo: ar,
		Bloom:       bloom,
		Interval:    interval,
	}
}

// Start refreshes on every tick; the caller runs the first Refresh before serving.
func (w *BloomRefreshWorker) Start(ctx context.Context) {
	if w.Interval <= 0 {
		return
	}

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := w.Refresh(ctx); err != nil {
				logrus.Errorf("bloom refresh failed: %v", err)
			}
		case <-ctx.Done():
			logrus.Info("shutting down BloomRefreshWorker")
			return
		}
	}
}

// Refresh adds every article UUID to the filter, one page at a time.
func (w *BloomRefreshWorker) Refresh(ctx context.Context) error {
	var (
		cursor int64
		total  int
	)
	for {
		uuids, next, err := w.ArticleRepo.FetchUUIDs(ctx, cursor, bloomPageSize)
		if err != nil {
			return err
		}
		if len(uuids) == 0 {
			break
		}
		if err := w.Bloom.BulkAdd(ctx, uuids); err != nil {
			return err
		}
		total += len(uuids)
		if len(uuids) < bloomPageSize {
			break
		}
		cursor = next
	}
	logrus.WithField("articles", total).Debug("bloom filter refreshed")
	return nil
}
