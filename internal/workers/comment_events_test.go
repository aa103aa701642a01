package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/domain/mocks"
)

func TestCommentEventWorker_FlushOnTick(t *testing.T) {
	pub := new(mocks.CommentEventPublisher)
	published := make(chan []domain.CommentEvent, 1)
	pub.On("Publish", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		published <- args.Get(1).([]domain.CommentEvent)
	}).Return(nil)

	w := NewCommentEventWorker(pub, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	w.Send(domain.CommentEvent{Kind: domain.CommentCreated, CommentUUID: "c1"})
	w.Send(domain.CommentEvent{Kind: domain.CommentDeleted, CommentUUID: "c2"})

	var got []domain.CommentEvent
	require.Eventually(t, func() bool {
		select {
		case batch := <-published:
			got = append(got, batch...)
		default:
		}
		return len(got) == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "c1", got[0].CommentUUID)
	assert.Equal(t, "c2", got[1].CommentUUID)

	cancel()
	<-done
}

func TestCommentEventWorker_DrainOnShutdown(t *testing.T) {
	pub := new(mocks.CommentEventPublisher)
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(batch []domain.CommentEvent) bool {
		return len(batch) == 3
	})).Return(errors.New("nats: connection closed")).Once()

	w := NewCommentEventWorker(pub, time.Hour)
	for _, id := range []string{"c1", "c2", "c3"} {
		w.Send(domain.CommentEvent{Kind: domain.CommentEdited, CommentUUID: id})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Start(ctx)

	pub.AssertExpectations(t)
}

func TestCommentEventWorker_FlushesEventsSentBeforeStop(t *testing.T) {
	pub := new(mocks.CommentEventPublisher)
	var got []domain.CommentEvent
	pub.On("Publish", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		got = append(got, args.Get(1).([]domain.CommentEvent)...)
	}).Return(nil)

	w := NewCommentEventWorker(pub, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	for _, id := range []string{"c1", "c2", "c3"} {
		w.Send(domain.CommentEvent{Kind: domain.CommentCreated, CommentUUID: id})
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	require.Len(t, got, 3)
	assert.Equal(t, "c1", got[0].CommentUUID)
	assert.Equal(t, "c3", got[2].CommentUUID)
}

func TestCommentEventWorker_SendDropsWhenFull(t *testing.T) {
	w := NewCommentEventWorker(new(mocks.CommentEventPublisher), time.Hour)

	sent := make(chan struct{})
	go func() {
		for i := 0; i < eventQueueSize+10; i++ {
			w.Send(domain.CommentEvent{Kind: domain.CommentCreated})
		}
		close(sent)
	}()

	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("Send blocked on a full queue")
	}
	assert.Len(t, w.ch, eventQueueSize)
}
