package domain

import (
	"context"
	"time"
)

type CommentEventKind int8

const (
	CommentCreated CommentEventKind = iota + 1
	CommentReplied
	CommentEdited
	CommentDeleted
)

func (k CommentEventKind) String() string {
	switch k {
	case CommentCreated:
		return "created"
	case CommentReplied:
		return "replied"
	case CommentEdited:
		return "edited"
	case CommentDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// CommentEvent describes a finished comment mutation.
type CommentEvent struct {
	Kind        CommentEventKind `json:"-"`
	CommentUUID string           `json:"comment_uuid"`
	ArticleUUID string           `json:"article_uuid"`
	AuthorID    int64            `json:"author_id"`
	// ParentUUID and ParentAuthorID are set for replies only
	ParentUUID     string    `json:"parent_uuid,omitempty"`
	ParentAuthorID int64     `json:"parent_author_id,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// CommentEventPublisher delivers a batch of events to downstream consumers.
type CommentEventPublisher interface {
	Publish(ctx context.Context, events []CommentEvent) error
}

type CommentEventWorker interface {
	Start(ctx context.Context)

	// Send enqueues ev without blocking; the event is dropped when the queue is full
	Send(ev CommentEvent)
}
