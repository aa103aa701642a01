// Package publisher delivers comment lifecycle events to downstream consumers.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-comments/domain"
)

const (
	DefaultSubjectPrefix = "comments.events"
	flushTimeout         = 5 * time.Second
)

// NATSPublisher publishes each event on <prefix>.<kind>.
type NATSPublisher struct {
	nc     *nats.Conn
	prefix string
}

var _ domain.CommentEventPublisher = (*NATSPublisher)(nil)

// Connect dials NATS with a bounded reconnect policy.
func Connect(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("blog-comments"),
		nats.MaxReconnects(10),
		nats.ReconnectWait(2*time.Second),
		nats.RetryOnFailedConnect(false),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect %s: %w", url, err)
	}
	return nc, nil
}

func NewNATSPublisher(nc *nats.Conn, prefix string) *NATSPublisher {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &NATSPublisher{nc: nc, prefix: prefix}
}

func (p *NATSPublisher) Subject(kind domain.CommentEventKind) string {
	return p.prefix + "." + kind.String()
}

func (p *NATSPublisher) Publish(ctx context.Context, events []domain.CommentEvent) error {
	for _, ev := range events {
		data, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		if err := p.nc.Publish(p.Subject(ev.Kind), data); err != nil {
			return err
		}
	}
	timeout := flushTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if timeout = time.Until(deadline); timeout <= 0 {
			return ctx.Err()
		}
	}
	return p.nc.FlushTimeout(timeout)
}

// LogPublisher writes events to the log. It is used when no NATS_URL is configured.
type LogPublisher struct {
	Logger logrus.FieldLogger
}

var _ domain.CommentEventPublisher = LogPublisher{}

func (p LogPublisher) Publish(_ context.Context, events []domain.CommentEvent) error {
	for _, ev := range events {
		p.Logger.WithFields(logrus.Fields{
			"kind":        ev.Kind.String(),
			"comment":     ev.CommentUUID,
			"article":     ev.ArticleUUID,
			"author":      ev.AuthorID,
			"parent":      ev.ParentUUID,
			"parent_user": ev.ParentAuthorID,
		}).Info("comment event")
	}
	return nil
}
