package publisher

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/blog-comments/domain"
)

func TestSubject(t *testing.T) {
	p := NewNATSPublisher(nil, "")
	assert.Equal(t, "comments.events.created", p.Subject(domain.CommentCreated))
	assert.Equal(t, "comments.events.replied", p.Subject(domain.CommentReplied))

	p = NewNATSPublisher(nil, "blog")
	assert.Equal(t, "blog.deleted", p.Subject(domain.CommentDeleted))
}

func TestLogPublisher(t *testing.T) {
	logger, hook := test.NewNullLogger()
	p := LogPublisher{Logger: logger}

	err := p.Publish(context.TODO(), []domain.CommentEvent{
		{Kind: domain.CommentReplied, CommentUUID: "c2", ArticleUUID: "a1", AuthorID: 8, ParentUUID: "c1", ParentAuthorID: 7},
		{Kind: domain.CommentEdited, CommentUUID: "c1", ArticleUUID: "a1", AuthorID: 7},
	})
	require.NoError(t, err)
	require.Len(t, hook.AllEntries(), 2)

	first := hook.AllEntries()[0]
	assert.Equal(t, logrus.InfoLevel, first.Level)
	assert.Equal(t, "replied", first.Data["kind"])
	assert.Equal(t, "c1", first.Data["parent"])
	assert.Equal(t, "edited", hook.LastEntry().Data["kind"])
}
