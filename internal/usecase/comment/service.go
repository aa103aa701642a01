package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-comments/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	articleRepo domain.ArticleRepository
	bloomRepo   domain.BloomRepository
	events      domain.CommentEventWorker
	listing     listingEngine
}

var _ domain.CommentUsecase = (*service)(nil)

// NewService builds the comment lifecycle handlers. bloomRepo and events may be nil.
func NewService(commentRepo domain.CommentRepository, articleRepo domain.ArticleRepository, bloomRepo domain.BloomRepository, events domain.CommentEventWorker, rootTotal RootTotal) *service {
	return &service{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		bloomRepo:   bloomRepo,
		events:      events,
		listing: listingEngine{
			repo:      commentRepo,
			rootTotal: rootTotal,
		},
	}
}

// findArticle resolves an article through cache/db and repairs the bloom
// filter when it does not know an existing article.
func (s *service) findArticle(ctx context.Context, uuid string) (domain.Article, error) {
	if s.bloomRepo == nil {
		return s.articleRepo.GetByUUID(ctx, uuid)
	}
	exists, bloomErr := s.bloomRepo.Exists(ctx, uuid)
	article, err := s.articleRepo.GetByUUID(ctx, uuid)
	if err != nil {
		return domain.Article{}, err
	}
	// the filter misses articles created after its last rebuild
	if bloomErr == nil && !exists {
		logrus.Warnf("article %s missing from bloom filter, adding it", uuid)
		if err := s.bloomRepo.Add(ctx, uuid); err != nil {
			logrus.Errorf("failed to add article %s to bloom filter: %v", uuid, err)
		}
	}
	return article, nil
}

func (s *service) FetchByArticle(ctx context.Context, articleUUID string, q domain.ListQuery) (domain.CommentPage, error) {
	article, err := s.findArticle(ctx, articleUUID)
	if err != nil {
		return domain.CommentPage{}, err
	}
	return s.listing.roots(ctx, article.ID, q)
}

func (s *service) FetchReplies(ctx context.Context, commentUUID string, q domain.ListQuery) (domain.CommentPage, error) {
	parent, err := s.commentRepo.GetByUUID(ctx, commentUUID)
	if err != nil {
		return domain.CommentPage{}, err
	}
	return s.listing.replies(ctx, parent.ID, q)
}

func (s *service) Create(ctx context.Context, requester int64, articleUUID string, content string) (domain.Comment, error) {
	if requester == 0 {
		return domain.Comment{}, domain.ErrUnauthorized
	}
	article, err := s.findArticle(ctx, articleUUID)
	if err != nil {
		return domain.Comment{}, err
	}

	saved, err := s.store(ctx, &domain.Comment{
		Content:   content,
		AuthorID:  requester,
		ArticleID: article.ID,
	})
	if err != nil {
		return domain.Comment{}, err
	}

	s.emit(domain.CommentEvent{
		Kind:        domain.CommentCreated,
		CommentUUID: saved.UUID,
		ArticleUUID: article.UUID,
		AuthorID:    requester,
	})
	return saved, nil
}

func (s *service) Reply(ctx context.Context, requester int64, commentUUID string, articleUUID string, content string) (domain.Comment, error) {
	if requester == 0 {
		return domain.Comment{}, domain.ErrUnauthorized
	}
	article, err := s.findArticle(ctx, articleUUID)
	if err != nil {
		return domain.Comment{}, err
	}
	parent, err := s.commentRepo.GetByUUID(ctx, commentUUID)
	if err != nil {
		return domain.Comment{}, err
	}
	if parent.ArticleID != article.ID {
		return domain.Comment{}, fmt.Errorf("%w: comment %s does not belong to article %s", domain.ErrBadParamInput, commentUUID, articleUUID)
	}

	parentID := parent.ID
	saved, err := s.store(ctx, &domain.Comment{
		Content:   content,
		AuthorID:  requester,
		ArticleID: article.ID,
		ReplyID:   &parentID,
	})
	if err != nil {
		return domain.Comment{}, err
	}

	s.emit(domain.CommentEvent{
		Kind:           domain.CommentReplied,
		CommentUUID:    saved.UUID,
		ArticleUUID:    article.UUID,
		AuthorID:       requester,
		ParentUUID:     parent.UUID,
		ParentAuthorID: parent.AuthorID,
	})
	return saved, nil
}

func (s *service) Edit(ctx context.Context, requester int64, commentUUID string, content string) (domain.Comment, error) {
	if requester == 0 {
		return domain.Comment{}, domain.ErrUnauthorized
	}
	c, err := s.commentRepo.GetByUUID(ctx, commentUUID)
	if err != nil {
		return domain.Comment{}, err
	}
	if !domain.CanMutate(requester, &c) {
		return domain.Comment{}, domain.ErrUnauthorized
	}

	if err := s.commentRepo.UpdateContent(ctx, c.ID, requester, content); err != nil {
		return domain.Comment{}, err
	}
	saved, err := s.commentRepo.GetByID(ctx, c.ID)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("%w: %w", domain.ErrPersistFailed, err)
	}

	s.emit(domain.CommentEvent{
		Kind:        domain.CommentEdited,
		CommentUUID: saved.UUID,
		ArticleUUID: saved.Article.UUID,
		AuthorID:    requester,
	})
	return saved, nil
}

func (s *service) Delete(ctx context.Context, requester int64, commentUUID string) (domain.Comment, error) {
	if requester == 0 {
		return domain.Comment{}, domain.ErrUnauthorized
	}
	c, err := s.commentRepo.GetByUUID(ctx, commentUUID)
	if err != nil {
		return domain.Comment{}, err
	}
	if !domain.CanMutate(requester, &c) {
		return domain.Comment{}, domain.ErrUnauthorized
	}

	deleted, err := s.commentRepo.Delete(ctx, c.ID, requester)
	if err != nil {
		return domain.Comment{}, err
	}

	s.emit(domain.CommentEvent{
		Kind:        domain.CommentDeleted,
		CommentUUID: deleted.UUID,
		ArticleUUID: deleted.Article.UUID,
		AuthorID:    requester,
	})
	return deleted, nil
}

// store persists c and reloads it with summaries attached.
// A reload failure after a successful write is still reported as ErrPersistFailed.
func (s *service) store(ctx context.Context, c *domain.Comment) (domain.Comment, error) {
	if err := s.commentRepo.Store(ctx, c); err != nil {
		return domain.Comment{}, fmt.Errorf("%w: %w", domain.ErrPersistFailed, err)
	}
	saved, err := s.commentRepo.GetByID(ctx, c.ID)
	if err != nil {
		logrus.WithField("comment", c.UUID).Errorf("comment saved but reload failed: %v", err)
		return domain.Comment{}, fmt.Errorf("%w: %w", domain.ErrPersistFailed, err)
	}
	return saved, nil
}

func (s *service) emit(ev domain.CommentEvent) {
	if s.events == nil {
		return
	}
	ev.OccurredAt = time.Now()
	s.events.Send(ev)
}
