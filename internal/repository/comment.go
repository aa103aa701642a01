package repository

import (
	"context"

	"github.com/Guyuepp/blog-comments/domain"
)

// commentRepository 协调层: reads from the db layer, then attaches author and
// article summaries with one batched lookup each.
type commentRepository struct {
	db          domain.CommentDBRepository
	userRepo    domain.UserRepository
	articleRepo domain.ArticleRepository
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db domain.CommentDBRepository, userRepo domain.UserRepository, articleRepo domain.ArticleRepository) *commentRepository {
	return &commentRepository{
		db:          db,
		userRepo:    userRepo,
		articleRepo: articleRepo,
	}
}

func (r *commentRepository) GetByUUID(ctx context.Context, uuid string) (domain.Comment, error) {
	c, err := r.db.GetByUUID(ctx, uuid)
	if err != nil {
		return domain.Comment{}, err
	}
	return r.fillOne(ctx, c)
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	c, err := r.db.GetByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	return r.fillOne(ctx, c)
}

func (r *commentRepository) FetchRoots(ctx context.Context, articleID int64, q domain.ListQuery) ([]domain.Comment, error) {
	comments, err := r.db.FetchRoots(ctx, articleID, q)
	if err != nil {
		return nil, err
	}
	return r.fillSummaries(ctx, comments)
}

func (r *commentRepository) CountRoots(ctx context.Context, articleID int64) (int64, error) {
	return r.db.CountRoots(ctx, articleID)
}

func (r *commentRepository) FetchReplies(ctx context.Context, parentID int64, q domain.ListQuery) ([]domain.Comment, error) {
	comments, err := r.db.FetchReplies(ctx, parentID, q)
	if err != nil {
		return nil, err
	}
	return r.fillSummaries(ctx, comments)
}

func (r *commentRepository) CountReplies(ctx context.Context, parentID int64) (int64, error) {
	return r.db.CountReplies(ctx, parentID)
}

func (r *commentRepository) Store(ctx context.Context, c *domain.Comment) error {
	return r.db.Store(ctx, c)
}

func (r *commentRepository) UpdateContent(ctx context.Context, id int64, authorID int64, content string) error {
	return r.db.UpdateContent(ctx, id, authorID, content)
}

// Delete returns the prior state with summaries so it can still be shown.
func (r *commentRepository) Delete(ctx context.Context, id int64, authorID int64) (domain.Comment, error) {
	c, err := r.db.Delete(ctx, id, authorID)
	if err != nil {
		return domain.Comment{}, err
	}
	return r.fillOne(ctx, c)
}

func (r *commentRepository) fillOne(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	res, err := r.fillSummaries(ctx, []domain.Comment{c})
	if err != nil {
		return domain.Comment{}, err
	}
	return res[0], nil
}

// fillSummaries 批量填充作者和文章摘要
func (r *commentRepository) fillSummaries(ctx context.Context, comments []domain.Comment) ([]domain.Comment, error) {
	if len(comments) == 0 {
		return comments, nil
	}

	userIDs := make([]int64, 0, len(comments))
	articleIDs := make([]int64, 0, 1)
	seenUser := make(map[int64]bool)
	seenArticle := make(map[int64]bool)
	for _, c := range comments {
		if !seenUser[c.AuthorID] {
			userIDs = append(userIDs, c.AuthorID)
			seenUser[c.AuthorID] = true
		}
		if !seenArticle[c.ArticleID] {
			articleIDs = append(articleIDs, c.ArticleID)
			seenArticle[c.ArticleID] = true
		}
	}

	users, err := r.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	userMap := make(map[int64]domain.AuthorSummary, len(users))
	for i := range users {
		userMap[users[i].ID] = users[i].Summary()
	}

	articles, err := r.articleRepo.GetByIDs(ctx, articleIDs)
	if err != nil {
		return nil, err
	}
	articleMap := make(map[int64]domain.ArticleSummary, len(articles))
	for i := range articles {
		articleMap[articles[i].ID] = articles[i].Summary()
	}

	for i := range comments {
		comments[i].Author = userMap[comments[i].AuthorID]
		comments[i].Article = articleMap[comments[i].ArticleID]
	}
	return comments, nil
}
