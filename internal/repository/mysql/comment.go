package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/repository/mysql/model"
)

// sortColumns maps the public sort columns to table columns.
var sortColumns = map[string]string{
	"uuid":    "uuid",
	"content": "content",
	"hidden":  "hidden",
	"vote":    "vote",
	"created": "created_at",
	"updated": "updated_at",
}

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentDBRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) GetByUUID(ctx context.Context, id string) (domain.Comment, error) {
	return c.getOne(ctx, "uuid = ?", id)
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	return c.getOne(ctx, "id = ?", id)
}

func (c *commentRepository) getOne(ctx context.Context, query string, arg any) (domain.Comment, error) {
	var comment model.Comment
	if err := c.DB.WithContext(ctx).First(&comment, query, arg).Error; err != nil {
		return domain.Comment{}, storeError(err)
	}

	var voters []int64
	err := c.DB.WithContext(ctx).
		Model(&model.CommentVote{}).
		Where("comment_id = ?", comment.ID).
		Order("user_id").
		Pluck("user_id", &voters).Error
	if err != nil {
		return domain.Comment{}, storeError(err)
	}

	res := comment.ToDomain()
	res.VotedUsers = voters
	return res, nil
}

func (c *commentRepository) FetchRoots(ctx context.Context, articleID int64, q domain.ListQuery) ([]domain.Comment, error) {
	return c.fetch(ctx, q, "article_id = ? AND reply_id IS NULL AND hidden = ?", articleID, false)
}

func (c *commentRepository) FetchReplies(ctx context.Context, parentID int64, q domain.ListQuery) ([]domain.Comment, error) {
	return c.fetch(ctx, q, "reply_id = ?", parentID)
}

func (c *commentRepository) fetch(ctx context.Context, q domain.ListQuery, query string, args ...any) ([]domain.Comment, error) {
	order, err := orderBy(q.Order)
	if err != nil {
		return nil, err
	}

	var comments []model.Comment
	err = c.DB.WithContext(ctx).
		Where(query, args...).
		Order(order).
		Offset(int(q.Skip())).
		Limit(int(q.Limit)).
		Find(&comments).Error
	if err != nil {
		return nil, storeError(err)
	}

	res := make([]domain.Comment, len(comments))
	for i := range comments {
		res[i] = comments[i].ToDomain()
	}
	return res, nil
}

func (c *commentRepository) CountRoots(ctx context.Context, articleID int64) (int64, error) {
	var total int64
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("article_id = ? AND reply_id IS NULL AND hidden = ?", articleID, false).
		Count(&total).Error
	if err != nil {
		return 0, storeError(err)
	}
	return total, nil
}

func (c *commentRepository) CountReplies(ctx context.Context, parentID int64) (int64, error) {
	var total int64
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("reply_id = ?", parentID).
		Count(&total).Error
	if err != nil {
		return 0, storeError(err)
	}
	return total, nil
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	if comment.UUID == "" {
		comment.UUID = uuid.NewString()
	}
	commentModel := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(commentModel).Error; err != nil {
		return storeError(err)
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	comment.UpdatedAt = commentModel.UpdatedAt
	return nil
}

// UpdateContent is a single conditional write so a comment deleted or never owned
// by authorID is never touched. The DSN must report found rows, not changed rows.
func (c *commentRepository) UpdateContent(ctx context.Context, id int64, authorID int64, content string) error {
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ? AND author_id = ?", id, authorID).
		Updates(map[string]any{
			"content":    content,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) Delete(ctx context.Context, id int64, authorID int64) (domain.Comment, error) {
	var deleted model.Comment
	err := c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND author_id = ?", id, authorID).
			First(&deleted).Error
		if err != nil {
			return err
		}

		if err := tx.Where("comment_id = ?", id).Delete(&model.CommentVote{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Comment{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return domain.Comment{}, storeError(err)
	}
	return deleted.ToDomain(), nil
}

// orderBy turns the ordering list into ORDER BY columns, left to right,
// and always ends with id so equal rows keep a repeatable order.
func orderBy(order []domain.Ordering) (clause.OrderBy, error) {
	columns := make([]clause.OrderByColumn, 0, len(order)+1)
	for _, o := range order {
		name, ok := sortColumns[o.Column]
		if !ok {
			return clause.OrderBy{}, fmt.Errorf("%w: column %q is not sortable", domain.ErrBadParamInput, o.Column)
		}
		columns = append(columns, clause.OrderByColumn{
			Column: clause.Column{Name: name},
			Desc:   o.Direction == domain.Descending,
		})
	}
	columns = append(columns, clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	return clause.OrderBy{Columns: columns}, nil
}

func storeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}
