package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/repository/mysql/model"
)

type articleRepository struct {
	DB *gorm.DB
}

// mysql层只负责数据库操作
var _ domain.ArticleDBRepository = (*articleRepository)(nil)

// NewArticleDBRepository 创建数据库操作层
func NewArticleDBRepository(db *gorm.DB) *articleRepository {
	return &articleRepository{db}
}

func (m *articleRepository) GetByUUID(ctx context.Context, uuid string) (res domain.Article, err error) {
	var article model.Article
	err = m.DB.WithContext(ctx).First(&article, "uuid = ?", uuid).Error
	if err != nil {
		return res, storeError(err)
	}
	res = article.ToDomain()
	return
}

func (m *articleRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Article, error) {
	if len(ids) == 0 {
		return []domain.Article{}, nil
	}
	var articles []model.Article
	err := m.DB.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&articles).Error
	if err != nil {
		return nil, storeError(err)
	}

	res := make([]domain.Article, len(articles))
	for i := range articles {
		res[i] = articles[i].ToDomain()
	}
	return res, nil
}

func (m *articleRepository) FetchUUIDs(ctx context.Context, cursor, limit int64) ([]string, int64, error) {
	var rows []model.Article
	err := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Select("id", "uuid").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&rows).Error
	if err != nil {
		return nil, cursor, storeError(err)
	}

	uuids := make([]string, len(rows))
	next := cursor
	for i := range rows {
		uuids[i] = rows[i].UUID
		next = rows[i].ID
	}
	return uuids, next, nil
}
