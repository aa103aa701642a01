package comment

import (
	"context"

	"github.com/Guyuepp/blog-comments/domain"
)

// RootTotal decides what "total" means for a root comment listing.
type RootTotal int8

const (
	// RootTotalPageSize reports the size of the returned page, as the public API always did.
	RootTotalPageSize RootTotal = iota
	// RootTotalCount reports the number of visible root comments of the article.
	RootTotalCount
)

// ParseRootTotal maps the configuration value; anything but "count" keeps the page size.
func ParseRootTotal(s string) RootTotal {
	if s == "count" {
		return RootTotalCount
	}
	return RootTotalPageSize
}

// listingEngine builds the paginated, ordered views shared by root and reply listings.
type listingEngine struct {
	repo      domain.CommentRepository
	rootTotal RootTotal
}

func (e *listingEngine) roots(ctx context.Context, articleID int64, q domain.ListQuery) (domain.CommentPage, error) {
	if err := q.Validate(); err != nil {
		return domain.CommentPage{}, err
	}
	records, err := e.repo.FetchRoots(ctx, articleID, q)
	if err != nil {
		return domain.CommentPage{}, err
	}

	total := int64(len(records))
	if e.rootTotal == RootTotalCount {
		if total, err = e.repo.CountRoots(ctx, articleID); err != nil {
			return domain.CommentPage{}, err
		}
	}
	return newPage(q, records, total), nil
}

func (e *listingEngine) replies(ctx context.Context, parentID int64, q domain.ListQuery) (domain.CommentPage, error) {
	if err := q.Validate(); err != nil {
		return domain.CommentPage{}, err
	}
	records, err := e.repo.FetchReplies(ctx, parentID, q)
	if err != nil {
		return domain.CommentPage{}, err
	}
	total, err := e.repo.CountReplies(ctx, parentID)
	if err != nil {
		return domain.CommentPage{}, err
	}
	return newPage(q, records, total), nil
}

func newPage(q domain.ListQuery, records []domain.Comment, total int64) domain.CommentPage {
	if records == nil {
		records = []domain.Comment{}
	}
	order := q.Order
	if order == nil {
		order = []domain.Ordering{}
	}
	return domain.CommentPage{
		Limit:   q.Limit,
		Offset:  q.Offset,
		Order:   order,
		Total:   total,
		Records: records,
	}
}
