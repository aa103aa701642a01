package response

import "github.com/Guyuepp/blog-comments/domain"

const DateTimeFormat = "2006-01-02 15:04:05"

// Comment is the public shape of a comment: no internal id, no reply
// reference, no voter list.
type Comment struct {
	UUID      string  `json:"uuid"`
	Content   string  `json:"content"`
	Author    Author  `json:"author"`
	Article   Article `json:"article"`
	Hidden    bool    `json:"hidden"`
	Vote      int64   `json:"vote"`
	CreatedAt string  `json:"created"`
	UpdatedAt string  `json:"updated"`
}

type Author struct {
	UUID     string `json:"uuid"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type Article struct {
	UUID      string   `json:"uuid"`
	Title     string   `json:"title"`
	Tags      []string `json:"tags"`
	Hidden    bool     `json:"hidden"`
	Vote      int64    `json:"vote"`
	CreatedAt string   `json:"created"`
	UpdatedAt string   `json:"updated"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	tags := c.Article.Tags
	if tags == nil {
		tags = []string{}
	}
	return Comment{
		UUID:    c.UUID,
		Content: c.Content,
		Author: Author{
			UUID:     c.Author.UUID,
			Name:     c.Author.Name,
			Username: c.Author.Username,
		},
		Article: Article{
			UUID:      c.Article.UUID,
			Title:     c.Article.Title,
			Tags:      tags,
			Hidden:    c.Article.Hidden,
			Vote:      c.Article.Vote,
			CreatedAt: c.Article.CreatedAt.Format(DateTimeFormat),
			UpdatedAt: c.Article.UpdatedAt.Format(DateTimeFormat),
		},
		Hidden:    c.Hidden,
		Vote:      c.VoteCount,
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
		UpdatedAt: c.UpdatedAt.Format(DateTimeFormat),
	}
}

type Ordering struct {
	Column string `json:"column"`
	Order  string `json:"order"`
}

// List is the result of a listing request.
type List struct {
	Limit   int64      `json:"limit"`
	Offset  int64      `json:"offset"`
	Order   []Ordering `json:"order"`
	Total   int64      `json:"total"`
	Records []Comment  `json:"records"`
}

func NewListFromDomain(p *domain.CommentPage) List {
	order := make([]Ordering, len(p.Order))
	for i, o := range p.Order {
		order[i] = Ordering{Column: o.Column, Order: o.Direction.String()}
	}
	records := make([]Comment, len(p.Records))
	for i := range p.Records {
		records[i] = NewCommentFromDomain(&p.Records[i])
	}
	return List{
		Limit:   p.Limit,
		Offset:  p.Offset,
		Order:   order,
		Total:   p.Total,
		Records: records,
	}
}

// Success wraps every successful result.
type Success struct {
	Success bool `json:"success"`
	Result  any  `json:"result"`
}

func OK(result any) Success {
	return Success{Success: true, Result: result}
}

// Failure is the body of every failed request.
type Failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Fail(message string) Failure {
	return Failure{Success: false, Message: message}
}
