package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/rest/middleware"
	"github.com/Guyuepp/blog-comments/internal/rest/request"
	"github.com/Guyuepp/blog-comments/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

// Register mounts the comment routes on r.
func (h *commentHandler) Register(r gin.IRouter) {
	v1 := r.Group("/v1/comment")
	v1.GET("/article/:articleUuid", h.FetchCommentsByArticle)
	v1.GET("/comment/:commentUuid", h.FetchReplies)
	v1.POST("/article/:articleUuid", h.CreateComment)
	v1.PUT("/:commentUuid", h.EditComment)
	v1.POST("/:commentUuid/article/:articleUuid", h.ReplyComment)
	v1.DELETE("/:commentUuid", h.DeleteComment)
}

func (h *commentHandler) FetchCommentsByArticle(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}

	page, err := h.Service.FetchByArticle(c.Request.Context(), c.Param("articleUuid"), q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.NewListFromDomain(&page)))
}

func (h *commentHandler) FetchReplies(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}

	page, err := h.Service.FetchReplies(c.Request.Context(), c.Param("commentUuid"), q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.NewListFromDomain(&page)))
}

func (h *commentHandler) CreateComment(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	comment, err := h.Service.Create(c.Request.Context(), requester(c), c.Param("articleUuid"), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(response.NewCommentFromDomain(&comment)))
}

// EditComment answers PUT /v1/comment/:commentUuid. The path keeps its historical
// shape; the parameter has always addressed a comment.
func (h *commentHandler) EditComment(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	comment, err := h.Service.Edit(c.Request.Context(), requester(c), c.Param("commentUuid"), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.NewCommentFromDomain(&comment)))
}

func (h *commentHandler) ReplyComment(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	comment, err := h.Service.Reply(c.Request.Context(), requester(c), c.Param("commentUuid"), c.Param("articleUuid"), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(response.NewCommentFromDomain(&comment)))
}

func (h *commentHandler) DeleteComment(c *gin.Context) {
	comment, err := h.Service.Delete(c.Request.Context(), requester(c), c.Param("commentUuid"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.NewCommentFromDomain(&comment)))
}

// bindListQuery reads the listing window from a JSON body when one is sent,
// otherwise from the query string.
func bindListQuery(c *gin.Context) (domain.ListQuery, bool) {
	if c.Request.ContentLength > 0 {
		var body request.ListBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
			return domain.ListQuery{}, false
		}
		return body.ToDomain(), true
	}

	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return domain.ListQuery{}, false
	}
	q, err := params.ToDomain()
	if err != nil {
		fail(c, err)
		return domain.ListQuery{}, false
	}
	return q, true
}

// requester is 0 for anonymous callers.
func requester(c *gin.Context) int64 {
	return c.GetInt64(middleware.UserIDKey)
}

func fail(c *gin.Context, err error) {
	c.JSON(getStatusCode(err), response.Fail(err.Error()))
}

// getStatusCode will get the code of the error from domain.CommentUsecase
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	// a reload failure wraps the reload error, so it is checked first
	case errors.Is(err, domain.ErrPersistFailed):
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
