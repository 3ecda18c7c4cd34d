package handler

import (
	"estatehub/internal/usecase"
	"estatehub/pkg/response"
	"estatehub/pkg/utils"

	"github.com/labstack/echo/v4"
)

type BlogHandler struct {
	blogUseCase *usecase.BlogUseCase
}

func NewBlogHandler(blogUseCase *usecase.BlogUseCase) *BlogHandler {
	return &BlogHandler{
		blogUseCase: blogUseCase,
	}
}

type blogPostRequest struct {
	Title      string   `json:"title" validate:"required"`
	Excerpt    string   `json:"excerpt"`
	Body       string   `json:"body" validate:"required"`
	CoverImage string   `json:"cover_image"`
	Tags       []string `json:"tags"`
}

func (r blogPostRequest) toInput() usecase.BlogPostInput {
	return usecase.BlogPostInput{
		Title:      r.Title,
		Excerpt:    r.Excerpt,
		Body:       r.Body,
		CoverImage: r.CoverImage,
		Tags:       r.Tags,
	}
}

func (h *BlogHandler) ListPosts(c echo.Context) error {
	params := utils.GetPageParams(c)

	posts, nextCursor, err := h.blogUseCase.ListPublished(c.Request().Context(), params.Limit, params.Cursor)
	if err != nil {
		return response.Error(c, err)
	}

	return response.CursorPage(c, posts, nextCursor)
}

func (h *BlogHandler) GetPostBySlug(c echo.Context) error {
	post, err := h.blogUseCase.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

func (h *BlogHandler) CreatePost(c echo.Context) error {
	var req blogPostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.blogUseCase.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, post)
}

func (h *BlogHandler) UpdatePost(c echo.Context) error {
	var req blogPostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.blogUseCase.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

type publishPostRequest struct {
	Published *bool `json:"published" validate:"required"`
}

func (h *BlogHandler) PublishPost(c echo.Context) error {
	var req publishPostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.blogUseCase.SetPublished(c.Request().Context(), c.Param("id"), *req.Published)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

func (h *BlogHandler) GetPostAdmin(c echo.Context) error {
	post, err := h.blogUseCase.GetAdmin(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

func (h *BlogHandler) ListPostsAdmin(c echo.Context) error {
	params := utils.GetPageParams(c)

	posts, nextCursor, err := h.blogUseCase.ListAll(c.Request().Context(), params.Limit, params.Cursor)
	if err != nil {
		return response.Error(c, err)
	}

	return response.CursorPage(c, posts, nextCursor)
}

func (h *BlogHandler) DeletePost(c echo.Context) error {
	if err := h.blogUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}
