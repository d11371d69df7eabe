package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/lazybook/internal/api/middleware"
	"github.com/d60-Lab/lazybook/pkg/response"
)

type postCreateRequest struct {
	Text string `json:"text" binding:"required,max=280"`
}

// CreatePost publishes a new post by the caller
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body postCreateRequest true "post body"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req postCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.postService.Create(c.Request.Context(), middleware.UserID(c), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, post)
}

// GetPost returns a single post by id
// @Summary Get a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "post id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/posts/{id} [get]
func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.postService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, post)
}
