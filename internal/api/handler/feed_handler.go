package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/lazybook/internal/api/middleware"
	"github.com/d60-Lab/lazybook/pkg/response"
)

// HomeFeed returns posts by users the caller follows, newest first
// @Summary Home feed
// @Tags feeds
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/feeds/home [get]
func (h *Handler) HomeFeed(c *gin.Context) {
	posts, err := h.feedService.Home(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, posts)
}

// ExploreFeed returns the newest posts across all users. Results may be up
// to the cache TTL stale.
// @Summary Explore feed
// @Tags feeds
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/feeds/explore [get]
func (h *Handler) ExploreFeed(c *gin.Context) {
	posts, err := h.feedService.Explore(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, posts)
}
