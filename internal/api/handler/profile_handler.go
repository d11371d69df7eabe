package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/lazybook/internal/api/middleware"
	"github.com/d60-Lab/lazybook/pkg/response"
)

// SearchProfiles finds users by username prefix
// @Summary Search users
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param username query string false "username prefix"
// @Success 200 {object} response.Response
// @Router /api/profiles/search [get]
func (h *Handler) SearchProfiles(c *gin.Context) {
	results, err := h.followService.Search(c.Request.Context(), c.Query("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, results)
}

// GetProfile returns a profile with counts and viewer-relative flags
// @Summary Get a user profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param username path string true "username"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/profiles/{username} [get]
func (h *Handler) GetProfile(c *gin.Context) {
	details, err := h.followService.GetProfile(c.Request.Context(), middleware.UserID(c), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, details)
}

// Follow creates the follow edge viewer -> target
// @Summary Follow a user
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param username path string true "username"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/profiles/{username}/follow [post]
func (h *Handler) Follow(c *gin.Context) {
	if err := h.followService.Follow(c.Request.Context(), middleware.UserID(c), c.Param("username")); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}

// Unfollow removes the follow edge viewer -> target
// @Summary Unfollow a user
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param username path string true "username"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/profiles/{username}/follow [delete]
func (h *Handler) Unfollow(c *gin.Context) {
	if err := h.followService.Unfollow(c.Request.Context(), middleware.UserID(c), c.Param("username")); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}

// ListFollowers lists who follows the given user
// @Summary List followers
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param username path string true "username"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/profiles/{username}/followers [get]
func (h *Handler) ListFollowers(c *gin.Context) {
	list, err := h.followService.ListFollowers(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, list)
}

// ListFollowing lists who the given user follows
// @Summary List following
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param username path string true "username"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/profiles/{username}/following [get]
func (h *Handler) ListFollowing(c *gin.Context) {
	list, err := h.followService.ListFollowing(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, list)
}

// ListUserPosts lists a user's posts, newest first
// @Summary List a user's posts
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param username path string true "username"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/profiles/{username}/posts [get]
func (h *Handler) ListUserPosts(c *gin.Context) {
	posts, err := h.postService.ListByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, posts)
}
