package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/lazybook/internal/api/middleware"
	"github.com/d60-Lab/lazybook/pkg/response"
)

type accountUpdateRequest struct {
	Status string `json:"status" binding:"max=280"`
}

// maxPictureBytes caps profile picture uploads.
const maxPictureBytes = 5 << 20

// GetAccount returns the caller's own account with follower stats
// @Summary Get own account
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/account [get]
func (h *Handler) GetAccount(c *gin.Context) {
	details, err := h.authService.Me(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, details)
}

// UpdateAccount updates the caller's status line
// @Summary Update own account
// @Tags account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body accountUpdateRequest true "fields to update"
// @Success 200 {object} response.Response
// @Router /api/account [put]
func (h *Handler) UpdateAccount(c *gin.Context) {
	var req accountUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	details, err := h.authService.UpdateStatus(c.Request.Context(), middleware.UserID(c), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, details)
}

// UploadPicture stores a new profile picture
// @Summary Upload profile picture
// @Tags account
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "image file"
// @Success 200 {object} response.Response
// @Router /api/account/picture [post]
func (h *Handler) UploadPicture(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}
	if fileHeader.Size > maxPictureBytes {
		response.BadRequest(c, "image too large")
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxPictureBytes))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	url, err := h.authService.UpdatePicture(c.Request.Context(), middleware.UserID(c), data, fileHeader.Filename)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"picture_url": url})
}
