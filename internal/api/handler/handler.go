package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/lazybook/internal/chat"
	"github.com/d60-Lab/lazybook/internal/service"
	"github.com/d60-Lab/lazybook/pkg/response"
)

// Handler binds the services to gin routes. Every method resolves the
// caller's identity from the auth middleware and passes it to the service
// explicitly; services never read ambient request state.
type Handler struct {
	authService   service.AuthService
	followService service.FollowService
	postService   service.PostService
	feedService   service.FeedService
	chatService   service.ChatService
	hub           *chat.Hub
}

func New(
	authService service.AuthService,
	followService service.FollowService,
	postService service.PostService,
	feedService service.FeedService,
	chatService service.ChatService,
	hub *chat.Hub,
) *Handler {
	return &Handler{
		authService:   authService,
		followService: followService,
		postService:   postService,
		feedService:   feedService,
		chatService:   chatService,
		hub:           hub,
	}
}

// respondError maps business errors onto response statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrPostNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrFollowSelf),
		errors.Is(err, service.ErrUnfollowSelf),
		errors.Is(err, service.ErrAlreadyFollowing),
		errors.Is(err, service.ErrNotFollowing),
		errors.Is(err, service.ErrSelfMessage),
		errors.Is(err, service.ErrSelfConversation):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUsernameTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
