package service

import "errors"

// Business errors. Handlers map these onto response statuses; anything not
// listed here is treated as an internal failure.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrFollowSelf         = errors.New("cannot follow yourself")
	ErrUnfollowSelf       = errors.New("cannot unfollow yourself")
	ErrAlreadyFollowing   = errors.New("already following")
	ErrNotFollowing       = errors.New("cannot unfollow a user you are not following")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSelfMessage        = errors.New("cannot message yourself")
	ErrSelfConversation   = errors.New("cannot get conversation with yourself")
)
