package domain

import "errors"

// Resource errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrLikeNotFound    = errors.New("like not found")
	ErrFollowNotFound  = errors.New("follow relationship not found")
)

// Policy errors
var (
	ErrForbidden        = errors.New("forbidden")
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyLiked     = errors.New("post already liked")
	ErrAlreadyFollowing = errors.New("user already followed")
)
