package store

import "github.com/pkg/errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCircleNotFound   = errors.New("circle not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrReactionNotFound = errors.New("reaction not found")
	ErrUserIdTaken      = errors.New("user id is already taken")
	ErrSelfFollow       = errors.New("cannot follow yourself")
)
