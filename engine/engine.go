// Package engine implements the post visibility and resharing rules.
// It owns no storage: everything it reads or writes goes through the
// collaborator interfaces below, so the rules stay testable without a
// database and safe to evaluate from concurrent requests.
package engine

import (
	"context"

	"github.com/yfei-chen/circlefeed/model"
	"gorm.io/gorm"
)

// FeedContext is the context a post is being looked at from. Home only
// shows content from followed authors, profile has no follow gate.
type FeedContext int

const (
	ContextHome FeedContext = iota
	ContextProfile
)

// MembershipOracle answers circle membership queries.
type MembershipOracle interface {
	IsMember(ctx context.Context, circleId string, userId string) (bool, error)
}

// NotificationSink records a notification inside the caller's
// transaction, so a failed record aborts the whole commit.
type NotificationSink interface {
	Record(tx *gorm.DB, notification *model.Notification) error
}

// GormTransaction is the callback function used during db.Transaction in Gorm.
type GormTransaction func(tx *gorm.DB) error

// PostStore persists and looks up posts. List results are pages of the
// store's cursor-descending order; a page shorter than limit means the
// sequence is exhausted.
type PostStore interface {
	// Insert persists the post and runs commit, if non-nil, in the same
	// transaction. Either both succeed or neither is visible.
	Insert(ctx context.Context, post *model.Post, commit GormTransaction) error
	FindByID(ctx context.Context, id string) (*model.Post, error)
	ListAll(ctx context.Context, beforeCursor int32, limit int) ([]*model.Post, error)
	ListByAuthor(ctx context.Context, authorId string, beforeCursor int32, limit int) ([]*model.Post, error)
}

// Sanitizer turns raw user input into safe display text.
type Sanitizer interface {
	Clean(raw string) string
}
