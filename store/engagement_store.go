package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yfei-chen/circlefeed/engine"
	"github.com/yfei-chen/circlefeed/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EngagementStore persists comments and reactions. Like reshares, each
// create commits together with its notification, and comment content
// goes through the same sanitizer as post content.
type EngagementStore struct {
	DB            *gorm.DB
	Notifications *NotificationStore
	Sanitize      engine.Sanitizer
}

func NewEngagementStore(db *gorm.DB, notifications *NotificationStore, sanitize engine.Sanitizer) *EngagementStore {
	return &EngagementStore{DB: db, Notifications: notifications, Sanitize: sanitize}
}

// CreateComment adds a comment to a post and notifies the post's
// author. parentCommentId, when set, nests the comment one level under
// an existing comment; deeper nesting is collapsed to that parent.
func (s *EngagementStore) CreateComment(ctx context.Context, author *model.User, post *model.Post, content string, parentCommentId *string) (*model.Comment, error) {
	comment := model.Comment{
		Id:        uuid.New().String(),
		CreatedAt: time.Now(),
		AuthorID:  author.Id,
		PostID:    post.Id,
		Content:   s.Sanitize.Clean(content),
	}
	if parentCommentId != nil {
		var parent model.Comment
		queryResult := s.DB.WithContext(ctx).Where("id = ? AND post_id = ?", *parentCommentId, post.Id).First(&parent)
		if queryResult.RowsAffected != 1 {
			return nil, ErrCommentNotFound
		}
		if parent.ParentCommentID != nil {
			comment.ParentCommentID = parent.ParentCommentID
		} else {
			comment.ParentCommentID = &parent.Id
		}
	}

	notification := &model.Notification{
		Id:            uuid.New().String(),
		CreatedAt:     time.Now(),
		Action:        model.ActionComment,
		NotifyingHref: commentHref(post.Id, comment.Id),
		NotifiedHref:  engine.PostHref(post.Id),
		OwnerID:       post.AuthorID,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&comment).Error; err != nil {
			return err
		}
		if comment.AuthorID == post.AuthorID {
			// no self notification
			return nil
		}
		return s.Notifications.Record(tx, notification)
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments returns a post's comments oldest first, the render order.
func (s *EngagementStore) ListComments(ctx context.Context, postId string) ([]*model.Comment, error) {
	var comments []*model.Comment
	queryResult := s.DB.WithContext(ctx).
		Where("post_id = ?", postId).
		Order("created_at asc").
		Find(&comments)
	return comments, queryResult.Error
}

// CreateReaction adds an emoji reaction to a post and notifies the
// post's author.
func (s *EngagementStore) CreateReaction(ctx context.Context, author *model.User, post *model.Post, emoji string) (*model.Reaction, error) {
	reaction := model.Reaction{
		Id:        uuid.New().String(),
		CreatedAt: time.Now(),
		AuthorID:  author.Id,
		PostID:    post.Id,
		Emoji:     emoji,
	}

	notification := &model.Notification{
		Id:            uuid.New().String(),
		CreatedAt:     time.Now(),
		Action:        model.ActionReaction,
		NotifyingHref: engine.PostHref(post.Id),
		NotifiedHref:  engine.PostHref(post.Id),
		OwnerID:       post.AuthorID,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&reaction).Error; err != nil {
			return err
		}
		if reaction.AuthorID == post.AuthorID {
			return nil
		}
		return s.Notifications.Record(tx, notification)
	})
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

// DeleteReaction removes the author's own reaction.
func (s *EngagementStore) DeleteReaction(ctx context.Context, authorId string, reactionId string) error {
	queryResult := s.DB.WithContext(ctx).
		Where("id = ? AND author_id = ?", reactionId, authorId).
		Delete(&model.Reaction{})
	if queryResult.Error != nil {
		return queryResult.Error
	}
	if queryResult.RowsAffected != 1 {
		return ErrReactionNotFound
	}
	return nil
}

// ListReactions returns a post's reactions oldest first.
func (s *EngagementStore) ListReactions(ctx context.Context, postId string) ([]*model.Reaction, error) {
	var reactions []*model.Reaction
	queryResult := s.DB.WithContext(ctx).
		Where("post_id = ?", postId).
		Order("created_at asc").
		Find(&reactions)
	return reactions, queryResult.Error
}

func commentHref(postId string, commentId string) string {
	return fmt.Sprintf("/post/%s#comment-%s", postId, commentId)
}
