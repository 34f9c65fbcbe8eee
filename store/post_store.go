// Package store holds the gorm-backed implementations of the engine's
// collaborator interfaces, plus the account/circle/following management
// the HTTP layer needs.
package store

import (
	"context"

	"github.com/yfei-chen/circlefeed/engine"
	"github.com/yfei-chen/circlefeed/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostStore persists posts in postgres. List results follow the Cursor
// column descending, which is the global creation order.
type PostStore struct {
	DB *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{DB: db}
}

// Insert creates the post and runs commit in the same transaction. A
// commit failure rolls the post back, so readers never observe one
// without the other.
func (s *PostStore) Insert(ctx context.Context, post *model.Post, commit engine.GormTransaction) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			return err
		}
		if len(post.Circles) > 0 {
			if err := tx.Model(post).Association("Circles").Append(post.Circles); err != nil {
				return err
			}
		}
		if commit != nil {
			// return nil will commit the whole transaction
			return commit(tx)
		}
		return nil
	})
}

// FindByID loads a post with its circles and (flattened) source post.
func (s *PostStore) FindByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	queryResult := s.DB.WithContext(ctx).
		Preload("Circles").
		Preload("ResharedFrom").
		Preload("ResharedFrom.Circles").
		Where("id = ?", id).
		First(&post)
	if queryResult.Error != nil && queryResult.Error != gorm.ErrRecordNotFound {
		return nil, queryResult.Error
	}
	if queryResult.RowsAffected != 1 {
		return nil, engine.ErrNotFound
	}
	return &post, nil
}

// ListAll returns up to limit posts with cursor below beforeCursor,
// newest first.
func (s *PostStore) ListAll(ctx context.Context, beforeCursor int32, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	queryResult := s.DB.WithContext(ctx).Model(&model.Post{}).
		Preload("Circles").
		Preload("ResharedFrom").
		Where("posts.cursor < ?", beforeCursor).
		Order("posts.cursor desc").
		Limit(limit).
		Find(&posts)
	return posts, queryResult.Error
}

// ListByAuthor is ListAll restricted to one author.
func (s *PostStore) ListByAuthor(ctx context.Context, authorId string, beforeCursor int32, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	queryResult := s.DB.WithContext(ctx).Model(&model.Post{}).
		Preload("Circles").
		Preload("ResharedFrom").
		Where("posts.author_id = ? AND posts.cursor < ?", authorId, beforeCursor).
		Order("posts.cursor desc").
		Limit(limit).
		Find(&posts)
	return posts, queryResult.Error
}
