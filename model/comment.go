package model

import (
	"time"

	"gorm.io/gorm"
)

/*

Comment is a user's reply to a post. Nesting is one level deep: a
nested comment references its parent comment, and a parent comment
never has a ParentCommentID itself.

*/

type Comment struct {
	Id              string `gorm:"primaryKey"`
	CreatedAt       time.Time
	DeletedAt       gorm.DeletedAt
	AuthorID        string `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Author          User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	PostID          string
	Content         string
	ParentCommentID *string
}
