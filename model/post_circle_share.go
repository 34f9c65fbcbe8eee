package model

import (
	"time"

	"gorm.io/gorm"
)

/*

PostCircleShare is a "many-to-many" relation of a post shared into a circle

PostID: post id
CircleID: circle id
CreatedAt: time when relation is created

*/

type PostCircleShare struct {
	PostID    string `gorm:"primaryKey"`
	CircleID  string `gorm:"primaryKey"`
	CreatedAt time.Time
}

func (PostCircleShare) BeforeCreate(db *gorm.DB) error {
	return nil
}
