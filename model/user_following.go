package model

import (
	"time"

	"gorm.io/gorm"
)

/*

UserFollowing is a "many-to-many" relation of a user following another user

UserID: the follower's user id
FollowingID: the followed user's id
CreatedAt: time when relation is created

*/

type UserFollowing struct {
	UserID      string `gorm:"primaryKey"`
	FollowingID string `gorm:"primaryKey"`
	CreatedAt   time.Time
}

func (UserFollowing) BeforeCreate(db *gorm.DB) error {
	return nil
}
