package model

import (
	"time"

	"gorm.io/gorm"
)

/*

CircleMembership is a "many-to-many" relation of a user belonging to a circle

CircleID: circle id
UserID: user id
CreatedAt: time when relation is created

*/

type CircleMembership struct {
	CircleID  string `gorm:"primaryKey"`
	UserID    string `gorm:"primaryKey"`
	CreatedAt time.Time
}

func (CircleMembership) BeforeCreate(db *gorm.DB) error {
	return nil
}
