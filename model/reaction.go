package model

import "time"

// Reaction is a single-emoji response to a post. A user may react to
// the same post multiple times with different emojis.
type Reaction struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	AuthorID  string `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	PostID    string
	Emoji     string
}
