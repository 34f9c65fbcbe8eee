package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*

Post is a piece of content a user published

Id: primary key, use to identify a post
CreatedAt: time when entity is created
DeletedAt: time when entity is deleted

AuthorID:
Author: user who published the post, "belongs-to" relation
Content: post's body in sanitized plain text
IsPublic: if true the post is visible to anyone allowed by the feed
		context; if false it is visible only inside the target circles
Circles: circles the post is shared into, "many-to-many" relation,
		only meaningful when IsPublic is false

Reshareable: whether other users may reshare this post
ResharedFromID:
ResharedFrom:
		if the post is a user reshared post, set this as the Post originally
		shared. Reshare chains are flattened at creation time: ResharedFrom
		always points at an original post, never at another reshare.
		A reshare carries no media of its own and must itself be reshareable.

MediaList: JSON list of media object names attached to the post

Cursor: The auto-inc global-unique index to keep the relative order of posts

*/

type Post struct {
	Id             string `gorm:"primaryKey"`
	CreatedAt      time.Time
	DeletedAt      gorm.DeletedAt
	AuthorID       string `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Author         User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Content        string
	IsPublic       bool
	Circles        []*Circle `json:"circles" gorm:"many2many:post_circle_shares;"`
	Reshareable    bool
	ResharedFromID *string
	ResharedFrom   *Post
	MediaList      datatypes.JSON
	Cursor         int32 `gorm:"autoIncrement"`
}
