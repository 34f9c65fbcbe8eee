package model

import "time"

/*

Circle is a named, user-owned group of members used to scope
restricted-visibility posts

Id: primary key, use to identify a circle
CreatedAt: time when entity is created
OwnerID:
Owner: user who created the circle, "belongs-to" relation

Name: circle's display name, unique per owner
Members: users the owner placed in this circle, "many-to-many" relation

*/

type Circle struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	OwnerID   string `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Owner     User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Name      string
	Members   []*User `json:"members" gorm:"many2many:circle_memberships;"`
}
