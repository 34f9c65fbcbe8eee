package model

import "time"

/*

User is an account on the network

Id: primary key, chosen by the user at sign-up, never reassigned
CreatedAt: time when entity is created

PasswordHash: bcrypt hash of the sign-up password, never the plain text
Followings: users whose posts show up on this user's home feed, "many-to-many" relation

*/

type User struct {
	Id           string `gorm:"primaryKey"`
	CreatedAt    time.Time
	PasswordHash string  `json:"-"`
	Followings   []*User `json:"followings" gorm:"many2many:user_followings;"`
}

// Follows returns true iff the other user is in this user's followings.
// Followings must be preloaded by the caller.
func (u *User) Follows(otherId string) bool {
	for _, following := range u.Followings {
		if following.Id == otherId {
			return true
		}
	}
	return false
}
