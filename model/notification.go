package model

import "time"

// NotifyingAction enumerates what happened to the notified resource.
type NotifyingAction string

const (
	ActionReshare  NotifyingAction = "reshare"
	ActionComment  NotifyingAction = "comment"
	ActionReaction NotifyingAction = "reaction"
)

/*

Notification tells a user something happened to one of their resources.
Write-once: a notification is never updated after creation.

Id: primary key, use to identify a notification
CreatedAt: time when entity is created

Action: what happened, see NotifyingAction
NotifyingHref: address of the resource that triggered the action
NotifiedHref: address of the acted-on resource
OwnerID:
Owner: user being notified, "belongs-to" relation

*/

type Notification struct {
	Id            string `gorm:"primaryKey"`
	CreatedAt     time.Time
	Action        NotifyingAction
	NotifyingHref string
	NotifiedHref  string
	OwnerID       string `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Owner         User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}
