package models

import "time"

type NotificationVerb string

const (
	NotificationFollow  = NotificationVerb("follow")
	NotificationLike    = NotificationVerb("like")
	NotificationComment = NotificationVerb("comment")
)

const (
	NotificationTargetAccount = "account"
	NotificationTargetPost    = "post"
)

// Notification tells the recipient that the actor did something to one of its targets.
type Notification struct {
	BaseModel

	RecipientID uint             `json:"recipient_id" gorm:"index"`
	ActorID     uint             `json:"actor_id" gorm:"index"`
	Actor       Account          `json:"actor"`
	Verb        NotificationVerb `json:"verb"`
	TargetType  string           `json:"target_type" gorm:"index:idx_notification_target"`
	TargetID    uint             `json:"target_id" gorm:"index:idx_notification_target"`
	ReadAt      *time.Time       `json:"read_at"`
}

func (v Notification) IsRead() bool {
	return v.ReadAt != nil
}
