package models

import "time"

// Follow is a directed edge: the follower's feed includes the followee's posts.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"uniqueIndex:idx_follow_pair;index"`
	FolloweeID uint      `json:"followee_id" gorm:"uniqueIndex:idx_follow_pair;index"`
	Follower   *Account  `json:"follower,omitempty"`
	Followee   *Account  `json:"followee,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
