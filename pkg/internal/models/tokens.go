package models

import "time"

type AuthToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"uniqueIndex"`
	AccountID uint      `json:"account_id" gorm:"index"`
	ExpiredAt time.Time `json:"expired_at" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}

func (v AuthToken) IsExpired(now time.Time) bool {
	return !now.Before(v.ExpiredAt)
}
