package services

import (
	"context"
	"errors"
	"fmt"

	"git.solsynth.dev/hypernet/circle/pkg/internal/database"
	"git.solsynth.dev/hypernet/circle/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotifyAccount records a notification for the recipient.
// Nothing is recorded when the actor acts on its own content.
func NotifyAccount(ctx context.Context, actor models.Account, recipientID uint, verb models.NotificationVerb, targetType string, targetID uint) error {
	if actor.ID == recipientID {
		return nil
	}

	now := Clock.NowUtc()
	item := models.Notification{
		RecipientID: recipientID,
		ActorID:     actor.ID,
		Verb:        verb,
		TargetType:  targetType,
		TargetID:    targetID,
	}
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := database.C.WithContext(ctx).Omit(clause.Associations).Create(&item).Error; err != nil {
		return fmt.Errorf("unable to create notification: %v", err)
	}

	log.Debug().Uint("recipient", recipientID).Str("verb", string(verb)).Msg("Notified account.")
	return nil
}

func notifyOrWarn(ctx context.Context, actor models.Account, recipientID uint, verb models.NotificationVerb, targetType string, targetID uint) {
	if err := NotifyAccount(ctx, actor, recipientID, verb, targetType, targetID); err != nil {
		log.Warn().Err(err).Msg("An error occurred when notify account...")
	}
}

// ListNotification returns the notifications of user, unread ones first, newest first within each group.
func ListNotification(ctx context.Context, user models.Account, take int, offset int) ([]models.Notification, error) {
	take = clampTake(take, 100)

	var items []models.Notification
	if err := database.C.WithContext(ctx).
		Preload("Actor").
		Where("recipient_id = ?", user.ID).
		Limit(take).Offset(offset).
		Order("read_at IS NOT NULL, created_at DESC, id DESC").
		Find(&items).Error; err != nil {
		return items, fmt.Errorf("unable to list notifications: %v", err)
	}
	return items, nil
}

func CountNotification(ctx context.Context, user models.Account) (total int64, unread int64, err error) {
	if err = database.C.WithContext(ctx).
		Model(&models.Notification{}).
		Where("recipient_id = ?", user.ID).
		Count(&total).Error; err != nil {
		return
	}
	err = database.C.WithContext(ctx).
		Model(&models.Notification{}).
		Where("recipient_id = ? AND read_at IS NULL", user.ID).
		Count(&unread).Error
	return
}

// MarkNotificationRead marks one notification of user as read, marking it twice keeps the first time.
func MarkNotificationRead(ctx context.Context, user models.Account, id uint) (models.Notification, error) {
	var item models.Notification
	if err := database.C.WithContext(ctx).
		Preload("Actor").
		Where("id = ? AND recipient_id = ?", id, user.ID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, ErrNotificationNotFound
		}
		return item, fmt.Errorf("unable to get notification: %v", err)
	}

	if item.IsRead() {
		return item, nil
	}

	now := Clock.NowUtc()
	if err := database.C.WithContext(ctx).
		Model(&item).
		Update("read_at", now).Error; err != nil {
		return item, fmt.Errorf("unable to mark notification read: %v", err)
	}
	item.ReadAt = &now
	return item, nil
}

func MarkAllNotificationRead(ctx context.Context, user models.Account) (int64, error) {
	tx := database.C.WithContext(ctx).
		Model(&models.Notification{}).
		Where("recipient_id = ? AND read_at IS NULL", user.ID).
		Update("read_at", Clock.NowUtc())
	if tx.Error != nil {
		return 0, fmt.Errorf("unable to mark notifications read: %v", tx.Error)
	}
	return tx.RowsAffected, nil
}
