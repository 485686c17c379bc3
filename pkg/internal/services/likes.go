package services

import (
	"context"
	"fmt"

	"git.solsynth.dev/hypernet/circle/pkg/internal/database"
	"git.solsynth.dev/hypernet/circle/pkg/internal/models"
	"gorm.io/gorm/clause"
)

// LikePost reports true when the like is new, liking twice is a no-op.
func LikePost(ctx context.Context, user models.Account, post models.Post) (bool, error) {
	like := models.Like{
		PostID:    post.ID,
		AccountID: user.ID,
		CreatedAt: Clock.NowUtc(),
	}
	tx := database.C.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like)
	if tx.Error != nil {
		return false, fmt.Errorf("unable to like post: %v", tx.Error)
	}

	created := tx.RowsAffected > 0
	if created {
		notifyOrWarn(ctx, user, post.AuthorID, models.NotificationLike, models.NotificationTargetPost, post.ID)
	}
	return created, nil
}

// UnlikePost reports true when a like was removed.
func UnlikePost(ctx context.Context, user models.Account, post models.Post) (bool, error) {
	tx := database.C.WithContext(ctx).
		Where("post_id = ? AND account_id = ?", post.ID, user.ID).
		Delete(&models.Like{})
	if tx.Error != nil {
		return false, fmt.Errorf("unable to unlike post: %v", tx.Error)
	}
	return tx.RowsAffected > 0, nil
}
