package services

import (
	"context"
	"fmt"

	"git.solsynth.dev/hypernet/circle/pkg/internal/database"
	"git.solsynth.dev/hypernet/circle/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func followingOf(accountID uint) *gorm.DB {
	return database.C.Model(&models.Follow{}).Select("followee_id").Where("follower_id = ?", accountID)
}

func followersOf(accountID uint) *gorm.DB {
	return database.C.Model(&models.Follow{}).Select("follower_id").Where("followee_id = ?", accountID)
}

func GetFollowStatus(ctx context.Context, user models.Account, targetID uint) (models.Account, bool, error) {
	target, err := GetAccountWithID(ctx, targetID)
	if err != nil {
		return target, false, err
	}

	var count int64
	if err := database.C.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", user.ID, target.ID).
		Count(&count).Error; err != nil {
		return target, false, fmt.Errorf("unable to check follow status: %v", err)
	}
	return target, count > 0, nil
}

// FollowAccount adds an edge from user to the target account.
// Following an account which is already followed succeeds without changing anything.
func FollowAccount(ctx context.Context, user models.Account, targetID uint) (models.Account, error) {
	target, err := GetAccountWithID(ctx, targetID)
	if err != nil {
		return target, err
	}
	if target.ID == user.ID {
		return target, ErrSelfFollow
	}

	follow := models.Follow{
		FollowerID: user.ID,
		FolloweeID: target.ID,
		CreatedAt:  Clock.NowUtc(),
	}
	tx := database.C.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(&follow)
	if tx.Error != nil {
		return target, fmt.Errorf("unable to follow account: %v", tx.Error)
	}

	if tx.RowsAffected > 0 {
		followActions.WithLabelValues("follow").Inc()
		log.Debug().Uint("follower", user.ID).Uint("followee", target.ID).Msg("Account followed.")
		notifyOrWarn(ctx, user, target.ID, models.NotificationFollow, models.NotificationTargetAccount, target.ID)
	}
	return target, nil
}

// UnfollowAccount removes the edge from user to the target account if there is one.
func UnfollowAccount(ctx context.Context, user models.Account, targetID uint) (models.Account, error) {
	target, err := GetAccountWithID(ctx, targetID)
	if err != nil {
		return target, err
	}

	tx := database.C.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", user.ID, target.ID).
		Delete(&models.Follow{})
	if tx.Error != nil {
		return target, fmt.Errorf("unable to unfollow account: %v", tx.Error)
	}

	if tx.RowsAffected > 0 {
		followActions.WithLabelValues("unfollow").Inc()
		log.Debug().Uint("follower", user.ID).Uint("followee", target.ID).Msg("Account unfollowed.")
	}
	return target, nil
}

func ListFollowing(ctx context.Context, accountID uint, take int, offset int) ([]models.Account, error) {
	return listAccountIn(ctx, followingOf(accountID), take, offset)
}

func ListFollowers(ctx context.Context, accountID uint, take int, offset int) ([]models.Account, error) {
	return listAccountIn(ctx, followersOf(accountID), take, offset)
}

func listAccountIn(ctx context.Context, idx *gorm.DB, take int, offset int) ([]models.Account, error) {
	take = clampTake(take, 100)

	var accounts []models.Account
	if err := database.C.WithContext(ctx).
		Where("id IN (?)", idx).
		Limit(take).Offset(offset).
		Order("id ASC").
		Find(&accounts).Error; err != nil {
		return accounts, err
	}
	return accounts, nil
}

func CountFollowing(ctx context.Context, accountID uint) (int64, error) {
	var count int64
	err := database.C.WithContext(ctx).Model(&models.Follow{}).Where("follower_id = ?", accountID).Count(&count).Error
	return count, err
}

func CountFollowers(ctx context.Context, accountID uint) (int64, error) {
	var count int64
	err := database.C.WithContext(ctx).Model(&models.Follow{}).Where("followee_id = ?", accountID).Count(&count).Error
	return count, err
}
