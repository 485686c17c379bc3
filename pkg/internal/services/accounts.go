package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"git.solsynth.dev/hypernet/circle/pkg/internal/database"
	"git.solsynth.dev/hypernet/circle/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetAccountWithID(ctx context.Context, id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, ErrAccountNotFound
		}
		return account, fmt.Errorf("unable to get account by id: %v", err)
	}
	return account, nil
}

func GetAccountWithUsername(ctx context.Context, username string) (models.Account, error) {
	var account models.Account
	if err := database.C.WithContext(ctx).Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, ErrAccountNotFound
		}
		return account, fmt.Errorf("unable to get account by username: %v", err)
	}
	return account, nil
}

func ListAccount(ctx context.Context, take int, offset int) ([]models.Account, error) {
	take = clampTake(take, 100)

	var accounts []models.Account
	if err := database.C.WithContext(ctx).
		Limit(take).Offset(offset).
		Order("id ASC").
		Find(&accounts).Error; err != nil {
		return accounts, err
	}
	return accounts, nil
}

func CountAccount(ctx context.Context) (int64, error) {
	var count int64
	err := database.C.WithContext(ctx).Model(&models.Account{}).Count(&count).Error
	return count, err
}

// CompleteAccountMeta fills the follower, following and post counters.
func CompleteAccountMeta(ctx context.Context, account models.Account) (models.Account, error) {
	var err error
	if account.Metric.FollowerCount, err = CountFollowers(ctx, account.ID); err != nil {
		return account, err
	}
	if account.Metric.FollowingCount, err = CountFollowing(ctx, account.ID); err != nil {
		return account, err
	}
	if err = database.C.WithContext(ctx).
		Model(&models.Post{}).
		Where("author_id = ?", account.ID).
		Count(&account.Metric.PostCount).Error; err != nil {
		return account, err
	}
	return account, nil
}

func HashPassword(password string) (string, error) {
	cost := viper.GetInt("security.bcrypt_cost")
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("unable to hash password: %v", err)
	}
	return string(hash), nil
}

func CheckPassword(account models.Account, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) == nil
}

// RegisterAccount creates a member account and issues its first token.
func RegisterAccount(ctx context.Context, account models.Account, password string) (models.Account, models.AuthToken, error) {
	var token models.AuthToken

	account.Username = strings.TrimSpace(account.Username)
	account.Email = strings.ToLower(strings.TrimSpace(account.Email))

	var count int64
	if err := database.C.WithContext(ctx).
		Model(&models.Account{}).
		Where("username = ? OR email = ?", account.Username, account.Email).
		Count(&count).Error; err != nil {
		return account, token, fmt.Errorf("unable to count existing account: %v", err)
	}
	if count > 0 {
		return account, token, ErrAccountExists
	}

	hash, err := HashPassword(password)
	if err != nil {
		return account, token, err
	}
	account.PasswordHash = hash
	account.Role = models.RoleMember

	now := Clock.NowUtc()
	account.CreatedAt = now
	account.UpdatedAt = now

	if err := database.C.WithContext(ctx).Omit(clause.Associations).Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return account, token, ErrAccountExists
		}
		return account, token, fmt.Errorf("unable to create account: %v", err)
	}

	token, err = NewToken(ctx, account)
	if err != nil {
		return account, token, err
	}

	log.Info().Uint("id", account.ID).Str("username", account.Username).Msg("New account registered.")
	return account, token, nil
}

func EditProfile(ctx context.Context, account models.Account) (models.Account, error) {
	account.Email = strings.ToLower(strings.TrimSpace(account.Email))

	var count int64
	if err := database.C.WithContext(ctx).
		Model(&models.Account{}).
		Where("email = ? AND id != ?", account.Email, account.ID).
		Count(&count).Error; err != nil {
		return account, fmt.Errorf("unable to count existing account: %v", err)
	}
	if count > 0 {
		return account, ErrAccountExists
	}

	account.UpdatedAt = Clock.NowUtc()
	if err := database.C.WithContext(ctx).Omit(clause.Associations).Save(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return account, ErrAccountExists
		}
		return account, fmt.Errorf("unable to update account: %v", err)
	}
	return account, nil
}

// SetAccountRole changes the role of target, actor must be allowed to manage roles.
func SetAccountRole(ctx context.Context, actor models.Account, target models.Account, role models.AccountRole) (models.Account, error) {
	if !actor.Role.CanManageRoles() {
		return target, ErrForbidden
	}

	target.Role = role
	if err := database.C.WithContext(ctx).
		Model(&target).
		Update("role", role).Error; err != nil {
		return target, fmt.Errorf("unable to update account role: %v", err)
	}

	log.Info().Uint("actor", actor.ID).Uint("target", target.ID).Str("role", string(role)).Msg("Account role changed.")
	return target, nil
}

// DeleteAccount removes the account together with everything it owns or takes part in.
func DeleteAccount(ctx context.Context, account models.Account) error {
	ownPosts := database.C.Model(&models.Post{}).Select("id").Where("author_id = ?", account.ID)

	err := database.C.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ? OR post_id IN (?)", account.ID, ownPosts).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ? OR post_id IN (?)", account.ID, ownPosts).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where(
			"recipient_id = ? OR actor_id = ? OR (target_type = ? AND target_id IN (?))",
			account.ID, account.ID, models.NotificationTargetPost, ownPosts,
		).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", account.ID).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followee_id = ?", account.ID, account.ID).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", account.ID).Delete(&models.AuthToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&account).Error
	})
	if err != nil {
		return fmt.Errorf("unable to delete account: %v", err)
	}

	log.Info().Uint("id", account.ID).Msg("Account deleted.")
	return nil
}
