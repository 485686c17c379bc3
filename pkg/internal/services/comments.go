package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"git.solsynth.dev/hypernet/circle/pkg/internal/database"
	"git.solsynth.dev/hypernet/circle/pkg/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetComment(ctx context.Context, id uint) (models.Comment, error) {
	var item models.Comment
	if err := database.C.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, ErrCommentNotFound
		}
		return item, fmt.Errorf("unable to get comment: %v", err)
	}
	return item, nil
}

func ListComment(ctx context.Context, post models.Post, take int, offset int) ([]models.Comment, error) {
	take = clampTake(take, 100)

	var items []models.Comment
	if err := database.C.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", post.ID).
		Limit(take).Offset(offset).
		Order("created_at ASC, id ASC").
		Find(&items).Error; err != nil {
		return items, err
	}
	return items, nil
}

func NewComment(ctx context.Context, user models.Account, post models.Post, content string) (models.Comment, error) {
	content = strings.TrimSpace(content)
	if len(content) == 0 {
		return models.Comment{}, ErrEmptyContent
	}

	now := Clock.NowUtc()
	item := models.Comment{
		Content:  content,
		PostID:   post.ID,
		AuthorID: user.ID,
	}
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := database.C.WithContext(ctx).Omit(clause.Associations).Create(&item).Error; err != nil {
		return item, err
	}
	item.Author = user

	notifyOrWarn(ctx, user, post.AuthorID, models.NotificationComment, models.NotificationTargetPost, post.ID)
	return item, nil
}

// DeleteComment allows the comment author, the author of the post and moderators.
func DeleteComment(ctx context.Context, user models.Account, item models.Comment) error {
	if item.AuthorID != user.ID && !user.Role.CanModerate() {
		post, err := GetPost(ctx, item.PostID)
		if err != nil {
			return err
		}
		if post.AuthorID != user.ID {
			return ErrForbidden
		}
	}

	return database.C.WithContext(ctx).Delete(&models.Comment{}, item.ID).Error
}
