package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"git.solsynth.dev/hypernet/circle/pkg/internal/database"
	"git.solsynth.dev/hypernet/circle/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Author")
}

func FilterPostWithAuthor(tx *gorm.DB, authorID uint) *gorm.DB {
	return tx.Where("author_id = ?", authorID)
}

func GetPost(ctx context.Context, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(database.C.WithContext(ctx)).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, ErrPostNotFound
		}
		return item, fmt.Errorf("unable to get post: %v", err)
	}

	items, err := CompletePostMeta(ctx, item)
	if err != nil {
		return item, err
	}
	return items[0], nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func ListPost(ctx context.Context, tx *gorm.DB, take int, offset int, order any) ([]models.Post, error) {
	take = clampTake(take, 100)

	var items []models.Post
	if err := PreloadGeneral(tx.WithContext(ctx)).
		Limit(take).Offset(offset).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	return CompletePostMeta(ctx, items...)
}

// CompletePostMeta loads the like and comment counters of the posts in two batch queries.
func CompletePostMeta(ctx context.Context, in ...models.Post) ([]models.Post, error) {
	if len(in) == 0 {
		return in, nil
	}

	idx := make([]uint, len(in))
	itemMap := make(map[uint]*models.Post, len(in))
	for i, item := range in {
		idx[i] = item.ID
		itemMap[item.ID] = &in[i]
	}

	var counts []struct {
		PostID uint
		Count  int64
	}

	if err := database.C.WithContext(ctx).Model(&models.Like{}).
		Select("post_id, COUNT(id) as count").
		Where("post_id IN ?", idx).
		Group("post_id").
		Scan(&counts).Error; err != nil {
		return in, fmt.Errorf("unable to count likes: %v", err)
	}
	for _, info := range counts {
		if post, ok := itemMap[info.PostID]; ok {
			post.Metric.LikeCount = info.Count
		}
	}

	counts = nil
	if err := database.C.WithContext(ctx).Model(&models.Comment{}).
		Select("post_id, COUNT(id) as count").
		Where("post_id IN ?", idx).
		Group("post_id").
		Scan(&counts).Error; err != nil {
		return in, fmt.Errorf("unable to count comments: %v", err)
	}
	for _, info := range counts {
		if post, ok := itemMap[info.PostID]; ok {
			post.Metric.CommentCount = info.Count
		}
	}

	return in, nil
}

// EnsurePostAuthor fails with ErrForbidden unless user wrote the post,
// moderators pass as well when allowModerator is set.
func EnsurePostAuthor(user models.Account, item models.Post, allowModerator bool) error {
	if item.AuthorID == user.ID {
		return nil
	}
	if allowModerator && user.Role.CanModerate() {
		return nil
	}
	return ErrForbidden
}

func normalizePost(item models.Post) (models.Post, error) {
	item.Content = strings.TrimSpace(item.Content)
	if len(item.Content) == 0 {
		return item, ErrEmptyContent
	}
	if item.Title != nil && len(strings.TrimSpace(*item.Title)) == 0 {
		item.Title = nil
	}
	item.Language = DetectLanguage(item.Content)
	return item, nil
}

func NewPost(ctx context.Context, user models.Account, item models.Post) (models.Post, error) {
	item, err := normalizePost(item)
	if err != nil {
		return item, err
	}

	log.Debug().Uint("author", user.ID).Msg("Posting a post...")
	start := time.Now()

	now := Clock.NowUtc()
	item.ID = 0
	item.AuthorID = user.ID
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := database.C.WithContext(ctx).Omit(clause.Associations).Create(&item).Error; err != nil {
		return item, err
	}
	item.Author = user

	log.Debug().Dur("elapsed", time.Since(start)).Uint("id", item.ID).Msg("The post is posted.")
	return item, nil
}

func EditPost(ctx context.Context, user models.Account, item models.Post) (models.Post, error) {
	if err := EnsurePostAuthor(user, item, false); err != nil {
		return item, err
	}

	item, err := normalizePost(item)
	if err != nil {
		return item, err
	}
	item.UpdatedAt = Clock.NowUtc()

	err = database.C.WithContext(ctx).
		Model(&item).
		Select("title", "content", "language", "updated_at").
		Updates(&item).Error
	return item, err
}

func DeletePost(ctx context.Context, user models.Account, item models.Post) error {
	if err := EnsurePostAuthor(user, item, true); err != nil {
		return err
	}

	return database.C.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", item.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", item.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("target_type = ? AND target_id = ?", models.NotificationTargetPost, item.ID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, item.ID).Error
	})
}
