package services

import (
	"context"
	"fmt"

	"git.solsynth.dev/hypernet/circle/pkg/internal/database"
	"git.solsynth.dev/hypernet/circle/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

// GetFeed returns every post written by the accounts user follows, newest first.
// Posts sharing a timestamp keep the most recently inserted one first.
//
// The result is unbounded, there is no limit and no cursor.
// TODO Add cursor pagination on (created_at, id) once clients can follow a next cursor.
func GetFeed(ctx context.Context, user models.Account) ([]models.Post, error) {
	var posts []models.Post
	if err := PreloadGeneral(database.C.WithContext(ctx)).
		Where("author_id IN (?)", followingOf(user.ID)).
		Order("created_at DESC, id DESC").
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("unable to assemble feed: %v", err)
	}

	posts, err := CompletePostMeta(ctx, posts...)
	if err != nil {
		return posts, err
	}

	feedSize.Observe(float64(len(posts)))
	log.Debug().Uint("user", user.ID).Int("count", len(posts)).Msg("Assembled feed.")
	return posts, nil
}
