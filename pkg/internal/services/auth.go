package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	localCache "git.solsynth.dev/hypernet/circle/pkg/internal/cache"
	"git.solsynth.dev/hypernet/circle/pkg/internal/database"
	"git.solsynth.dev/hypernet/circle/pkg/internal/models"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func getTokenCacheKey(key string) string {
	return fmt.Sprintf("auth-token#%s", key)
}

// tokenKeyEquals quotes the column, "key" is a keyword in some dialects.
func tokenKeyEquals(key string) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: "key"}, Value: key}
}

func getTokenMarshaler() *marshaler.Marshaler {
	if localCache.S == nil {
		return nil
	}
	return marshaler.New(cache.New[any](localCache.S))
}

func NewToken(ctx context.Context, account models.Account) (models.AuthToken, error) {
	ttl := viper.GetDuration("security.token_ttl")
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}

	now := Clock.NowUtc()
	token := models.AuthToken{
		Key:       strings.ReplaceAll(uuid.NewString(), "-", ""),
		AccountID: account.ID,
		ExpiredAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := database.C.WithContext(ctx).Create(&token).Error; err != nil {
		return token, fmt.Errorf("unable to issue token: %v", err)
	}
	return token, nil
}

// Authenticate checks the credentials and issues a fresh token on success.
func Authenticate(ctx context.Context, username, password string) (models.Account, models.AuthToken, error) {
	var token models.AuthToken

	account, err := GetAccountWithUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return account, token, ErrInvalidCredentials
		}
		return account, token, err
	}
	if !CheckPassword(account, password) {
		return account, token, ErrInvalidCredentials
	}

	token, err = NewToken(ctx, account)
	return account, token, err
}

// AuthenticateToken resolves a bearer key into its account.
// The token is cached, the account itself is always read from the database.
func AuthenticateToken(ctx context.Context, key string) (models.Account, error) {
	var account models.Account
	if len(key) == 0 {
		return account, ErrUnauthorized
	}

	var token *models.AuthToken
	marshal := getTokenMarshaler()
	if marshal != nil {
		if val, err := marshal.Get(ctx, getTokenCacheKey(key), new(models.AuthToken)); err == nil {
			token = val.(*models.AuthToken)
		}
	}

	if token == nil {
		token = new(models.AuthToken)
		if err := database.C.WithContext(ctx).Where(tokenKeyEquals(key)).First(token).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return account, ErrUnauthorized
			}
			return account, fmt.Errorf("unable to get token: %v", err)
		}

		if marshal != nil {
			ttl := viper.GetDuration("security.token_cache_ttl")
			if ttl <= 0 {
				ttl = 5 * time.Minute
			}
			_ = marshal.Set(
				ctx,
				getTokenCacheKey(key),
				*token,
				store.WithExpiration(ttl),
			)
		}
	}

	if token.IsExpired(Clock.NowUtc()) {
		return account, ErrUnauthorized
	}

	account, err := GetAccountWithID(ctx, token.AccountID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return account, ErrUnauthorized
		}
		return account, err
	}
	return account, nil
}

func RevokeToken(ctx context.Context, key string) error {
	if marshal := getTokenMarshaler(); marshal != nil {
		_ = marshal.Delete(ctx, getTokenCacheKey(key))
	}
	return database.C.WithContext(ctx).Where(tokenKeyEquals(key)).Delete(&models.AuthToken{}).Error
}

// DoAutoDatabaseCleanup removes the tokens which already expired.
func DoAutoDatabaseCleanup() {
	deadline := Clock.NowUtc()
	tx := database.C.Where("expired_at <= ?", deadline).Delete(&models.AuthToken{})
	if tx.Error != nil {
		log.Error().Err(tx.Error).Msg("An error occurred when cleaning up expired tokens...")
		return
	}
	log.Debug().Int64("count", tx.RowsAffected).Msg("Cleaned up expired tokens.")
}
