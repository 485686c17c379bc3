package exts

import (
	"strings"

	"git.solsynth.dev/hypernet/circle/pkg/internal/models"
	"git.solsynth.dev/hypernet/circle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// GetTokenKey reads the key out of "Bearer <key>" or "Token <key>".
func GetTokenKey(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	scheme, key, found := strings.Cut(header, " ")
	if !found {
		return ""
	}
	switch strings.ToLower(scheme) {
	case "bearer", "token":
		return strings.TrimSpace(key)
	default:
		return ""
	}
}

// ContextMiddleware resolves the caller once per request and keeps it in c.Locals("user").
// Requests without a usable token pass through anonymously.
func ContextMiddleware(c *fiber.Ctx) error {
	key := GetTokenKey(c)
	if len(key) == 0 {
		return c.Next()
	}

	account, err := services.AuthenticateToken(c.UserContext(), key)
	if err != nil {
		log.Debug().Err(err).Msg("Unable to authenticate request token, continue as anonymous...")
		return c.Next()
	}

	c.Locals("user", account)
	c.Locals("token", key)
	return c.Next()
}

func EnsureAuthenticated(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(models.Account); !ok {
		return fiber.NewError(fiber.StatusUnauthorized, services.ErrUnauthorized.Error())
	}
	return nil
}
