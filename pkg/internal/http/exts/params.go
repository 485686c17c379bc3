package exts

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ParseID reads a numeric path parameter, ids that cannot exist are reported as not found.
func ParseID(c *fiber.Ctx, key string, notFound error) (uint, error) {
	id, err := c.ParamsInt(key)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid %s: %v", key, err))
	}
	if id <= 0 {
		return 0, fiber.NewError(fiber.StatusNotFound, notFound.Error())
	}
	return uint(id), nil
}
