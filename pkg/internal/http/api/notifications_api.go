package api

import (
	"git.solsynth.dev/hypernet/circle/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/circle/pkg/internal/models"
	"git.solsynth.dev/hypernet/circle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listNotification(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	count, unread, err := services.CountNotification(c.UserContext(), user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	items, err := services.ListNotification(c.UserContext(), user, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count":  count,
		"unread": unread,
		"data":   items,
	})
}

func markNotificationRead(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	id, err := exts.ParseID(c, "notificationId", services.ErrNotificationNotFound)
	if err != nil {
		return err
	}

	item, err := services.MarkNotificationRead(c.UserContext(), user, id)
	if err != nil {
		return exts.ServiceError(err)
	}

	return c.JSON(item)
}

func markAllNotificationRead(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	count, err := services.MarkAllNotificationRead(c.UserContext(), user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "All notifications marked as read",
		"count":   count,
	})
}
