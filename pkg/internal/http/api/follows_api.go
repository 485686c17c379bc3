package api

import (
	"fmt"

	"git.solsynth.dev/hypernet/circle/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/circle/pkg/internal/models"
	"git.solsynth.dev/hypernet/circle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func getFollowStatus(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	id, err := exts.ParseID(c, "userId", services.ErrAccountNotFound)
	if err != nil {
		return err
	}

	target, following, err := services.GetFollowStatus(c.UserContext(), user, id)
	if err != nil {
		return exts.ServiceError(err)
	}

	return c.JSON(fiber.Map{
		"target_user": fiber.Map{
			"id":       target.ID,
			"username": target.Username,
		},
		"is_following":   following,
		"current_status": lo.Ternary(following, "following", "not following"),
	})
}

func followAccount(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	id, err := exts.ParseID(c, "userId", services.ErrAccountNotFound)
	if err != nil {
		return err
	}

	target, err := services.FollowAccount(c.UserContext(), user, id)
	if err != nil {
		return exts.ServiceError(err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("You are now following %s", target.Username),
	})
}

func unfollowAccount(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	id, err := exts.ParseID(c, "userId", services.ErrAccountNotFound)
	if err != nil {
		return err
	}

	target, err := services.UnfollowAccount(c.UserContext(), user, id)
	if err != nil {
		return exts.ServiceError(err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("You have unfollowed %s", target.Username),
	})
}
