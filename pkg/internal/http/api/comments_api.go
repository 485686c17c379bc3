package api

import (
	"git.solsynth.dev/hypernet/circle/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/circle/pkg/internal/models"
	"git.solsynth.dev/hypernet/circle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listComment(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	post, err := getPostFromParams(c)
	if err != nil {
		return err
	}

	items, err := services.ListComment(c.UserContext(), post, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": post.Metric.CommentCount,
		"data":  items,
	})
}

func createComment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Content string `json:"content" validate:"required,max=1024"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	post, err := getPostFromParams(c)
	if err != nil {
		return err
	}

	item, err := services.NewComment(c.UserContext(), user, post, data.Content)
	if err != nil {
		return exts.ServiceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func deleteComment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	id, err := exts.ParseID(c, "commentId", services.ErrCommentNotFound)
	if err != nil {
		return err
	}

	item, err := services.GetComment(c.UserContext(), id)
	if err != nil {
		return exts.ServiceError(err)
	}

	if err := services.DeleteComment(c.UserContext(), user, item); err != nil {
		return exts.ServiceError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
