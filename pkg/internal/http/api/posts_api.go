package api

import (
	"git.solsynth.dev/hypernet/circle/pkg/internal/database"
	"git.solsynth.dev/hypernet/circle/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/circle/pkg/internal/models"
	"git.solsynth.dev/hypernet/circle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func getPostFromParams(c *fiber.Ctx) (models.Post, error) {
	id, err := exts.ParseID(c, "postId", services.ErrPostNotFound)
	if err != nil {
		return models.Post{}, err
	}

	item, err := services.GetPost(c.UserContext(), id)
	if err != nil {
		return item, exts.ServiceError(err)
	}
	return item, nil
}

func listPost(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	author := c.QueryInt("author", 0)
	filter := func(tx *gorm.DB) *gorm.DB {
		if author > 0 {
			return services.FilterPostWithAuthor(tx, uint(author))
		}
		return tx
	}

	count, err := services.CountPost(filter(database.C.WithContext(c.UserContext())))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListPost(c.UserContext(), filter(database.C), take, offset, "created_at DESC, id DESC")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func getPost(c *fiber.Ctx) error {
	item, err := getPostFromParams(c)
	if err != nil {
		return err
	}

	return c.JSON(item)
}

func createPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Title   *string `json:"title" validate:"omitnil,max=200"`
		Content string  `json:"content" validate:"required,max=4096"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewPost(c.UserContext(), user, models.Post{
		Title:   data.Title,
		Content: data.Content,
	})
	if err != nil {
		return exts.ServiceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func editPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Title   *string `json:"title" validate:"omitnil,max=200"`
		Content *string `json:"content" validate:"omitnil,max=4096"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := getPostFromParams(c)
	if err != nil {
		return err
	}

	if data.Title != nil {
		item.Title = data.Title
	}
	if data.Content != nil {
		item.Content = *data.Content
	}

	if item, err = services.EditPost(c.UserContext(), user, item); err != nil {
		return exts.ServiceError(err)
	}

	return c.JSON(item)
}

func deletePost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	item, err := getPostFromParams(c)
	if err != nil {
		return err
	}

	if err := services.DeletePost(c.UserContext(), user, item); err != nil {
		return exts.ServiceError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func likePost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	item, err := getPostFromParams(c)
	if err != nil {
		return err
	}

	created, err := services.LikePost(c.UserContext(), user, item)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "You liked this post",
		"created": created,
	})
}

func unlikePost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	item, err := getPostFromParams(c)
	if err != nil {
		return err
	}

	removed, err := services.UnlikePost(c.UserContext(), user, item)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "You unliked this post",
		"removed": removed,
	})
}
