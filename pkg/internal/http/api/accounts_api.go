package api

import (
	"git.solsynth.dev/hypernet/circle/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/circle/pkg/internal/models"
	"git.solsynth.dev/hypernet/circle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func registerAccount(c *fiber.Ctx) error {
	var data struct {
		Username string `json:"username" validate:"required,alphanum,min=3,max=150"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8,max=72"`
		Bio      string `json:"bio" validate:"max=1024"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, token, err := services.RegisterAccount(c.UserContext(), models.Account{
		Username: data.Username,
		Email:    data.Email,
		Bio:      data.Bio,
	}, data.Password)
	if err != nil {
		return exts.ServiceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":       account.ID,
		"username": account.Username,
		"email":    account.Email,
		"bio":      account.Bio,
		"token":    token.Key,
	})
}

func loginAccount(c *fiber.Ctx) error {
	var data struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, token, err := services.Authenticate(c.UserContext(), data.Username, data.Password)
	if err != nil {
		return exts.ServiceError(err)
	}

	return c.JSON(fiber.Map{
		"token":   token.Key,
		"user_id": account.ID,
		"email":   account.Email,
	})
}

func logoutAccount(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	key := c.Locals("token").(string)

	if err := services.RevokeToken(c.UserContext(), key); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"message": "You have been logged out"})
}

func getProfile(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	account, err := services.CompleteAccountMeta(c.UserContext(), user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(account.Profile())
}

func editProfile(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Email          *string           `json:"email" validate:"omitnil,email"`
		Bio            *string           `json:"bio" validate:"omitnil,max=1024"`
		ProfilePicture *string           `json:"profile_picture" validate:"omitempty,url"`
		Links          map[string]string `json:"links" validate:"omitempty,max=16,dive,url"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if data.Email != nil {
		user.Email = *data.Email
	}
	if data.Bio != nil {
		user.Bio = *data.Bio
	}
	if data.ProfilePicture != nil {
		user.ProfilePicture = *data.ProfilePicture
	}
	if data.Links != nil {
		user.Links = make(map[string]any, len(data.Links))
		for k, v := range data.Links {
			user.Links[k] = v
		}
	}

	account, err := services.EditProfile(c.UserContext(), user)
	if err != nil {
		return exts.ServiceError(err)
	}

	return c.JSON(account.Profile())
}

func deleteProfile(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	if err := services.DeleteAccount(c.UserContext(), user); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func getAccount(c *fiber.Ctx) error {
	id, err := exts.ParseID(c, "accountId", services.ErrAccountNotFound)
	if err != nil {
		return err
	}

	account, err := services.GetAccountWithID(c.UserContext(), id)
	if err != nil {
		return exts.ServiceError(err)
	}
	if account, err = services.CompleteAccountMeta(c.UserContext(), account); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(account)
}

func listFollowers(c *fiber.Ctx) error {
	id, err := exts.ParseID(c, "accountId", services.ErrAccountNotFound)
	if err != nil {
		return err
	}
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	if _, err := services.GetAccountWithID(c.UserContext(), id); err != nil {
		return exts.ServiceError(err)
	}

	count, err := services.CountFollowers(c.UserContext(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	items, err := services.ListFollowers(c.UserContext(), id, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func listFollowing(c *fiber.Ctx) error {
	id, err := exts.ParseID(c, "accountId", services.ErrAccountNotFound)
	if err != nil {
		return err
	}
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	if _, err := services.GetAccountWithID(c.UserContext(), id); err != nil {
		return exts.ServiceError(err)
	}

	count, err := services.CountFollowing(c.UserContext(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	items, err := services.ListFollowing(c.UserContext(), id, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}
