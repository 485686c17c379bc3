package admin

import (
	"git.solsynth.dev/hypernet/circle/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/circle/pkg/internal/models"
	"git.solsynth.dev/hypernet/circle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func ensureRoleManager(c *fiber.Ctx) (models.Account, error) {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return models.Account{}, err
	}
	user := c.Locals("user").(models.Account)
	if !user.Role.CanManageRoles() {
		return user, fiber.NewError(fiber.StatusForbidden, services.ErrForbidden.Error())
	}
	return user, nil
}

func listAccount(c *fiber.Ctx) error {
	if _, err := ensureRoleManager(c); err != nil {
		return err
	}

	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	count, err := services.CountAccount(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	items, err := services.ListAccount(c.UserContext(), take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data": lo.Map(items, func(item models.Account, _ int) models.AccountProfile {
			return item.Profile()
		}),
	})
}

func setAccountRole(c *fiber.Ctx) error {
	user, err := ensureRoleManager(c)
	if err != nil {
		return err
	}

	var data struct {
		Role string `json:"role" validate:"required,oneof=admin librarian member"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	role, err := models.ParseAccountRole(data.Role)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	id, err := exts.ParseID(c, "accountId", services.ErrAccountNotFound)
	if err != nil {
		return err
	}
	target, err := services.GetAccountWithID(c.UserContext(), id)
	if err != nil {
		return exts.ServiceError(err)
	}

	if target, err = services.SetAccountRole(c.UserContext(), user, target, role); err != nil {
		return exts.ServiceError(err)
	}

	return c.JSON(target.Profile())
}
