package admin

import "github.com/gofiber/fiber/v2"

func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL).Name("Admin API")
	{
		admin.Get("/accounts", listAccount)
		admin.Put("/accounts/:accountId<int>/role", setAccountRole)
	}
}
