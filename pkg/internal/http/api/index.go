package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapControllers(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		api.Get("/", getApiRoot)

		accounts := api.Group("/accounts").Name("Accounts API")
		{
			accounts.Get("/", getAccountsRoot)
			accounts.Post("/register", registerAccount)
			accounts.Post("/login", loginAccount)
			accounts.Post("/logout", logoutAccount)

			accounts.Get("/profile", getProfile)
			accounts.Put("/profile", editProfile)
			accounts.Patch("/profile", editProfile)
			accounts.Delete("/profile", deleteProfile)

			accounts.Get("/follow/:userId", getFollowStatus)
			accounts.Post("/follow/:userId", followAccount)
			accounts.Post("/unfollow/:userId", unfollowAccount)

			accounts.Get("/:accountId<int>", getAccount)
			accounts.Get("/:accountId<int>/followers", listFollowers)
			accounts.Get("/:accountId<int>/following", listFollowing)
		}

		posts := api.Group("/posts").Name("Posts API")
		{
			posts.Get("/feed", getFeed)

			posts.Delete("/comments/:commentId<int>", deleteComment)

			posts.Get("/", listPost)
			posts.Post("/", createPost)
			posts.Get("/:postId<int>", getPost)
			posts.Put("/:postId<int>", editPost)
			posts.Patch("/:postId<int>", editPost)
			posts.Delete("/:postId<int>", deletePost)

			posts.Post("/:postId<int>/like", likePost)
			posts.Post("/:postId<int>/unlike", unlikePost)

			posts.Get("/:postId<int>/comments", listComment)
			posts.Post("/:postId<int>/comments", createComment)
		}

		notifications := api.Group("/notifications").Name("Notifications API")
		{
			notifications.Get("/", listNotification)
			notifications.Post("/read", markAllNotificationRead)
			notifications.Post("/:notificationId<int>/read", markNotificationRead)
		}
	}
}

func getApiRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to Circle API",
		"endpoints": fiber.Map{
			"accounts":      "/api/accounts/",
			"posts":         "/api/posts/",
			"feed":          "/api/posts/feed/",
			"notifications": "/api/notifications/",
			"admin":         "/api/admin/",
		},
	})
}

func getAccountsRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Accounts API",
		"endpoints": fiber.Map{
			"register":      "/api/accounts/register/",
			"login":         "/api/accounts/login/",
			"logout":        "/api/accounts/logout/",
			"profile":       "/api/accounts/profile/",
			"follow_user":   "/api/accounts/follow/<user_id>/",
			"unfollow_user": "/api/accounts/unfollow/<user_id>/",
		},
	})
}
