package http_test

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"git.solsynth.dev/hypernet/circle/pkg/internal/database"
	"git.solsynth.dev/hypernet/circle/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidation(t *testing.T) {
	var resp message
	status := call(t, fiber.MethodPost, "/api/accounts/register", "", fiber.Map{
		"username": "ab",
		"email":    "not an email",
		"password": "short",
	}, &resp)
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "min=3", resp.Fields["username"])
	require.Equal(t, "email", resp.Fields["email"])
	require.Equal(t, "min=8", resp.Fields["password"])
}

func TestRegisterDuplicate(t *testing.T) {
	a := register(t)

	status := call(t, fiber.MethodPost, "/api/accounts/register", "", fiber.Map{
		"username": a.Username,
		"email":    "someone.else@example.com",
		"password": "correct horse battery",
	}, nil)
	require.Equal(t, fiber.StatusBadRequest, status)
}

func TestLoginAndLogout(t *testing.T) {
	a := register(t)

	status := call(t, fiber.MethodPost, "/api/accounts/login", "", fiber.Map{
		"username": a.Username,
		"password": "wrong password",
	}, nil)
	require.Equal(t, fiber.StatusBadRequest, status)

	var login struct {
		Token  string `json:"token"`
		UserID uint   `json:"user_id"`
		Email  string `json:"email"`
	}
	status = call(t, fiber.MethodPost, "/api/accounts/login", "", fiber.Map{
		"username": a.Username,
		"password": "correct horse battery",
	}, &login)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, a.ID, login.UserID)
	require.Equal(t, strings.ToLower(a.Username)+"@example.com", login.Email)

	var profile models.AccountProfile
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodGet, "/api/accounts/profile", login.Token, nil, &profile))
	require.Equal(t, a.Username, profile.Username)
	require.Equal(t, login.Email, profile.Email)
	require.Equal(t, models.RoleMember, profile.Role)

	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodPost, "/api/accounts/logout", login.Token, nil, nil))
	require.Equal(t, fiber.StatusUnauthorized, call(t, fiber.MethodGet, "/api/accounts/profile", login.Token, nil, nil))
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodGet, "/api/accounts/profile", a.Token, nil, nil))
}

func TestTokenScheme(t *testing.T) {
	a := register(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/accounts/profile", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Token "+a.Token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodGet, "/api/accounts/profile", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Basic "+a.Token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestEditProfile(t *testing.T) {
	a := register(t)

	var profile models.AccountProfile
	status := call(t, fiber.MethodPatch, "/api/accounts/profile", a.Token, fiber.Map{
		"bio":   "Collects first editions.",
		"links": fiber.Map{"site": "https://example.com"},
	}, &profile)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Collects first editions.", profile.Bio)
	require.Equal(t, strings.ToLower(a.Username)+"@example.com", profile.Email)

	var public models.Account
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodGet, fmt.Sprintf("/api/accounts/%d", a.ID), "", nil, &public))
	require.Equal(t, "Collects first editions.", public.Bio)
	require.Equal(t, "https://example.com", public.Links["site"])

	var resp message
	status = call(t, fiber.MethodPatch, "/api/accounts/profile", a.Token, fiber.Map{"profile_picture": "nope"}, &resp)
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "url", resp.Fields["profile_picture"])
}

func TestGetAccountMissing(t *testing.T) {
	require.Equal(t, fiber.StatusNotFound, call(t, fiber.MethodGet, "/api/accounts/999999", "", nil, nil))
	require.Equal(t, fiber.StatusNotFound, call(t, fiber.MethodGet, "/api/accounts/999999/followers", "", nil, nil))
}

func TestDeleteProfile(t *testing.T) {
	a, b := register(t), register(t)
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodPost, fmt.Sprintf("/api/accounts/follow/%d", b.ID), a.Token, nil, nil))

	require.Equal(t, fiber.StatusNoContent, call(t, fiber.MethodDelete, "/api/accounts/profile", b.Token, nil, nil))
	require.Equal(t, fiber.StatusNotFound, call(t, fiber.MethodGet, fmt.Sprintf("/api/accounts/%d", b.ID), "", nil, nil))
	require.Empty(t, followingOf(t, a))
}

func TestAdminSetRole(t *testing.T) {
	admin, member := register(t), register(t)

	body := fiber.Map{"role": "librarian"}
	path := fmt.Sprintf("/api/admin/accounts/%d/role", member.ID)
	require.Equal(t, fiber.StatusForbidden, call(t, fiber.MethodPut, path, admin.Token, body, nil))
	require.Equal(t, fiber.StatusUnauthorized, call(t, fiber.MethodPut, path, "", body, nil))

	require.NoError(t, database.C.Model(&models.Account{}).Where("id = ?", admin.ID).Update("role", models.RoleAdmin).Error)

	var resp message
	require.Equal(t, fiber.StatusBadRequest, call(t, fiber.MethodPut, path, admin.Token, fiber.Map{"role": "owner"}, &resp))
	require.Equal(t, "oneof=admin librarian member", resp.Fields["role"])

	var target models.AccountProfile
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodPut, path, admin.Token, body, &target))
	require.Equal(t, models.RoleLibrarian, target.Role)

	require.Equal(t, fiber.StatusNotFound, call(t, fiber.MethodPut, "/api/admin/accounts/999999/role", admin.Token, body, nil))
	require.Equal(t, fiber.StatusNotFound, call(t, fiber.MethodPut, "/api/admin/accounts/0/role", admin.Token, body, nil))
	require.Equal(t, fiber.StatusNotFound, call(t, fiber.MethodPut, "/api/admin/accounts/-1/role", admin.Token, body, nil))

	var list struct {
		Count int64                   `json:"count"`
		Data  []models.AccountProfile `json:"data"`
	}
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodGet, "/api/admin/accounts?take=100", admin.Token, nil, &list))
	require.GreaterOrEqual(t, list.Count, int64(2))
	for _, item := range list.Data {
		require.NotEmpty(t, item.Email)
	}
	require.Equal(t, fiber.StatusForbidden, call(t, fiber.MethodGet, "/api/admin/accounts", member.Token, nil, nil))
}

func TestPublicAccountHidesContact(t *testing.T) {
	a, b := register(t), register(t)
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodPost, fmt.Sprintf("/api/accounts/follow/%d", b.ID), a.Token, nil, nil))
	require.Equal(t, fiber.StatusCreated, call(t, fiber.MethodPost, "/api/posts", b.Token, fiber.Map{"content": "public words"}, nil))

	var public map[string]any
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodGet, fmt.Sprintf("/api/accounts/%d", b.ID), "", nil, &public))
	require.Equal(t, b.Username, public["username"])
	require.NotContains(t, public, "email")
	require.NotContains(t, public, "role")
	require.NotContains(t, public, "password_hash")

	var followers struct {
		Data []map[string]any `json:"data"`
	}
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodGet, fmt.Sprintf("/api/accounts/%d/followers", b.ID), "", nil, &followers))
	require.Len(t, followers.Data, 1)
	require.NotContains(t, followers.Data[0], "email")

	var feed []struct {
		Author map[string]any `json:"author"`
	}
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodGet, "/api/posts/feed", a.Token, nil, &feed))
	require.Len(t, feed, 1)
	require.Equal(t, b.Username, feed[0].Author["username"])
	require.NotContains(t, feed[0].Author, "email")

	var own map[string]any
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodGet, "/api/accounts/profile", b.Token, nil, &own))
	require.Equal(t, strings.ToLower(b.Username)+"@example.com", own["email"])
	require.Equal(t, "member", own["role"])
}
