package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"git.solsynth.dev/hypernet/circle/pkg/internal/cache"
	"git.solsynth.dev/hypernet/circle/pkg/internal/database"
	"git.solsynth.dev/hypernet/circle/pkg/internal/http"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var app *fiber.App

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	viper.Set("database.driver", "sqlite")
	viper.Set("database.dsn", ":memory:")
	viper.Set("security.bcrypt_cost", bcrypt.MinCost)
	viper.Set("language.detect", []string{"en", "es"})

	if err := database.NewGorm(); err != nil {
		panic(err)
	} else if err := database.RunMigration(database.C); err != nil {
		panic(err)
	}
	if err := cache.NewStore(); err != nil {
		panic(err)
	}

	app = http.NewServer().Fiber()

	os.Exit(m.Run())
}

type session struct {
	ID       uint
	Username string
	Token    string
}

// call sends one request through the app and decodes the json body into out when given.
func call(t *testing.T, method, path, token string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if len(token) > 0 {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, out), string(raw))
	}
	return resp.StatusCode
}

func register(t *testing.T) session {
	t.Helper()

	username := gofakeit.LetterN(12)
	var resp struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Token    string `json:"token"`
	}
	status := call(t, fiber.MethodPost, "/api/accounts/register", "", fiber.Map{
		"username": username,
		"email":    username + "@example.com",
		"password": "correct horse battery",
	}, &resp)
	require.Equal(t, fiber.StatusCreated, status)
	require.NotEmpty(t, resp.Token)

	return session{ID: resp.ID, Username: resp.Username, Token: resp.Token}
}
