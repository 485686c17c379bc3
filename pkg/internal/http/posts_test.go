package http_test

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestPostLifecycle(t *testing.T) {
	author, other := register(t), register(t)

	var resp message
	require.Equal(t, fiber.StatusBadRequest, call(t, fiber.MethodPost, "/api/posts", author.Token, fiber.Map{"content": ""}, &resp))
	require.Equal(t, "required", resp.Fields["content"])
	require.Equal(t, fiber.StatusUnauthorized, call(t, fiber.MethodPost, "/api/posts", "", fiber.Map{"content": "hi"}, nil))

	var created post
	require.Equal(t, fiber.StatusCreated, call(t, fiber.MethodPost, "/api/posts", author.Token, fiber.Map{"content": "first draft"}, &created))
	require.Equal(t, author.ID, created.AuthorID)

	path := fmt.Sprintf("/api/posts/%d", created.ID)
	require.Equal(t, fiber.StatusForbidden, call(t, fiber.MethodPut, path, other.Token, fiber.Map{"content": "hijacked"}, nil))

	var edited post
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodPatch, path, author.Token, fiber.Map{"content": "final"}, &edited))
	require.Equal(t, "final", edited.Content)

	var fetched post
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodGet, path, "", nil, &fetched))
	require.Equal(t, "final", fetched.Content)

	var list struct {
		Count int64  `json:"count"`
		Data  []post `json:"data"`
	}
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodGet, fmt.Sprintf("/api/posts?author=%d", author.ID), "", nil, &list))
	require.EqualValues(t, 1, list.Count)
	require.Equal(t, created.ID, list.Data[0].ID)

	require.Equal(t, fiber.StatusForbidden, call(t, fiber.MethodDelete, path, other.Token, nil, nil))
	require.Equal(t, fiber.StatusNoContent, call(t, fiber.MethodDelete, path, author.Token, nil, nil))
	require.Equal(t, fiber.StatusNotFound, call(t, fiber.MethodGet, path, "", nil, nil))
	require.Equal(t, fiber.StatusNotFound, call(t, fiber.MethodGet, "/api/posts/999999", "", nil, nil))
}

func TestLikesAndComments(t *testing.T) {
	author, fan := register(t), register(t)

	var created post
	require.Equal(t, fiber.StatusCreated, call(t, fiber.MethodPost, "/api/posts", author.Token, fiber.Map{"content": "talk to me"}, &created))
	path := fmt.Sprintf("/api/posts/%d", created.ID)

	var like struct {
		Created bool `json:"created"`
	}
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodPost, path+"/like", fan.Token, nil, &like))
	require.True(t, like.Created)
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodPost, path+"/like", fan.Token, nil, &like))
	require.False(t, like.Created)

	var comment struct {
		ID uint `json:"id"`
	}
	require.Equal(t, fiber.StatusCreated, call(t, fiber.MethodPost, path+"/comments", fan.Token, fiber.Map{"content": "hello there"}, &comment))

	var detail struct {
		Metric struct {
			LikeCount    int64 `json:"like_count"`
			CommentCount int64 `json:"comment_count"`
		} `json:"metric"`
	}
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodGet, path, "", nil, &detail))
	require.EqualValues(t, 1, detail.Metric.LikeCount)
	require.EqualValues(t, 1, detail.Metric.CommentCount)

	var comments struct {
		Count int64 `json:"count"`
		Data  []struct {
			ID      uint   `json:"id"`
			Content string `json:"content"`
		} `json:"data"`
	}
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodGet, path+"/comments", "", nil, &comments))
	require.EqualValues(t, 1, comments.Count)
	require.Equal(t, "hello there", comments.Data[0].Content)

	require.Equal(t, fiber.StatusNoContent, call(t, fiber.MethodDelete, fmt.Sprintf("/api/posts/comments/%d", comment.ID), author.Token, nil, nil))
	require.Equal(t, fiber.StatusNotFound, call(t, fiber.MethodDelete, fmt.Sprintf("/api/posts/comments/%d", comment.ID), author.Token, nil, nil))

	var unlike struct {
		Removed bool `json:"removed"`
	}
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodPost, path+"/unlike", fan.Token, nil, &unlike))
	require.True(t, unlike.Removed)
}

func TestMetricsEndpoint(t *testing.T) {
	a, b := register(t), register(t)
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodPost, fmt.Sprintf("/api/accounts/follow/%d", b.ID), a.Token, nil, nil))
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodGet, "/api/posts/feed", a.Token, nil, nil))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(raw), `circle_follow_total{action="follow"}`)
	require.Contains(t, string(raw), "circle_feed_size_count")
}

func TestApiRoot(t *testing.T) {
	var root struct {
		Message   string            `json:"message"`
		Endpoints map[string]string `json:"endpoints"`
	}
	require.Equal(t, fiber.StatusOK, call(t, fiber.MethodGet, "/api", "", nil, &root))
	require.Equal(t, "/api/posts/feed/", root.Endpoints["feed"])
}
