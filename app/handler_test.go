package main

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerAndLogin(t *testing.T, ts *testServer, firstName, email string) *string {
	t.Helper()

	status, _, _ := ts.post(t, "/api/auth/register", map[string]any{
		"first_name": firstName,
		"last_name":  "Tester",
		"email":      email,
		"password":   "pa55word",
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	status, _, env := ts.post(t, "/api/auth/login", map[string]any{
		"email":    email,
		"password": "pa55word",
	}, nil)
	require.Equal(t, http.StatusOK, status)

	data := env.Data.(map[string]any)
	token := data["accessToken"].(string)

	return &token
}

func TestHealthCheck(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, _, env := ts.get(t, "/api/healthcheck", nil)

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, "available", env.Message)
}

func TestRouteNotFound(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, _, env := ts.get(t, "/api/nope", nil)

	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Route not found", env.Message)
}

func TestRegisterUser(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	t.Run("valid registration", func(t *testing.T) {
		status, _, env := ts.post(t, "/api/auth/register", map[string]any{
			"first_name": "Alice",
			"last_name":  "Walker",
			"email":      "alice@example.com",
			"password":   "pa55word",
		}, nil)

		assert.Equal(t, http.StatusCreated, status)
		assert.True(t, env.Success)
		assert.Equal(t, "User created successfully", env.Message)

		user := env.Data.(map[string]any)["user"].(map[string]any)
		assert.Equal(t, "Alice", user["first_name"])
		assert.NotContains(t, user, "password")
	})

	t.Run("duplicate email", func(t *testing.T) {
		status, _, env := ts.post(t, "/api/auth/register", map[string]any{
			"first_name": "Alice",
			"last_name":  "Walker",
			"email":      "alice@example.com",
			"password":   "pa55word",
		}, nil)

		assert.Equal(t, http.StatusConflict, status)
		assert.False(t, env.Success)
		assert.Equal(t, "User already exists", env.Message)
	})

	t.Run("short password", func(t *testing.T) {
		status, _, env := ts.post(t, "/api/auth/register", map[string]any{
			"first_name": "Bobby",
			"last_name":  "Walker",
			"email":      "bobby@example.com",
			"password":   "abc",
		}, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.False(t, env.Success)
	})

	t.Run("empty body", func(t *testing.T) {
		status, _, env := ts.request(t, http.MethodPost, "/api/auth/register", nil, nil)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.False(t, env.Success)
	})
}

func TestLoginUser(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, _, _ := ts.post(t, "/api/auth/register", map[string]any{
		"first_name": "Alice",
		"last_name":  "Walker",
		"email":      "alice@example.com",
		"password":   "pa55word",
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	t.Run("valid credentials", func(t *testing.T) {
		status, _, env := ts.post(t, "/api/auth/login", map[string]any{
			"email":    "alice@example.com",
			"password": "pa55word",
		}, nil)

		assert.Equal(t, http.StatusOK, status)
		assert.True(t, env.Success)
		assert.Equal(t, "Log in successful", env.Message)

		data := env.Data.(map[string]any)
		assert.NotEmpty(t, data["accessToken"])
	})

	t.Run("wrong password", func(t *testing.T) {
		status, _, env := ts.post(t, "/api/auth/login", map[string]any{
			"email":    "alice@example.com",
			"password": "wrongpass",
		}, nil)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Invalid login credentials", env.Message)
	})

	t.Run("unknown email", func(t *testing.T) {
		status, _, env := ts.post(t, "/api/auth/login", map[string]any{
			"email":    "nobody@example.com",
			"password": "pa55word",
		}, nil)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Invalid login credentials", env.Message)
	})
}

func TestBlogLifecycle(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	owner := registerAndLogin(t, ts, "Alice", "alice@example.com")
	other := registerAndLogin(t, ts, "Brian", "brian@example.com")

	t.Run("create requires authentication", func(t *testing.T) {
		status, _, env := ts.post(t, "/api/blogs", map[string]any{
			"title": "My first post",
			"body":  "Some body that is long enough.",
		}, nil)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "You are not authorized", env.Message)
	})

	var blogID float64

	t.Run("create", func(t *testing.T) {
		status, _, env := ts.post(t, "/api/blogs", map[string]any{
			"title": "My first post",
			"body":  "Some body that is long enough.",
			"tags":  []string{"go", "testing"},
		}, owner)

		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "Blog created successfully", env.Message)

		blog := env.Data.(map[string]any)["blog"].(map[string]any)
		assert.Equal(t, "draft", blog["state"])
		blogID = blog["_id"].(float64)
	})

	path := fmt.Sprintf("/api/blogs/%d", int(blogID))

	t.Run("draft is hidden from public fetch", func(t *testing.T) {
		status, _, env := ts.get(t, path, nil)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Blog does not exist or is not published", env.Message)
	})

	t.Run("non-owner cannot publish", func(t *testing.T) {
		status, _, env := ts.patch(t, path+"/publish", nil, other)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Not authorized to publish blog", env.Message)
	})

	t.Run("publish", func(t *testing.T) {
		status, _, env := ts.patch(t, path+"/publish", nil, owner)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Blog published successfully", env.Message)

		blog := env.Data.(map[string]any)["blog"].(map[string]any)
		assert.Equal(t, "published", blog["state"])
	})

	t.Run("public fetch counts the read", func(t *testing.T) {
		status, _, env := ts.get(t, path, nil)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Successfully retrieved Blog", env.Message)

		blog := env.Data.(map[string]any)["blog"].(map[string]any)
		assert.Equal(t, float64(1), blog["read_count"])

		_, _, env = ts.get(t, path, nil)
		blog = env.Data.(map[string]any)["blog"].(map[string]any)
		assert.Equal(t, float64(2), blog["read_count"])
	})

	t.Run("non-owner cannot update", func(t *testing.T) {
		status, _, env := ts.patch(t, path, map[string]any{
			"title": "Hijacked title",
		}, other)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Not authorized to update this blog", env.Message)
	})

	t.Run("owner updates title", func(t *testing.T) {
		status, _, env := ts.patch(t, path, map[string]any{
			"title": "My first post, revised",
		}, owner)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Blog updated successfully", env.Message)

		blog := env.Data.(map[string]any)["blog"].(map[string]any)
		assert.Equal(t, "My first post, revised", blog["title"])
	})

	t.Run("listing shows the published blog", func(t *testing.T) {
		status, _, env := ts.get(t, "/api/blogs", nil)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Blogs retrieval successful", env.Message)
		require.NotNil(t, env.Metadata)
		assert.Equal(t, 1, env.Metadata.TotalCount)
	})

	t.Run("own blogs listing", func(t *testing.T) {
		status, _, env := ts.get(t, "/api/users/me/blogs", owner)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, 1, env.Metadata.TotalCount)

		status, _, env = ts.get(t, "/api/users/me/blogs", other)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "No blogs found", env.Message)
		assert.Equal(t, 0, env.Metadata.TotalCount)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		status, _, env := ts.delete(t, path, other)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Not authorized to delete blog", env.Message)
	})

	t.Run("owner deletes", func(t *testing.T) {
		status, _, _ := ts.delete(t, path, owner)
		assert.Equal(t, http.StatusNoContent, status)

		status, _, env := ts.get(t, path, nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Blog does not exist or is not published", env.Message)
	})

	t.Run("missing blog yields not found on update", func(t *testing.T) {
		status, _, env := ts.patch(t, "/api/blogs/999999", map[string]any{
			"title": "Whatever title",
		}, owner)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Blog not found", env.Message)
	})

	t.Run("invalid id parameter", func(t *testing.T) {
		status, _, env := ts.get(t, "/api/blogs/abc", nil)

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "Invalid Id", env.Message)
	})
}

func TestListBlogsQueryValidation(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	t.Run("empty listing", func(t *testing.T) {
		status, _, env := ts.get(t, "/api/blogs", nil)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "No blogs found", env.Message)
	})

	t.Run("unknown sort column", func(t *testing.T) {
		status, _, env := ts.get(t, "/api/blogs?order_by=drop_table", nil)

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.False(t, env.Success)
	})

	t.Run("non-numeric page", func(t *testing.T) {
		status, _, env := ts.get(t, "/api/blogs?page=abc", nil)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Invalid page parameter", env.Message)
	})
}
