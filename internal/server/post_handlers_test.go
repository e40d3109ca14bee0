package server

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/internal/models"
)

func createPost(t *testing.T, app *fiber.App, token, title, content string) models.PostResponse {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/posts", token, map[string]string{
		"title":   title,
		"content": content,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decodeBody[models.PostResponse](t, resp)
}

func TestCreatePost(t *testing.T) {
	app, _ := newTestApp(t)
	token := login(t, app, "user", "user123")

	tests := []struct {
		name           string
		body           map[string]string
		expectedStatus int
	}{
		{
			name:           "valid post",
			body:           map[string]string{"title": "Hello", "content": "First post"},
			expectedStatus: fiber.StatusCreated,
		},
		{
			name:           "missing title",
			body:           map[string]string{"content": "no title"},
			expectedStatus: fiber.StatusBadRequest,
		},
		{
			name:           "missing content",
			body:           map[string]string{"title": "no content"},
			expectedStatus: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, fiber.MethodPost, "/api/posts", token, tt.body)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == fiber.StatusCreated {
				post := decodeBody[models.PostResponse](t, resp)
				assert.NotEmpty(t, post.ID)
				assert.Equal(t, "user", post.CreatedBy)
				assert.Equal(t, "/api/posts/"+post.ID, resp.Header.Get("Location"))
			}
		})
	}
}

func TestGetPost(t *testing.T) {
	app, _ := newTestApp(t)
	token := login(t, app, "user", "user123")
	created := createPost(t, app, token, "Hello", "First post")

	resp := doJSON(t, app, fiber.MethodGet, "/api/posts/"+created.ID, "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decodeBody[models.PostResponse](t, resp)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Hello", got.Title)

	resp = doJSON(t, app, fiber.MethodGet, "/api/posts/missing", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetPosts_AnonymousWithQuery(t *testing.T) {
	app, _ := newTestApp(t)
	token := login(t, app, "user", "user123")
	for i := 0; i < 12; i++ {
		createPost(t, app, token, fmt.Sprintf("Post %02d", i), "content")
	}

	resp := doJSON(t, app, fiber.MethodGet, "/api/posts?page=2&page_size=10", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	posts := decodeBody[[]models.PostResponse](t, resp)
	assert.Len(t, posts, 2)

	resp = doJSON(t, app, fiber.MethodGet, "/api/posts?search=Post+03", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	posts = decodeBody[[]models.PostResponse](t, resp)
	require.Len(t, posts, 1)
	assert.Equal(t, "Post 03", posts[0].Title)

	resp = doJSON(t, app, fiber.MethodGet, "/api/posts?sort_by=title&sort_order=desc&page_size=100", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	posts = decodeBody[[]models.PostResponse](t, resp)
	require.Len(t, posts, 12)
	assert.Equal(t, "Post 11", posts[0].Title)
}

func TestUpdatePost_OwnershipEnforced(t *testing.T) {
	app, _ := newTestApp(t)
	owner := login(t, app, "user", "user123")
	other := login(t, app, "admin", "admin123")
	created := createPost(t, app, owner, "Mine", "original")

	body := map[string]string{"title": "Taken over", "content": "rewritten"}

	// Non-owner is refused with Forbidden, not NotFound
	resp := doJSON(t, app, fiber.MethodPut, "/api/posts/"+created.ID, other, body)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// The identical call from the owner succeeds
	resp = doJSON(t, app, fiber.MethodPut, "/api/posts/"+created.ID, owner, body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decodeBody[models.PostResponse](t, resp)
	assert.Equal(t, "Taken over", updated.Title)
	assert.Equal(t, "rewritten", updated.Content)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "user", updated.CreatedBy)
}

func TestUpdatePost_NotFoundAndValidation(t *testing.T) {
	app, _ := newTestApp(t)
	token := login(t, app, "user", "user123")

	resp := doJSON(t, app, fiber.MethodPut, "/api/posts/missing", token,
		map[string]string{"title": "t", "content": "c"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	created := createPost(t, app, token, "Hello", "content")
	resp = doJSON(t, app, fiber.MethodPut, "/api/posts/"+created.ID, token,
		map[string]string{"title": "", "content": "c"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPatchPost(t *testing.T) {
	app, st := newTestApp(t)
	owner := login(t, app, "user", "user123")
	other := login(t, app, "admin", "admin123")
	created := createPost(t, app, owner, "Hello", "content stays")

	// Ownership applies to patch as well
	resp := doJSON(t, app, fiber.MethodPatch, "/api/posts/"+created.ID, other,
		map[string]string{"title": "nope"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPatch, "/api/posts/"+created.ID, owner,
		map[string]string{"title": "Patched"})
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	got, ok := st.GetPost(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Patched", got.Title)
	assert.Equal(t, "content stays", got.Content)

	resp = doJSON(t, app, fiber.MethodPatch, "/api/posts/missing", owner,
		map[string]string{"title": "x"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// Post deletion performs no ownership check: any authenticated caller may
// delete any post. This documents the reproduced behavior instead of
// assuming standard ownership enforcement.
func TestDeletePost_NoOwnershipCheck(t *testing.T) {
	app, st := newTestApp(t)
	owner := login(t, app, "user", "user123")
	other := login(t, app, "admin", "admin123")
	created := createPost(t, app, owner, "Hello", "content")

	resp := doJSON(t, app, fiber.MethodDelete, "/api/posts/"+created.ID, other, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	_, ok := st.GetPost(created.ID)
	assert.False(t, ok)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/posts/"+created.ID, other, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeletePost_CascadesOverHTTP(t *testing.T) {
	app, st := newTestApp(t)
	token := login(t, app, "user", "user123")
	created := createPost(t, app, token, "Hello", "content")

	for i := 0; i < 3; i++ {
		resp := doJSON(t, app, fiber.MethodPost, "/api/posts/"+created.ID+"/comments", token,
			map[string]string{"content": "a comment"})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}
	require.Equal(t, 3, st.CommentCount())

	resp := doJSON(t, app, fiber.MethodDelete, "/api/posts/"+created.ID, token, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0, st.CommentCount())
}
