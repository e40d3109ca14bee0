package server

import (
	"github.com/gofiber/fiber/v2"

	"postboard/internal/auth"
	"postboard/internal/models"
	"postboard/internal/store"
	"postboard/internal/validation"
)

// GetPosts handles GET /api/posts
// @Summary List posts
// @Description Retrieves posts filtered, sorted and paginated by query parameters
// @Tags posts
// @Produce json
// @Param search query string false "Case-sensitive substring match against title or content"
// @Param created_by query string false "Exact match on creator display name"
// @Param sort_by query string false "created_at or title"
// @Param sort_order query string false "asc or desc (default desc when sort_by is set)"
// @Param page query int false "1-based page number"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Success 200 {array} models.PostResponse
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	query := store.PostQuery{
		Search:    c.Query("search"),
		CreatedBy: c.Query("created_by"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Page:      c.QueryInt("page", 1),
		PageSize:  c.QueryInt("page_size", store.DefaultPageSize),
	}

	posts := s.store.ListPosts(query)
	response := make([]models.PostResponse, 0, len(posts))
	for i := range posts {
		response = append(response, posts[i].ToResponse())
	}
	return c.JSON(response)
}

// GetPost handles GET /api/posts/:id
// @Summary Get a post by ID
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.PostResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	post, ok := s.store.GetPost(c.Params("id"))
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post"))
	}
	return c.JSON(post.ToResponse())
}

// CreatePost handles POST /api/posts
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body models.CreatePostRequest true "Post to create"
// @Success 201 {object} models.PostResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	who := currentCaller(c)

	var req models.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePostContent(req.Content); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	post := s.store.CreatePost(req.Title, req.Content, who.ID, who.Username)

	c.Location("/api/posts/" + post.ID)
	return c.Status(fiber.StatusCreated).JSON(post.ToResponse())
}

// UpdatePost handles PUT /api/posts/:id
// @Summary Update a post
// @Description Replaces a post's title and content; owner only
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body models.UpdatePostRequest true "New title and content"
// @Success 200 {object} models.PostResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	who := currentCaller(c)
	id := c.Params("id")

	var req models.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePostContent(req.Content); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	post, ok := s.store.GetPost(id)
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post"))
	}
	if !auth.CanModify(who.ID, post.CreatedByID) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You can only update your own posts"))
	}

	updated, err := s.store.UpdatePost(id, req.Title, req.Content)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post"))
	}
	return c.JSON(updated.ToResponse())
}

// PatchPost handles PATCH /api/posts/:id
// @Summary Patch a post
// @Description Replaces only the post's title; owner only
// @Tags posts
// @Accept json
// @Param id path string true "Post ID"
// @Param request body models.PatchPostRequest true "New title"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts/{id} [patch]
func (s *Server) PatchPost(c *fiber.Ctx) error {
	who := currentCaller(c)
	id := c.Params("id")

	var req models.PatchPostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	post, ok := s.store.GetPost(id)
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post"))
	}
	if !auth.CanModify(who.ID, post.CreatedByID) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You can only update your own posts"))
	}

	if err := s.store.PatchPost(id, req.Title); err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post"))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeletePost handles DELETE /api/posts/:id
// @Summary Delete a post
// @Description Removes a post and all its comments as one atomic unit.
// @Tags posts
// @Param id path string true "Post ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	// No ownership check: any authenticated caller may delete any post.
	if !s.store.DeletePost(c.Params("id")) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post"))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
