package server

import (
	"github.com/gofiber/fiber/v2"

	"postboard/internal/models"
	"postboard/internal/validation"
)

// GetComments handles GET /api/posts/:postId/comments
// @Summary List a post's comments
// @Description Returns comments in the order they were added
// @Tags comments
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {array} models.CommentResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{postId}/comments [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID := c.Params("postId")

	// The store returns an empty slice for a missing post; the existence
	// check is what distinguishes 404 from "no comments yet".
	if _, ok := s.store.GetPost(postID); !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post"))
	}

	comments := s.store.ListComments(postID)
	response := make([]models.CommentResponse, 0, len(comments))
	for i := range comments {
		response = append(response, comments[i].ToResponse())
	}
	return c.JSON(response)
}

// CreateComment handles POST /api/posts/:postId/comments
// @Summary Add a comment to a post
// @Tags comments
// @Accept json
// @Produce json
// @Param postId path string true "Post ID"
// @Param request body models.CreateCommentRequest true "Comment to add"
// @Success 201 {object} models.CommentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts/{postId}/comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	who := currentCaller(c)

	var req models.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateCommentContent(req.Content); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	comment, err := s.store.AddComment(c.Params("postId"), req.Content, who.ID, who.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post"))
	}

	c.Location("/api/comments/" + comment.ID)
	return c.Status(fiber.StatusCreated).JSON(comment.ToResponse())
}

// GetComment handles GET /api/comments/:id
// @Summary Get a comment by ID
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} models.CommentResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /comments/{id} [get]
func (s *Server) GetComment(c *fiber.Ctx) error {
	comment, ok := s.store.GetComment(c.Params("id"))
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Comment"))
	}
	return c.JSON(comment.ToResponse())
}

// UpdateComment handles PUT /api/comments/:id
// @Summary Update a comment
// @Description Any authenticated caller may edit any comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param request body models.UpdateCommentRequest true "New content"
// @Success 200 {object} models.CommentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /comments/{id} [put]
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	var req models.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateCommentContent(req.Content); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	// Comment mutation performs no ownership check.
	comment, err := s.store.UpdateComment(c.Params("id"), req.Content)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Comment"))
	}
	return c.JSON(comment.ToResponse())
}

// DeleteComment handles DELETE /api/comments/:id
// @Summary Delete a comment
// @Description Any authenticated caller may remove any comment
// @Tags comments
// @Param id path string true "Comment ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	if !s.store.DeleteComment(c.Params("id")) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Comment"))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
