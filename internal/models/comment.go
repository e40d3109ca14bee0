package models

import "time"

// Comment represents a content item attached to exactly one post.
type Comment struct {
	ID                string    `json:"id"`
	PostID            string    `json:"post_id"`
	Content           string    `json:"content"`
	CreatedByID       string    `json:"-"`
	CreatedByUsername string    `json:"created_by"`
	CreatedAt         time.Time `json:"created_at"`
}

// CommentResponse is the wire representation of a comment.
type CommentResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
}

// ToResponse converts a comment entity into its wire representation.
func (c *Comment) ToResponse() CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		CreatedBy: c.CreatedByUsername,
	}
}

// CreateCommentRequest is the body for POST /api/posts/:postId/comments.
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// UpdateCommentRequest is the body for PUT /api/comments/:id.
type UpdateCommentRequest struct {
	Content string `json:"content"`
}
