// Package models contains data structures for the application's domain entities.
package models

import "time"

// Post represents a top-level content item owned by its creator.
type Post struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	// CreatedByUsername is captured at creation time and never refreshed.
	CreatedByID       string    `json:"-"`
	CreatedByUsername string    `json:"created_by"`
	CreatedAt         time.Time `json:"created_at"`
}

// PostResponse is the wire representation of a post.
type PostResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
}

// ToResponse converts a post entity into its wire representation.
func (p *Post) ToResponse() PostResponse {
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		CreatedBy: p.CreatedByUsername,
	}
}

// CreatePostRequest is the body for POST /api/posts.
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostRequest is the body for PUT /api/posts/:id.
type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PatchPostRequest is the body for PATCH /api/posts/:id.
// Only the title is patchable.
type PatchPostRequest struct {
	Title string `json:"title"`
}
