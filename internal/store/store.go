// Package store implements the in-memory entity store for posts, comments
// and users. All three collections live for the life of the process and are
// guarded by a single mutex; cascade deletion of a post and its comments
// happens under one critical section so a half-completed cascade is never
// observable.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"postboard/internal/models"
)

// Typed not-found conditions for operations whose caller expects success.
// Pure lookups signal absence with a boolean instead.
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// Store owns the three entity collections. Entities are handed out by
// value; mutation only happens inside store operations.
type Store struct {
	mu       sync.RWMutex
	posts    []*models.Post
	postByID map[string]*models.Post

	comments    []*models.Comment
	commentByID map[string]*models.Comment

	users []*models.User
}

// New creates a store seeded with the two fixed accounts.
func New() *Store {
	now := time.Now().UTC()
	return &Store{
		postByID:    make(map[string]*models.Post),
		commentByID: make(map[string]*models.Comment),
		users: []*models.User{
			{
				ID:        uuid.New().String(),
				Username:  "admin",
				Password:  "admin123",
				Roles:     []string{models.RoleAdmin, models.RoleUser},
				CreatedAt: now,
			},
			{
				ID:        uuid.New().String(),
				Username:  "user",
				Password:  "user123",
				Roles:     []string{models.RoleUser},
				CreatedAt: now,
			},
		},
	}
}

// ListPosts returns the posts matching the query, filtered, sorted and
// paginated. It never fails; an empty query returns the first page in
// insertion order.
func (s *Store) ListPosts(q PostQuery) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return q.apply(s.posts)
}

// GetPost looks up a post by id.
func (s *Store) GetPost(id string) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.postByID[id]
	if !ok {
		return models.Post{}, false
	}
	return *p, true
}

// CreatePost assigns an id and creation timestamp, appends the post and
// returns the stored value.
func (s *Store) CreatePost(title, content, creatorID, creatorName string) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := &models.Post{
		ID:                uuid.New().String(),
		Title:             title,
		Content:           content,
		CreatedByID:       creatorID,
		CreatedByUsername: creatorName,
		CreatedAt:         time.Now().UTC(),
	}
	s.posts = append(s.posts, post)
	s.postByID[post.ID] = post
	return *post
}

// UpdatePost replaces a post's title and content. Creator fields and the
// creation timestamp are immutable.
func (s *Store) UpdatePost(id, title, content string) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.postByID[id]
	if !ok {
		return models.Post{}, ErrPostNotFound
	}
	p.Title = title
	p.Content = content
	return *p, nil
}

// PatchPost replaces only the post's title.
func (s *Store) PatchPost(id, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.postByID[id]
	if !ok {
		return ErrPostNotFound
	}
	p.Title = title
	return nil
}

// DeletePost removes a post together with every comment that references
// it, as one atomic unit. Returns false if the post does not exist.
func (s *Store) DeletePost(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.postByID[id]; !ok {
		return false
	}
	delete(s.postByID, id)
	for i, p := range s.posts {
		if p.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			break
		}
	}

	kept := s.comments[:0]
	for _, c := range s.comments {
		if c.PostID == id {
			delete(s.commentByID, c.ID)
			continue
		}
		kept = append(kept, c)
	}
	s.comments = kept
	return true
}

// ListComments returns a post's comments in the order they were added.
// A missing post yields an empty slice; callers that need to distinguish
// "post missing" do a separate existence check.
func (s *Store) ListComments(postID string) []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := make([]models.Comment, 0)
	for _, c := range s.comments {
		if c.PostID == postID {
			comments = append(comments, *c)
		}
	}
	return comments
}

// AddComment appends a comment to an existing post.
func (s *Store) AddComment(postID, content, creatorID, creatorName string) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.postByID[postID]; !ok {
		return models.Comment{}, ErrPostNotFound
	}

	comment := &models.Comment{
		ID:                uuid.New().String(),
		PostID:            postID,
		Content:           content,
		CreatedByID:       creatorID,
		CreatedByUsername: creatorName,
		CreatedAt:         time.Now().UTC(),
	}
	s.comments = append(s.comments, comment)
	s.commentByID[comment.ID] = comment
	return *comment, nil
}

// GetComment looks up a comment by id.
func (s *Store) GetComment(id string) (models.Comment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.commentByID[id]
	if !ok {
		return models.Comment{}, false
	}
	return *c, true
}

// UpdateComment replaces a comment's content.
func (s *Store) UpdateComment(id, content string) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.commentByID[id]
	if !ok {
		return models.Comment{}, ErrCommentNotFound
	}
	c.Content = content
	return *c, nil
}

// DeleteComment removes a single comment. Returns false if it does not exist.
func (s *Store) DeleteComment(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.commentByID[id]; !ok {
		return false
	}
	delete(s.commentByID, id)
	for i, c := range s.comments {
		if c.ID == id {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			break
		}
	}
	return true
}

// ValidateCredentials compares username and password verbatim against the
// seeded accounts. No normalization and no constant-time comparison; the
// exact-match contract is deliberate and documented.
func (s *Store) ValidateCredentials(username, password string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return *u, true
		}
	}
	return models.User{}, false
}

// ListUsers returns all registered users.
func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	return users
}

// CommentCount reports the total number of comments across all posts.
func (s *Store) CommentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.comments)
}

// PostCount reports the total number of posts.
func (s *Store) PostCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.posts)
}
