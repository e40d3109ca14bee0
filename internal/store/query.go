package store

import (
	"sort"
	"strings"

	"postboard/internal/models"
)

// Sort keys and directions accepted by the post listing. Anything else
// falls through to insertion order.
const (
	SortByCreatedAt = "created_at"
	SortByTitle     = "title"

	SortAsc  = "asc"
	SortDesc = "desc"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PostQuery describes a post listing: optional free-text search, optional
// author filter, optional sort key/direction and 1-based pagination.
type PostQuery struct {
	Search    string
	CreatedBy string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// normalized clamps out-of-range pagination values rather than rejecting
// them: page below 1 becomes 1, a non-positive page size becomes the
// default, an oversized one is capped.
func (q PostQuery) normalized() PostQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// apply filters, sorts and paginates the given posts. The author filter is
// an exact match on the creator display name; search is a case-sensitive
// substring match against title or content. Both are AND-combined. Sorting
// is stable so equal keys keep insertion order.
func (q PostQuery) apply(posts []*models.Post) []models.Post {
	q = q.normalized()

	filtered := make([]models.Post, 0)
	for _, p := range posts {
		if q.CreatedBy != "" && p.CreatedByUsername != q.CreatedBy {
			continue
		}
		if q.Search != "" && !strings.Contains(p.Title, q.Search) && !strings.Contains(p.Content, q.Search) {
			continue
		}
		filtered = append(filtered, *p)
	}

	switch q.SortBy {
	case SortByCreatedAt:
		if q.SortOrder == SortAsc {
			sort.SliceStable(filtered, func(i, j int) bool {
				return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
			})
		} else {
			sort.SliceStable(filtered, func(i, j int) bool {
				return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
			})
		}
	case SortByTitle:
		if q.SortOrder == SortAsc {
			sort.SliceStable(filtered, func(i, j int) bool {
				return filtered[i].Title < filtered[j].Title
			})
		} else {
			sort.SliceStable(filtered, func(i, j int) bool {
				return filtered[i].Title > filtered[j].Title
			})
		}
	}

	start := (q.Page - 1) * q.PageSize
	if start >= len(filtered) {
		return []models.Post{}
	}
	end := start + q.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}
