// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"unicode/utf8"
)

// Field length bounds enforced before any mutation takes place.
const (
	TitleMaxLen          = 100
	PostContentMaxLen    = 5000
	CommentContentMaxLen = 1000
)

// ValidateTitle checks a post title against its length bounds.
func ValidateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > TitleMaxLen {
		return fmt.Errorf("title must not exceed %d characters", TitleMaxLen)
	}
	return nil
}

// ValidatePostContent checks post content against its length bounds.
func ValidatePostContent(content string) error {
	if content == "" {
		return fmt.Errorf("content is required")
	}
	if utf8.RuneCountInString(content) > PostContentMaxLen {
		return fmt.Errorf("content must not exceed %d characters", PostContentMaxLen)
	}
	return nil
}

// ValidateCommentContent checks comment content against its length bounds.
func ValidateCommentContent(content string) error {
	if content == "" {
		return fmt.Errorf("content is required")
	}
	if utf8.RuneCountInString(content) > CommentContentMaxLen {
		return fmt.Errorf("content must not exceed %d characters", CommentContentMaxLen)
	}
	return nil
}
