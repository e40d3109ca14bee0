package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("a"))
	assert.NoError(t, ValidateTitle(strings.Repeat("x", TitleMaxLen)))
	assert.Error(t, ValidateTitle(""))
	assert.Error(t, ValidateTitle(strings.Repeat("x", TitleMaxLen+1)))
}

func TestValidatePostContent(t *testing.T) {
	assert.NoError(t, ValidatePostContent("a"))
	assert.NoError(t, ValidatePostContent(strings.Repeat("x", PostContentMaxLen)))
	assert.Error(t, ValidatePostContent(""))
	assert.Error(t, ValidatePostContent(strings.Repeat("x", PostContentMaxLen+1)))
}

func TestValidateCommentContent(t *testing.T) {
	assert.NoError(t, ValidateCommentContent("a"))
	assert.NoError(t, ValidateCommentContent(strings.Repeat("x", CommentContentMaxLen)))
	assert.Error(t, ValidateCommentContent(""))
	assert.Error(t, ValidateCommentContent(strings.Repeat("x", CommentContentMaxLen+1)))
}
