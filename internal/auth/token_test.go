package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/internal/models"
	"postboard/internal/store"
)

const testSecret = "test-secret-key-for-token-issuance-unit-tests"

func newTestIssuer() *Issuer {
	return NewIssuer(testSecret, "postboard-api", "postboard-client", 1, store.New())
}

func decodeClaims(t *testing.T, tokenString string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	}, jwt.WithIssuer("postboard-api"), jwt.WithAudience("postboard-client"))
	require.NoError(t, err)
	require.True(t, token.Valid)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestIssueToken_AdminCarriesBothRoles(t *testing.T) {
	issuer := newTestIssuer()

	resp, err := issuer.IssueToken(GrantPassword, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)

	claims := decodeClaims(t, resp.AccessToken)
	assert.NotEmpty(t, claims["sub"])
	assert.Equal(t, "admin", claims[ClaimUsername])
	assert.NotEmpty(t, claims["jti"])

	roles, ok := claims[ClaimRole].([]any)
	require.True(t, ok)
	assert.Contains(t, roles, "admin")
	assert.Contains(t, roles, "user")
}

func TestIssueToken_SingleRoleSerializesAsString(t *testing.T) {
	issuer := newTestIssuer()

	resp, err := issuer.IssueToken(GrantPassword, "user", "user123")
	require.NoError(t, err)

	claims := decodeClaims(t, resp.AccessToken)
	assert.Equal(t, "user", claims[ClaimRole])
}

func TestIssueToken_FreshTokenIDPerIssuance(t *testing.T) {
	issuer := newTestIssuer()

	first, err := issuer.IssueToken(GrantPassword, "admin", "admin123")
	require.NoError(t, err)
	second, err := issuer.IssueToken(GrantPassword, "admin", "admin123")
	require.NoError(t, err)

	assert.NotEqual(t,
		decodeClaims(t, first.AccessToken)["jti"],
		decodeClaims(t, second.AccessToken)["jti"])
}

func TestIssueToken_InvalidCredentials(t *testing.T) {
	issuer := newTestIssuer()

	_, err := issuer.IssueToken(GrantPassword, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = issuer.IssueToken(GrantPassword, "nobody", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIssueToken_UnsupportedGrant(t *testing.T) {
	issuer := newTestIssuer()

	_, err := issuer.IssueToken("refresh_token", "admin", "admin123")
	assert.ErrorIs(t, err, ErrUnsupportedGrant)

	_, err = issuer.IssueToken("", "admin", "admin123")
	assert.ErrorIs(t, err, ErrUnsupportedGrant)
}

func TestIssueToken_ExpiresInScalesWithConfiguredHours(t *testing.T) {
	issuer := NewIssuer(testSecret, "postboard-api", "postboard-client", 24, store.New())

	resp, err := issuer.IssueToken(GrantPassword, "user", "user123")
	require.NoError(t, err)
	assert.Equal(t, 24*3600, resp.ExpiresIn)
}

func TestCanModify(t *testing.T) {
	assert.True(t, CanModify("uid-1", "uid-1"))
	assert.False(t, CanModify("uid-2", "uid-1"))
	assert.False(t, CanModify("", ""))
}

var _ CredentialValidator = (*store.Store)(nil)

func TestCanModify_IgnoresRoles(t *testing.T) {
	// Ownership is identity equality only; roles never grant it.
	admin := models.User{ID: "uid-admin", Roles: []string{models.RoleAdmin}}
	assert.False(t, CanModify(admin.ID, "uid-1"))
}
