package server

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/internal/auth"
)

func TestIssueToken(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name           string
		body           map[string]string
		expectedStatus int
		expectedError  string
	}{
		{
			name: "valid admin credentials",
			body: map[string]string{
				"grant_type": "password",
				"username":   "admin",
				"password":   "admin123",
			},
			expectedStatus: fiber.StatusOK,
		},
		{
			name: "wrong password",
			body: map[string]string{
				"grant_type": "password",
				"username":   "admin",
				"password":   "wrong",
			},
			expectedStatus: fiber.StatusBadRequest,
			expectedError:  "invalid_grant",
		},
		{
			name: "unsupported grant type",
			body: map[string]string{
				"grant_type": "refresh_token",
				"username":   "admin",
				"password":   "admin123",
			},
			expectedStatus: fiber.StatusBadRequest,
			expectedError:  "unsupported_grant_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, fiber.MethodPost, "/api/auth/token", "", tt.body)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
				return
			}
			assert.NotEmpty(t, body["access_token"])
			assert.Equal(t, "Bearer", body["token_type"])
			assert.EqualValues(t, 3600, body["expires_in"])
		})
	}
}

func TestIssueToken_AdminTokenCarriesRoleClaims(t *testing.T) {
	app, _ := newTestApp(t)
	tokenString := login(t, app, "admin", "admin123")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(testConfig().JWTSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)

	roles, ok := claims[auth.ClaimRole].([]any)
	require.True(t, ok)
	assert.Contains(t, roles, "admin")
	assert.Contains(t, roles, "user")
	assert.Equal(t, "admin", claims[auth.ClaimUsername])
	assert.NotEmpty(t, claims["jti"])
}
