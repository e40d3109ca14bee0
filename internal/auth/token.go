// Package auth implements token issuance and the ownership predicate
// consulted before mutating operations.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"postboard/internal/models"
)

// GrantPassword is the only grant type the token endpoint supports.
const GrantPassword = "password"

// Claim names embedded in issued tokens. Username and role are custom
// claims; the middleware reads roles back from "role".
const (
	ClaimUsername = "username"
	ClaimRole     = "role"
)

// Issuance failure modes. The boundary maps these to the OAuth error
// literals "unsupported_grant_type" and "invalid_grant".
var (
	ErrUnsupportedGrant   = errors.New("unsupported grant type")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var tokensIssued = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "postboard_tokens_issued_total",
	Help: "Token issuance attempts by outcome.",
}, []string{"outcome"})

// CredentialValidator authenticates a username/password pair.
type CredentialValidator interface {
	ValidateCredentials(username, password string) (models.User, bool)
}

// TokenResponse is the token endpoint's success body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Issuer mints signed bearer tokens for authenticated users. Secret,
// issuer, audience and expiry are injected configuration, never hard-coded.
type Issuer struct {
	secret      []byte
	issuer      string
	audience    string
	expiryHours int
	users       CredentialValidator
}

// NewIssuer creates a token issuer bound to the given credential source.
func NewIssuer(secret, issuer, audience string, expiryHours int, users CredentialValidator) *Issuer {
	return &Issuer{
		secret:      []byte(secret),
		issuer:      issuer,
		audience:    audience,
		expiryHours: expiryHours,
		users:       users,
	}
}

// IssueToken authenticates the credentials and mints a signed token.
// Fails with ErrUnsupportedGrant for any grant type other than "password"
// and ErrInvalidCredentials when the username/password pair does not match.
func (i *Issuer) IssueToken(grantType, username, password string) (*TokenResponse, error) {
	if grantType != GrantPassword {
		tokensIssued.WithLabelValues("unsupported_grant").Inc()
		return nil, ErrUnsupportedGrant
	}

	user, ok := i.users.ValidateCredentials(username, password)
	if !ok {
		tokensIssued.WithLabelValues("invalid_credentials").Inc()
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":         user.ID,
		ClaimUsername: user.Username,
		"jti":         uuid.New().String(), // fresh per issuance
		"iss":         i.issuer,
		"aud":         i.audience,
		"iat":         now.Unix(),
		"exp":         now.Add(time.Duration(i.expiryHours) * time.Hour).Unix(),
	}
	// One role claim per role the user holds; a single role serializes as
	// a plain string, multiple as an array.
	if len(user.Roles) == 1 {
		claims[ClaimRole] = user.Roles[0]
	} else {
		claims[ClaimRole] = user.Roles
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return nil, err
	}

	tokensIssued.WithLabelValues("issued").Inc()
	return &TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   i.expiryHours * 3600,
	}, nil
}
