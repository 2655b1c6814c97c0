// Package auth verifies Supabase access tokens and resolves the calling principal.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/supabase-community/supabase-go"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
)

var (
	ErrMissingToken     = errors.New("missing authentication token")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrInvalidClaims    = errors.New("invalid token claims")
)

// Verifier turns a bearer token into a principal.
type Verifier interface {
	Verify(ctx context.Context, token string) (domain.Principal, error)
}

// AppMetadata is the server-controlled part of a Supabase user.
type AppMetadata struct {
	OrgID string `json:"org_id,omitempty"`
	Plan  string `json:"plan,omitempty"`
}

// Claims are the Supabase access token claims used here.
type Claims struct {
	UserID      string      `json:"sub"`
	Email       string      `json:"email"`
	Role        string      `json:"role,omitempty"`
	AppMetadata AppMetadata `json:"app_metadata"`
	jwt.RegisteredClaims
}

// principal maps a user onto a principal. Users without an org act in a personal org
// keyed by their user id; users without a plan are on the free tier.
func principal(userID, email, orgID, plan string) domain.Principal {
	if orgID == "" {
		orgID = userID
	}
	p := domain.Plan(strings.ToLower(strings.TrimSpace(plan)))
	if p == "" {
		p = domain.PlanFree
	}
	return domain.Principal{UserID: userID, Email: email, OrgID: orgID, Plan: p}
}

// BearerToken extracts the token of an Authorization header value.
func BearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// JWTVerifier checks HS256 tokens locally with the project JWT secret.
type JWTVerifier struct {
	secret   []byte
	audience string
}

// NewJWTVerifier creates a verifier. Supabase user tokens carry the "authenticated" audience.
func NewJWTVerifier(secret, audience string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, errors.New("secret key required for HS256")
	}
	return &JWTVerifier{secret: []byte(secret), audience: audience}, nil
}

func (v *JWTVerifier) Verify(ctx context.Context, tokenString string) (domain.Principal, error) {
	if tokenString == "" {
		return domain.Principal{}, ErrMissingToken
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.Principal{}, ErrExpiredToken
		case errors.Is(err, jwt.ErrSignatureInvalid):
			return domain.Principal{}, ErrInvalidSignature
		default:
			return domain.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.Principal{}, ErrInvalidClaims
	}
	if claims.UserID == "" {
		return domain.Principal{}, fmt.Errorf("%w: missing user ID", ErrInvalidClaims)
	}
	return principal(claims.UserID, claims.Email, claims.AppMetadata.OrgID, claims.AppMetadata.Plan), nil
}

// gotrueUser is what the GoTrue lookup yields.
type gotrueUser struct {
	ID          string
	Email       string
	AppMetadata map[string]interface{}
}

// GoTrueVerifier asks Supabase Auth to resolve the token. It is used when the
// JWT secret is not configured.
type GoTrueVerifier struct {
	getUser func(token string) (gotrueUser, error)
}

// NewGoTrueVerifier verifies tokens through client.
func NewGoTrueVerifier(client *supabase.Client) *GoTrueVerifier {
	return &GoTrueVerifier{getUser: func(token string) (gotrueUser, error) {
		user, err := client.Auth.WithToken(token).GetUser()
		if err != nil {
			return gotrueUser{}, err
		}
		return gotrueUser{ID: user.ID.String(), Email: user.Email, AppMetadata: user.AppMetadata}, nil
	}}
}

func (v *GoTrueVerifier) Verify(ctx context.Context, token string) (domain.Principal, error) {
	if token == "" {
		return domain.Principal{}, ErrMissingToken
	}
	user, err := v.getUser(token)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if user.ID == "" {
		return domain.Principal{}, fmt.Errorf("%w: missing user ID", ErrInvalidClaims)
	}
	orgID, _ := user.AppMetadata["org_id"].(string)
	plan, _ := user.AppMetadata["plan"].(string)
	return principal(user.ID, user.Email, orgID, plan), nil
}

// StaticVerifier accepts a fixed token. It backs local development and tests.
type StaticVerifier struct {
	Token     string
	Principal domain.Principal
}

func (v StaticVerifier) Verify(ctx context.Context, token string) (domain.Principal, error) {
	if token == "" {
		return domain.Principal{}, ErrMissingToken
	}
	if token != v.Token {
		return domain.Principal{}, ErrInvalidToken
	}
	return v.Principal, nil
}
