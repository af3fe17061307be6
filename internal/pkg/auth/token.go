// Package auth provides JWT token issuing/validation and password hashing
// helpers used by the HTTP adapter.
package auth

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// TokenKind distinguishes access tokens from refresh tokens so a refresh
// token can never be used to authenticate a request directly.
type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

// Claims carries the authenticated account identity inside a JWT.
type Claims struct {
	AccountID   string    `json:"account_id"`
	DisplayName string    `json:"display_name"`
	Staff       bool      `json:"staff"`
	Kind        TokenKind `json:"kind"`
	jwt.StandardClaims
}

// TokenPair is the access/refresh pair returned by login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Issuer signs and validates JWT token pairs.
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewIssuer creates an Issuer with the given HMAC secret and lifetimes.
func NewIssuer(secret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// IssuePair signs a fresh access/refresh token pair for the account.
func (i *Issuer) IssuePair(accountID, displayName string, staff bool) (TokenPair, error) {
	access, err := i.sign(accountID, displayName, staff, AccessToken, i.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := i.sign(accountID, displayName, staff, RefreshToken, i.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (i *Issuer) sign(accountID, displayName string, staff bool, kind TokenKind, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		AccountID:   accountID,
		DisplayName: displayName,
		Staff:       staff,
		Kind:        kind,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(ttl).Unix(),
			IssuedAt:  now.Unix(),
		},
	})

	return token.SignedString(i.secret)
}

// Validate parses a token string and returns its claims when the signature is
// valid, the token has not expired, and the token is of the expected kind.
func (i *Issuer) Validate(tokenString string, kind TokenKind) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	if claims.Kind != kind {
		return nil, fmt.Errorf("token kind %q is not %q", claims.Kind, kind)
	}

	return claims, nil
}
