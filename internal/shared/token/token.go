package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalid = errors.New("invalid token")
	ErrExpired = errors.New("token expired")
)

// Claims is the payload of an access token.
type Claims struct {
	ID              string `json:"id"`
	Role            string `json:"role"`
	CompanyID       string `json:"company_id"`
	PropertyGroupID string `json:"property_group_id,omitempty"`
	jwt.RegisteredClaims
}

// Issue signs claims with HS256 and sets iat/exp from now and ttl.
func Issue(secret string, claims Claims, now time.Time, ttl time.Duration) (string, error) {
	claims.Subject = claims.ID
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry and returns the claims.
func Parse(secret, raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !tok.Valid || claims.ID == "" || claims.CompanyID == "" {
		return nil, ErrInvalid
	}
	return claims, nil
}
