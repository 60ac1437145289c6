package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Username string   `json:"name"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed bearer tokens carrying
// username and role claims.
type TokenService struct {
	secret            []byte
	issuer            string
	audience          string
	expirationMinutes int
}

func NewTokenService(secret, issuer, audience string, expirationMinutes int) *TokenService {
	return &TokenService{
		secret:            []byte(secret),
		issuer:            issuer,
		audience:          audience,
		expirationMinutes: expirationMinutes,
	}
}

// GetExpirationSeconds returns the configured expiry window in seconds,
// for client-facing reporting.
func (s *TokenService) GetExpirationSeconds() int {
	return s.expirationMinutes * 60
}

// GenerateToken issues an HS256-signed token for the user with one role
// claim entry per role.
func (s *TokenService) GenerateToken(username string, roles []string) (string, error) {
	now := time.Now()

	claims := &Claims{
		Username: username,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expirationMinutes) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// ParseToken verifies signature, issuer, audience and expiry (zero clock
// skew) and returns the claims.
func (s *TokenService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return s.secret, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ValidateToken reports whether the token is valid, swallowing the cause.
func (s *TokenService) ValidateToken(tokenString string) bool {
	_, err := s.ParseToken(tokenString)
	return err == nil
}
