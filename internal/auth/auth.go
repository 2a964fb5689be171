package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims carries the verified token payload.
type Claims struct {
	Status string
	Exp    int64
}

// Service mints and verifies the bearer credentials guarding the API.
type Service struct {
	secret   []byte
	tokenExp time.Duration
}

// NewService creates an authentication service signing with the given
// secret. Tokens expire after exp.
func NewService(secret string, exp time.Duration) *Service {
	return &Service{
		secret:   []byte(secret),
		tokenExp: exp,
	}
}

// GenerateToken issues a signed token. Issuance takes no credentials; the
// gate is the signature and expiry, not an identity.
func (s *Service) GenerateToken() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"status": "ok",
		"exp":    now.Add(s.tokenExp).Unix(),
		"iat":    now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies a token string and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	status, ok := claims["status"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Claims{
		Status: status,
		Exp:    int64(exp),
	}, nil
}

// ExtractTokenFromHeader extracts the bearer token from an Authorization
// header value.
func (s *Service) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingToken
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrInvalidToken
	}
	return parts[1], nil
}
