package service

import (
	"errors"
	"time"

	"taskdeck/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService signs and verifies the bearer tokens handed out at login.
// Tokens are HS256 and carry only the user id plus the standard time claims;
// nothing is persisted server-side.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Generate(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     now.Add(s.ttl).Unix(),
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies the signature and time claims and returns the user id.
// Any failure is domain.ErrTokenInvalid; callers do not need to know whether
// the token was forged, malformed or merely expired.
func (s *TokenService) Parse(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ErrTokenInvalid
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, domain.ErrTokenInvalid
	}

	return int64(userID), nil
}
