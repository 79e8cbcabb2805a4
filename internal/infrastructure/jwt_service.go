package infrastructure

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTService issues and parses the HS256 bearer tokens handed out at login.
// Each token carries the user id plus a uuid token id (jti); the session
// registry is keyed by the jti so logout can revoke a single token.
type JWTService struct {
	secretKey []byte
	ttl       time.Duration
}

func NewJWTService(secretKey string, ttl time.Duration) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

// TokenClaims is what a successfully parsed token yields.
type TokenClaims struct {
	UserID  int
	TokenID string
}

func (j *JWTService) GenerateToken(userID int) (token string, tokenID string, err error) {
	tokenID = uuid.NewString()
	claims := jwt.MapClaims{
		"user_id": userID,
		"jti":     tokenID,
		"exp":     time.Now().Add(j.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		return "", "", err
	}
	return signed, tokenID, nil
}

func (j *JWTService) ParseToken(token string) (*TokenClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, errors.New("token missing user_id")
	}
	tokenID, ok := claims["jti"].(string)
	if !ok {
		return nil, errors.New("token missing jti")
	}

	return &TokenClaims{UserID: int(userID), TokenID: tokenID}, nil
}
