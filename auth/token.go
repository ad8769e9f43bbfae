package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Orekusandoru/online-store/config"
	"github.com/Orekusandoru/online-store/models"
)

// Claims decoded from a bearer token.
type Claims struct {
	UserID uint
	Email  string
	Role   models.Role
}

// IssueToken signs an HS256 JWT carrying id, email and role.
func IssueToken(cfg config.JWT, user models.User) (string, error) {
	ttl := time.Duration(cfg.TTLHours) * time.Hour
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(ttl).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken validates a token string and extracts its claims.
func ParseToken(cfg config.JWT, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	id, ok := mapClaims["id"].(float64)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)

	return &Claims{
		UserID: uint(id),
		Email:  email,
		Role:   models.Role(role),
	}, nil
}
