package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Sunilkumarmehta2002/swipemyhood/models"
)

// Claims carried by every access token.
type Claims struct {
	UserID     string
	Email      string
	IsAdmin    bool
	SuperAdmin bool
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: 24 * time.Hour}
}

// Generate signs an HS256 token for the user.
func (s *TokenService) Generate(user *models.User) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("JWT secret not configured")
	}

	claims := jwt.MapClaims{
		"user_id":     user.ID,
		"email":       user.Email,
		"is_admin":    user.IsAdmin,
		"super_admin": user.SuperAdmin,
		"exp":         time.Now().Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses a token string and returns its claims.
func (s *TokenService) Validate(tokenStr string) (Claims, error) {
	if len(s.secret) == 0 {
		return Claims{}, fmt.Errorf("JWT secret not configured")
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return Claims{}, fmt.Errorf("invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, fmt.Errorf("invalid token claims")
	}

	claims := Claims{}
	if v, ok := mapClaims["user_id"].(string); ok {
		claims.UserID = v
	}
	if claims.UserID == "" {
		return Claims{}, fmt.Errorf("token missing user_id")
	}
	if v, ok := mapClaims["email"].(string); ok {
		claims.Email = v
	}
	if v, ok := mapClaims["is_admin"].(bool); ok {
		claims.IsAdmin = v
	}
	if v, ok := mapClaims["super_admin"].(bool); ok {
		claims.SuperAdmin = v
	}
	return claims, nil
}
