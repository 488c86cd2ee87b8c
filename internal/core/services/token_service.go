package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/comitanigiacomo/strivefit-engine/internal/core/domain"
)

// TokenService issues and verifies the bearer tokens presented to the API.
// Sign-in itself happens elsewhere; this service only trusts its own signature.
type TokenService struct {
	secretKey     []byte
	issuer        string
	tokenDuration time.Duration
}

func NewTokenService(secretKey string, issuer string, tokenDuration time.Duration) *TokenService {
	return &TokenService{
		secretKey:     []byte(secretKey),
		issuer:        issuer,
		tokenDuration: tokenDuration,
	}
}

func (s *TokenService) GenerateToken(actor domain.Actor) (string, error) {
	role := actor.Role
	if role == "" {
		role = domain.RoleMember
	}

	claims := jwt.MapClaims{
		"sub":  actor.UserID,
		"role": role,
		"exp":  time.Now().Add(s.tokenDuration).Unix(),
		"iat":  time.Now().Unix(),
		"iss":  s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("token service: failed to sign token: %w", err)
	}

	return signedToken, nil
}

func (s *TokenService) ValidateToken(tokenString string) (domain.Actor, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())

	if err != nil {
		return domain.Actor{}, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return domain.Actor{}, fmt.Errorf("invalid token claims")
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return domain.Actor{}, fmt.Errorf("invalid token subject")
	}

	role, _ := claims["role"].(string)
	if role != domain.RoleAdmin {
		role = domain.RoleMember
	}

	return domain.Actor{UserID: userID, Role: role}, nil
}
