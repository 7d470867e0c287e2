package services

import (
	"strconv"
	"time"

	"social-media/internal/domain/account"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues the bearer token handed out on login.
type TokenService struct {
	jwtSecret []byte
	accessTTL time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		jwtSecret: []byte(secret),
		accessTTL: ttl,
	}
}

type AccessClaims struct {
	AccountID int    `json:"aid"`
	Username  string `json:"usr"`
	jwt.RegisteredClaims
}

// Issue returns a signed token for a and its lifetime in seconds.
func (s *TokenService) Issue(a account.Account) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(s.accessTTL)

	claims := AccessClaims{
		AccountID: a.ID,
		Username:  a.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(a.ID),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", 0, err
	}

	return signed, int64(s.accessTTL.Seconds()), nil
}
