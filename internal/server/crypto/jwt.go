// Package crypto выпускает access-токены локального HTTP API FastFill.
//
// Токены подписываются HS256 ключом api.signing_key из настроек.
// Клиент (скрипт, расширение браузера) получает токен командой
// `fastfill token` и передаёт его в заголовке Authorization.
package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrEmptySigningKey - токен без ключа подписи не выпускается.
var ErrEmptySigningKey = errors.New("empty signing key")

// JWTConfig описывает параметры выпуска access-токена.
type JWTConfig struct {
	// Issuer - значение поля iss.
	Issuer string
	// Audience - значение поля aud.
	Audience string
	// SigningKey - секрет HS256.
	SigningKey string
	// AccessTTL - срок жизни токена.
	AccessTTL time.Duration
}

// NewAccessToken создаёт и подписывает токен для клиента clientID.
//
// Claims: iss, aud, sub (clientID), jti (случайный UUID), iat, exp.
func NewAccessToken(clientID string, cfg JWTConfig) (string, error) {
	if cfg.SigningKey == "" {
		return "", ErrEmptySigningKey
	}
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		Audience:  []string{cfg.Audience},
		Subject:   clientID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}
