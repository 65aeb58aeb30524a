package impl

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"volly/internal/domain"
)

type TokenClaims struct {
	TokenSeed string `json:"tokenSeed"`
	jwt.RegisteredClaims
}

// TokenServiceHS256 signs the opaque session tokens. The JWT carries only the
// account's tokenSeed; it is not a general-purpose identity token.
type TokenServiceHS256 struct {
	signingKey []byte
}

func NewTokenServiceHS256(signingKey []byte) *TokenServiceHS256 {
	return &TokenServiceHS256{signingKey: signingKey}
}

func (t *TokenServiceHS256) NewSeed() (string, error) {
	buf := make([]byte, 64)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (t *TokenServiceHS256) Sign(tokenSeed string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{TokenSeed: tokenSeed})
	return token.SignedString(t.signingKey)
}

func (t *TokenServiceHS256) ParseSeed(token string) (string, error) {
	claims := &TokenClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return t.signingKey, nil
	})
	if err != nil || !parsed.Valid || claims.TokenSeed == "" {
		return "", fmt.Errorf("%w: bad token", domain.ErrUnauthorized)
	}
	return claims.TokenSeed, nil
}
