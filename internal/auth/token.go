package auth

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/shopkit/adminpanel/internal/models"
	"golang.org/x/crypto/pbkdf2"
)

// key derivation parameters for the session password
const (
	keySalt       = "shopkit-admin-session"
	keyIterations = 4096
	keyLen        = 32
)

var ErrInvalidToken = errors.New("invalid session token")

type sessionClaims struct {
	jwt.RegisteredClaims
}

// AuthToken verifies and issues session cookie tokens. Tokens are HS256
// JWTs signed with a key derived from the shared session password, so the
// external login flow and this service agree on the cookie contents.
type AuthToken struct {
	key []byte
}

// NewAuthToken derives the signing key from password and returns AuthToken
func NewAuthToken(password string) *AuthToken {
	key := pbkdf2.Key([]byte(password), []byte(keySalt), keyIterations, keyLen, sha256.New)
	return &AuthToken{key: key}
}

// CreateToken issues a session token for the user. The token does not
// expire, session lifetime is controlled by the cookie itself.
func (at *AuthToken) CreateToken(userID string) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: userID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(at.key)
}

// VerifyToken checks the token signature and returns its payload
func (at *AuthToken) VerifyToken(token string) (*models.TokenPayload, error) {
	claims := sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return at.key, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &models.TokenPayload{UserID: claims.Subject}, nil
}
