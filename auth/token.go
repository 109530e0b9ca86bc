package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signingKey is the secret used to sign tokens. The daemon overrides it
// at startup from configuration.
var signingKey = []byte("sentinel_lab_default_dev_key_2026")

// SetSigningKey replaces the token secret. Call once during startup,
// before any token is issued.
func SetSigningKey(key string) {
	if key != "" {
		signingKey = []byte(key)
	}
}

// ModeratorClaims defines the data stored inside a staff JWT.
type ModeratorClaims struct {
	ModeratorID string   `json:"moderator_id"`
	Roles       []string `json:"roles"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a moderator account.
func GenerateToken(moderatorID string, roles []string,
	tokenDuration time.Duration) (string, error) {
	expirationTime := time.Now().Add(tokenDuration)

	claims := &ModeratorClaims{
		ModeratorID: moderatorID,
		Roles:       roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "sentinel-lab",
		},
	}

	// HS256, HMAC with SHA256.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(signingKey)
}

// ValidateToken parses a JWT string and checks its signature and expiration.
func ValidateToken(tokenString string) (*ModeratorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ModeratorClaims{}, func(token *jwt.Token) (interface{}, error) {
		return signingKey, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*ModeratorClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
