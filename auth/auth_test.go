package auth

import (
	"strings"
	"testing"
	"time"

	sentinelerrors "sentinel-lab/errors"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "MonMotDePasseTr0pSûr!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("MauvaisMDP", hash)
	req.NoError(err)
	req.False(match)
}

func TestRegistrationValidation(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{"Valid request", RegisterRequest{"test@example.com", "ComplexPass123!"}, false},
		{"Invalid email", RegisterRequest{"notanemail", "ComplexPass123!"}, true},
		{"Password too short", RegisterRequest{"test@example.com", "Short1!"}, true},
		{"Missing digit", RegisterRequest{"test@example.com", "NoDigitPass!"}, true},
		{"Missing special char", RegisterRequest{"test@example.com", "NoSpecialChar123"}, true},
		{"Missing uppercase", RegisterRequest{"test@example.com", "nouppercase123!"}, true},
		{"Password too long (edge case)", RegisterRequest{"test@example.com", strings.Repeat("a", 73)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.req)
			if tt.wantErr {
				req.Error(err)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("mod-42", []string{"moderator"}, time.Hour)
	req.NoError(err)

	claims, err := ValidateToken(token)
	req.NoError(err)
	req.Equal("mod-42", claims.ModeratorID)
	req.Equal([]string{"moderator"}, claims.Roles)
	req.Equal("sentinel-lab", claims.Issuer)
}

func TestTokenExpired(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("mod-42", []string{"moderator"}, -time.Minute)
	req.NoError(err)

	_, err = ValidateToken(token)
	req.Error(err)
}

func TestRequireModerator(t *testing.T) {
	req := require.New(t)

	modToken, err := GenerateToken("mod-1", []string{"moderator"}, time.Hour)
	req.NoError(err)
	claims, err := RequireModerator(modToken)
	req.NoError(err)
	req.Equal("mod-1", claims.ModeratorID)

	plainToken, err := GenerateToken("user-1", []string{"viewer"}, time.Hour)
	req.NoError(err)
	_, err = RequireModerator(plainToken)
	req.ErrorIs(err, sentinelerrors.ErrModeratorRequired)

	_, err = RequireModerator("not-a-token")
	req.ErrorIs(err, sentinelerrors.ErrInvalidToken)
}

// BenchmarkHashPassword measures the CPU/RAM cost of a single hash.
func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
