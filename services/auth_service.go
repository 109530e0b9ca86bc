package services

import (
	"fmt"
	"time"

	"sentinel-lab/auth"
	"sentinel-lab/errors"
	"sentinel-lab/repositories"
)

type IAuthService interface {
	Login(email, password string) (Token, error)
	Register(email, password string) (Token, error)
}

type AuthService struct {
	moderatorRepository repositories.IModeratorRepository
	tokenDuration       time.Duration
}

type Token string

func (t Token) String() string {
	return string(t)
}

func NewAuthService(repo repositories.IModeratorRepository, tokenDuration time.Duration) IAuthService {
	return &AuthService{moderatorRepository: repo, tokenDuration: tokenDuration}
}

func (s *AuthService) Register(email, password string) (Token, error) {
	valReq := auth.RegisterRequest{
		Email:    email,
		Password: password,
	}

	// 1. Validate business rules (email format, password complexity)
	// We check this before any expensive cryptographic operation.
	if err := auth.ValidateRegister(valReq); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}

	// 2. Hash the password using Argon2id
	// Done in the service layer to keep the repository unaware of plain passwords.
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	// 3. Persist the account with the generated hash
	moderatorID, err := s.moderatorRepository.CreateModerator(email, hashedPassword, []string{"moderator"})
	if err != nil {
		return "", err // Will propagate ErrModeratorAlreadyExists if email is taken
	}

	// 4. Generate the initial session token
	token, err := auth.GenerateToken(moderatorID, []string{"moderator"}, s.tokenDuration)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}

	return Token(token), nil
}

func (s *AuthService) Login(email, password string) (Token, error) {
	// 1. Retrieve the account by email from storage
	moderator, err := s.moderatorRepository.GetModeratorByEmail(email)
	if err != nil {
		// Generic error to prevent account enumeration attacks
		return "", errors.ErrInvalidCredentials
	}

	// 2. Compare the provided password with the stored hash
	match, err := auth.ComparePassword(password, moderator.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}

	// 3. Issue the JWT token
	token, err := auth.GenerateToken(moderator.ID, moderator.Roles, s.tokenDuration)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}

	return Token(token), nil
}
