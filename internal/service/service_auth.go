// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/expense-tracker/internal/config"
	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/store"
	"github.com/MKhiriev/expense-tracker/internal/utils"
	"github.com/MKhiriev/expense-tracker/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and the JWT
// lifecycle, using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that username, email, and password are all non-empty, hashes
// the password with bcrypt, and delegates persistence to the UserRepository.
// New accounts start active.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if any required field is empty.
//   - A wrapped storage error if the repository call fails (e.g. username or
//     email already taken — see store.ErrUserAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.Email == "" || request.Password == "" {
		log.Error().Str("username", request.Username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:       request.Username,
		Email:          request.Email,
		HashedPassword: string(hashedPassword),
		IsActive:       true,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by username and plain-text password.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found — see store.ErrUserNotFound).
//   - ErrWrongPassword if the password does not match the stored bcrypt hash.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if compareErr := bcrypt.CompareHashAndPassword(
		[]byte(foundUser.HashedPassword), []byte(password)); compareErr != nil {
		log.Error().
			Int64("id", foundUser.ID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the username as the "sub" claim, and
// expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// VerifyToken validates a raw JWT string and resolves it to the account it
// was issued for.
//
// Signature, expiry, and issuer failures are all normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors. A token whose subject no longer resolves to an account is
// treated the same way. Deactivated accounts yield ErrInactiveUser.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("token validation failed")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, token.Username)
	if err != nil {
		log.Err(err).Str("username", token.Username).Msg("token subject lookup failed")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	if !foundUser.IsActive {
		log.Error().Int64("id", foundUser.ID).Str("username", foundUser.Username).Msg("inactive user")
		return models.User{}, ErrInactiveUser
	}

	return foundUser, nil
}
