package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sentinelmind/shield/internal/config"
	"github.com/sentinelmind/shield/internal/logger"
	"github.com/sentinelmind/shield/internal/store"
	"github.com/sentinelmind/shield/internal/utils"
	"github.com/sentinelmind/shield/models"
)

// bcryptCost is the work factor applied when hashing passwords for storage.
const bcryptCost = 10

// authService is the concrete implementation of AuthService.
// It handles credential verification, the bootstrap account, and the JWT
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
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

	// defaultUsername/defaultPassword describe the bootstrap account created
	// by EnsureDefaultUser when the credential store is empty.
	defaultUsername string
	defaultPassword string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		defaultUsername: cfg.DefaultUsername,
		defaultPassword: cfg.DefaultPassword,
		logger:          logger,
	}
}

// Login authenticates an existing user.
//
// It validates that both Username and Password are non-empty, looks up the
// account and compares the supplied password against the stored bcrypt hash.
//
// An unknown username and a wrong password both map to ErrInvalidCredentials
// so that the response does not reveal which accounts exist.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - ErrInvalidCredentials if the account is unknown or the password is wrong.
//   - A wrapped storage error on any other repository failure.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("username", credentials.Username).Msg("login attempt for unknown user")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, embeds the user's ID as "sub" and the
// username as a custom claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped ErrTokenCreationFailed if
// JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Expiry is reported as ErrTokenIsExpired; every other
// validation failure (wrong issuer, bad signature, malformed) is normalised
// to ErrTokenIsInvalid so that callers do not need to inspect low-level JWT
// errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		logger.FromContext(ctx).Debug().Err(err).Msg("token validation failed")
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}

// EnsureDefaultUser creates the configured bootstrap account if it is absent.
//
// The operation is idempotent: if the account already exists (either found by
// lookup or created concurrently) it is left untouched and nil is returned.
func (a *authService) EnsureDefaultUser(ctx context.Context) error {
	log := a.logger.GetChildLogger()

	if a.defaultUsername == "" || a.defaultPassword == "" {
		log.Debug().Msg("no bootstrap account configured, skipping")
		return nil
	}

	_, err := a.userRepository.FindUserByUsername(ctx, a.defaultUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("bootstrap account lookup failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(a.defaultPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("bootstrap password hashing failed: %w", err)
	}

	_, err = a.userRepository.CreateUser(ctx, models.User{
		Username:     a.defaultUsername,
		PasswordHash: string(hash),
	})
	if err != nil {
		// Lost a race with another instance seeding the same account.
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return nil
		}
		return fmt.Errorf("bootstrap account creation failed: %w", err)
	}

	log.Info().Str("username", a.defaultUsername).Msg("bootstrap account created")
	return nil
}
