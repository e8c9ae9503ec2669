package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/utils"
	"github.com/MKhiriev/go-shop-sync/models"
)

// authService is the concrete implementation of AuthService. The admin API
// has a single principal whose login and bcrypt password hash come from the
// process configuration; no account storage is involved.
type authService struct {
	adminLogin        string
	adminPasswordHash string
	tokenSignKey      string
	logger            *logger.Logger

	cfg config.App
}

// NewAuthService constructs an AuthService from the application security
// settings.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adminLogin:        cfg.AdminLogin,
		adminPasswordHash: cfg.AdminPasswordHash,
		tokenSignKey:      cfg.TokenSignKey,
		cfg:               cfg,
		logger:            logger,
	}
}

// Token verifies the admin credentials and issues a signed JWT.
//
// Returns:
//   - ErrInvalidDataProvided if login or password is empty.
//   - ErrWrongCredentials if the login does not match or the password fails
//     the bcrypt comparison.
func (a *authService) Token(ctx context.Context, login, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		log.Error().Msg("empty login or password provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	if login != a.adminLogin {
		log.Error().Str("login", login).Msg("unknown admin login")
		return models.Token{}, ErrWrongCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.adminPasswordHash), []byte(password)); err != nil {
		log.Err(err).Str("login", login).Msg("wrong password")
		return models.Token{}, ErrWrongCredentials
	}

	return utils.GenerateJWTToken(tokenIssuer, login, a.cfg.TokenDuration, a.tokenSignKey)
}

// ParseToken validates the raw token string against the configured sign key
// and issuer.
func (a *authService) ParseToken(tokenString string) (models.Token, error) {
	return utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, tokenIssuer)
}
