// Package services contains server-side business logic. This file implements
// UserService: registration, login, issuing and rotating JWT access tokens
// with server-stored refresh tokens, and profile management.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/common"
	"github.com/dmitrijs2005/recipeplanner/internal/cryptox"
	"github.com/dmitrijs2005/recipeplanner/internal/dbx"
	"github.com/dmitrijs2005/recipeplanner/internal/server/auth"
	"github.com/dmitrijs2005/recipeplanner/internal/server/config"
	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/recipeplanner/internal/validation"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService provides account operations:
//   - Register / Login: create users and verify credentials
//   - RefreshToken / Logout: rotate and revoke refresh tokens
//   - Profile / UpdateProfile / ChangePassword: manage the signed-in account
//   - AvatarUploadURL / AvatarURL: presigned avatar access
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	validator                    *validation.Validator
	avatars                      AvatarPresigner
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	now                          func() time.Time
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, v *validation.Validator, avatars AvatarPresigner, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		validator:                    v,
		avatars:                      avatars,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		now:                          time.Now,
	}
}

// Register validates the input and creates a user. A taken e-mail or
// username yields common.ErrorAlreadyExists naming the field.
func (s *UserService) Register(ctx context.Context, email, password, username string) (*models.User, error) {
	email = normalizeEmail(email)
	username = strings.TrimSpace(username)
	if err := s.validator.SignUp(validation.Credentials{Email: email, Password: password, Username: username}); err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		UserName:     username,
		PasswordHash: cryptox.HashPassword([]byte(password)),
	}
	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the credentials and, on success, returns a new TokenPair and
// the user's profile. Unknown e-mail and wrong password are indistinguishable.
func (s *UserService) Login(ctx context.Context, email, password string) (*TokenPair, *models.User, error) {
	email = normalizeEmail(email)
	if err := s.validator.Login(email, password); err != nil {
		return nil, nil, err
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, fmt.Errorf("error searching user: %w", err)
	}

	ok, err := cryptox.VerifyPassword(user.PasswordHash, []byte(password))
	if err != nil || !ok {
		return nil, nil, common.ErrorUnauthorized
	}

	pair, err := s.generateTokenPair(ctx, user.ID, s.db)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens are removed and yield
// ErrRefreshTokenExpired; unknown ones yield ErrorUnauthorized.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expired(s.now()) {
		_ = repo.Delete(ctx, refreshToken)
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.RefreshTokens(tx)
		if err := repoTx.Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, token.UserID, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout revokes refreshToken if it belongs to userID. Unknown tokens are
// ignored so a repeated logout succeeds.
func (s *UserService) Logout(ctx context.Context, userID, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	repo := s.repomanager.RefreshTokens(s.db)
	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.UserID != userID {
		return nil
	}
	return repo.Delete(ctx, refreshToken)
}

func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, userID)
}

// UpdateProfile renames the user. The trimmed name must be non-blank and
// unused by anyone else.
func (s *UserService) UpdateProfile(ctx context.Context, userID, username string) (*models.User, error) {
	name, err := s.validator.Username(username)
	if err != nil {
		return nil, err
	}
	u, err := s.repomanager.Users(s.db).UpdateUserName(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return u, nil
}

// ChangePassword replaces the password after verifying the current one and
// revokes every refresh token of the user. A wrong current password is
// reported as a validation failure, not as Unauthorized.
func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	if err := s.validator.PasswordChange(current, next, next); err != nil {
		return err
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	ok, err := cryptox.VerifyPassword(user.PasswordHash, []byte(current))
	if err != nil || !ok {
		return validation.NewError("CurrentPassword", "current password is incorrect")
	}

	hash := cryptox.HashPassword([]byte(next))
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).UpdatePasswordHash(ctx, userID, hash); err != nil {
			return fmt.Errorf("error updating password: %w", err)
		}
		if _, err := s.repomanager.RefreshTokens(tx).DeleteByUser(ctx, userID); err != nil {
			return fmt.Errorf("error revoking sessions: %w", err)
		}
		return nil
	})
}

// AvatarUploadURL allocates a new avatar key, stores it on the profile and
// returns a presigned PUT URL for it.
func (s *UserService) AvatarUploadURL(ctx context.Context, userID, contentType string) (string, string, error) {
	key := NewAvatarKey(userID)
	url, err := s.avatars.PresignPut(ctx, key, contentType)
	if err != nil {
		return "", "", fmt.Errorf("error presigning upload: %w", err)
	}
	if err := s.repomanager.Users(s.db).SetAvatarKey(ctx, userID, key); err != nil {
		return "", "", fmt.Errorf("error saving avatar key: %w", err)
	}
	return key, url, nil
}

// AvatarURL returns a presigned GET URL for the user's avatar, or
// common.ErrorNotFound when none was uploaded.
func (s *UserService) AvatarURL(ctx context.Context, userID string) (string, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.AvatarKey == "" {
		return "", common.ErrorNotFound
	}
	url, err := s.avatars.PresignGet(ctx, user.AvatarKey)
	if err != nil {
		return "", fmt.Errorf("error presigning download: %w", err)
	}
	return url, nil
}

// --- helpers below ---

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) generateAccessToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, userID string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	refreshRepo := s.repomanager.RefreshTokens(tx)
	if err := refreshRepo.Create(ctx, userID, refresh, s.now().Add(s.refreshTokenValidityDuration)); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
