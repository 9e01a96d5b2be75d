package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/recipeplanner/internal/client/client"
	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
	"github.com/dmitrijs2005/recipeplanner/internal/logging"
	"github.com/dmitrijs2005/recipeplanner/internal/netx"
	"github.com/dmitrijs2005/recipeplanner/internal/validation"
)

// SessionStore persists the signed-in session between runs.
type SessionStore interface {
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, s models.Session) error
	Clear(ctx context.Context) error
}

// AuthService defines account operations for the CLI.
//
// Register and Login validate their input before any network call. Login
// persists the session, RestoreSession loads it on start-up, and Logout
// clears it even when the server cannot be reached.
type AuthService interface {
	Register(ctx context.Context, email, password, username string) (string, error)
	Login(ctx context.Context, email, password string) (models.Session, error)
	Logout(ctx context.Context) error
	RestoreSession(ctx context.Context) (models.Session, bool, error)
	CurrentSession() models.Session
	Ping(ctx context.Context) error

	Profile(ctx context.Context) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, username string) (models.UserProfile, error)
	ChangePassword(ctx context.Context, current, next, confirm string) error
	// UploadAvatar stores data as the profile avatar and returns its download URL.
	UploadAvatar(ctx context.Context, contentType string, data []byte) (string, error)
	AvatarURL(ctx context.Context) (string, error)
}

type authService struct {
	client   client.AuthClient
	sessions SessionStore
	validate *validation.Validator
	http     *http.Client
	log      logging.Logger

	mu      sync.RWMutex
	current models.Session
}

func NewAuthService(c client.AuthClient, sessions SessionStore, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	a := &authService{
		client:   c,
		sessions: sessions,
		validate: validation.New(),
		http:     http.DefaultClient,
		log:      log.With("module", "auth"),
	}
	c.OnTokensRefreshed(a.tokensRefreshed)
	return a
}

func (a *authService) tokensRefreshed(access, refresh string) {
	a.mu.Lock()
	a.current.AccessToken = access
	a.current.RefreshToken = refresh
	sess := a.current
	a.mu.Unlock()

	if err := a.sessions.Save(context.Background(), sess); err != nil {
		a.log.Warn(context.Background(), "failed to persist refreshed tokens", "error", err)
	}
}

func (a *authService) setCurrent(s models.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = s
}

func (a *authService) CurrentSession() models.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}

func (a *authService) requireSession() (models.Session, error) {
	s := a.CurrentSession()
	if s.UserID == "" {
		return models.Session{}, ErrAuthRequired
	}
	return s, nil
}

func (a *authService) Register(ctx context.Context, email, password, username string) (string, error) {
	if err := a.validate.SignUp(validation.Credentials{Email: email, Password: password, Username: username}); err != nil {
		return "", err
	}
	id, err := a.client.Register(ctx, email, password, username)
	if err != nil {
		return "", fmt.Errorf("register error: %w", err)
	}
	a.log.Info(ctx, "user registered", "user_id", id)
	return id, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (models.Session, error) {
	if err := a.validate.Login(email, password); err != nil {
		return models.Session{}, err
	}
	sess, err := a.client.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("login error: %w", err)
	}
	if err := a.sessions.Save(ctx, sess); err != nil {
		return models.Session{}, fmt.Errorf("session saving error: %w", err)
	}
	a.setCurrent(sess)
	a.log.Info(ctx, "signed in", "user_id", sess.UserID)
	return sess, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "remote logout failed", "error", err)
	}
	a.setCurrent(models.Session{})
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (a *authService) RestoreSession(ctx context.Context) (models.Session, bool, error) {
	sess, err := a.sessions.Load(ctx)
	if err != nil {
		return models.Session{}, false, err
	}
	if !sess.Valid() {
		return models.Session{}, false, nil
	}
	a.client.SetTokens(sess.AccessToken, sess.RefreshToken)
	a.setCurrent(sess)
	return sess, true, nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Profile(ctx context.Context) (models.UserProfile, error) {
	if _, err := a.requireSession(); err != nil {
		return models.UserProfile{}, err
	}
	return a.client.GetProfile(ctx)
}

func (a *authService) UpdateProfile(ctx context.Context, username string) (models.UserProfile, error) {
	sess, err := a.requireSession()
	if err != nil {
		return models.UserProfile{}, err
	}
	username, err = a.validate.Username(username)
	if err != nil {
		return models.UserProfile{}, err
	}

	p, err := a.client.UpdateProfile(ctx, username)
	if err != nil {
		return models.UserProfile{}, err
	}

	sess.Username = p.Username
	a.setCurrent(sess)
	if err := a.sessions.Save(ctx, sess); err != nil {
		a.log.Warn(ctx, "failed to persist session", "error", err)
	}
	return p, nil
}

func (a *authService) ChangePassword(ctx context.Context, current, next, confirm string) error {
	if _, err := a.requireSession(); err != nil {
		return err
	}
	if err := a.validate.PasswordChange(current, next, confirm); err != nil {
		return err
	}
	return a.client.ChangePassword(ctx, current, next)
}

func (a *authService) UploadAvatar(ctx context.Context, contentType string, data []byte) (string, error) {
	if _, err := a.requireSession(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", validation.NewError("Avatar", "avatar file is empty")
	}

	_, url, err := a.client.AvatarUploadURL(ctx, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to get upload url: %w", err)
	}
	if err := netx.UploadToPresignedURL(ctx, a.http, url, contentType, data); err != nil {
		return "", err
	}
	return a.client.AvatarURL(ctx)
}

func (a *authService) AvatarURL(ctx context.Context) (string, error) {
	if _, err := a.requireSession(); err != nil {
		return "", err
	}
	return a.client.AvatarURL(ctx)
}
