package services

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/common"
	"github.com/dmitrijs2005/recipeplanner/internal/cryptox"
	"github.com/dmitrijs2005/recipeplanner/internal/server/auth"
	"github.com/dmitrijs2005/recipeplanner/internal/server/config"
	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
	"github.com/dmitrijs2005/recipeplanner/internal/validation"
)

const testSecret = "k"

func newUserService(t *testing.T, db *sql.DB, rm *fakeRepoManager, p AvatarPresigner) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                    testSecret,
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
	}
	return NewUserService(db, rm, validation.New(), p, cfg)
}

func storedUser(password string) *models.User {
	return &models.User{
		ID:           "u1",
		Email:        "ann@example.com",
		UserName:     "ann",
		PasswordHash: cryptox.HashPassword([]byte(password)),
	}
}

func TestRegister_NormalizesAndHashes(t *testing.T) {
	db, _ := newSQLMockDB(t)
	ur := newFakeUsersRepo()
	s := newUserService(t, db, &fakeRepoManager{u: ur}, nil)

	u, err := s.Register(context.Background(), "  Ann@Example.COM ", "secret1", " ann ")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.ID != "new-id" || u.Email != "ann@example.com" || u.UserName != "ann" {
		t.Fatalf("unexpected user: %+v", u)
	}
	ok, err := cryptox.VerifyPassword(ur.created.PasswordHash, []byte("secret1"))
	if err != nil || !ok {
		t.Fatalf("stored hash does not verify: ok=%v err=%v", ok, err)
	}
}

func TestRegister_ValidationAndDuplicate(t *testing.T) {
	db, _ := newSQLMockDB(t)
	ur := newFakeUsersRepo()
	s := newUserService(t, db, &fakeRepoManager{u: ur}, nil)

	_, err := s.Register(context.Background(), "not-an-email", "123", "")
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %v", err)
	}
	if len(verr.Violations) != 3 {
		t.Fatalf("expected 3 violations, got %+v", verr.Violations)
	}
	if ur.created != nil {
		t.Fatal("invalid input must not reach the repository")
	}

	ur.createErr = errors.Join(common.ErrorAlreadyExists, errors.New("email"))
	_, err = s.Register(context.Background(), "ann@example.com", "secret1", "ann")
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rr := newFakeRefreshRepo()
	s := newUserService(t, db, &fakeRepoManager{u: newFakeUsersRepo(storedUser("secret1")), r: rr}, nil)

	pair, u, err := s.Login(context.Background(), "ANN@example.com", "secret1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if u.ID != "u1" {
		t.Fatalf("unexpected user %+v", u)
	}
	id, err := auth.GetUserIDFromToken(pair.AccessToken, []byte(testSecret))
	if err != nil || id != "u1" {
		t.Fatalf("access token: id=%q err=%v", id, err)
	}
	stored, ok := rr.tokens[pair.RefreshToken]
	if !ok || stored.UserID != "u1" {
		t.Fatalf("refresh token not stored: %+v", rr.tokens)
	}
	if d := time.Until(stored.Expires); d < time.Hour || d > 2*time.Hour {
		t.Fatalf("unexpected refresh expiry in %v", d)
	}
}

func TestLogin_UnauthorizedAndInternal(t *testing.T) {
	db, _ := newSQLMockDB(t)
	ur := newFakeUsersRepo(storedUser("secret1"))
	s := newUserService(t, db, &fakeRepoManager{u: ur, r: newFakeRefreshRepo()}, nil)

	if _, _, err := s.Login(context.Background(), "ann@example.com", "wrong-pass"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("wrong password: want ErrorUnauthorized, got %v", err)
	}
	if _, _, err := s.Login(context.Background(), "bob@example.com", "secret1"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("unknown email: want ErrorUnauthorized, got %v", err)
	}

	ur.getErr = errBoom{}
	_, _, err := s.Login(context.Background(), "ann@example.com", "secret1")
	if err == nil || errors.Is(err, common.ErrorUnauthorized) || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestLogin_TokenStoreError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rr := newFakeRefreshRepo()
	rr.createErr = errBoom{}
	s := newUserService(t, db, &fakeRepoManager{u: newFakeUsersRepo(storedUser("secret1")), r: rr}, nil)

	if _, _, err := s.Login(context.Background(), "ann@example.com", "secret1"); !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("want ErrorInternal, got %v", err)
	}
}

func TestRefreshToken_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	rr := newFakeRefreshRepo(&models.RefreshToken{UserID: "u1", Token: "old", Expires: time.Now().Add(10 * time.Minute)})
	s := newUserService(t, db, &fakeRepoManager{r: rr}, nil)

	pair, err := s.RefreshToken(context.Background(), "old")
	if err != nil {
		t.Fatalf("RefreshToken error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" || pair.RefreshToken == "old" {
		t.Fatalf("unexpected pair: %+v", pair)
	}
	if _, ok := rr.tokens["old"]; ok {
		t.Fatal("old refresh token must be rotated out")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRefreshToken_ExpiredIsRemoved(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rr := newFakeRefreshRepo(&models.RefreshToken{UserID: "u1", Token: "r", Expires: time.Now().Add(-time.Minute)})
	s := newUserService(t, db, &fakeRepoManager{r: rr}, nil)

	_, err := s.RefreshToken(context.Background(), "r")
	if !errors.Is(err, common.ErrRefreshTokenExpired) {
		t.Fatalf("want ErrRefreshTokenExpired, got %v", err)
	}
	if len(rr.deleted) != 1 || rr.deleted[0] != "r" {
		t.Fatalf("expired token not deleted: %v", rr.deleted)
	}
}

func TestRefreshToken_UnknownAndFindErr(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rr := newFakeRefreshRepo()
	s := newUserService(t, db, &fakeRepoManager{r: rr}, nil)

	if _, err := s.RefreshToken(context.Background(), "nope"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}

	rr.findErr = errBoom{}
	_, err := s.RefreshToken(context.Background(), "r")
	if err == nil || !regexp.MustCompile(`error searching refresh token: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped find error, got %v", err)
	}
}

func TestRefreshToken_DeleteErrRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	rr := newFakeRefreshRepo(&models.RefreshToken{UserID: "u1", Token: "r", Expires: time.Now().Add(10 * time.Minute)})
	rr.delErr = errBoom{}
	s := newUserService(t, db, &fakeRepoManager{r: rr}, nil)

	_, err := s.RefreshToken(context.Background(), "r")
	if err == nil || !regexp.MustCompile(`error deleting refresh token: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped delete error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestLogout(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rr := newFakeRefreshRepo(
		&models.RefreshToken{UserID: "u1", Token: "mine"},
		&models.RefreshToken{UserID: "u2", Token: "theirs"},
	)
	s := newUserService(t, db, &fakeRepoManager{r: rr}, nil)
	ctx := context.Background()

	if err := s.Logout(ctx, "u1", "theirs"); err != nil {
		t.Fatalf("Logout foreign token: %v", err)
	}
	if _, ok := rr.tokens["theirs"]; !ok {
		t.Fatal("another user's token must survive")
	}
	if err := s.Logout(ctx, "u1", "mine"); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, ok := rr.tokens["mine"]; ok {
		t.Fatal("own token must be revoked")
	}
	if err := s.Logout(ctx, "u1", "mine"); err != nil {
		t.Fatalf("repeated Logout must succeed, got %v", err)
	}
	if err := s.Logout(ctx, "u1", ""); err != nil {
		t.Fatalf("empty token: %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	db, _ := newSQLMockDB(t)
	ur := newFakeUsersRepo(storedUser("secret1"))
	s := newUserService(t, db, &fakeRepoManager{u: ur}, nil)

	if _, err := s.UpdateProfile(context.Background(), "u1", "   "); !errors.Is(err, validation.ErrValidationFailure) {
		t.Fatalf("blank name: want validation failure, got %v", err)
	}

	u, err := s.UpdateProfile(context.Background(), "u1", " Annie ")
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if u.UserName != "Annie" {
		t.Fatalf("name not trimmed: %q", u.UserName)
	}

	ur.updateErr = errors.Join(common.ErrorAlreadyExists, errors.New("username"))
	if _, err := s.UpdateProfile(context.Background(), "u1", "taken"); !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	db, mock := newSQLMockDB(t)
	ur := newFakeUsersRepo(storedUser("secret1"))
	rr := newFakeRefreshRepo(&models.RefreshToken{UserID: "u1", Token: "a"}, &models.RefreshToken{UserID: "u1", Token: "b"})
	s := newUserService(t, db, &fakeRepoManager{u: ur, r: rr}, nil)
	ctx := context.Background()

	err := s.ChangePassword(ctx, "u1", "wrong-one", "newsecret")
	var verr *validation.Error
	if !errors.As(err, &verr) || verr.Violations[0].Field != "CurrentPassword" {
		t.Fatalf("wrong current password: got %v", err)
	}
	if err := s.ChangePassword(ctx, "u1", "secret1", "123"); !errors.Is(err, validation.ErrValidationFailure) {
		t.Fatalf("short password: got %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectCommit()
	if err := s.ChangePassword(ctx, "u1", "secret1", "newsecret"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	ok, _ := cryptox.VerifyPassword(ur.hashes["u1"], []byte("newsecret"))
	if !ok {
		t.Fatal("new hash does not verify")
	}
	if len(rr.tokens) != 0 {
		t.Fatalf("sessions must be revoked, left %v", rr.tokens)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestAvatarUploadURL(t *testing.T) {
	db, _ := newSQLMockDB(t)
	ur := newFakeUsersRepo(storedUser("secret1"))
	p := &fakePresigner{}
	s := newUserService(t, db, &fakeRepoManager{u: ur}, p)

	key, url, err := s.AvatarUploadURL(context.Background(), "u1", "image/jpeg")
	if err != nil {
		t.Fatalf("AvatarUploadURL: %v", err)
	}
	if !strings.HasPrefix(key, "avatars/u1/") || url != "https://put/"+key {
		t.Fatalf("unexpected key/url: %q %q", key, url)
	}
	if p.putType != "image/jpeg" || ur.byID["u1"].AvatarKey != key {
		t.Fatalf("presign or key not recorded: %+v %+v", p, ur.byID["u1"])
	}

	p.err = errBoom{}
	if _, _, err := s.AvatarUploadURL(context.Background(), "u1", ""); err == nil {
		t.Fatal("expected presign error")
	}
	if ur.byID["u1"].AvatarKey != key {
		t.Fatal("failed presign must not replace the avatar key")
	}
}

func TestAvatarURL(t *testing.T) {
	db, _ := newSQLMockDB(t)
	ur := newFakeUsersRepo(storedUser("secret1"))
	p := &fakePresigner{}
	s := newUserService(t, db, &fakeRepoManager{u: ur}, p)

	if _, err := s.AvatarURL(context.Background(), "u1"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("no avatar: want ErrorNotFound, got %v", err)
	}

	ur.byID["u1"].AvatarKey = "avatars/u1/x"
	url, err := s.AvatarURL(context.Background(), "u1")
	if err != nil || url != "https://get/avatars/u1/x" {
		t.Fatalf("AvatarURL: %q %v", url, err)
	}
}
