package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/recipeplanner/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPasswords(t *testing.T, pw ...string) {
	t.Helper()
	orig := getPassword
	i := 0
	getPassword = func(string, io.Writer) ([]byte, error) {
		if i >= len(pw) {
			return nil, errors.New("no more passwords")
		}
		p := []byte(pw[i])
		i++
		return p, nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func stubTexts(t *testing.T, texts ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		s := texts[i]
		i++
		return s, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func TestRegister_Success(t *testing.T) {
	out := captureOutput(t)
	a, d := newTestApp(t, readerFromLines())
	stubTexts(t, "alice@example.org", "alice")
	stubPasswords(t, "secret1")

	require.NoError(t, a.Register(context.Background(), nil))
	assert.Equal(t, "alice@example.org", d.auth.regEmail)
	assert.Equal(t, "alice", d.auth.regUser)
	assert.Equal(t, "secret1", d.auth.regPass)
	assert.Contains(t, out.String(), "Success!")
}

func TestRegister_ErrorPropagates(t *testing.T) {
	captureOutput(t)
	a, d := newTestApp(t, readerFromLines())
	d.auth.regErr = client.ErrAlreadyExists
	stubTexts(t, "alice@example.org", "alice")
	stubPasswords(t, "secret1")

	require.ErrorIs(t, a.Register(context.Background(), nil), client.ErrAlreadyExists)
}

func TestLogin_SyncsFavorites(t *testing.T) {
	out := captureOutput(t)
	a, d := newTestApp(t, readerFromLines())
	stubTexts(t, "cook@example.org")
	stubPasswords(t, "secret1")

	require.NoError(t, a.Login(context.Background(), nil))
	assert.Equal(t, "cook@example.org", d.auth.loginEmail)
	assert.Equal(t, "secret1", d.auth.loginPass)
	assert.Equal(t, ModeOnline, a.currentMode())
	assert.Equal(t, "u1", d.recipes.syncedUser)
	assert.Contains(t, out.String(), "Signed in as cook")
}

func TestLogin_Failure(t *testing.T) {
	captureOutput(t)
	a, d := newTestApp(t, readerFromLines())
	d.auth.loginErr = client.ErrUnauthorized
	stubTexts(t, "cook@example.org")
	stubPasswords(t, "wrong")

	require.ErrorIs(t, a.Login(context.Background(), nil), client.ErrUnauthorized)
	assert.False(t, a.isLoggedIn())
	assert.Empty(t, d.recipes.syncedUser)
}

func TestLogout(t *testing.T) {
	captureOutput(t)
	a, d := newTestApp(t, readerFromLines())
	d.signIn()

	require.NoError(t, a.Logout(context.Background(), nil))
	assert.True(t, d.auth.logoutCalled)
	assert.False(t, a.isLoggedIn())
}

func TestRenameAndPasswd(t *testing.T) {
	out := captureOutput(t)
	a, d := newTestApp(t, readerFromLines())
	d.signIn()

	stubTexts(t, "chef")
	require.NoError(t, a.Rename(context.Background(), nil))
	assert.Equal(t, "chef", d.auth.renamed)
	assert.Contains(t, out.String(), "Username changed to chef")

	stubPasswords(t, "old", "newpass", "newpass")
	require.NoError(t, a.ChangePassword(context.Background(), nil))
	assert.Equal(t, []string{"old", "newpass", "newpass"}, d.auth.passwords)
}

func TestAvatar(t *testing.T) {
	captureOutput(t)
	a, d := newTestApp(t, readerFromLines())
	d.signIn()

	orig := readFile
	t.Cleanup(func() { readFile = orig })
	png := []byte("\x89PNG\r\n\x1a\n rest")
	readFile = func(string) ([]byte, error) { return png, nil }

	require.ErrorIs(t, a.Avatar(context.Background(), nil), errUsage)
	require.NoError(t, a.Avatar(context.Background(), []string{"me.png"}))
	assert.Equal(t, "image/png", d.auth.uploadType)
	assert.Equal(t, png, d.auth.uploadData)
}
