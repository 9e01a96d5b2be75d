package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/common"
)

// getSimpleText, getPassword and readFile are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	readFile      = os.ReadFile
)

// Register prompts for an email, username and password and creates the
// account. It does not sign in.
func (a *App) Register(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.auth.Register(ctx, email, string(password), username); err != nil {
		return err
	}

	printlnFn("Success! You can now login.")
	return nil
}

// Login prompts for credentials, signs in and pulls remote favorites into
// the cache.
func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.setMode(ModeOnline)
	printlnFn(fmt.Sprintf("Signed in as %s", sess.Username))
	a.syncFavorites(ctx)
	return nil
}

// Logout signs out. Locally cached recipes stay, including favorites.
func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Signed out.")
	return nil
}

func (a *App) Profile(ctx context.Context, _ []string) error {
	p, err := a.auth.Profile(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Username: %s", p.Username))
	printlnFn(fmt.Sprintf("Email:    %s", p.Email))
	if !p.CreatedAt.IsZero() {
		printlnFn(fmt.Sprintf("Member since %s", p.CreatedAt.Format(time.DateOnly)))
	}
	if p.AvatarKey != "" {
		if url, err := a.auth.AvatarURL(ctx); err == nil {
			printlnFn(fmt.Sprintf("Avatar:   %s", url))
		}
	}
	return nil
}

func (a *App) Rename(ctx context.Context, _ []string) error {
	name, err := getSimpleText(a.reader, "Enter new username", a.out)
	if err != nil {
		return err
	}
	p, err := a.auth.UpdateProfile(ctx, name)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Username changed to %s", p.Username))
	return nil
}

func (a *App) ChangePassword(ctx context.Context, _ []string) error {
	current, err := getPassword("Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)
	next, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)
	confirm, err := getPassword("Confirm new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := a.auth.ChangePassword(ctx, string(current), string(next), string(confirm)); err != nil {
		return err
	}
	printlnFn("Password changed.")
	return nil
}

// Avatar uploads an image file as the profile picture.
func (a *App) Avatar(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("avatar <image file>")
	}
	data, err := readFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	url, err := a.auth.UploadAvatar(ctx, http.DetectContentType(data), data)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Avatar uploaded: %s", url))
	return nil
}
