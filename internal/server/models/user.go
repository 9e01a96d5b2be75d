// Package models defines server-side data models persisted in the database.
package models

import "time"

type User struct {
	ID           string
	Email        string
	UserName     string
	PasswordHash string
	AvatarKey    string
	CreatedAt    time.Time
}
