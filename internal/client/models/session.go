package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Session is the signed-in user state kept in local metadata.
type Session struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (s Session) Valid() bool {
	return s.UserID != "" && s.RefreshToken != ""
}

// String omits the tokens.
func (s Session) String() string {
	return fmt.Sprintf("%s <%s>", s.Username, s.Email)
}

func (s Session) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

func UnmarshalSession(b []byte) (Session, error) {
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return Session{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return s, nil
}
