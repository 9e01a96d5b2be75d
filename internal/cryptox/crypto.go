// Package cryptox implements password hashing for stored user credentials.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipeplanner/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	hashScheme  = "argon2id"
	saltLen     = 16
	keyLen      = 32
	argonTime   = 1
	argonMemory = 64 * 1024
	argonLanes  = 4
)

// ErrMalformedHash is returned when a stored hash cannot be parsed.
var ErrMalformedHash = errors.New("malformed password hash")

var b64 = base64.RawStdEncoding

// DeriveKey stretches password with salt using argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonLanes, keyLen)
}

// HashPassword returns an encoded "argon2id$<salt>$<key>" string suitable
// for storage. A fresh random salt is used on every call.
func HashPassword(password []byte) string {
	salt := common.GenerateRandByteArray(saltLen)
	key := DeriveKey(password, salt)
	return fmt.Sprintf("%s$%s$%s", hashScheme, b64.EncodeToString(salt), b64.EncodeToString(key))
}

// VerifyPassword reports whether password matches the encoded hash.
// The comparison is constant-time.
func VerifyPassword(encoded string, password []byte) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != hashScheme {
		return false, ErrMalformedHash
	}
	salt, err := b64.DecodeString(parts[1])
	if err != nil {
		return false, fmt.Errorf("%w: salt: %v", ErrMalformedHash, err)
	}
	want, err := b64.DecodeString(parts[2])
	if err != nil {
		return false, fmt.Errorf("%w: key: %v", ErrMalformedHash, err)
	}

	got := DeriveKey(password, salt)
	return subtle.ConstantTimeCompare(want, got) == 1, nil
}
