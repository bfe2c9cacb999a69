// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidAdminKey = errors.New("invalid admin key")

// GenerateAdminKey derives the administrator key for a club from the
// configured salt. Deterministic, so the key can be regenerated for the
// admin instead of stored.
func GenerateAdminKey(clubName, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(clubName))
	sum := h.Sum(nil)
	// URL-safe base64 without padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks a presented key in constant time.
func ValidateAdminKey(clubName, adminKey, salt string) error {
	expected := GenerateAdminKey(clubName, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}
