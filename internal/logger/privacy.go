package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// HashText creates a privacy-preserving hash of user-provided text so that
// repeated inputs can be correlated in logs without exposing their content.
func HashText(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:])[:8]
}

// RedactKey masks an API key for logging, keeping only the last 4 characters.
func RedactKey(key string) string {
	if key == "" {
		return "<empty>"
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}

// SanitizeText is a general-purpose sanitizer for any user-provided text.
// It redacts content but preserves enough shape information for debugging.
func SanitizeText(text string) string {
	if text == "" {
		return "<empty>"
	}

	words := strings.Fields(text)
	return fmt.Sprintf("<redacted: %d words, %d chars>", len(words), len(text))
}
