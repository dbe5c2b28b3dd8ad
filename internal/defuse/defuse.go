// Package defuse turns free text of any script into an ASCII token that can
// be embedded in a header card, and back.
package defuse

import (
	"encoding/base64"
	"fmt"
)

// Defuse returns the standard base64 encoding of the UTF-8 bytes of s.
func Defuse(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Undefuse reverses Defuse.
func Undefuse(token string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("decoding defused text: %w", err)
	}
	return string(b), nil
}
