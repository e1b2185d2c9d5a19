package registry

import (
	"crypto/rand"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	nameMaxLength        = 64
	randomSuffixLength   = 8
	randomSuffixFallback = "abcdefgh"
)

var (
	namePattern     = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9._-]*[a-z0-9])?$`)
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
)

// NameFromPath derives a usable theme name from a file path or repository
// URL: the base name without extension, sanitized.
func NameFromPath(path string) string {
	base := filepath.Base(strings.TrimSuffix(path, "/"))
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}

	name := SanitizeName(base)
	if name == "" {
		name = fmt.Sprintf("theme-%s", randomSuffix(randomSuffixLength))
	}

	return name
}

// ValidateName ensures the provided name matches the allowed pattern.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("theme name cannot be empty")
	}

	if len(name) > nameMaxLength {
		return fmt.Errorf("theme name %q is too long: maximum length is %d characters", name, nameMaxLength)
	}

	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid theme name %q: must match %s", name, namePattern.String())
	}

	return nil
}

// SanitizeName normalizes a string into an identifier-friendly format.
func SanitizeName(name string) string {
	lowered := strings.ToLower(name)
	sanitized := nonAlphanumeric.ReplaceAllString(lowered, "-")
	sanitized = strings.Trim(sanitized, "-")

	if len(sanitized) > nameMaxLength {
		sanitized = trimToLength(sanitized, nameMaxLength)
	}

	return sanitized
}

func randomSuffix(length int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	if length <= 0 {
		return ""
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return randomSuffixFallback
	}

	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}

	return string(buf)
}

func trimToLength(value string, length int) string {
	if len(value) <= length {
		return strings.Trim(value, "-")
	}

	trimmed := value[:length]
	return strings.Trim(trimmed, "-")
}
