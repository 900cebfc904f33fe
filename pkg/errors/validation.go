package errors

import (
	"strings"
	"unicode"
)

// maxFilenameLen bounds the remote chart filename.
const maxFilenameLen = 256

// ValidateFilename validates the filename a figure is published under.
//
// The plotting service addresses charts by filename and accepts "/" as a
// folder separator, so the rules only reject what can never be a valid
// remote name:
//   - No empty names
//   - No control characters
//   - No "..", backslashes, or leading/trailing "/"
//   - Maximum length of 256 characters
func ValidateFilename(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidFilename, "filename cannot be empty")
	}

	if len(name) > maxFilenameLen {
		return New(ErrCodeInvalidFilename, "filename too long (max %d characters)", maxFilenameLen)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidFilename, "filename contains invalid control characters")
		}
	}

	for _, pattern := range []string{"..", "\\", "//"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidFilename, "filename contains invalid characters: %q", pattern)
		}
	}

	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return New(ErrCodeInvalidFilename, "filename cannot start or end with %q", "/")
	}

	return nil
}

// ValidateURL validates a URL for the plotting service or a published chart.
// Only http and https are accepted.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfig, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidConfig, "URL must use http or https scheme")
	}

	return nil
}
