package entity

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const (
	// maxEmailLength mirrors the practical limit of RFC 5321 addresses.
	maxEmailLength = 254

	maxUsernameLength = 50
	maxTagLength      = 64
	maxTitleLength    = 255

	// maxURLLength defines the maximum allowed length for URLs to prevent DoS attacks.
	maxURLLength = 2048
)

var (
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)
)

// ValidateEmail checks that the address is non-empty, well-formed and within
// length limits. Returns a ValidationError describing the first failure.
func ValidateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if len(email) > maxEmailLength {
		return &ValidationError{
			Field:   "email",
			Message: fmt.Sprintf("must not exceed %d characters", maxEmailLength),
		}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: "is not a valid email address"}
	}
	return nil
}

// ValidateUsername checks that the username is non-empty, uses the allowed
// character set and is within length limits.
func ValidateUsername(username string) error {
	if username == "" {
		return &ValidationError{Field: "username", Message: "is required"}
	}
	if len(username) > maxUsernameLength {
		return &ValidationError{
			Field:   "username",
			Message: fmt.Sprintf("must not exceed %d characters", maxUsernameLength),
		}
	}
	if !usernamePattern.MatchString(username) {
		return &ValidationError{
			Field:   "username",
			Message: "may only contain letters, digits, '_', '.' and '-'",
		}
	}
	return nil
}

// ValidateTitle checks an article title for presence and length.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if len(title) > maxTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must not exceed %d characters", maxTitleLength),
		}
	}
	return nil
}

// ValidateTagName checks a single tag name. Commas are rejected because tag
// sets travel through queries as comma-joined lists.
func ValidateTagName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "tagList", Message: "tags cannot be empty"}
	}
	if len(name) > maxTagLength {
		return &ValidationError{
			Field:   "tagList",
			Message: fmt.Sprintf("tags must not exceed %d characters", maxTagLength),
		}
	}
	if strings.Contains(name, ",") {
		return &ValidationError{Field: "tagList", Message: "tags cannot contain commas"}
	}
	return nil
}

// ValidateImageURL validates the format of a profile image URL.
// An empty string is allowed (no image). Only http/https URLs with a host
// are accepted.
func ValidateImageURL(rawURL string) error {
	if rawURL == "" {
		return nil
	}
	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "image",
			Message: fmt.Sprintf("must not exceed %d characters", maxURLLength),
		}
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "image", Message: "is not a valid URL"}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &ValidationError{Field: "image", Message: "must use http or https scheme"}
	}
	if parsed.Host == "" {
		return &ValidationError{Field: "image", Message: "must have a valid host"}
	}
	return nil
}
