package errors

import (
	"regexp"
	"unicode"
)

// hexColorRe matches 3-, 4-, 6-, and 8-digit hex color literals.
var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// keywordRe matches CSS-shaped keyword values such as "underline",
// "revert", or "none". Keywords are short lowercase identifiers,
// optionally hyphenated.
var keywordRe = regexp.MustCompile(`^[a-z][a-z0-9]*(?:-[a-z0-9]+)*$`)

// ValidateColor validates a pass-through color literal.
//
// The generated theme copies colors verbatim, so a malformed literal would
// only surface as a subtle visual bug in the rendered site. Validation is
// intentionally conservative: hex literals (#rgb, #rgba, #rrggbb, #rrggbbaa)
// and plain CSS keyword colors are accepted, anything else is rejected.
func ValidateColor(value string) error {
	if value == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}

	if len(value) > 64 {
		return New(ErrCodeInvalidColor, "color literal too long (max 64 characters)")
	}

	for _, r := range value {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidColor, "color contains control characters")
		}
	}

	if value[0] == '#' {
		if !hexColorRe.MatchString(value) {
			return New(ErrCodeInvalidColor, "malformed hex color: %q", value)
		}
		return nil
	}

	if !keywordRe.MatchString(value) {
		return New(ErrCodeInvalidColor, "invalid color keyword: %q", value)
	}
	return nil
}

// ValidateKeyword validates a pass-through CSS keyword value such as
// "underline" or "revert". Keywords may contain several space-separated
// words (e.g. "underline dotted").
func ValidateKeyword(value string) error {
	if value == "" {
		return New(ErrCodeInvalidScale, "keyword cannot be empty")
	}

	if len(value) > 64 {
		return New(ErrCodeInvalidScale, "keyword too long (max 64 characters)")
	}

	start := 0
	for i := 0; i <= len(value); i++ {
		if i == len(value) || value[i] == ' ' {
			word := value[start:i]
			if !keywordRe.MatchString(word) {
				return New(ErrCodeInvalidScale, "invalid keyword: %q", value)
			}
			start = i + 1
		}
	}
	return nil
}
