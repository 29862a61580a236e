package errors

import (
	"strings"
	"unicode"
)

// ValidateFormat checks an output format name against the set of supported
// formats. The comparison is case-sensitive; callers should lowercase user
// input first.
func ValidateFormat(format string, supported ...string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	for _, s := range supported {
		if format == s {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (supported: %s)",
		format, strings.Join(supported, ", "))
}

// ValidateName validates a theme or preset name.
// Names are short identifiers used in lookups, cache keys, and file names,
// so the rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 64 characters
func ValidateName(kind Code, name string) error {
	if name == "" {
		return New(kind, "name cannot be empty")
	}

	if len(name) > 64 {
		return New(kind, "name too long (max 64 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(kind, "name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return New(kind, "name contains invalid characters: %q", name)
	}

	return nil
}

// ValidateThemeName validates a pitch theme name.
func ValidateThemeName(name string) error {
	return ValidateName(ErrCodeInvalidTheme, name)
}

// ValidatePresetName validates a pitch dimension preset name.
func ValidatePresetName(name string) error {
	return ValidateName(ErrCodeInvalidPreset, name)
}

// ValidateOutputPath validates a file path used for writing rendered figures.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}
