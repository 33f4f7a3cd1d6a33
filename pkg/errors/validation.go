package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateBarName validates a bar name from a project file. Bar names
// end up as SVG element ids and as URL path segments of the serve
// mode, so the rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidateBarName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidProject, "bar name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidProject, "bar name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidProject, "bar name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return New(ErrCodeInvalidProject, "bar name cannot contain path separators")
	}

	return nil
}

// hexColorRegex matches #rgb and #rrggbb color notation.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor validates a bar color. An empty color is allowed and
// falls back to the renderer's default; anything else must be hex
// notation, the only form every SVG consumer understands.
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidProject, "color %q must be #rgb or #rrggbb hex notation", color)
	}
	return nil
}
