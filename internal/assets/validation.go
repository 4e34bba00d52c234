package assets

import "fmt"

// maxTemplateNameLength bounds names passed to LoadTemplate.
const maxTemplateNameLength = 32

// ValidateTemplateName checks that name is a bare template name such as
// "layout" or "rss": a lowercase letter followed by lowercase letters,
// digits or hyphens. Separators, dots and uppercase are rejected, so a
// name can never select a file outside the template directory or carry
// its own extension.
func ValidateTemplateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTemplateName)
	}
	if len(name) > maxTemplateNameLength {
		return fmt.Errorf("%w: %d characters (max %d)", ErrInvalidTemplateName, len(name), maxTemplateNameLength)
	}
	if name[0] < 'a' || name[0] > 'z' {
		return fmt.Errorf("%w: %q must start with a lowercase letter", ErrInvalidTemplateName, name)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidTemplateName, name)
		}
	}
	return nil
}
