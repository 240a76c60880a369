package dclgen

import (
	"regexp"
	"strings"
)

var blockPattern = regexp.MustCompile(`(?is)DECLARE\s+[\w.]+\s+TABLE\s*\((.*?)\)\s*END-EXEC`)

// extractDeclarationBody locates the ( ... ) END-EXEC region of the
// declare statement and returns its raw inner text.
func extractDeclarationBody(content string) (string, error) {
	m := blockPattern.FindStringSubmatch(content)
	if m == nil {
		return "", ErrMissingDeclarationBlock
	}
	return m[1], nil
}

// splitDeclarations splits the declaration body into individual column
// declarations. Commas inside parentheses belong to type specifiers
// such as DECIMAL(10,2) and are not separators, so the split tracks
// parenthesis depth and only breaks at depth zero. Declarations that
// trim to nothing are skipped.
func splitDeclarations(body string) []string {
	var declarations []string
	var current strings.Builder
	depth := 0

	flush := func() {
		if decl := strings.TrimSpace(current.String()); decl != "" {
			declarations = append(declarations, decl)
		}
		current.Reset()
	}

	for _, r := range body {
		switch {
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')':
			depth--
			current.WriteRune(r)
		case r == ',' && depth == 0:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return declarations
}
