package dclgen

import (
	"regexp"
	"strings"
)

var (
	pragmaPattern  = regexp.MustCompile(`DCLGEN\s+TABLE\(([\w.]+)\)`)
	declarePattern = regexp.MustCompile(`(?i)DECLARE\s+([\w.]+)\s+TABLE`)
)

// extractIdentity determines the table and schema names. The DECLARE
// statement is authoritative; the DCLGEN pragma header only supplies
// a schema when the declare statement is unqualified. The pragma sits
// on a COBOL comment line that normalization removes, so it is
// matched against the raw text while the declare statement is matched
// against the normalized content.
func extractIdentity(raw, content string) (tableName, schemaName string, err error) {
	var pragmaSchema string
	if m := pragmaPattern.FindStringSubmatch(raw); m != nil {
		if parts := strings.Split(m[1], "."); len(parts) == 2 {
			pragmaSchema = parts[0]
		}
	}

	m := declarePattern.FindStringSubmatch(content)
	if m == nil {
		return "", "", ErrMissingDeclaration
	}

	if parts := strings.Split(m[1], "."); len(parts) == 2 {
		return parts[1], parts[0], nil
	}
	return m[1], pragmaSchema, nil
}
