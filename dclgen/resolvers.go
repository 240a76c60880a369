package dclgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// attributeResolver pairs a predicate with a handler for one family of
// SQL column types. Resolvers are tried in order and the first match
// wins, so more specific predicates must come before broader ones.
type attributeResolver struct {
	matches func(decl string) bool
	resolve func(decl string) (Attribute, error)
}

// resolverChain returns the fixed resolver ordering. The fallback
// resolver accepts everything and must stay last.
func resolverChain() []attributeResolver {
	return []attributeResolver{
		{matchesString, resolveString},
		{matchesDecimal, resolveDecimal},
		{matchesFloat, resolveFloat},
		{matchesTemporal, resolveTemporal},
		{matchesLargeObject, resolveLargeObject},
		{matchesAny, resolveFallback},
	}
}

// DCLGEN emits the marker in uppercase; the check is deliberately
// case-sensitive.
func isNullable(decl string) bool {
	return !strings.Contains(decl, "NOT NULL")
}

func attributeName(decl string) string {
	return strings.Fields(decl)[0]
}

func intPtr(v int) *int {
	return &v
}

var charLengthPattern = regexp.MustCompile(`(?:VAR)?CHAR\s*\(\s*(\d+)\s*\)`)

func matchesString(decl string) bool {
	return strings.Contains(decl, "CHAR(") || strings.Contains(decl, "VARCHAR(")
}

func resolveString(decl string) (Attribute, error) {
	attr := Attribute{
		Name:     attributeName(decl),
		Type:     "CHAR",
		Nullable: isNullable(decl),
	}
	if strings.Contains(decl, "VARCHAR") {
		attr.Type = "VARCHAR"
	}
	if m := charLengthPattern.FindStringSubmatch(decl); m != nil {
		length, _ := strconv.Atoi(m[1])
		attr.Length = intPtr(length)
	}
	return attr, nil
}

var decimalPattern = regexp.MustCompile(`\(\s*(\d+)\s*(?:,\s*(\d+)\s*)?\)`)

func matchesDecimal(decl string) bool {
	fields := strings.Fields(decl)
	return len(fields) >= 2 && strings.HasPrefix(fields[1], "DEC")
}

func resolveDecimal(decl string) (Attribute, error) {
	m := decimalPattern.FindStringSubmatch(decl)
	if m == nil {
		return Attribute{}, fmt.Errorf("%w: %q", ErrInvalidDecimalFormat, decl)
	}

	precision, _ := strconv.Atoi(m[1])
	scale := 0
	if m[2] != "" {
		scale, _ = strconv.Atoi(m[2])
	}

	return Attribute{
		Name:      attributeName(decl),
		Type:      "DECIMAL",
		Precision: intPtr(precision),
		Scale:     intPtr(scale),
		Nullable:  isNullable(decl),
	}, nil
}

var floatPrecisionPattern = regexp.MustCompile(`(?i)FLOAT\s*\(\s*(\d+)\s*\)`)

func matchesFloat(decl string) bool {
	upper := strings.ToUpper(decl)
	return strings.Contains(upper, "FLOAT") ||
		strings.Contains(upper, "REAL") ||
		strings.Contains(upper, "DOUBLE")
}

func resolveFloat(decl string) (Attribute, error) {
	attr := Attribute{
		Name:     attributeName(decl),
		Nullable: isNullable(decl),
	}

	upper := strings.ToUpper(decl)
	switch {
	case strings.Contains(upper, "REAL"):
		attr.Type = "REAL"
	case strings.Contains(upper, "DOUBLE"):
		attr.Type = "DOUBLE"
	default:
		attr.Type = "FLOAT"
		if m := floatPrecisionPattern.FindStringSubmatch(decl); m != nil {
			precision, _ := strconv.Atoi(m[1])
			attr.Precision = intPtr(precision)
		}
	}

	return attr, nil
}

func matchesTemporal(decl string) bool {
	return strings.Contains(decl, "DATE") ||
		strings.Contains(decl, "TIME") ||
		strings.Contains(decl, "TIMESTAMP")
}

// TIMESTAMP must be checked before TIME since both contain the TIME
// substring. The declaration may span several normalized lines, e.g. a
// WITH TIME ZONE clause on a continuation line.
func resolveTemporal(decl string) (Attribute, error) {
	attr := Attribute{
		Name:     attributeName(decl),
		Type:     "DATE",
		Nullable: isNullable(decl),
	}
	switch {
	case strings.Contains(decl, "TIMESTAMP"):
		attr.Type = "TIMESTAMP"
	case strings.Contains(decl, "TIME"):
		attr.Type = "TIME"
	}
	return attr, nil
}

// The unit suffix inside the parentheses is consumed but its
// multiplier is not applied: BLOB(1M) stores length 1. This mirrors
// the behavior of existing DCLGEN consumers.
var lobLengthPatterns = map[string]*regexp.Regexp{
	"BLOB":   regexp.MustCompile(`BLOB\s*\(\s*(\d+)\s*[KMG]?\s*\)`),
	"CLOB":   regexp.MustCompile(`CLOB\s*\(\s*(\d+)\s*[KMG]?\s*\)`),
	"DBCLOB": regexp.MustCompile(`DBCLOB\s*\(\s*(\d+)\s*[KMG]?\s*\)`),
}

func matchesLargeObject(decl string) bool {
	return strings.Contains(decl, "BLOB") ||
		strings.Contains(decl, "CLOB") ||
		strings.Contains(decl, "DBCLOB")
}

func resolveLargeObject(decl string) (Attribute, error) {
	attr := Attribute{
		Name:     attributeName(decl),
		Type:     "BLOB",
		Nullable: isNullable(decl),
	}
	switch {
	case strings.Contains(decl, "DBCLOB"):
		attr.Type = "DBCLOB"
	case strings.Contains(decl, "CLOB"):
		attr.Type = "CLOB"
	}
	if m := lobLengthPatterns[attr.Type].FindStringSubmatch(decl); m != nil {
		length, _ := strconv.Atoi(m[1])
		attr.Length = intPtr(length)
	}
	return attr, nil
}

func matchesAny(string) bool {
	return true
}

// resolveFallback handles every type without dedicated grammar:
// INTEGER, SMALLINT, BIGINT and any SQL type this parser has never
// seen. Unknown types are not an error.
func resolveFallback(decl string) (Attribute, error) {
	fields := strings.Fields(decl)
	attr := Attribute{
		Name:     fields[0],
		Nullable: isNullable(decl),
	}
	if len(fields) > 1 {
		attr.Type = strings.ToUpper(fields[1])
	}
	return attr, nil
}
