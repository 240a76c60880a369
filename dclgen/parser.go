// Package dclgen parses DB2 DCLGEN output into a structured table
// description. DCLGEN files embed an SQL DECLARE TABLE block inside
// COBOL fixed-format text; the parser normalizes the fixed-format
// columns away, extracts the table identity, splits the declaration
// block and resolves each column declaration to a typed attribute.
package dclgen

import (
	"fmt"
)

// Parser converts DCLGEN text into a Table. The resolver chain is
// fixed at construction time and holds no per-call state, so a single
// Parser is safe for concurrent use.
type Parser struct {
	resolvers []attributeResolver
}

// NewParser creates a parser with the standard resolver chain.
func NewParser() *Parser {
	return &Parser{resolvers: resolverChain()}
}

// Parse parses one DCLGEN document. It never returns a partial
// result: any failure in identity extraction, block location or
// attribute resolution fails the whole parse.
func (p *Parser) Parse(raw string) (*Table, error) {
	content := NormalizeSource(raw)

	tableName, schemaName, err := extractIdentity(raw, content)
	if err != nil {
		return nil, err
	}

	body, err := extractDeclarationBody(content)
	if err != nil {
		return nil, err
	}

	var attributes []Attribute
	for _, decl := range splitDeclarations(body) {
		attr, err := p.resolveAttribute(decl)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve declaration: %w", err)
		}
		attributes = append(attributes, attr)
	}

	return &Table{
		TableName:  tableName,
		SchemaName: schemaName,
		Attributes: attributes,
	}, nil
}

func (p *Parser) resolveAttribute(decl string) (Attribute, error) {
	for _, r := range p.resolvers {
		if r.matches(decl) {
			return r.resolve(decl)
		}
	}
	// unreachable: the fallback resolver accepts every declaration
	return Attribute{}, fmt.Errorf("no resolver accepted declaration %q", decl)
}
