// Package gql adapts the gqlparser library to ports.Parser.
package gql

import (
	"errors"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"
	"go.trai.ch/gqlmemo/internal/core/domain"
	"go.trai.ch/gqlmemo/internal/core/ports"
)

var _ ports.Parser = (*Parser)(nil)

// DefaultSourceName names the source in parser error locations.
const DefaultSourceName = "query.graphql"

// Parser parses GraphQL query documents with gqlparser.
// It holds no mutable state and is safe for concurrent use.
type Parser struct {
	sourceName string
}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{sourceName: DefaultSourceName}
}

// Parse parses query into a document. Syntax errors are returned as
// *domain.ParseError carrying the first reported location.
func (p *Parser) Parse(query domain.QueryText) (domain.Document, error) {
	// A fresh Source per call keeps parser state from leaking between calls.
	src := &ast.Source{Name: p.sourceName, Input: string(query)}

	doc, err := parser.ParseQuery(src)
	if err != nil {
		return domain.Document{}, translateError(err)
	}

	return domain.NewDocument(query, doc), nil
}

// translateError converts a parser failure into a domain.ParseError.
func translateError(err error) *domain.ParseError {
	pe := &domain.ParseError{
		Message: err.Error(),
		Err:     err,
	}

	var gqlErr *gqlerror.Error
	if errors.As(err, &gqlErr) {
		pe.Message = gqlErr.Message
		if len(gqlErr.Locations) > 0 {
			pe.Line = gqlErr.Locations[0].Line
			pe.Column = gqlErr.Locations[0].Column
		}
	}

	return pe
}
