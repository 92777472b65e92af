package ports

import "go.trai.ch/gqlmemo/internal/core/domain"

// Parser turns query text into a parsed document.
//
// Implementations must be deterministic and free of side effects: the same
// text always yields a structurally identical document, and a failed call
// leaves nothing behind that could affect later calls. Syntax errors are
// reported as *domain.ParseError.
//
//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type Parser interface {
	// Parse parses a complete query document.
	Parse(query domain.QueryText) (domain.Document, error)
}

// ParserFunc adapts an ordinary function to the Parser interface.
type ParserFunc func(query domain.QueryText) (domain.Document, error)

// Parse calls f(query).
func (f ParserFunc) Parse(query domain.QueryText) (domain.Document, error) {
	return f(query)
}
