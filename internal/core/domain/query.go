// Package domain contains the core types shared by the parse cache, its
// adapters and the application layer.
package domain

// QueryText is the raw text of one GraphQL query document.
//
// It is an exact cache key: two values are the same key only if their bytes
// are identical. No whitespace folding, comment stripping or other
// canonicalization is ever applied.
type QueryText string

// String returns the raw query text.
func (q QueryText) String() string {
	return string(q)
}

// Len returns the size of the query in bytes.
func (q QueryText) Len() int {
	return len(q)
}
