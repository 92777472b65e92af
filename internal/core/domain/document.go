package domain

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// Document is a parsed query document.
//
// A Document is a small value: copying it is the cheap duplicate handed out
// by the cache on every hit. The wrapped AST is never exposed, only read-only
// views over it, so no holder of a Document can alter what other holders see.
type Document struct {
	text QueryText
	root *ast.QueryDocument
}

// NewDocument wraps a freshly parsed AST. The caller must not retain or
// modify root afterwards.
func NewDocument(text QueryText, root *ast.QueryDocument) Document {
	return Document{text: text, root: root}
}

// Text returns the query text the document was parsed from.
func (d Document) Text() QueryText {
	return d.text
}

// IsZero reports whether d holds no parsed document.
func (d Document) IsZero() bool {
	return d.root == nil
}

// Operations returns the operations in source order.
func (d Document) Operations() []Operation {
	if d.root == nil {
		return nil
	}
	ops := make([]Operation, len(d.root.Operations))
	for i, op := range d.root.Operations {
		ops[i] = Operation{def: op}
	}
	return ops
}

// Operation returns the operation with the given name. An empty name matches
// the anonymous operation.
func (d Document) Operation(name string) (Operation, bool) {
	if d.root == nil {
		return Operation{}, false
	}
	op := d.root.Operations.ForName(name)
	if op == nil {
		return Operation{}, false
	}
	return Operation{def: op}, true
}

// Fragments returns the fragment definitions in source order.
func (d Document) Fragments() []Fragment {
	if d.root == nil {
		return nil
	}
	frags := make([]Fragment, len(d.root.Fragments))
	for i, f := range d.root.Fragments {
		frags[i] = Fragment{def: f}
	}
	return frags
}

// Fragment returns the fragment definition with the given name.
func (d Document) Fragment(name string) (Fragment, bool) {
	if d.root == nil {
		return Fragment{}, false
	}
	f := d.root.Fragments.ForName(name)
	if f == nil {
		return Fragment{}, false
	}
	return Fragment{def: f}, true
}

// Format prints the document in canonical GraphQL form.
func (d Document) Format() string {
	if d.root == nil {
		return ""
	}
	var sb strings.Builder
	formatter.NewFormatter(&sb).FormatQueryDocument(d.root)
	return sb.String()
}

// Equal reports whether d and other are structurally identical, i.e. they
// print to the same canonical form. Source positions and formatting of the
// original text are ignored.
func (d Document) Equal(other Document) bool {
	if d.root == other.root {
		return true
	}
	if d.root == nil || other.root == nil {
		return false
	}
	return d.Format() == other.Format()
}

// OperationKind is the type of a GraphQL operation.
type OperationKind string

// Operation kinds.
const (
	OperationQuery        OperationKind = "query"
	OperationMutation     OperationKind = "mutation"
	OperationSubscription OperationKind = "subscription"
)

// Operation is a read-only view of one operation definition.
type Operation struct {
	def *ast.OperationDefinition
}

// Name returns the operation name, empty for anonymous operations.
func (o Operation) Name() string {
	if o.def == nil {
		return ""
	}
	return o.def.Name
}

// Kind returns the operation type. The shorthand form `{ ... }` is a query.
func (o Operation) Kind() OperationKind {
	if o.def == nil || o.def.Operation == "" {
		return OperationQuery
	}
	return OperationKind(o.def.Operation)
}

// VariableNames returns the declared variable names without the `$` prefix.
func (o Operation) VariableNames() []string {
	if o.def == nil || len(o.def.VariableDefinitions) == 0 {
		return nil
	}
	names := make([]string, len(o.def.VariableDefinitions))
	for i, v := range o.def.VariableDefinitions {
		names[i] = v.Variable
	}
	return names
}

// Selections returns the top-level selections of the operation.
func (o Operation) Selections() []Selection {
	if o.def == nil {
		return nil
	}
	return viewSelections(o.def.SelectionSet)
}

// Fragment is a read-only view of one fragment definition.
type Fragment struct {
	def *ast.FragmentDefinition
}

// Name returns the fragment name.
func (f Fragment) Name() string {
	if f.def == nil {
		return ""
	}
	return f.def.Name
}

// TypeCondition returns the type the fragment applies to.
func (f Fragment) TypeCondition() string {
	if f.def == nil {
		return ""
	}
	return f.def.TypeCondition
}

// Selections returns the selections of the fragment.
func (f Fragment) Selections() []Selection {
	if f.def == nil {
		return nil
	}
	return viewSelections(f.def.SelectionSet)
}

// SelectionKind distinguishes the three kinds of selection.
type SelectionKind uint8

const (
	// SelectionField is a field selection.
	SelectionField SelectionKind = iota
	// SelectionFragmentSpread is a `...Name` spread.
	SelectionFragmentSpread
	// SelectionInlineFragment is a `... on Type { }` inline fragment.
	SelectionInlineFragment
)

// String returns a lowercase name for the kind.
func (k SelectionKind) String() string {
	switch k {
	case SelectionField:
		return "field"
	case SelectionFragmentSpread:
		return "spread"
	case SelectionInlineFragment:
		return "inline"
	default:
		return "unknown"
	}
}

// Selection is a read-only view of one entry in a selection set.
type Selection struct {
	sel ast.Selection
}

// Kind returns the selection kind.
func (s Selection) Kind() SelectionKind {
	switch s.sel.(type) {
	case *ast.FragmentSpread:
		return SelectionFragmentSpread
	case *ast.InlineFragment:
		return SelectionInlineFragment
	default:
		return SelectionField
	}
}

// Name returns the field name for fields and the fragment name for spreads.
// Inline fragments have no name.
func (s Selection) Name() string {
	switch sel := s.sel.(type) {
	case *ast.Field:
		return sel.Name
	case *ast.FragmentSpread:
		return sel.Name
	default:
		return ""
	}
}

// Alias returns the response key of a field. It equals Name when the field
// is not aliased.
func (s Selection) Alias() string {
	if f, ok := s.sel.(*ast.Field); ok {
		if f.Alias != "" {
			return f.Alias
		}
		return f.Name
	}
	return ""
}

// TypeCondition returns the type condition of an inline fragment.
func (s Selection) TypeCondition() string {
	if inline, ok := s.sel.(*ast.InlineFragment); ok {
		return inline.TypeCondition
	}
	return ""
}

// Selections returns the nested selections, if any.
func (s Selection) Selections() []Selection {
	switch sel := s.sel.(type) {
	case *ast.Field:
		return viewSelections(sel.SelectionSet)
	case *ast.InlineFragment:
		return viewSelections(sel.SelectionSet)
	default:
		return nil
	}
}

func viewSelections(set ast.SelectionSet) []Selection {
	if len(set) == 0 {
		return nil
	}
	out := make([]Selection, len(set))
	for i, sel := range set {
		out[i] = Selection{sel: sel}
	}
	return out
}
