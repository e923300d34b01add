package analyzer

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/dequery/source"
)

// Provenance describes how an expression is known to denote a wrapper value
type Provenance int

const (
	// ProvenanceUnknown means the expression is not provably a wrapper
	ProvenanceUnknown Provenance = iota
	// ProvenanceDirect is a factory call: $(el)
	ProvenanceDirect
	// ProvenanceBound is an identifier whose binding is initialized with a factory call
	ProvenanceBound
)

func (p Provenance) String() string {
	switch p {
	case ProvenanceDirect:
		return "direct"
	case ProvenanceBound:
		return "bound"
	}
	return "unknown"
}

// IsWrapperCall returns true for a factory call with exactly one non spread argument
func (a *Analyzer) IsWrapperCall(doc *source.Document, n *sitter.Node) bool {
	n = source.Unparen(n)
	if n == nil || n.Type() != source.KindCallExpression {
		return false
	}
	args := source.Arguments(n)
	if len(args) != 1 || source.HasSpread(args) {
		return false
	}
	callee := source.Callee(n)
	if callee == nil || callee.Type() != source.KindIdentifier && callee.Type() != source.KindMemberExpression {
		return false
	}
	return a.IsFactoryReference(doc, callee)
}

// Classify returns provenance of expr; expressions outside root are unknown.
// The verdict is recomputed from the current tree on every call.
func (a *Analyzer) Classify(doc *source.Document, expr, root *sitter.Node) Provenance {
	expr = source.Unparen(expr)
	if expr == nil {
		return ProvenanceUnknown
	}
	if root != nil && !source.Contains(root, expr) {
		return ProvenanceUnknown
	}
	switch expr.Type() {
	case source.KindCallExpression:
		if a.IsWrapperCall(doc, expr) {
			return ProvenanceDirect
		}
	case source.KindIdentifier:
		if init := a.ResolveAlias(doc, doc.Text(expr), expr); init != nil && a.IsWrapperCall(doc, init) {
			return ProvenanceBound
		}
	}
	return ProvenanceUnknown
}

// IsWrapperExpression returns true if expr denotes a wrapper value, directly or through an alias
func (a *Analyzer) IsWrapperExpression(doc *source.Document, expr, root *sitter.Node) bool {
	return a.Classify(doc, expr, root) != ProvenanceUnknown
}

// WrappedArgument returns the single argument of a wrapper expression, following one alias
func (a *Analyzer) WrappedArgument(doc *source.Document, expr *sitter.Node) *sitter.Node {
	call := a.resolveIdentifier(doc, expr)
	if !a.IsWrapperCall(doc, call) {
		return nil
	}
	return source.Arguments(call)[0]
}
