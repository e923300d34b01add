package analyzer

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/dequery/source"
)

// collectionProperties hold multiple nodes; wrapping them yields a multi element wrapper
var collectionProperties = map[string]bool{
	"children":   true,
	"childNodes": true,
	"elements":   true,
	"options":    true,
	"rows":       true,
	"cells":      true,
	"forms":      true,
	"images":     true,
	"links":      true,
}

// IsElementLike returns true if the factory argument plausibly denotes a single DOM node.
// An identifier qualifies only when it is an undeclared global or its initializer does.
// Selectors, markup, arrays, functions and collection queries are rejected: the factory
// would produce a wrapper over zero or many nodes, or register a ready callback.
func (a *Analyzer) IsElementLike(doc *source.Document, arg *sitter.Node) bool {
	return a.isElementLike(doc, arg, 0)
}

func (a *Analyzer) isElementLike(doc *source.Document, arg *sitter.Node, depth int) bool {
	arg = source.Unparen(arg)
	if arg == nil || depth > maxFactoryDepth {
		return false
	}
	switch arg.Type() {
	case source.KindThis:
		return true
	case source.KindIdentifier:
		name := doc.Text(arg)
		if name == "undefined" {
			return false
		}
		if (name == "document" || name == "window") && !a.Declared(doc, name, arg) {
			return false
		}
		if init := a.ResolveAlias(doc, name, arg); init != nil {
			return a.isElementLike(doc, init, depth+1)
		}
		// parameters, catch and loop variables, patterns and reassigned names may hold a selector
		return !a.Declared(doc, name, arg)
	case source.KindMemberExpression:
		_, property, ok := doc.Member(arg)
		if !ok {
			return false
		}
		return !collectionProperties[property]
	case source.KindSubscriptExpression:
		return true
	case source.KindCallExpression:
		if a.IsWrapperCall(doc, arg) {
			return false
		}
		if _, method, ok := doc.MethodCall(arg); ok && isCollectionQuery(method) {
			return false
		}
		return true
	}
	return false
}

func isCollectionQuery(method string) bool {
	return method == "querySelectorAll" || strings.HasPrefix(method, "getElementsBy")
}
