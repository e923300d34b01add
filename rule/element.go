package rule

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/dequery/analyzer"
	"github.com/viant/dequery/source"
)

// ElementCall is a wrapper method call whose receiver wraps exactly one element:
// $(el).method(args) with a foldable factory call, or bound.method(args) with bound = $(el)
type ElementCall struct {
	Call   *sitter.Node
	Method string
	Args   []*sitter.Node
	// Element is the native element expression replacing the receiver
	Element string
	// Provenance tells whether the receiver was folded (direct) or indexed (bound)
	Provenance analyzer.Provenance
}

// Statement returns true if the call result is discarded
func (e *ElementCall) Statement() bool {
	return source.IsStatement(e.Call)
}

// ElementCalls returns calls of the given wrapper methods with a resolvable single element receiver
func (c *Context) ElementCalls(methods ...string) []*ElementCall {
	var ret []*ElementCall
	for _, call := range source.FindAll(c.Doc.Root, source.KindCallExpression) {
		receiver, method, ok := c.Doc.MethodCall(call)
		if !ok || !contains(methods, method) {
			continue
		}
		args := source.Arguments(call)
		if source.HasSpread(args) {
			continue
		}
		element, provenance, ok := c.element(call, receiver)
		if !ok {
			continue
		}
		ret = append(ret, &ElementCall{Call: call, Method: method, Args: args, Element: element, Provenance: provenance})
	}
	return ret
}

// element resolves the native expression of the single element wrapped by receiver
func (c *Context) element(call, receiver *sitter.Node) (string, analyzer.Provenance, bool) {
	an, doc := c.Analyzer, c.Doc
	switch an.Classify(doc, receiver, doc.Root) {
	case analyzer.ProvenanceDirect:
		fold, ok := an.FoldInitializer(doc, doc.Root, receiver, analyzer.FoldOptions{ArgUses: 1, Claimed: c.Edits})
		if !ok || !source.Same(fold.Operation, call) || !an.IsElementLike(doc, fold.Argument) {
			return "", analyzer.ProvenanceUnknown, false
		}
		return doc.Operand(source.Unparen(fold.Argument)), analyzer.ProvenanceDirect, true
	case analyzer.ProvenanceBound:
		if c.Claimed(call) || !an.IsElementLike(doc, an.WrappedArgument(doc, receiver)) {
			return "", analyzer.ProvenanceUnknown, false
		}
		return doc.Text(receiver) + "[0]", analyzer.ProvenanceBound, true
	}
	return "", analyzer.ProvenanceUnknown, false
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
