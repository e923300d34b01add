package analyzer

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/dequery/source"
)

// maxFactoryDepth limits alias hops followed while recognising the factory
const maxFactoryDepth = 4

// IsFactoryReference returns true if n provably denotes the wrapper factory function.
// Recognised forms:
//
//	$                                // undeclared global factory name, never assigned
//	window.jQuery                    // global object property
//	import $ from 'jquery'           // default import of a trusted module
//	const $ = require('jquery')      // CommonJS require of a trusted module
//	const jq = jQuery                // alias of another factory reference
//	(function ($) { ... })(jQuery)   // IIFE parameter bound to a factory argument
//	jQuery(function ($) { ... })     // ready callback receiving the factory
func (a *Analyzer) IsFactoryReference(doc *source.Document, n *sitter.Node) bool {
	return a.isFactoryReference(doc, n, 0)
}

func (a *Analyzer) isFactoryReference(doc *source.Document, n *sitter.Node, depth int) bool {
	n = source.Unparen(n)
	if n == nil || depth > maxFactoryDepth {
		return false
	}
	switch n.Type() {
	case source.KindIdentifier:
	case source.KindMemberExpression:
		object, property, ok := doc.Member(n)
		if !ok || !a.IsFactoryName(property) || !doc.IsIdentifier(source.Unparen(object), "window") {
			return false
		}
		return !a.Declared(doc, "window", n)
	default:
		return false
	}

	name := doc.Text(n)
	if !a.Declared(doc, name, n) {
		return a.IsFactoryName(name) && !a.Reassigned(doc, doc.Root, name)
	}
	binding := a.FindBinding(doc, name, n)
	if binding == nil {
		return false
	}
	scope, decl := binding.Scope, binding.Declaration
	switch decl.Kind {
	case DeclarationImport:
		return decl.Default && a.modules[decl.Module]
	case DeclarationVariable:
		if decl.Init == nil {
			return false
		}
		if module, ok := a.requiredModule(doc, decl.Init); ok {
			return a.modules[module]
		}
		return a.isFactoryReference(doc, decl.Init, depth+1)
	case DeclarationParameter:
		return a.isFactoryParameter(doc, scope, name, depth)
	}
	return false
}

// requiredModule matches require('module') with an undeclared require
func (a *Analyzer) requiredModule(doc *source.Document, n *sitter.Node) (string, bool) {
	n = source.Unparen(n)
	if n == nil || n.Type() != source.KindCallExpression {
		return "", false
	}
	callee := source.Callee(n)
	if !doc.IsIdentifier(callee, "require") || a.Declared(doc, "require", n) {
		return "", false
	}
	args := source.Arguments(n)
	if len(args) != 1 {
		return "", false
	}
	return doc.StringValue(args[0])
}

// isFactoryParameter checks the argument bound to a parameter of an immediately invoked function
func (a *Analyzer) isFactoryParameter(doc *source.Document, fn *sitter.Node, name string, depth int) bool {
	index := parameterIndex(doc, parameters(fn), name)
	if index < 0 {
		return false
	}
	call := source.Outer(fn).Parent()
	if call == nil || call.Type() != source.KindCallExpression {
		if call != nil && call.Type() == source.KindArguments {
			return index == 0 && a.isReadyCallback(doc, fn, call, depth)
		}
		return false
	}
	if !source.Same(source.Callee(call), fn) {
		return false
	}
	args := source.Arguments(call)
	if source.HasSpread(args) || index >= len(args) {
		return false
	}
	return a.isFactoryReference(doc, args[index], depth+1)
}

// isReadyCallback matches jQuery(function ($) { ... }) where the callback is the only argument
func (a *Analyzer) isReadyCallback(doc *source.Document, fn, args *sitter.Node, depth int) bool {
	call := args.Parent()
	if call == nil || call.Type() != source.KindCallExpression {
		return false
	}
	values := source.NamedChildren(args)
	if len(values) != 1 || !source.Same(source.Unparen(values[0]), fn) {
		return false
	}
	return a.isFactoryReference(doc, source.Callee(call), depth+1)
}

// parameterIndex returns position of a simple parameter name, or -1 when absent or bound by a pattern
func parameterIndex(doc *source.Document, params *sitter.Node, name string) int {
	if params == nil {
		return -1
	}
	if params.Type() == source.KindIdentifier {
		if doc.Text(params) == name {
			return 0
		}
		return -1
	}
	for i, param := range source.NamedChildren(params) {
		if doc.IsIdentifier(param, name) {
			return i
		}
		if bindsName(doc, param, name) {
			return -1
		}
	}
	return -1
}
