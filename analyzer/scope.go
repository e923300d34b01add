package analyzer

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/dequery/source"
)

// IsScope returns true for nodes opening a function-level lexical scope.
// Block declarations are collected with their function; Visible restricts a
// let, const or class to uses within its own block.
func IsScope(n *sitter.Node) bool {
	if n == nil {
		return false
	}
	switch n.Type() {
	case source.KindProgram,
		source.KindFunction, source.KindFunctionExpression, source.KindFunctionDeclaration,
		source.KindGeneratorFunction, source.KindGeneratorFunctionDecl,
		source.KindArrowFunction, source.KindMethodDefinition, source.KindClassStaticBlock:
		return true
	}
	return false
}

// EnclosingScope returns n if it opens a scope, otherwise its nearest enclosing scope
func EnclosingScope(n *sitter.Node) *sitter.Node {
	for n != nil && !IsScope(n) {
		n = n.Parent()
	}
	return n
}

// ScopeChain returns scopes visible from n, nearest first
func ScopeChain(n *sitter.Node) []*sitter.Node {
	var chain []*sitter.Node
	for scope := EnclosingScope(n); scope != nil; scope = EnclosingScope(scope.Parent()) {
		chain = append(chain, scope)
	}
	return chain
}

// isFunctionScope returns true for scopes with parameters
func isFunctionScope(n *sitter.Node) bool {
	return IsScope(n) && n.Type() != source.KindProgram && n.Type() != source.KindClassStaticBlock
}

// parameters returns the parameter list (or single arrow parameter) of a function scope
func parameters(scope *sitter.Node) *sitter.Node {
	if !isFunctionScope(scope) {
		return nil
	}
	if params := scope.ChildByFieldName("parameters"); params != nil {
		return params
	}
	return scope.ChildByFieldName("parameter")
}
