package analyzer

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/dequery/source"
)

// Binding represents the unique, never reassigned declaration of a name
type Binding struct {
	Name        string
	Scope       *sitter.Node
	Declaration *Declaration
}

// Resolve returns the nearest scope visible from at declaring name, with all its declarations there.
// A nil scope means the name is not declared in the file.
func (a *Analyzer) Resolve(doc *source.Document, name string, at *sitter.Node) (*sitter.Node, []*Declaration) {
	for _, scope := range ScopeChain(at) {
		if declarations := a.Declarations(doc, scope, name); len(declarations) > 0 {
			return scope, declarations
		}
	}
	return nil, nil
}

// Declared returns true if name is declared anywhere in scope chain of at
func (a *Analyzer) Declared(doc *source.Document, name string, at *sitter.Node) bool {
	scope, _ := a.Resolve(doc, name, at)
	return scope != nil
}

// FindBinding returns binding of name visible from at, or nil when the name is undeclared,
// declared more than once in its scope, declared in a block not enclosing at, or reassigned
// anywhere within that scope
func (a *Analyzer) FindBinding(doc *source.Document, name string, at *sitter.Node) *Binding {
	scope, declarations := a.Resolve(doc, name, at)
	if scope == nil || len(declarations) != 1 {
		return nil
	}
	if !Visible(declarations[0], scope, at) {
		return nil
	}
	if a.Reassigned(doc, scope, name) {
		return nil
	}
	return &Binding{Name: name, Scope: scope, Declaration: declarations[0]}
}

// Reassigned returns true if name may be written anywhere within scope, nested closures included.
// The check is position insensitive: a write after the point of use still counts.
func (a *Analyzer) Reassigned(doc *source.Document, scope *sitter.Node, name string) bool {
	candidates := source.FindAll(scope,
		source.KindAssignmentExpression,
		source.KindAugmentedAssignment,
		source.KindUpdateExpression,
		source.KindForInStatement,
		source.KindWithStatement,
		source.KindCallExpression,
	)
	for _, n := range candidates {
		switch n.Type() {
		case source.KindAssignmentExpression:
			left := source.Unparen(n.ChildByFieldName("left"))
			if left == nil {
				continue
			}
			switch left.Type() {
			case source.KindIdentifier:
				if doc.Text(left) == name {
					return true
				}
			case source.KindObjectPattern, source.KindArrayPattern, source.KindObject, source.KindArray:
				if bindsName(doc, left, name) {
					return true
				}
			}
		case source.KindAugmentedAssignment:
			if doc.IsIdentifier(source.Unparen(n.ChildByFieldName("left")), name) {
				return true
			}
		case source.KindUpdateExpression:
			if doc.IsIdentifier(source.Unparen(n.ChildByFieldName("argument")), name) {
				return true
			}
		case source.KindForInStatement:
			if n.ChildByFieldName("kind") != nil {
				continue
			}
			if left := n.ChildByFieldName("left"); left != nil && bindsName(doc, left, name) {
				return true
			}
		case source.KindWithStatement:
			return true
		case source.KindCallExpression:
			if doc.IsIdentifier(source.Callee(n), "eval") {
				return true
			}
		}
	}
	return false
}

// Visible returns true if a declaration belonging to scope can be seen from at.
// Lookup merges block scopes into their function, so a let, const, class or block level
// function is only visible from within its own block: outside it the name denotes
// another binding.
func Visible(decl *Declaration, scope, at *sitter.Node) bool {
	switch decl.Kind {
	case DeclarationParameter, DeclarationImport:
		return true
	case DeclarationCatch, DeclarationLoop:
		return source.Contains(decl.Node, at)
	case DeclarationVariable, DeclarationPattern:
		statement := decl.Node.Parent()
		if statement == nil {
			return false
		}
		if statement.Type() == source.KindVariableDeclaration {
			return true
		}
		return source.Contains(block(statement, scope), at)
	case DeclarationClass:
		if decl.Node.Type() == source.KindClass {
			return source.Contains(decl.Node, at)
		}
	case DeclarationFunction:
		if source.Same(decl.Node, scope) {
			return true
		}
	}
	return source.Contains(block(decl.Node, scope), at)
}

// block returns the innermost block enclosing a declaration statement, or scope itself
func block(statement, scope *sitter.Node) *sitter.Node {
	for n := statement.Parent(); n != nil; n = n.Parent() {
		if source.Same(n, scope) {
			return n
		}
		switch n.Type() {
		case source.KindStatementBlock, source.KindSwitchBody, source.KindForStatement,
			source.KindForInStatement, source.KindCatchClause:
			return n
		}
	}
	return scope
}
