package analyzer

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/dequery/source"
)

// DeclarationKind classifies how a name is introduced into a scope
type DeclarationKind int

const (
	// DeclarationVariable is a simple var/let/const binding: `let el = init`
	DeclarationVariable DeclarationKind = iota + 1
	// DeclarationPattern is a destructuring or rest target
	DeclarationPattern
	DeclarationParameter
	DeclarationFunction
	DeclarationClass
	DeclarationImport
	DeclarationCatch
	// DeclarationLoop is a for-in/for-of head: `for (const el of list)`
	DeclarationLoop
)

var declarationKindNames = map[DeclarationKind]string{
	DeclarationVariable:  "variable",
	DeclarationPattern:   "pattern",
	DeclarationParameter: "parameter",
	DeclarationFunction:  "function",
	DeclarationClass:     "class",
	DeclarationImport:    "import",
	DeclarationCatch:     "catch",
	DeclarationLoop:      "loop",
}

func (k DeclarationKind) String() string {
	if name, ok := declarationKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Declaration represents a single declaration of a name
type Declaration struct {
	Kind DeclarationKind
	Node *sitter.Node
	// Init is the initializer of a variable declaration, if any
	Init *sitter.Node
	// Module is the import source or required module
	Module string
	// Default is set for default imports: `import $ from 'jquery'`
	Default bool
}

// Declarations returns all declarations of name belonging to scope, excluding nested function scopes
func (a *Analyzer) Declarations(doc *source.Document, scope *sitter.Node, name string) []*Declaration {
	if scope == nil {
		return nil
	}
	var ret []*Declaration
	if isFunctionScope(scope) {
		switch scope.Type() {
		case source.KindFunction, source.KindFunctionExpression, source.KindGeneratorFunction:
			if nameNode := scope.ChildByFieldName("name"); doc.IsIdentifier(nameNode, name) {
				ret = append(ret, &Declaration{Kind: DeclarationFunction, Node: scope})
			}
		}
		if params := parameters(scope); params != nil && bindsName(doc, params, name) {
			ret = append(ret, &Declaration{Kind: DeclarationParameter, Node: params})
		}
	}

	var stack []*sitter.Node
	pushChildren := func(n *sitter.Node) {
		for i := int(n.ChildCount()) - 1; i >= 0; i-- {
			if child := n.Child(i); child != nil {
				stack = append(stack, child)
			}
		}
	}
	pushChildren(scope)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n.Type() {
		case source.KindFunctionDeclaration, source.KindGeneratorFunctionDecl:
			if doc.IsIdentifier(n.ChildByFieldName("name"), name) {
				ret = append(ret, &Declaration{Kind: DeclarationFunction, Node: n})
			}
			continue
		case source.KindFunction, source.KindFunctionExpression, source.KindGeneratorFunction,
			source.KindArrowFunction, source.KindMethodDefinition, source.KindClassStaticBlock:
			continue
		case source.KindClassDeclaration, source.KindClass:
			if doc.IsIdentifier(n.ChildByFieldName("name"), name) {
				ret = append(ret, &Declaration{Kind: DeclarationClass, Node: n})
			}
		case source.KindVariableDeclarator:
			target := n.ChildByFieldName("name")
			if doc.IsIdentifier(target, name) {
				ret = append(ret, &Declaration{Kind: DeclarationVariable, Node: n, Init: n.ChildByFieldName("value")})
			} else if target != nil && target.Type() != source.KindIdentifier && bindsName(doc, target, name) {
				ret = append(ret, &Declaration{Kind: DeclarationPattern, Node: n})
			}
		case source.KindCatchClause:
			if param := n.ChildByFieldName("parameter"); param != nil && bindsName(doc, param, name) {
				ret = append(ret, &Declaration{Kind: DeclarationCatch, Node: n})
			}
		case source.KindForInStatement:
			if n.ChildByFieldName("kind") != nil {
				if left := n.ChildByFieldName("left"); left != nil && bindsName(doc, left, name) {
					ret = append(ret, &Declaration{Kind: DeclarationLoop, Node: n})
				}
			}
		case source.KindImportStatement:
			if decl := importDeclaration(doc, n, name); decl != nil {
				ret = append(ret, decl)
			}
			continue
		}
		pushChildren(n)
	}
	return ret
}

// bindsName returns true if any identifier within n is name
func bindsName(doc *source.Document, n *sitter.Node, name string) bool {
	for _, candidate := range source.FindAll(n, source.KindIdentifier, source.KindShorthandPropertyPattern, source.KindShorthandProperty) {
		if doc.Text(candidate) == name {
			return true
		}
	}
	return false
}

func importDeclaration(doc *source.Document, n *sitter.Node, name string) *Declaration {
	var module string
	if src := n.ChildByFieldName("source"); src != nil {
		module, _ = doc.StringValue(src)
	}
	for _, clause := range source.NamedChildren(n) {
		if clause.Type() != source.KindImportClause || !bindsName(doc, clause, name) {
			continue
		}
		decl := &Declaration{Kind: DeclarationImport, Node: clause, Module: module}
		for _, child := range source.NamedChildren(clause) {
			if doc.IsIdentifier(child, name) {
				decl.Default = true
			}
		}
		return decl
	}
	return nil
}
