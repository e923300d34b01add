package source

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// JavaScript node kinds used across the code base
const (
	KindProgram                  = "program"
	KindComment                  = "comment"
	KindExpressionStatement      = "expression_statement"
	KindCallExpression           = "call_expression"
	KindNewExpression            = "new_expression"
	KindMemberExpression         = "member_expression"
	KindSubscriptExpression      = "subscript_expression"
	KindParenthesizedExpression  = "parenthesized_expression"
	KindBinaryExpression         = "binary_expression"
	KindSequenceExpression       = "sequence_expression"
	KindArguments                = "arguments"
	KindSpreadElement            = "spread_element"
	KindIdentifier               = "identifier"
	KindPropertyIdentifier       = "property_identifier"
	KindShorthandProperty        = "shorthand_property_identifier"
	KindShorthandPropertyPattern = "shorthand_property_identifier_pattern"
	KindOptionalChain            = "optional_chain"
	KindString                   = "string"
	KindStringFragment           = "string_fragment"
	KindTemplateString           = "template_string"
	KindTemplateSubstitution     = "template_substitution"
	KindNumber                   = "number"
	KindRegex                    = "regex"
	KindTrue                     = "true"
	KindFalse                    = "false"
	KindNull                     = "null"
	KindUndefined                = "undefined"
	KindThis                     = "this"
	KindArray                    = "array"
	KindObject                   = "object"
	KindClass                    = "class"
	KindClassDeclaration         = "class_declaration"
	KindFunction                 = "function"
	KindFunctionExpression       = "function_expression"
	KindFunctionDeclaration      = "function_declaration"
	KindGeneratorFunction        = "generator_function"
	KindGeneratorFunctionDecl    = "generator_function_declaration"
	KindArrowFunction            = "arrow_function"
	KindMethodDefinition         = "method_definition"
	KindClassStaticBlock         = "class_static_block"
	KindFormalParameters         = "formal_parameters"
	KindVariableDeclarator       = "variable_declarator"
	KindVariableDeclaration      = "variable_declaration"
	KindLexicalDeclaration       = "lexical_declaration"
	KindForStatement             = "for_statement"
	KindSwitchBody               = "switch_body"
	KindSwitchCase               = "switch_case"
	KindSwitchDefault            = "switch_default"
	KindTryStatement             = "try_statement"
	KindSwitchStatement          = "switch_statement"
	KindAssignmentExpression     = "assignment_expression"
	KindAugmentedAssignment      = "augmented_assignment_expression"
	KindUpdateExpression         = "update_expression"
	KindForInStatement           = "for_in_statement"
	KindCatchClause              = "catch_clause"
	KindWithStatement            = "with_statement"
	KindReturnStatement          = "return_statement"
	KindImportStatement          = "import_statement"
	KindImportClause             = "import_clause"
	KindNamespaceImport          = "namespace_import"
	KindObjectPattern            = "object_pattern"
	KindArrayPattern             = "array_pattern"
	KindStatementBlock           = "statement_block"
	KindAssignmentPattern        = "assignment_pattern"
	KindRestPattern              = "rest_pattern"
	KindPairPattern              = "pair_pattern"
	KindUnaryExpression          = "unary_expression"
	KindTernaryExpression        = "ternary_expression"
	KindAwaitExpression          = "await_expression"
	KindYieldExpression          = "yield_expression"
)

// FindAll returns all nodes of the given kinds within scope in pre-order
func FindAll(scope *sitter.Node, kinds ...string) []*sitter.Node {
	if scope == nil {
		return nil
	}
	var result []*sitter.Node
	stack := []*sitter.Node{scope}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(kinds) == 0 || isKind(n, kinds) {
			result = append(result, n)
		}
		for i := int(n.ChildCount()) - 1; i >= 0; i-- {
			if child := n.Child(i); child != nil {
				stack = append(stack, child)
			}
		}
	}
	return result
}

func isKind(n *sitter.Node, kinds []string) bool {
	kind := n.Type()
	for _, candidate := range kinds {
		if kind == candidate {
			return true
		}
	}
	return false
}

// Same returns true if both nodes denote the same node of one parse
func Same(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Type() == b.Type() && a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}

// Contains returns true if inner lies within outer
func Contains(outer, inner *sitter.Node) bool {
	if outer == nil || inner == nil {
		return false
	}
	return outer.StartByte() <= inner.StartByte() && inner.EndByte() <= outer.EndByte()
}

// Unparen skips enclosing parentheses: ((x)) -> x
func Unparen(n *sitter.Node) *sitter.Node {
	for n != nil && n.Type() == KindParenthesizedExpression {
		inner := firstNamed(n)
		if inner == nil {
			return n
		}
		n = inner
	}
	return n
}

// Parent returns the first ancestor that is not a parenthesized expression
func Parent(n *sitter.Node) *sitter.Node {
	if n == nil {
		return nil
	}
	parent := n.Parent()
	for parent != nil && parent.Type() == KindParenthesizedExpression {
		parent = parent.Parent()
	}
	return parent
}

// Outer returns the outermost parenthesized expression wrapping n, or n itself
func Outer(n *sitter.Node) *sitter.Node {
	for n != nil {
		parent := n.Parent()
		if parent == nil || parent.Type() != KindParenthesizedExpression {
			return n
		}
		n = parent
	}
	return n
}

// IsStatement returns true if the expression value is discarded by an expression statement
func IsStatement(n *sitter.Node) bool {
	parent := Parent(n)
	return parent != nil && parent.Type() == KindExpressionStatement
}

// NamedChildren returns named children other than comments
func NamedChildren(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	var result []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child == nil || child.Type() == KindComment {
			continue
		}
		result = append(result, child)
	}
	return result
}

func firstNamed(n *sitter.Node) *sitter.Node {
	children := NamedChildren(n)
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// Arguments returns call or new expression arguments
func Arguments(call *sitter.Node) []*sitter.Node {
	if call == nil {
		return nil
	}
	args := call.ChildByFieldName("arguments")
	if args == nil || args.Type() != KindArguments {
		return nil
	}
	return NamedChildren(args)
}

// HasSpread returns true if any argument is spread
func HasSpread(args []*sitter.Node) bool {
	for _, arg := range args {
		if arg.Type() == KindSpreadElement {
			return true
		}
	}
	return false
}

// Callee returns the function node of a call expression, without parentheses
func Callee(call *sitter.Node) *sitter.Node {
	if call == nil || call.Type() != KindCallExpression {
		return nil
	}
	return Unparen(call.ChildByFieldName("function"))
}

// Member returns object and property name of a plain (non computed, non optional) member expression
func (d *Document) Member(n *sitter.Node) (object *sitter.Node, property string, ok bool) {
	if n == nil || n.Type() != KindMemberExpression {
		return nil, "", false
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); child != nil && child.Type() == KindOptionalChain {
			return nil, "", false
		}
	}
	object = n.ChildByFieldName("object")
	prop := n.ChildByFieldName("property")
	if object == nil || prop == nil || prop.Type() != KindPropertyIdentifier {
		return nil, "", false
	}
	return object, d.Text(prop), true
}

// MethodCall matches receiver.method(args) and returns the receiver (without parentheses) and method name
func (d *Document) MethodCall(call *sitter.Node) (receiver *sitter.Node, method string, ok bool) {
	callee := Callee(call)
	object, property, ok := d.Member(callee)
	if !ok {
		return nil, "", false
	}
	return Unparen(object), property, true
}

// IsIdentifier returns true if n is an identifier with the given name
func (d *Document) IsIdentifier(n *sitter.Node, name string) bool {
	return n != nil && n.Type() == KindIdentifier && d.Text(n) == name
}

// StringValue returns the value of a string literal without escape sequences
func (d *Document) StringValue(n *sitter.Node) (string, bool) {
	n = Unparen(n)
	if n == nil || n.Type() != KindString {
		return "", false
	}
	for _, child := range NamedChildren(n) {
		if child.Type() != KindStringFragment {
			return "", false
		}
	}
	text := d.Text(n)
	if len(text) < 2 {
		return "", false
	}
	return text[1 : len(text)-1], true
}

// Quote returns the quote character of a string literal
func (d *Document) Quote(n *sitter.Node) string {
	text := d.Text(Unparen(n))
	if text == "" {
		return "'"
	}
	return text[:1]
}

// Quoted returns value quoted the same way as literal
func (d *Document) Quoted(literal *sitter.Node, value string) string {
	quote := d.Quote(literal)
	return quote + value + quote
}

// IsLiteral returns true for primitive literal expressions
func IsLiteral(n *sitter.Node) bool {
	n = Unparen(n)
	if n == nil {
		return false
	}
	switch n.Type() {
	case KindString, KindNumber, KindTrue, KindFalse, KindNull, KindUndefined, KindRegex:
		return true
	case KindTemplateString:
		for _, child := range NamedChildren(n) {
			if child.Type() == KindTemplateSubstitution {
				return false
			}
		}
		return true
	}
	return false
}

// IsPrimary returns true if n can be used as the object of a member expression without parentheses
func IsPrimary(n *sitter.Node) bool {
	if n == nil {
		return false
	}
	switch n.Type() {
	case KindIdentifier, KindThis, KindMemberExpression, KindSubscriptExpression,
		KindCallExpression, KindParenthesizedExpression, KindString, KindTemplateString,
		KindArray, KindNull, KindTrue, KindFalse, KindUndefined:
		return true
	}
	return false
}

// Operand returns node text suitable as member expression object
func (d *Document) Operand(n *sitter.Node) string {
	text := d.Text(n)
	if IsPrimary(n) {
		return text
	}
	return "(" + text + ")"
}
