package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzer_ResolveAlias(t *testing.T) {
	var tests = []struct {
		description string
		code        string
		at          target
		expect      string
	}{
		{
			description: "single const initializer",
			code:        "const el = $(node); el.show(); el.hide();",
			at:          ident("el", 2),
			expect:      "$(node)",
		},
		{
			description: "let never reassigned",
			code:        "let el = $(node);\nel.show();",
			at:          ident("el", 1),
			expect:      "$(node)",
		},
		{
			description: "plain reassignment",
			code:        "let el = $(node); el = other(); el.show();",
			at:          ident("el", 2),
		},
		{
			description: "reassignment after use still counts",
			code:        "let el = $(node); el.show(); el = other();",
			at:          ident("el", 1),
		},
		{
			description: "reassignment in closure",
			code:        "let el = $(node);\nfunction reset() { el = null; }\nel.show();",
			at:          ident("el", 2),
		},
		{
			description: "compound assignment",
			code:        "let el = $(node); el ||= other(); el.show();",
			at:          ident("el", 2),
		},
		{
			description: "update expression",
			code:        "let n = 1; n++; use(n);",
			at:          ident("n", 2),
		},
		{
			description: "array destructuring assignment",
			code:        "let el = $(node); [el] = list; el.show();",
			at:          ident("el", 2),
		},
		{
			description: "for-of head without declaration",
			code:        "let el = $(node); for (el of list) {} el.show();",
			at:          ident("el", 2),
		},
		{
			description: "multiple declarations",
			code:        "var el = $(a); var el = $(b); el.show();",
			at:          ident("el", 2),
		},
		{
			description: "nested block declarations merge into function scope",
			code:        "const el = $(a); { let el = $(b); } el.show();",
			at:          ident("el", 2),
		},
		{
			description: "no initializer",
			code:        "let el; el.show();",
			at:          ident("el", 1),
		},
		{
			description: "object destructuring",
			code:        "const { el } = options; el.show();",
			at:          ident("el", 0),
		},
		{
			description: "array destructuring",
			code:        "const [el] = list; el.show();",
			at:          ident("el", 1),
		},
		{
			description: "rest target",
			code:        "const [first, ...el] = list; el.show();",
			at:          ident("el", 1),
		},
		{
			description: "function parameter",
			code:        "function f(el) { el.show(); }",
			at:          ident("el", 1),
		},
		{
			description: "inner declaration shadows outer",
			code:        "const el = $(a);\nfunction f() { const el = $(b); el.show(); }",
			at:          ident("el", 2),
			expect:      "$(b)",
		},
		{
			description: "parameter shadows outer declaration",
			code:        "const el = $(a);\nfunction f(el) { el.show(); }",
			at:          ident("el", 2),
		},
		{
			description: "outer declaration visible from closure",
			code:        "const el = $(a);\nlist.forEach(() => el.show());",
			at:          ident("el", 1),
			expect:      "$(a)",
		},
		{
			description: "block declaration is not visible after its block",
			code:        "const el = widget;\nfunction init() { if (ready) { const el = $(node); el.hide(); } el.show(); }",
			at:          ident("el", 3),
		},
		{
			description: "block declaration is visible inside its block",
			code:        "const el = widget;\nfunction init() { if (ready) { const el = $(node); el.hide(); } el.show(); }",
			at:          ident("el", 2),
			expect:      "$(node)",
		},
		{
			description: "for statement let is visible in loop body only",
			code:        "for (let el = $(a); ok(); ) { el.show(); } el.hide();",
			at:          ident("el", 2),
		},
		{
			description: "for statement let in loop body",
			code:        "for (let el = $(a); ok(); ) { el.show(); }",
			at:          ident("el", 1),
			expect:      "$(a)",
		},
		{
			description: "switch case declaration is not visible outside switch",
			code:        "switch (mode) { case 1: const el = $(a); break; } el.show();",
			at:          ident("el", 1),
		},
		{
			description: "var in block is function scoped",
			code:        "function f() { if (ok) { var el = $(a); } el.show(); }",
			at:          ident("el", 1),
			expect:      "$(a)",
		},
		{
			description: "eval in scope",
			code:        "const el = $(a); eval(code); el.show();",
			at:          ident("el", 1),
		},
		{
			description: "with statement in scope",
			code:        "const el = $(a); with (obj) { el.show(); }",
			at:          ident("el", 1),
		},
		{
			description: "undeclared",
			code:        "el.show();",
			at:          ident("el", 0),
		},
		{
			description: "member assignment is not a reassignment",
			code:        "const el = $(a); el.prop = 1; el.show();",
			at:          ident("el", 2),
			expect:      "$(a)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			doc := parse(t, tc.code)
			at := find(t, doc, tc.at)
			actual := New().ResolveAlias(doc, tc.at.text, at)
			if tc.expect == "" {
				assert.Nil(t, actual)
				return
			}
			assert.EqualValues(t, tc.expect, doc.Text(actual))
		})
	}
}

func TestAnalyzer_Declarations(t *testing.T) {
	var tests = []struct {
		description string
		code        string
		at          target
		name        string
		expect      []DeclarationKind
		module      string
		isDefault   bool
	}{
		{
			description: "variable",
			code:        "var a = 1; a;",
			at:          ident("a", 1),
			name:        "a",
			expect:      []DeclarationKind{DeclarationVariable},
		},
		{
			description: "default import",
			code:        "import $ from 'jquery';\n$(el);",
			at:          ident("$", 1),
			name:        "$",
			expect:      []DeclarationKind{DeclarationImport},
			module:      "jquery",
			isDefault:   true,
		},
		{
			description: "named import",
			code:        "import { $ } from 'cash-dom';\n$(el);",
			at:          ident("$", 1),
			name:        "$",
			expect:      []DeclarationKind{DeclarationImport},
			module:      "cash-dom",
		},
		{
			description: "function and class",
			code:        "function a() {}\nclass a {}\na;",
			at:          ident("a", 2),
			name:        "a",
			expect:      []DeclarationKind{DeclarationFunction, DeclarationClass},
		},
		{
			description: "catch parameter",
			code:        "try { run(); } catch (e) { log(e); }",
			at:          ident("e", 1),
			name:        "e",
			expect:      []DeclarationKind{DeclarationCatch},
		},
		{
			description: "loop head",
			code:        "for (const item of list) { use(item); }",
			at:          ident("item", 1),
			name:        "item",
			expect:      []DeclarationKind{DeclarationLoop},
		},
		{
			description: "pattern",
			code:        "const { a, b: [c] } = o; use(c);",
			at:          ident("c", 1),
			name:        "c",
			expect:      []DeclarationKind{DeclarationPattern},
		},
		{
			description: "arrow parameter",
			code:        "const f = el => el.show();",
			at:          ident("el", 1),
			name:        "el",
			expect:      []DeclarationKind{DeclarationParameter},
		},
		{
			description: "declarations of nested functions are invisible",
			code:        "function f() { var a = 1; }\na;",
			at:          ident("a", 1),
			name:        "a",
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			doc := parse(t, tc.code)
			an := New()
			_, declarations := an.Resolve(doc, tc.name, find(t, doc, tc.at))
			var actual []DeclarationKind
			for _, decl := range declarations {
				actual = append(actual, decl.Kind)
			}
			assert.EqualValues(t, tc.expect, actual)
			if len(declarations) == 1 && declarations[0].Kind == DeclarationImport {
				assert.EqualValues(t, tc.module, declarations[0].Module)
				assert.EqualValues(t, tc.isDefault, declarations[0].Default)
			}
		})
	}
}

func TestDeclarationKind_String(t *testing.T) {
	assert.EqualValues(t, "pattern", DeclarationPattern.String())
	assert.EqualValues(t, "unknown", DeclarationKind(0).String())
}
