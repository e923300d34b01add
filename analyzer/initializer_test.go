package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/dequery/source"
)

func TestAnalyzer_FoldInitializer(t *testing.T) {
	var tests = []struct {
		description string
		code        string
		candidate   string
		options     FoldOptions
		expect      bool
		argument    string
		operation   string
	}{
		{
			description: "direct receiver",
			code:        "$(el).show();",
			candidate:   "$(el)",
			options:     FoldOptions{ArgUses: 1},
			expect:      true,
			argument:    "el",
			operation:   "show",
		},
		{
			description: "parenthesized receiver",
			code:        "($(el)).hide();",
			candidate:   "$(el)",
			options:     FoldOptions{ArgUses: 1},
			expect:      true,
			argument:    "el",
			operation:   "hide",
		},
		{
			description: "argument needed twice but not a literal",
			code:        "$(getEl()).toggle();",
			candidate:   "$(getEl())",
			options:     FoldOptions{ArgUses: 2},
		},
		{
			description: "identifier argument is not duplicated either",
			code:        "$(el).toggle();",
			candidate:   "$(el)",
			options:     FoldOptions{ArgUses: 2},
		},
		{
			description: "literal argument may be duplicated",
			code:        "$('#menu').toggle();",
			candidate:   "$('#menu')",
			options:     FoldOptions{ArgUses: 2},
			expect:      true,
			argument:    "'#menu'",
			operation:   "toggle",
		},
		{
			description: "bare call",
			code:        "$(el);",
			candidate:   "$(el)",
			options:     FoldOptions{ArgUses: 1},
		},
		{
			description: "member read",
			code:        "const v = $(el).length;",
			candidate:   "$(el)",
			options:     FoldOptions{ArgUses: 1},
		},
		{
			description: "buried in other call",
			code:        "use($(el)).show();",
			candidate:   "$(el)",
			options:     FoldOptions{ArgUses: 1},
		},
		{
			description: "computed access",
			code:        "$(el)[0].focus();",
			candidate:   "$(el)",
			options:     FoldOptions{ArgUses: 1},
		},
		{
			description: "optional call",
			code:        "$(el)?.show();",
			candidate:   "$(el)",
			options:     FoldOptions{ArgUses: 1},
		},
		{
			description: "two factory arguments",
			code:        "$(el, ctx).show();",
			candidate:   "$(el, ctx)",
			options:     FoldOptions{ArgUses: 1},
		},
		{
			description: "spread operation arguments",
			code:        "$(el).addClass(...names);",
			candidate:   "$(el)",
			options:     FoldOptions{ArgUses: 1},
		},
		{
			description: "reordered side effecting operation argument",
			code:        "$(getEl()).attr('title', compute());",
			candidate:   "$(getEl())",
			options:     FoldOptions{ArgUses: 1, ReordersArguments: true},
		},
		{
			description: "reordered pure operation arguments",
			code:        "$(getEl()).attr('title', this.label);",
			candidate:   "$(getEl())",
			options:     FoldOptions{ArgUses: 1, ReordersArguments: true},
			expect:      true,
			argument:    "getEl()",
			operation:   "attr",
		},
		{
			description: "not a wrapper",
			code:        "query(el).show();",
			candidate:   "query(el)",
			options:     FoldOptions{ArgUses: 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			doc := parse(t, tc.code)
			an := New()
			candidate := find(t, doc, call(tc.candidate))
			fold, ok := an.FoldInitializer(doc, doc.Root, candidate, tc.options)
			assert.EqualValues(t, tc.expect, ok)
			assert.EqualValues(t, tc.expect, an.IsSafeToTransformInitializer(doc, doc.Root, candidate, tc.options))
			if !tc.expect {
				assert.Nil(t, fold)
				return
			}
			require.NotNil(t, fold)
			assert.EqualValues(t, tc.argument, doc.Text(fold.Argument))
			assert.EqualValues(t, tc.operation, fold.Name(doc))
		})
	}
}

func TestAnalyzer_FoldInitializer_Claimed(t *testing.T) {
	doc := parse(t, "$(el).show();")
	an := New()
	candidate := find(t, doc, call("$(el)"))
	claims := source.NewEditSet()
	assert.True(t, an.IsSafeToTransformInitializer(doc, doc.Root, candidate, FoldOptions{ArgUses: 1, Claimed: claims}))

	operation := find(t, doc, call("$(el).show()"))
	require.True(t, claims.Add(source.Replace(operation, "el.style.display = ''")))
	assert.False(t, an.IsSafeToTransformInitializer(doc, doc.Root, candidate, FoldOptions{ArgUses: 1, Claimed: claims}))
}

func TestAnalyzer_FoldInitializer_OutsideRoot(t *testing.T) {
	doc := parse(t, "function a() { $(x).show(); }\n$(y).show();")
	an := New()
	root := find(t, doc, target{kind: source.KindFunctionDeclaration, text: "function a() { $(x).show(); }"})
	assert.True(t, an.IsSafeToTransformInitializer(doc, root, find(t, doc, call("$(x)")), FoldOptions{ArgUses: 1}))
	assert.False(t, an.IsSafeToTransformInitializer(doc, root, find(t, doc, call("$(y)")), FoldOptions{ArgUses: 1}))
}

func TestSideEffectFree(t *testing.T) {
	var tests = []struct {
		code   string
		expect bool
	}{
		{code: "use('a');", expect: true},
		{code: "use(a);", expect: true},
		{code: "use(this.a.b);", expect: true},
		{code: "use(a[0]);"},
		{code: "use(a());"},
		{code: "use(a + b);"},
		{code: "use(`x${a}`);"},
		{code: "use(a?.b);"},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			doc := parse(t, tc.code)
			arg := source.Arguments(find(t, doc, target{kind: source.KindCallExpression, text: tc.code[:len(tc.code)-1]}))[0]
			assert.EqualValues(t, tc.expect, SideEffectFree(doc, arg))
		})
	}
}
