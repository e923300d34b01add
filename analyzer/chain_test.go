package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzer_AllChainStepsTransformable(t *testing.T) {
	var tests = []struct {
		description string
		code        string
		candidate   string
		expect      bool
		anchor      string
	}{
		{
			description: "all steps allowed",
			code:        "wrap(getEl()).find('.x').show();",
			candidate:   "wrap(getEl())",
			expect:      true,
			anchor:      "wrap(getEl()).find('.x').show()",
		},
		{
			description: "single allowed step",
			code:        "wrap(el).show();",
			candidate:   "wrap(el)",
			expect:      true,
			anchor:      "wrap(el).show()",
		},
		{
			description: "unknown step before allowed one",
			code:        "wrap(getEl()).unknownMethod().show();",
			candidate:   "wrap(getEl())",
		},
		{
			description: "disallowed step at start",
			code:        "wrap(el).bad().find('x').show();",
			candidate:   "wrap(el)",
		},
		{
			description: "disallowed step in the middle",
			code:        "wrap(el).find('x').bad().show();",
			candidate:   "wrap(el)",
		},
		{
			description: "disallowed step at end",
			code:        "wrap(el).find('x').show().bad();",
			candidate:   "wrap(el)",
		},
		{
			description: "no chain",
			code:        "wrap(el);",
			candidate:   "wrap(el)",
		},
		{
			description: "member read without call",
			code:        "wrap(el).show;",
			candidate:   "wrap(el)",
		},
		{
			description: "computed step",
			code:        "wrap(el)[0].show();",
			candidate:   "wrap(el)",
		},
		{
			description: "computed method name",
			code:        "wrap(el)['show']();",
			candidate:   "wrap(el)",
		},
		{
			description: "optional step",
			code:        "wrap(el)?.show();",
			candidate:   "wrap(el)",
		},
		{
			description: "not a wrapper call",
			code:        "other(el).show();",
			candidate:   "other(el)",
		},
		{
			description: "chain value used",
			code:        "const shown = wrap(el).show();",
			candidate:   "wrap(el)",
			expect:      true,
			anchor:      "wrap(el).show()",
		},
		{
			description: "parenthesized receiver",
			code:        "(wrap(el)).find('a').show();",
			candidate:   "wrap(el)",
			expect:      true,
			anchor:      "(wrap(el)).find('a').show()",
		},
		{
			description: "chain passed as argument ends the chain",
			code:        "use(wrap(el).show());",
			candidate:   "wrap(el)",
			expect:      true,
			anchor:      "wrap(el).show()",
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			doc := parse(t, tc.code)
			an := New(WithFactories("wrap"), WithTransformable("find", "show"))
			candidate := find(t, doc, call(tc.candidate))
			assert.EqualValues(t, tc.expect, an.AllChainStepsTransformable(doc, candidate))
			anchor, ok := an.ChainAnchor(doc, candidate)
			assert.EqualValues(t, tc.expect, ok)
			if tc.expect {
				assert.EqualValues(t, tc.anchor, doc.Text(anchor))
			}
		})
	}
}

func TestAnalyzer_Chain(t *testing.T) {
	doc := parse(t, "$(el).addClass('a').find('b').hide();")
	an := New()
	steps, ok := an.Chain(doc, find(t, doc, call("$(el)")))
	assert.True(t, ok)
	var names []string
	for _, step := range steps {
		names = append(names, step.Name)
	}
	assert.EqualValues(t, []string{"addClass", "find", "hide"}, names)
	assert.False(t, an.AllChainStepsTransformable(doc, find(t, doc, call("$(el)"))))
}
