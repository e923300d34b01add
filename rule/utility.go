package rule

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/dequery/analyzer"
	"github.com/viant/dequery/source"
)

// StaticCall is a call of a function attached to the factory: $.isArray(value)
type StaticCall struct {
	Call   *sitter.Node
	Callee *sitter.Node
	Args   []*sitter.Node
}

// StaticCalls returns factory utility calls of the given name
func (c *Context) StaticCalls(name string) []*StaticCall {
	var ret []*StaticCall
	for _, call := range source.FindAll(c.Doc.Root, source.KindCallExpression) {
		receiver, method, ok := c.Doc.MethodCall(call)
		if !ok || method != name || !c.Analyzer.IsFactoryReference(c.Doc, receiver) {
			continue
		}
		args := source.Arguments(call)
		if source.HasSpread(args) {
			continue
		}
		ret = append(ret, &StaticCall{Call: call, Callee: source.Callee(call), Args: args})
	}
	return ret
}

// global returns true if name is not shadowed at n
func (c *Context) global(name string, n *sitter.Node) bool {
	return !c.Analyzer.Declared(c.Doc, name, n)
}

// rename replaces the utility callee keeping arguments: $.isArray(x) -> Array.isArray(x)
type rename struct {
	base
	method string
	args   int
	// native is the replacement callee; its first segment must be an unshadowed global
	native string
	global string
}

func (r *rename) Collect(ctx *Context) {
	for _, call := range ctx.StaticCalls(r.method) {
		if len(call.Args) != r.args || !ctx.global(r.global, call.Call) {
			continue
		}
		ctx.Replace(call.Callee, r.native)
	}
}

// NewIsArray creates is-array rule
func NewIsArray() Rule {
	return &rename{
		base:   base{name: "is-array", description: "$.isArray(v) -> Array.isArray(v)", baseline: 2015},
		method: "isArray", args: 1, native: "Array.isArray", global: "Array",
	}
}

// NewParseJSON creates parse-json rule
func NewParseJSON() Rule {
	return &rename{
		base:   base{name: "parse-json", description: "$.parseJSON(s) -> JSON.parse(s)", baseline: 2015},
		method: "parseJSON", args: 1, native: "JSON.parse", global: "JSON",
	}
}

// NewNow creates now rule
func NewNow() Rule {
	return &rename{
		base:   base{name: "now", description: "$.now() -> Date.now()", baseline: 2015},
		method: "now", args: 0, native: "Date.now", global: "Date",
	}
}

type isFunction struct {
	base
}

// Collect skips undeclared identifiers: the wrapper call throws a ReferenceError, typeof does not
func (r *isFunction) Collect(ctx *Context) {
	for _, call := range ctx.StaticCalls("isFunction") {
		if len(call.Args) != 1 {
			continue
		}
		value := source.Unparen(call.Args[0])
		if value.Type() == source.KindIdentifier && ctx.global(ctx.Text(value), value) {
			continue
		}
		text := "typeof " + ctx.Doc.Operand(value) + " === 'function'"
		if parent := call.Call.Parent(); parent == nil || parent.Type() != source.KindParenthesizedExpression {
			text = "(" + text + ")"
		}
		ctx.Replace(call.Call, text)
	}
}

// NewIsFunction creates is-function rule
func NewIsFunction() Rule {
	return &isFunction{base: base{name: "is-function", description: "$.isFunction(v) -> typeof v === 'function'", baseline: 2015}}
}

type trim struct {
	base
}

func (r *trim) Collect(ctx *Context) {
	for _, call := range ctx.StaticCalls("trim") {
		if len(call.Args) != 1 || !ctx.global("String", call.Call) {
			continue
		}
		value := source.Unparen(call.Args[0])
		if value.Type() == source.KindString {
			ctx.Replace(call.Call, ctx.Text(value)+".trim()")
			continue
		}
		// ?? cannot mix with unparenthesized || or && and binds tighter than ?:
		ctx.Replace(call.Call, "String("+ctx.Doc.Operand(value)+" ?? '').trim()")
	}
}

// NewTrim creates trim rule
func NewTrim() Rule {
	return &trim{base: base{name: "trim", description: "$.trim(s) -> String(s ?? '').trim()", baseline: 2020}}
}

type proxy struct {
	base
}

// Collect rewrites the (function, context) form. The wrapper swaps arguments when context is a string,
// so context has to be provably an object.
func (r *proxy) Collect(ctx *Context) {
	for _, call := range ctx.StaticCalls("proxy") {
		if len(call.Args) != 2 {
			continue
		}
		fn, self := source.Unparen(call.Args[0]), source.Unparen(call.Args[1])
		if !ctx.isFunctionValue(fn) || !ctx.isObjectValue(self) {
			continue
		}
		ctx.Replace(call.Call, ctx.Doc.Operand(fn)+".bind("+ctx.Text(self)+")")
	}
}

// NewProxy creates proxy rule
func NewProxy() Rule {
	return &proxy{base: base{name: "proxy", description: "$.proxy(fn, ctx) -> fn.bind(ctx)", baseline: 2015}}
}

// isFunctionValue returns true for function expressions and identifiers bound to them
func (c *Context) isFunctionValue(n *sitter.Node) bool {
	switch n.Type() {
	case source.KindFunction, source.KindFunctionExpression, source.KindArrowFunction, source.KindGeneratorFunction:
		return true
	case source.KindIdentifier:
		name := c.Text(n)
		if init := c.Analyzer.ResolveAlias(c.Doc, name, n); init != nil {
			init = source.Unparen(init)
			return init.Type() != source.KindIdentifier && c.isFunctionValue(init)
		}
		binding := c.Analyzer.FindBinding(c.Doc, name, n)
		return binding != nil && binding.Declaration.Kind == analyzer.DeclarationFunction
	}
	return false
}

// isObjectValue returns true for expressions that cannot evaluate to a string
func (c *Context) isObjectValue(n *sitter.Node) bool {
	switch n.Type() {
	case source.KindThis, source.KindObject, source.KindArray, source.KindNewExpression:
		return true
	case source.KindIdentifier:
		if init := c.Analyzer.ResolveAlias(c.Doc, c.Text(n), n); init != nil {
			init = source.Unparen(init)
			return init.Type() != source.KindIdentifier && c.isObjectValue(init)
		}
	}
	return false
}
