package rule

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/dequery/analyzer"
	"github.com/viant/dequery/source"
)

// arrayValue returns the array literal denoted by n, directly or through an alias
func (c *Context) arrayValue(n *sitter.Node) *sitter.Node {
	n = source.Unparen(n)
	if n != nil && n.Type() == source.KindIdentifier {
		if init := c.Analyzer.ResolveAlias(c.Doc, c.Text(n), n); init != nil {
			n = source.Unparen(init)
		}
	}
	if n == nil || n.Type() != source.KindArray || hasHoles(n) {
		return nil
	}
	return n
}

// hasHoles returns true for sparse array literals: [a, , b]
func hasHoles(array *sitter.Node) bool {
	previous := ""
	for i := 0; i < int(array.ChildCount()); i++ {
		child := array.Child(i)
		if child == nil || child.Type() == source.KindComment {
			continue
		}
		kind := child.Type()
		if kind == "," && (previous == "," || previous == "[") {
			return true
		}
		previous = kind
	}
	return false
}

type inArray struct {
	base
}

// Collect swaps operand order, so both operands must be free of side effects
func (r *inArray) Collect(ctx *Context) {
	for _, call := range ctx.StaticCalls("inArray") {
		if len(call.Args) < 2 || len(call.Args) > 3 {
			continue
		}
		value, list := call.Args[0], source.Unparen(call.Args[1])
		if ctx.arrayValue(list) == nil || !analyzer.SideEffectFree(ctx.Doc, value) {
			continue
		}
		if list.Type() == source.KindArray && !allSideEffectFree(ctx, source.NamedChildren(list)) {
			continue
		}
		params := []string{ctx.Text(value)}
		if len(call.Args) == 3 {
			if !analyzer.SideEffectFree(ctx.Doc, call.Args[2]) {
				continue
			}
			params = append(params, ctx.Text(call.Args[2]))
		}
		ctx.Replace(call.Call, ctx.Doc.Operand(list)+".indexOf("+strings.Join(params, ", ")+")")
	}
}

func allSideEffectFree(ctx *Context, nodes []*sitter.Node) bool {
	for _, n := range nodes {
		if !analyzer.SideEffectFree(ctx.Doc, n) {
			return false
		}
	}
	return true
}

// NewInArray creates in-array rule
func NewInArray() Rule {
	return &inArray{base: base{name: "in-array", description: "$.inArray(v, list) -> list.indexOf(v)", baseline: 2015}}
}

type each struct {
	base
}

// Collect rewrites iteration over arrays with a callback that neither returns nor relies on this,
// swapping the (index, value) parameters to forEach (value, index) order
func (r *each) Collect(ctx *Context) {
	for _, call := range ctx.StaticCalls("each") {
		if len(call.Args) != 2 || !source.IsStatement(call.Call) {
			continue
		}
		list := source.Unparen(call.Args[0])
		if ctx.arrayValue(list) == nil {
			continue
		}
		callback := source.Unparen(call.Args[1])
		text, ok := r.callback(ctx, callback)
		if !ok {
			continue
		}
		ctx.Replace(call.Call, ctx.Doc.Operand(list)+".forEach("+text+")")
	}
}

// callback returns the callback text with swapped parameters
func (r *each) callback(ctx *Context, fn *sitter.Node) (string, bool) {
	switch fn.Type() {
	case source.KindFunction, source.KindFunctionExpression:
		if len(source.FindAll(fn, source.KindThis)) > 0 {
			return "", false
		}
	case source.KindArrowFunction:
	default:
		return "", false
	}
	if fn.ChildByFieldName("name") != nil {
		return "", false
	}
	body := fn.ChildByFieldName("body")
	if body == nil || body.Type() != source.KindStatementBlock {
		return "", false
	}
	if len(source.FindAll(body, source.KindReturnStatement)) > 0 {
		return "", false
	}
	for _, ident := range source.FindAll(body, source.KindIdentifier) {
		if ctx.Text(ident) == "arguments" {
			return "", false
		}
	}
	params := fn.ChildByFieldName("parameters")
	if params == nil {
		return "", false
	}
	names := source.NamedChildren(params)
	switch len(names) {
	case 0:
		return ctx.Text(fn), true
	case 2:
		if names[0].Type() != source.KindIdentifier || names[1].Type() != source.KindIdentifier {
			return "", false
		}
	default:
		return "", false
	}
	code := ctx.Doc.Code
	var builder strings.Builder
	builder.Write(code[fn.StartByte():params.StartByte()])
	builder.WriteString("(" + ctx.Text(names[1]) + ", " + ctx.Text(names[0]) + ")")
	builder.Write(code[params.EndByte():fn.EndByte()])
	return builder.String(), true
}

// NewEach creates each rule
func NewEach() Rule {
	return &each{base: base{name: "each", description: "$.each(list, function (i, v) {}) -> list.forEach(function (v, i) {})", baseline: 2015}}
}
