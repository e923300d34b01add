package rule

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/dequery/source"
)

// content rewrites text()/html() getters and literal setters to element properties
type content struct {
	base
	method   string
	property string
	// accept validates setter value
	accept func(ctx *Context, value *sitter.Node) bool
}

func (r *content) Collect(ctx *Context) {
	for _, call := range ctx.ElementCalls(r.method) {
		switch len(call.Args) {
		case 0:
			ctx.Replace(call.Call, call.Element+"."+r.property)
		case 1:
			if !call.Statement() {
				continue
			}
			value := source.Unparen(call.Args[0])
			if !r.accept(ctx, value) {
				continue
			}
			ctx.Replace(call.Call, call.Element+"."+r.property+" = "+ctx.Text(call.Args[0]))
		}
	}
}

// NewText creates text rule; setter values are limited to strings, numbers and concatenations
func NewText() Rule {
	return &content{
		base:     base{name: "text", description: "$(el).text() -> el.textContent", baseline: 2015},
		method:   "text",
		property: "textContent",
		accept: func(ctx *Context, value *sitter.Node) bool {
			switch value.Type() {
			case source.KindString, source.KindNumber, source.KindTemplateString:
				return true
			case source.KindBinaryExpression:
				return ctx.Text(value.ChildByFieldName("operator")) == "+"
			}
			return false
		},
	}
}

// NewHTML creates html rule; setter values are limited to string literals without scripts
// since the wrapper evaluates inline scripts and innerHTML does not
func NewHTML() Rule {
	return &content{
		base:     base{name: "html", description: "$(el).html() -> el.innerHTML", baseline: 2015},
		method:   "html",
		property: "innerHTML",
		accept: func(ctx *Context, value *sitter.Node) bool {
			return value.Type() == source.KindString && !strings.Contains(strings.ToLower(ctx.Text(value)), "<script")
		},
	}
}

type empty struct {
	base
}

func (r *empty) Collect(ctx *Context) {
	for _, call := range ctx.ElementCalls("empty") {
		if len(call.Args) != 0 || !call.Statement() {
			continue
		}
		ctx.Replace(call.Call, call.Element+".replaceChildren()")
	}
}

// NewEmpty creates empty rule
func NewEmpty() Rule {
	return &empty{base: base{name: "empty", description: "$(el).empty() -> el.replaceChildren()", baseline: 2020}}
}
