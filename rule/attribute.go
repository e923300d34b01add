package rule

import (
	"strings"

	"github.com/viant/dequery/source"
)

// booleanAttributes are set or removed by the wrapper depending on value truthiness
var booleanAttributes = map[string]bool{
	"checked": true, "selected": true, "async": true, "autofocus": true, "autoplay": true,
	"controls": true, "defer": true, "disabled": true, "hidden": true, "ismap": true,
	"loop": true, "multiple": true, "open": true, "readonly": true, "required": true,
	"scoped": true,
}

type attr struct {
	base
}

// Collect rewrites setter form only; the getter returns undefined where the native one returns null
func (r *attr) Collect(ctx *Context) {
	for _, call := range ctx.ElementCalls("attr") {
		if len(call.Args) != 2 || !call.Statement() {
			continue
		}
		name, ok := ctx.Doc.StringValue(call.Args[0])
		if !ok || !isAttributeName(name) || booleanAttributes[strings.ToLower(name)] {
			continue
		}
		value := source.Unparen(call.Args[1])
		switch value.Type() {
		case source.KindString, source.KindNumber:
		case source.KindTemplateString:
			if !source.IsLiteral(value) {
				continue
			}
		default:
			continue
		}
		ctx.Replace(call.Call, call.Element+".setAttribute("+ctx.Text(source.Unparen(call.Args[0]))+", "+ctx.Text(value)+")")
	}
}

// NewAttr creates attr rule
func NewAttr() Rule {
	return &attr{base: base{name: "attr", description: "$(el).attr('name', 'value') -> el.setAttribute('name', 'value')", baseline: 2015}}
}

type removeAttr struct {
	base
}

func (r *removeAttr) Collect(ctx *Context) {
	for _, call := range ctx.ElementCalls("removeAttr") {
		if len(call.Args) != 1 || !call.Statement() {
			continue
		}
		name, ok := ctx.Doc.StringValue(call.Args[0])
		if !ok || !isAttributeName(name) {
			continue
		}
		ctx.Replace(call.Call, call.Element+".removeAttribute("+ctx.Text(source.Unparen(call.Args[0]))+")")
	}
}

// NewRemoveAttr creates remove-attr rule
func NewRemoveAttr() Rule {
	return &removeAttr{base: base{name: "remove-attr", description: "$(el).removeAttr('name') -> el.removeAttribute('name')", baseline: 2015}}
}

// isAttributeName returns true for a single attribute token
func isAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == ':', r == '.':
		default:
			return false
		}
	}
	return true
}
