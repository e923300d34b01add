package rule

import (
	"github.com/viant/dequery/source"
)

type arrayFromArguments struct {
	base
}

// Collect matches Array.prototype.slice.call(arguments) and [].slice.call(arguments)
func (r *arrayFromArguments) Collect(ctx *Context) {
	doc := ctx.Doc
	for _, call := range source.FindAll(doc.Root, source.KindCallExpression) {
		slice, method, ok := doc.MethodCall(call)
		if !ok || method != "call" {
			continue
		}
		args := source.Arguments(call)
		if len(args) != 1 || !doc.IsIdentifier(source.Unparen(args[0]), "arguments") {
			continue
		}
		owner, name, ok := doc.Member(slice)
		if !ok || name != "slice" {
			continue
		}
		owner = source.Unparen(owner)
		switch owner.Type() {
		case source.KindArray:
			if len(source.NamedChildren(owner)) != 0 {
				continue
			}
		case source.KindMemberExpression:
			array, property, ok := doc.Member(owner)
			if !ok || property != "prototype" || !doc.IsIdentifier(source.Unparen(array), "Array") {
				continue
			}
		default:
			continue
		}
		if !ctx.global("Array", call) {
			continue
		}
		ctx.Replace(call, "Array.from("+ctx.Text(args[0])+")")
	}
}

// NewArrayFromArguments creates array-from-arguments rule
func NewArrayFromArguments() Rule {
	return &arrayFromArguments{base: base{name: "array-from-arguments", description: "Array.prototype.slice.call(arguments) -> Array.from(arguments)", baseline: 2015}}
}

type dateNow struct {
	base
}

func (r *dateNow) Collect(ctx *Context) {
	doc := ctx.Doc
	for _, call := range source.FindAll(doc.Root, source.KindCallExpression) {
		receiver, method, ok := doc.MethodCall(call)
		if !ok || method != "getTime" || len(source.Arguments(call)) != 0 {
			continue
		}
		if receiver.Type() != source.KindNewExpression {
			continue
		}
		if !doc.IsIdentifier(source.Unparen(receiver.ChildByFieldName("constructor")), "Date") {
			continue
		}
		if args := receiver.ChildByFieldName("arguments"); args != nil && len(source.NamedChildren(args)) != 0 {
			continue
		}
		if !ctx.global("Date", call) {
			continue
		}
		ctx.Replace(call, "Date.now()")
	}
}

// NewDateNow creates date-now rule
func NewDateNow() Rule {
	return &dateNow{base: base{name: "date-now", description: "new Date().getTime() -> Date.now()", baseline: 2015}}
}
