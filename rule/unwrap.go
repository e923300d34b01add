package rule

import (
	"github.com/viant/dequery/analyzer"
	"github.com/viant/dequery/source"
)

// nativeMethods exist on elements with the same effect when called without arguments
var nativeMethods = []string{"focus", "blur", "click", "remove"}

// unwrapNative eliminates the wrapper before a method the element implements natively:
// $(el).focus() -> el.focus()
type unwrapNative struct {
	base
}

func (r *unwrapNative) Collect(ctx *Context) {
	an, doc := ctx.Analyzer, ctx.Doc
	for _, call := range source.FindAll(doc.Root, source.KindCallExpression) {
		if !an.IsWrapperCall(doc, call) || ctx.Claimed(call) {
			continue
		}
		anchor, ok := an.ChainAnchor(doc, call)
		if !ok || !source.IsStatement(anchor) {
			continue
		}
		steps, _ := an.Chain(doc, call)
		if len(steps) != 1 || !contains(nativeMethods, steps[0].Name) || len(source.Arguments(steps[0].Call)) != 0 {
			continue
		}
		argument := source.Arguments(call)[0]
		if !an.IsElementLike(doc, argument) {
			continue
		}
		ctx.Replace(call, doc.Operand(source.Unparen(argument)))
	}

	for _, call := range ctx.ElementCalls(nativeMethods...) {
		if call.Provenance != analyzer.ProvenanceBound || len(call.Args) != 0 || !call.Statement() {
			continue
		}
		if !an.IsTransformable(call.Method) {
			continue
		}
		ctx.Replace(call.Call, call.Element+"."+call.Method+"()")
	}
}

// NewUnwrapNative creates unwrap-native rule
func NewUnwrapNative() Rule {
	return &unwrapNative{base: base{name: "unwrap-native", description: "$(el).focus() -> el.focus() for focus, blur, click and remove", baseline: 2015}}
}
