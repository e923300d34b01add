package rule

import (
	"strings"

	"github.com/viant/dequery/source"
)

type css struct {
	base
}

// Collect rewrites the two argument setter with a string value.
// Numbers are skipped since the wrapper appends units to them.
func (r *css) Collect(ctx *Context) {
	for _, call := range ctx.ElementCalls("css") {
		if len(call.Args) != 2 || !call.Statement() {
			continue
		}
		property, ok := ctx.Doc.StringValue(call.Args[0])
		if !ok {
			continue
		}
		name, ok := styleProperty(property)
		if !ok {
			continue
		}
		value := source.Unparen(call.Args[1])
		text, ok := ctx.Doc.StringValue(value)
		if !ok || strings.Contains(text, "!important") {
			continue
		}
		ctx.Replace(call.Call, call.Element+".style."+name+" = "+ctx.Text(value))
	}
}

// NewCSS creates css rule
func NewCSS() Rule {
	return &css{base: base{name: "css", description: "$(el).css('background-color', 'red') -> el.style.backgroundColor = 'red'", baseline: 2015}}
}

// styleProperty converts a CSS property name to its CSSStyleDeclaration property.
// Custom and vendor prefixed properties are rejected.
func styleProperty(property string) (string, bool) {
	if property == "" || property[0] == '-' || strings.HasSuffix(property, "-") || strings.Contains(property, "--") {
		return "", false
	}
	if property == "float" {
		return "cssFloat", true
	}
	var builder strings.Builder
	upper := false
	for _, r := range property {
		switch {
		case r == '-':
			upper = true
			continue
		case r >= 'a' && r <= 'z':
			if upper {
				r -= 'a' - 'A'
			}
		case r >= 'A' && r <= 'Z':
		default:
			return "", false
		}
		upper = false
		builder.WriteRune(r)
	}
	return builder.String(), true
}
