package rule

import (
	"strings"

	"github.com/viant/dequery/source"
)

// classList rewrites class name manipulation to Element.classList
type classList struct {
	base
	method string
	native string
	// multiple allows a whitespace separated list of class names
	multiple bool
	// getter allows the rewrite in any expression position
	getter bool
	// state allows a boolean literal second argument
	state bool
}

func (r *classList) Collect(ctx *Context) {
	for _, call := range ctx.ElementCalls(r.method) {
		if !r.getter && !call.Statement() {
			continue
		}
		args := call.Args
		if len(args) == 0 || len(args) > 2 || (len(args) == 2 && !r.state) {
			continue
		}
		value, ok := ctx.Doc.StringValue(args[0])
		if !ok {
			continue
		}
		names := strings.Fields(value)
		if len(names) == 0 || (len(names) > 1 && !r.multiple) {
			continue
		}
		var params []string
		for _, name := range names {
			params = append(params, ctx.Doc.Quoted(args[0], name))
		}
		if len(args) == 2 {
			state := source.Unparen(args[1])
			if state.Type() != source.KindTrue && state.Type() != source.KindFalse {
				continue
			}
			params = append(params, ctx.Text(state))
		}
		ctx.Replace(call.Call, call.Element+".classList."+r.native+"("+strings.Join(params, ", ")+")")
	}
}

// NewAddClass creates add-class rule
func NewAddClass() Rule {
	return &classList{
		base:     base{name: "add-class", description: "$(el).addClass('a b') -> el.classList.add('a', 'b')", baseline: 2015},
		method:   "addClass",
		native:   "add",
		multiple: true,
	}
}

// NewRemoveClass creates remove-class rule
func NewRemoveClass() Rule {
	return &classList{
		base:     base{name: "remove-class", description: "$(el).removeClass('a b') -> el.classList.remove('a', 'b')", baseline: 2015},
		method:   "removeClass",
		native:   "remove",
		multiple: true,
	}
}

// NewToggleClass creates toggle-class rule; a non boolean state literal is not rewritten
func NewToggleClass() Rule {
	return &classList{
		base:   base{name: "toggle-class", description: "$(el).toggleClass('a') -> el.classList.toggle('a')", baseline: 2015},
		method: "toggleClass",
		native: "toggle",
		state:  true,
	}
}

// NewHasClass creates has-class rule
func NewHasClass() Rule {
	return &classList{
		base:   base{name: "has-class", description: "$(el).hasClass('a') -> el.classList.contains('a')", baseline: 2015},
		method: "hasClass",
		native: "contains",
		getter: true,
	}
}
