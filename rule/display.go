package rule

// display rewrites $(el).show() / $(el).hide() to inline style display assignments
type display struct {
	base
	method string
	value  string
}

func (r *display) Collect(ctx *Context) {
	for _, call := range ctx.ElementCalls(r.method) {
		if len(call.Args) != 0 || !call.Statement() {
			continue
		}
		ctx.Replace(call.Call, call.Element+".style.display = "+r.value)
	}
}

// NewShow creates show rule
func NewShow() Rule {
	return &display{
		base:   base{name: "show", description: "$(el).show() -> el.style.display = ''", baseline: 2015},
		method: "show",
		value:  "''",
	}
}

// NewHide creates hide rule
func NewHide() Rule {
	return &display{
		base:   base{name: "hide", description: "$(el).hide() -> el.style.display = 'none'", baseline: 2015},
		method: "hide",
		value:  "'none'",
	}
}
