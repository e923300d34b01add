// Package analyzer answers whether an expression definitely denotes a legacy
// DOM wrapper (or the single node it wraps) so that a rewrite rule can replace
// the wrapper call with a native DOM call without changing program behavior.
//
// Every query is recomputed from the current syntax tree: rules rewrite the
// tree between passes, so no binding or provenance is cached. An Analyzer only
// carries configuration and is safe for concurrent use across documents.
//
// All verdicts are conservative. Ambiguity (multiple declarations, any
// reassignment, destructuring, parameters, eval or with) yields "unknown",
// which callers must treat as "do not transform".
package analyzer

// Analyzer holds the wrapper factory names and the transformable operation allow-set
type Analyzer struct {
	factories     map[string]bool
	modules       map[string]bool
	transformable map[string]bool
}

// DefaultFactories are the global names of the wrapper factory
var DefaultFactories = []string{"$", "jQuery"}

// DefaultModules are module specifiers whose default export is the wrapper factory
var DefaultModules = []string{"jquery"}

// DefaultTransformable lists wrapper methods with behavior preserving native equivalents
var DefaultTransformable = []string{
	"show", "hide",
	"addClass", "removeClass", "toggleClass", "hasClass",
	"attr", "removeAttr",
	"text", "html", "empty", "css",
	"remove", "focus", "blur", "click",
}

// New creates an analyzer
func New(options ...Option) *Analyzer {
	ret := &Analyzer{
		factories:     toSet(DefaultFactories),
		modules:       toSet(DefaultModules),
		transformable: toSet(DefaultTransformable),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// IsTransformable returns true if the wrapper method name belongs to the allow-set
func (a *Analyzer) IsTransformable(name string) bool {
	return a.transformable[name]
}

// IsFactoryName returns true if name is a configured global factory name
func (a *Analyzer) IsFactoryName(name string) bool {
	return a.factories[name]
}

func toSet(values []string) map[string]bool {
	ret := make(map[string]bool, len(values))
	for _, value := range values {
		ret[value] = true
	}
	return ret
}
