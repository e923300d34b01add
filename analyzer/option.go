package analyzer

// Option configures an Analyzer
type Option func(*Analyzer)

// WithFactories replaces the global wrapper factory names (e.g. "$", "jQuery")
func WithFactories(names ...string) Option {
	return func(a *Analyzer) {
		if len(names) > 0 {
			a.factories = toSet(names)
		}
	}
}

// WithModules replaces the module specifiers whose default import or require() result is the factory
func WithModules(modules ...string) Option {
	return func(a *Analyzer) {
		if len(modules) > 0 {
			a.modules = toSet(modules)
		}
	}
}

// WithTransformable replaces the transformable-operation allow-set
func WithTransformable(names ...string) Option {
	return func(a *Analyzer) {
		if len(names) > 0 {
			a.transformable = toSet(names)
		}
	}
}
