package rule

import "fmt"

// Registry holds rules in application order
type Registry struct {
	rules []Rule
	index map[string]Rule
}

// NewRegistry creates a registry
func NewRegistry(rules ...Rule) *Registry {
	ret := &Registry{index: make(map[string]Rule)}
	for _, rule := range rules {
		ret.Register(rule)
	}
	return ret
}

// Register adds or replaces a rule; a replaced rule keeps its position
func (r *Registry) Register(rule Rule) {
	if _, ok := r.index[rule.Name()]; ok {
		for i, candidate := range r.rules {
			if candidate.Name() == rule.Name() {
				r.rules[i] = rule
			}
		}
	} else {
		r.rules = append(r.rules, rule)
	}
	r.index[rule.Name()] = rule
}

// Lookup returns rule by name
func (r *Registry) Lookup(name string) (Rule, error) {
	rule, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("unknown rule: %v", name)
	}
	return rule, nil
}

// Rules returns rules in application order
func (r *Registry) Rules() []Rule {
	return append([]Rule(nil), r.rules...)
}

// Names returns rule names in application order
func (r *Registry) Names() []string {
	var ret = make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		ret = append(ret, rule.Name())
	}
	return ret
}

// Default returns registry with all built-in rules
func Default() *Registry {
	return NewRegistry(
		NewEach(),
		NewInArray(),
		NewProxy(),
		NewIsArray(),
		NewIsFunction(),
		NewParseJSON(),
		NewNow(),
		NewTrim(),
		NewShow(),
		NewHide(),
		NewAddClass(),
		NewRemoveClass(),
		NewToggleClass(),
		NewHasClass(),
		NewAttr(),
		NewRemoveAttr(),
		NewText(),
		NewHTML(),
		NewEmpty(),
		NewCSS(),
		NewUnwrapNative(),
		NewArrayFromArguments(),
		NewDateNow(),
	)
}
