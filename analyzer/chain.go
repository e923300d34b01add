package analyzer

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/dequery/source"
)

// Step is a single member access / call pair of a chain
type Step struct {
	Name string
	// Member is the member expression naming the step
	Member *sitter.Node
	// Call invokes Member
	Call *sitter.Node
}

// Chain walks upward from base through every enclosing member access / call pair.
// It returns false on the first step that is computed, optional, or not invoked.
func (a *Analyzer) Chain(doc *source.Document, base *sitter.Node) ([]*Step, bool) {
	var steps []*Step
	current := base
	for {
		parent := source.Parent(current)
		if parent == nil {
			break
		}
		switch parent.Type() {
		case source.KindMemberExpression:
		case source.KindSubscriptExpression:
			if source.Same(source.Unparen(parent.ChildByFieldName("object")), current) {
				return nil, false
			}
			return steps, true
		default:
			return steps, true
		}
		_, name, ok := doc.Member(parent)
		if !ok {
			return nil, false
		}
		call := source.Parent(parent)
		if call == nil || call.Type() != source.KindCallExpression || !source.Same(source.Callee(call), parent) {
			return nil, false
		}
		steps = append(steps, &Step{Name: name, Member: parent, Call: call})
		current = call
	}
	return steps, true
}

// AllChainStepsTransformable returns true if call is a wrapper call heading a non empty chain
// made only of transformable operations. One disallowed step anywhere rejects the whole chain.
func (a *Analyzer) AllChainStepsTransformable(doc *source.Document, call *sitter.Node) bool {
	_, ok := a.ChainAnchor(doc, call)
	return ok
}

// ChainAnchor returns the outermost call of a transformable chain headed by a wrapper call
func (a *Analyzer) ChainAnchor(doc *source.Document, call *sitter.Node) (*sitter.Node, bool) {
	if !a.IsWrapperCall(doc, call) {
		return nil, false
	}
	steps, ok := a.Chain(doc, call)
	if !ok || len(steps) == 0 {
		return nil, false
	}
	for _, step := range steps {
		if !a.IsTransformable(step.Name) {
			return nil, false
		}
	}
	return steps[len(steps)-1].Call, true
}
