package analyzer

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/dequery/source"
)

// Claims reports byte ranges already claimed by pending rewrites
type Claims interface {
	Overlaps(start, end uint32) bool
}

// FoldOptions describe how a rule intends to use the folded argument
type FoldOptions struct {
	// ArgUses is the number of times the rewrite emits the wrapped argument
	ArgUses int
	// ReordersArguments is set when the rewrite evaluates operation arguments before the wrapped argument
	ReordersArguments bool
	Claimed           Claims
}

// Fold describes a wrapper call that can be replaced by its argument
type Fold struct {
	// Call is the factory call: $(el)
	Call *sitter.Node
	// Argument is the wrapped expression: el
	Argument *sitter.Node
	// Receiver is the member expression accessed on the call: $(el).show
	Receiver *sitter.Node
	// Operation is the call invoking Receiver: $(el).show()
	Operation *sitter.Node
}

// Name returns the operation name
func (f *Fold) Name(doc *source.Document) string {
	_, name, _ := doc.Member(f.Receiver)
	return name
}

// Arguments returns the operation arguments
func (f *Fold) Arguments() []*sitter.Node {
	return source.Arguments(f.Operation)
}

// FoldInitializer decides whether the wrapper call candidate, receiver of its immediate parent
// operation, can be folded into its argument, and returns the matched fold
func (a *Analyzer) FoldInitializer(doc *source.Document, root, candidate *sitter.Node, opts FoldOptions) (*Fold, bool) {
	call := source.Unparen(candidate)
	if call == nil || (root != nil && !source.Contains(root, call)) {
		return nil, false
	}
	if !a.IsWrapperCall(doc, call) {
		return nil, false
	}
	receiver := source.Parent(call)
	object, _, ok := doc.Member(receiver)
	if !ok || !source.Same(source.Unparen(object), call) {
		return nil, false
	}
	operation := source.Parent(receiver)
	if operation == nil || operation.Type() != source.KindCallExpression || !source.Same(source.Callee(operation), receiver) {
		return nil, false
	}
	argument := source.Arguments(call)[0]
	if opts.ArgUses > 1 && !source.IsLiteral(argument) {
		return nil, false
	}
	args := source.Arguments(operation)
	if source.HasSpread(args) {
		return nil, false
	}
	if opts.ReordersArguments && !source.IsLiteral(argument) {
		for _, arg := range args {
			if !SideEffectFree(doc, arg) {
				return nil, false
			}
		}
	}
	if opts.Claimed != nil && opts.Claimed.Overlaps(operation.StartByte(), operation.EndByte()) {
		return nil, false
	}
	return &Fold{Call: call, Argument: argument, Receiver: receiver, Operation: operation}, true
}

// IsSafeToTransformInitializer returns true if candidate can be folded into its argument
func (a *Analyzer) IsSafeToTransformInitializer(doc *source.Document, root, candidate *sitter.Node, opts FoldOptions) bool {
	_, ok := a.FoldInitializer(doc, root, candidate, opts)
	return ok
}

// SideEffectFree returns true for expressions whose evaluation cannot be observed:
// literals, identifiers, this, and non computed member chains over them
func SideEffectFree(doc *source.Document, n *sitter.Node) bool {
	n = source.Unparen(n)
	if n == nil {
		return false
	}
	if source.IsLiteral(n) {
		return true
	}
	switch n.Type() {
	case source.KindIdentifier, source.KindThis:
		return true
	case source.KindMemberExpression:
		object, _, ok := doc.Member(n)
		return ok && SideEffectFree(doc, object)
	}
	return false
}
