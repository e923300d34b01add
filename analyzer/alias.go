package analyzer

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/dequery/source"
)

// ResolveAlias returns the initializer of the unique, never reassigned, simple declaration of name
// visible from at. Destructuring targets, parameters and declarations without initializer never resolve.
func (a *Analyzer) ResolveAlias(doc *source.Document, name string, at *sitter.Node) *sitter.Node {
	binding := a.FindBinding(doc, name, at)
	if binding == nil {
		return nil
	}
	decl := binding.Declaration
	if decl.Kind != DeclarationVariable || decl.Init == nil {
		return nil
	}
	return decl.Init
}

// resolveIdentifier follows a single alias of an identifier expression, otherwise returns n
func (a *Analyzer) resolveIdentifier(doc *source.Document, n *sitter.Node) *sitter.Node {
	n = source.Unparen(n)
	if n == nil || n.Type() != source.KindIdentifier {
		return n
	}
	if init := a.ResolveAlias(doc, doc.Text(n), n); init != nil {
		return source.Unparen(init)
	}
	return n
}
