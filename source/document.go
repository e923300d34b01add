package source

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// ErrParse is returned when tree-sitter does not produce a tree
var ErrParse = errors.New("failed to parse source")

// Document is a parsed JavaScript source together with its syntax tree.
// Nodes obtained from a Document are only valid while the Document is in use;
// rewriting produces a new Document with a fresh tree.
type Document struct {
	Path string
	Code []byte
	Tree *sitter.Tree
	Root *sitter.Node
}

// Parse parses JavaScript source code
func Parse(ctx context.Context, path string, code []byte) (*Document, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, code)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if tree == nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, path)
	}
	return &Document{Path: path, Code: code, Tree: tree, Root: tree.RootNode()}, nil
}

// HasError returns true if the tree contains syntax errors
func (d *Document) HasError() bool {
	return d.Root == nil || d.Root.HasError()
}

// Text returns source text of the node
func (d *Document) Text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	start, end := n.StartByte(), n.EndByte()
	if int(end) > len(d.Code) || start > end {
		return ""
	}
	return string(d.Code[start:end])
}

// Rewrite applies edits and parses the result into a new document
func (d *Document) Rewrite(ctx context.Context, edits *EditSet) (*Document, error) {
	code, err := Apply(d.Code, edits.Edits())
	if err != nil {
		return nil, err
	}
	return Parse(ctx, d.Path, code)
}
