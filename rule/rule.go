// Package rule defines rewrite rules replacing legacy wrapper calls with native DOM and
// language equivalents. Every rule consults the analyzer before emitting an edit and
// leaves a candidate untouched unless the rewrite is provably behavior preserving.
package rule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/dequery/analyzer"
	"github.com/viant/dequery/source"
)

// ErrInvalidRewrite is returned when a rule produces source that no longer parses
var ErrInvalidRewrite = errors.New("rewrite produced invalid source")

// Rule represents a single legacy pattern rewrite
type Rule interface {
	// Name returns rule identifier used in configuration
	Name() string
	Description() string
	// Baseline returns the year the native replacement became widely available
	Baseline() int
	// Collect finds candidates in the context document and records replacement edits
	Collect(ctx *Context)
}

// Context is the state of a single rule pass over a document
type Context struct {
	Doc      *source.Document
	Analyzer *analyzer.Analyzer
	Edits    *source.EditSet
	rewrites int
}

// NewContext creates a rule pass context
func NewContext(doc *source.Document, an *analyzer.Analyzer) *Context {
	return &Context{Doc: doc, Analyzer: an, Edits: source.NewEditSet()}
}

// Rewrites returns number of accepted rewrites
func (c *Context) Rewrites() int {
	return c.rewrites
}

// Rewrite records edits of one rewrite atomically; it returns false if any edit overlaps a previous one
func (c *Context) Rewrite(edits ...source.Edit) bool {
	if !c.Edits.Add(edits...) {
		return false
	}
	c.rewrites++
	return true
}

// Replace records replacement of node text. Text opening with a token that continues an
// expression gets a leading semicolon when n starts a statement whose predecessor does not
// end with one, otherwise automatic semicolon insertion would join both lines.
func (c *Context) Replace(n *sitter.Node, text string) bool {
	if continuesExpression(text) && c.unterminated(n) {
		text = ";" + text
	}
	return c.Rewrite(source.Replace(n, text))
}

func continuesExpression(text string) bool {
	return text != "" && strings.ContainsRune("([`+-/", rune(text[0]))
}

// blockStatements always end with a block and never continue onto the next line.
// if, for and while may end with an expression body and are not listed.
var blockStatements = map[string]bool{
	source.KindStatementBlock:        true,
	source.KindTryStatement:          true,
	source.KindSwitchStatement:       true,
	source.KindFunctionDeclaration:   true,
	source.KindGeneratorFunctionDecl: true,
	source.KindClassDeclaration:      true,
}

// unterminated returns true if n starts a statement list entry preceded by a statement not ending in ';'
func (c *Context) unterminated(n *sitter.Node) bool {
	statement := n
	for statement.Type() != source.KindExpressionStatement {
		parent := statement.Parent()
		if parent == nil || parent.StartByte() != n.StartByte() {
			return false
		}
		statement = parent
	}
	switch list := statement.Parent(); {
	case list == nil:
		return false
	case list.Type() != source.KindProgram && list.Type() != source.KindStatementBlock &&
		list.Type() != source.KindSwitchCase && list.Type() != source.KindSwitchDefault:
		return false
	}
	previous := statement.PrevNamedSibling()
	for previous != nil && previous.Type() == source.KindComment {
		previous = previous.PrevNamedSibling()
	}
	if previous == nil || blockStatements[previous.Type()] {
		return false
	}
	return !strings.HasSuffix(strings.TrimSpace(c.Text(previous)), ";")
}

// Claimed returns true if n overlaps an edit of this pass
func (c *Context) Claimed(n *sitter.Node) bool {
	return c.Edits.Overlaps(n.StartByte(), n.EndByte())
}

// Text returns node source text
func (c *Context) Text(n *sitter.Node) string {
	return c.Doc.Text(n)
}

// Apply runs rule over the whole document and returns the rewritten document with the number of rewrites.
// A rule finding no candidates returns the input document and zero.
func Apply(ctx context.Context, doc *source.Document, an *analyzer.Analyzer, rule Rule) (*source.Document, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	pass := NewContext(doc, an)
	rule.Collect(pass)
	if pass.Rewrites() == 0 {
		return doc, 0, nil
	}
	updated, err := doc.Rewrite(ctx, pass.Edits)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to apply rule %v: %w", rule.Name(), err)
	}
	if updated.HasError() && !doc.HasError() {
		return nil, 0, fmt.Errorf("%w: rule %v, %v", ErrInvalidRewrite, rule.Name(), doc.Path)
	}
	return updated, pass.Rewrites(), nil
}

// base implements the descriptive part of a rule
type base struct {
	name        string
	description string
	baseline    int
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Description() string {
	return b.description
}

func (b *base) Baseline() int {
	return b.baseline
}
