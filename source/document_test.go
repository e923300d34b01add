package source_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/dequery/source"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		wantError bool
	}{
		{name: "valid", code: "const el = $(node);\nel.show();\n"},
		{name: "syntax error", code: "const = ;", wantError: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := source.Parse(context.Background(), "test.js", []byte(tt.code))
			require.NoError(t, err)
			assert.Equal(t, tt.wantError, doc.HasError())
			assert.Equal(t, source.KindProgram, doc.Root.Type())
		})
	}
}

func TestDocument_MethodCall(t *testing.T) {
	doc, err := source.Parse(context.Background(), "test.js", []byte("($(node)).show(1, 2);\nel?.hide();\n"))
	require.NoError(t, err)
	calls := source.FindAll(doc.Root, source.KindCallExpression)
	require.Len(t, calls, 3)

	receiver, method, ok := doc.MethodCall(calls[0])
	require.True(t, ok)
	assert.Equal(t, "show", method)
	assert.Equal(t, "$(node)", doc.Text(receiver))
	assert.Len(t, source.Arguments(calls[0]), 2)

	_, _, ok = doc.MethodCall(calls[2])
	assert.False(t, ok, "optional chain is not a plain member call")
}

func TestDocument_StringValue(t *testing.T) {
	doc, err := source.Parse(context.Background(), "test.js", []byte(`f('a b', "c", 'd\n', x);`))
	require.NoError(t, err)
	call := source.FindAll(doc.Root, source.KindCallExpression)[0]
	args := source.Arguments(call)
	require.Len(t, args, 4)

	value, ok := doc.StringValue(args[0])
	assert.True(t, ok)
	assert.Equal(t, "a b", value)
	assert.Equal(t, "'", doc.Quote(args[0]))

	value, ok = doc.StringValue(args[1])
	assert.True(t, ok)
	assert.Equal(t, "c", value)
	assert.Equal(t, `"x"`, doc.Quoted(args[1], "x"))

	_, ok = doc.StringValue(args[2])
	assert.False(t, ok, "escape sequences are not simple strings")
	_, ok = doc.StringValue(args[3])
	assert.False(t, ok)
}

func TestOperand(t *testing.T) {
	doc, err := source.Parse(context.Background(), "test.js", []byte("f(a, a.b, a || b, this);"))
	require.NoError(t, err)
	args := source.Arguments(source.FindAll(doc.Root, source.KindCallExpression)[0])
	require.Len(t, args, 4)
	assert.Equal(t, "a", doc.Operand(args[0]))
	assert.Equal(t, "a.b", doc.Operand(args[1]))
	assert.Equal(t, "(a || b)", doc.Operand(args[2]))
	assert.Equal(t, "this", doc.Operand(args[3]))
}

func TestSame(t *testing.T) {
	code := []byte("$(a).show();")
	first, err := source.Parse(context.Background(), "a.js", code)
	require.NoError(t, err)
	second, err := source.Parse(context.Background(), "a.js", code)
	require.NoError(t, err)
	a := source.FindAll(first.Root, source.KindCallExpression)
	b := source.FindAll(second.Root, source.KindCallExpression)
	require.Len(t, a, 2)
	require.Len(t, b, 2)
	assert.True(t, source.Same(a[0], b[0]))
	assert.False(t, source.Same(a[0], a[1]))
	assert.True(t, source.Contains(a[0], a[1]))
	assert.False(t, source.Same(nil, a[0]))
}
