package scope_test

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/tscheck/scope"
	"github.com/viant/tscheck/syntax"
)

func build(t *testing.T, src string) (*scope.Table, *sitter.Node, []byte) {
	t.Helper()
	data := []byte(src)
	tree, err := syntax.Parse(context.Background(), data, syntax.DialectTypeScript)
	require.NoError(t, err)
	root := tree.RootNode()
	return scope.Build(root, data), root, data
}

// ident returns the index-th occurrence of an identifier with the given text
func ident(t *testing.T, root *sitter.Node, src []byte, name string, index int) *sitter.Node {
	t.Helper()
	var found *sitter.Node
	seen := 0
	syntax.Walk(root, func(node *sitter.Node) bool {
		if found != nil {
			return false
		}
		if (node.Type() == syntax.KindIdentifier || node.Type() == syntax.KindTypeIdentifier) && node.Content(src) == name {
			if seen == index {
				found = node
				return false
			}
			seen++
		}
		return true
	})
	require.NotNilf(t, found, "identifier %q #%d not found", name, index)
	return found
}

func TestBuild_Declarations(t *testing.T) {
	tests := []struct {
		name string
		src  string
		// use is the occurrence index of the identifier to resolve
		ident string
		use   int
		kind  scope.DefKind
	}{
		{
			name:  "const declarator",
			src:   `const f = 1; f;`,
			ident: "f", use: 1,
			kind: scope.DefVariable,
		},
		{
			name:  "function declaration",
			src:   `function h() {} h;`,
			ident: "h", use: 1,
			kind: scope.DefFunction,
		},
		{
			name:  "class declaration",
			src:   `class C {} C;`,
			ident: "C", use: 1,
			kind: scope.DefClass,
		},
		{
			name:  "aliased import",
			src:   `import { a as b } from 'm'; b;`,
			ident: "b", use: 1,
			kind: scope.DefImport,
		},
		{
			name:  "namespace import",
			src:   `import * as ns from 'm'; ns;`,
			ident: "ns", use: 1,
			kind: scope.DefImport,
		},
		{
			name:  "catch parameter",
			src:   `try {} catch (e) { e; }`,
			ident: "e", use: 1,
			kind: scope.DefCatchParameter,
		},
		{
			name:  "for of header",
			src:   `for (const item of list) { item; }`,
			ident: "item", use: 1,
			kind: scope.DefVariable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table, root, src := build(t, tc.src)
			binding := table.Resolve(ident(t, root, src, tc.ident, tc.use))
			require.NotNil(t, binding)
			assert.Equal(t, tc.ident, binding.Name)
			require.NotEmpty(t, binding.Defs)
			assert.Equal(t, tc.kind, binding.Defs[0].Kind)
		})
	}
}

func TestBuild_InitializerReference(t *testing.T) {
	table, root, src := build(t, `const f = (x) => x;`)
	binding := table.Resolve(ident(t, root, src, "f", 0))
	require.NotNil(t, binding)
	require.Len(t, binding.Refs, 1)
	ref := binding.Refs[0]
	assert.True(t, ref.IsInitializer)
	assert.True(t, ref.IsWrite)
	require.NotNil(t, ref.WriteExpr)
	assert.Equal(t, syntax.KindArrowFunction, ref.WriteExpr.Type())
}

func TestBuild_AssignmentWrite(t *testing.T) {
	table, root, src := build(t, "let g;\ng = (x) => x;\ng;")
	binding := table.Resolve(ident(t, root, src, "g", 1))
	require.NotNil(t, binding)

	var write *scope.Ref
	for _, ref := range binding.Refs {
		if ref.IsWrite {
			write = ref
		}
	}
	require.NotNil(t, write)
	assert.False(t, write.IsInitializer)
	require.NotNil(t, write.WriteExpr)
	assert.Equal(t, syntax.KindArrowFunction, write.WriteExpr.Type())

	// the trailing read resolves to the same binding
	assert.Same(t, binding, table.Resolve(ident(t, root, src, "g", 2)))
}

func TestBuild_Shadowing(t *testing.T) {
	src := `let x = 1;
function f() { let x = 2; x; }
x;`
	table, root, data := build(t, src)
	inner := table.Resolve(ident(t, root, data, "x", 2))
	outer := table.Resolve(ident(t, root, data, "x", 3))
	require.NotNil(t, inner)
	require.NotNil(t, outer)
	assert.NotSame(t, inner, outer)
	assert.Equal(t, "2", inner.Refs[0].WriteExpr.Content(data))
	assert.Equal(t, "1", outer.Refs[0].WriteExpr.Content(data))
}

func TestBuild_VarHoistsToFunction(t *testing.T) {
	table, root, src := build(t, `function f() { { var v = 1; } v; }`)
	use := table.Resolve(ident(t, root, src, "v", 1))
	require.NotNil(t, use)
	require.NotEmpty(t, use.Defs)
	assert.Equal(t, scope.DefVariable, use.Defs[0].Kind)
}

func TestBuild_ReferenceBeforeDeclaration(t *testing.T) {
	table, root, src := build(t, "export { g };\nlet g;")
	binding := table.Resolve(ident(t, root, src, "g", 0))
	require.NotNil(t, binding)
	assert.Equal(t, scope.DefVariable, binding.Defs[0].Kind)
}

func TestBuild_ParameterDefinition(t *testing.T) {
	table, root, src := build(t, `function f(p) { return p; }`)
	binding := table.Resolve(ident(t, root, src, "p", 1))
	require.NotNil(t, binding)
	assert.Equal(t, scope.DefParameter, binding.Defs[0].Kind)
}
