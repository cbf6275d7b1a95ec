package boundary_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/tscheck/boundary"
	"github.com/viant/tscheck/syntax"
)

func analyze(t *testing.T, src string, opts boundary.Options) []boundary.Diagnostic {
	t.Helper()
	tree, err := syntax.Parse(context.Background(), []byte(src), syntax.DialectTypeScript)
	require.NoError(t, err)
	return boundary.Check(tree.RootNode(), []byte(src), opts)
}

type issue struct {
	kind boundary.Kind
	data map[string]string
}

func issuesOf(diagnostics []boundary.Diagnostic) []issue {
	var result []issue
	for _, diagnostic := range diagnostics {
		result = append(result, issue{kind: diagnostic.Kind, data: diagnostic.Data})
	}
	return result
}

func named(kind boundary.Kind, name string) issue {
	return issue{kind: kind, data: map[string]string{"name": name}}
}

func unnamed(kind boundary.Kind, shape string) issue {
	return issue{kind: kind, data: map[string]string{"type": shape}}
}

func missingReturn() issue {
	return issue{kind: boundary.MissingReturnType}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts *boundary.Options
		want []issue
	}{
		{
			name: "untyped exported function",
			src:  `export function f(x) { return x; }`,
			want: []issue{missingReturn(), named(boundary.MissingArgType, "x")},
		},
		{
			name: "fully typed exported function",
			src:  `export function f(x: number): number { return x; }`,
		},
		{
			name: "array pattern parameter",
			src:  `export function f([a, b]): void {}`,
			want: []issue{unnamed(boundary.MissingArgTypeUnnamed, "Array pattern")},
		},
		{
			name: "object pattern parameter",
			src:  `export function f({a}): void {}`,
			want: []issue{unnamed(boundary.MissingArgTypeUnnamed, "Object pattern")},
		},
		{
			name: "named rest parameter",
			src:  `export function f(...rest): void {}`,
			want: []issue{named(boundary.MissingArgType, "rest")},
		},
		{
			name: "destructured rest parameter",
			src:  `export function f(...[a]): void {}`,
			want: []issue{unnamed(boundary.MissingArgTypeUnnamed, "Rest")},
		},
		{
			name: "any typed parameter",
			src:  `export function f(x: any): number { return 1; }`,
			want: []issue{named(boundary.AnyTypedArg, "x")},
		},
		{
			name: "any typed parameter allowed",
			src:  `export function f(x: any): number { return 1; }`,
			opts: withOptions(func(o *boundary.Options) { o.AllowArgumentsExplicitlyTypedAsAny = true }),
		},
		{
			name: "allowed name bypasses both checks",
			src:  `export function f(x) { return x; }`,
			opts: withOptions(func(o *boundary.Options) { o.AllowedNames = []string{"f"} }),
		},
		{
			name: "allowed object method name",
			src:  `export const handlers = { onReady(e) {} };`,
			opts: withOptions(func(o *boundary.Options) { o.AllowedNames = []string{"onReady"} }),
		},
		{
			name: "later reassignment is tracked",
			src: `let g;
export { g };
g = (x) => x;`,
			want: []issue{missingReturn(), named(boundary.MissingArgType, "x")},
		},
		{
			name: "higher order wrapper with typed inner arrow",
			src:  `export const make = () => (x: number): number => x;`,
		},
		{
			name: "higher order wrapper with untyped inner arrow",
			src:  `export const make = () => (x) => x;`,
			want: []issue{missingReturn(), named(boundary.MissingArgType, "x")},
		},
		{
			name: "higher order exemption disabled",
			src:  `export const make = () => (x: number): number => x;`,
			opts: withOptions(func(o *boundary.Options) { o.AllowHigherOrderFunctions = false }),
			want: []issue{missingReturn()},
		},
		{
			name: "typed function expression",
			src: `type Fn = (x: number) => number;
export const cb: Fn = (x) => x;`,
		},
		{
			name: "typed function expression exemption disabled",
			src: `type Fn = (x: number) => number;
export const cb: Fn = (x) => x;`,
			opts: withOptions(func(o *boundary.Options) { o.AllowTypedFunctionExpressions = false }),
			want: []issue{missingReturn(), named(boundary.MissingArgType, "x")},
		},
		{
			name: "const assertion arrow body",
			src:  `export const get = () => ({ kind: 'a' } as const);`,
		},
		{
			name: "const assertion arrow still checks parameters",
			src:  `export const get = (id) => ({ kind: id } as const);`,
			want: []issue{named(boundary.MissingArgType, "id")},
		},
		{
			name: "const assertion exemption disabled",
			src:  `export const get = () => ({ kind: 'a' } as const);`,
			opts: withOptions(func(o *boundary.Options) { o.AllowDirectConstAssertionInArrowFunctions = false }),
			want: []issue{missingReturn()},
		},
		{
			name: "defaulted parameter is never reported",
			src:  `export function f(x = 1): void {}`,
		},
		{
			name: "default export arrow",
			src:  `export default (x) => x;`,
			want: []issue{missingReturn(), named(boundary.MissingArgType, "x")},
		},
		{
			name: "export assignment",
			src: `const handler = (input) => input;
export = handler;`,
			want: []issue{missingReturn(), named(boundary.MissingArgType, "input")},
		},
		{
			name: "private members are skipped",
			src: `export class C {
  private go(x) {}
  #hidden(y) {}
  pub(z): void {}
}`,
			want: []issue{named(boundary.MissingArgType, "z")},
		},
		{
			name: "class methods and field initializers",
			src:  `export class C { run(x) {} handler = (y) => y; }`,
			want: []issue{
				missingReturn(), named(boundary.MissingArgType, "x"),
				missingReturn(), named(boundary.MissingArgType, "y"),
			},
		},
		{
			name: "ambient class signatures",
			src: `export declare class Service {
  constructor(name: string);
  run(x: number): void;
  broken(x: number);
}`,
			want: []issue{missingReturn()},
		},
		{
			name: "setter needs no return type",
			src:  `export declare class Box { set value(v: number); }`,
		},
		{
			name: "object and array literals expand",
			src:  `export const fns = [(a) => a, { run: (b) => b }];`,
			want: []issue{
				missingReturn(), named(boundary.MissingArgType, "a"),
				missingReturn(), named(boundary.MissingArgType, "b"),
			},
		},
		{
			name: "re-export from another module is skipped",
			src:  `export { thing } from './other';`,
		},
		{
			name: "type only export is skipped",
			src: `type T = { x: number };
export type { T };`,
		},
		{
			name: "unresolved export specifier is a dead end",
			src:  `export { missing };`,
		},
		{
			name: "shorthand property follows the reference",
			src: `const fn = (x) => x;
export default { fn };`,
			want: []issue{missingReturn(), named(boundary.MissingArgType, "x")},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := boundary.DefaultOptions()
			if tc.opts != nil {
				opts = *tc.opts
			}
			got := analyze(t, tc.src, opts)
			assert.EqualValues(t, tc.want, issuesOf(got))
		})
	}
}

func withOptions(mutate func(o *boundary.Options)) *boundary.Options {
	opts := boundary.DefaultOptions()
	mutate(&opts)
	return &opts
}

func TestCheck_IdempotentAcrossPaths(t *testing.T) {
	src := `const f = (x) => x;
export { f };
export const g = f;`
	got := analyze(t, src, boundary.DefaultOptions())
	// two export paths reach the same arrow; it is evaluated once
	assert.EqualValues(t, []issue{
		missingReturn(), named(boundary.MissingArgType, "x"),
	}, issuesOf(got))
}

func TestCheck_TerminatesOnCycles(t *testing.T) {
	src := `let a = {};
a = { nested: a, fn: (x) => x };
export { a };`
	got := analyze(t, src, boundary.DefaultOptions())
	assert.EqualValues(t, []issue{
		missingReturn(), named(boundary.MissingArgType, "x"),
	}, issuesOf(got))
}

func TestCheck_RerunIsOrderStable(t *testing.T) {
	src := `export function f(x) { return x; }
export const g = (y) => y;`
	tree, err := syntax.Parse(context.Background(), []byte(src), syntax.DialectTypeScript)
	require.NoError(t, err)
	first := boundary.Check(tree.RootNode(), []byte(src), boundary.DefaultOptions())
	second := boundary.Check(tree.RootNode(), []byte(src), boundary.DefaultOptions())
	assert.Equal(t, first, second)
	assert.Len(t, first, 4)
}

func TestCheck_Positions(t *testing.T) {
	src := `export function f(x) {}`
	got := analyze(t, src, boundary.DefaultOptions())
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Pos.Line)
	assert.Equal(t, 8, got[0].Pos.Column)
	assert.Equal(t, 19, got[1].Pos.Column)
	assert.Equal(t, "Missing return type on function.", got[0].Message)
	assert.Equal(t, "Argument 'x' should be typed.", got[1].Message)
}
