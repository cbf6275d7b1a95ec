package boundary

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/tscheck/scope"
	"github.com/viant/tscheck/syntax"
)

// run owns the mutable state of a single analysis pass over one tree. It is
// created per Check call and discarded when the pass completes.
type run struct {
	src    []byte
	opts   Options
	scopes *scope.Table
	// checked guards the function checker: a function is evaluated at most
	// once no matter how many export paths reach it
	checked map[syntax.Key]bool
	// visited guards the classifier against re-expanding a node, which is
	// what terminates cyclic structures
	visited map[syntax.Key]bool
	// found records every function literal in the tree, in source order,
	// for the higher-order pass
	found  []*sitter.Node
	report func(node *sitter.Node, kind Kind, data map[string]string)
}

// Check analyzes a parsed module and reports every function on the module's
// public surface that lacks explicit parameter or return type annotations.
// Diagnostics are emitted in traversal order, so repeated runs over the same
// tree produce identical lists.
func Check(root *sitter.Node, src []byte, opts Options) []Diagnostic {
	var diagnostics []Diagnostic
	r := &run{
		src:     src,
		opts:    opts,
		scopes:  scope.Build(root, src),
		checked: map[syntax.Key]bool{},
		visited: map[syntax.Key]bool{},
	}
	r.report = func(node *sitter.Node, kind Kind, data map[string]string) {
		point := node.StartPoint()
		diagnostics = append(diagnostics, Diagnostic{
			Pos: Position{
				Line:   int(point.Row) + 1,
				Column: int(point.Column) + 1,
				Offset: int(node.StartByte()),
			},
			Kind:    kind,
			Data:    data,
			Message: kind.Render(data),
		})
	}
	r.collectFunctions(root)
	r.discoverExports(root)
	r.closeHigherOrder()
	return diagnostics
}

func (r *run) collectFunctions(root *sitter.Node) {
	syntax.Walk(root, func(node *sitter.Node) bool {
		if syntax.IsFunction(node.Type()) {
			r.found = append(r.found, node)
		}
		return true
	})
}

// followReference maps an exported name back to every value ever assigned
// to it and feeds each into the classifier
func (r *run) followReference(ident *sitter.Node) {
	binding := r.scopes.Resolve(ident)
	if binding == nil {
		// an unresolved name is a dead end, not a failure
		return
	}
	for _, def := range binding.Defs {
		switch def.Kind {
		case scope.DefImport, scope.DefParameter, scope.DefCatchParameter:
			// nothing type-checkable behind these definitions
		default:
			r.checkNode(def.Node)
		}
	}
	for _, ref := range binding.Refs {
		if ref.IsInitializer || !ref.IsWrite || ref.WriteExpr == nil {
			continue
		}
		r.checkNode(ref.WriteExpr)
	}
}
