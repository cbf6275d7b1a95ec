package boundary

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/tscheck/syntax"
)

// closeHigherOrder runs after the main walk. Every function literal seen in
// the tree is promoted into the checker when it sits inside a chain of
// immediately-returning wrappers whose outermost wrapper was checked as
// exported.
func (r *run) closeHigherOrder() {
	for _, fn := range r.found {
		if r.isExportedHigherOrder(fn) {
			r.checkNode(fn)
		}
	}
}

func (r *run) isExportedHigherOrder(fn *sitter.Node) bool {
	current := fn.Parent()
	for current != nil {
		switch current.Type() {
		case syntax.KindParenthesizedExpression:
			current = current.Parent()
			continue
		case syntax.KindReturnStatement:
			// a return's parent is always a statement block; step to the
			// block's owner
			block := current.Parent()
			if block == nil {
				return false
			}
			current = block.Parent()
			continue
		}
		if !syntax.IsFunction(current.Type()) || !r.immediatelyReturnsFunction(current) {
			return false
		}
		if r.checked[syntax.KeyOf(current)] {
			return true
		}
		current = current.Parent()
	}
	return false
}
