package boundary

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/tscheck/syntax"
)

// discoverExports seeds the classifier with the payload of every top-level
// export form
func (r *run) discoverExports(root *sitter.Node) {
	for i := uint32(0); i < root.NamedChildCount(); i++ {
		node := root.NamedChild(int(i))
		if node.Type() == syntax.KindExportStatement {
			r.discoverExport(node)
		}
	}
}

func (r *run) discoverExport(node *sitter.Node) {
	if syntax.HasKeywordChild(node, "type") {
		// export type {...} has no runtime surface
		return
	}
	if declaration := node.ChildByFieldName("declaration"); declaration != nil {
		r.checkNode(declaration)
		return
	}
	if value := node.ChildByFieldName("value"); value != nil {
		// export default <expression>
		r.checkNode(value)
		return
	}
	if syntax.HasKeywordChild(node, "=") {
		// export = <expression> re-exports the whole module
		r.checkNode(syntax.FirstNamedChild(node))
		return
	}
	if node.ChildByFieldName("source") != nil {
		// re-export from another module; the other module owns the check
		return
	}
	for _, child := range syntax.NamedChildren(node) {
		if child.Type() != syntax.KindExportClause {
			continue
		}
		for _, specifier := range syntax.NamedChildren(child) {
			if specifier.Type() == syntax.KindExportSpecifier {
				r.followReference(specifier.ChildByFieldName("name"))
			}
		}
	}
}
