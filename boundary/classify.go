package boundary

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/tscheck/syntax"
)

// checkNode classifies a node, expanding containers until it reaches
// function values. Nodes are marked before recursing, so self-referential
// structures terminate instead of looping.
func (r *run) checkNode(node *sitter.Node) {
	if node == nil {
		return
	}
	key := syntax.KeyOf(node)
	if r.visited[key] {
		return
	}
	r.visited[key] = true

	switch node.Type() {
	case syntax.KindArrowFunction, syntax.KindFunction, syntax.KindFunctionExpression,
		syntax.KindGeneratorFunction:
		r.checkFunctionExpression(node)
	case syntax.KindFunctionDeclaration, syntax.KindGeneratorFunctionDeclaration:
		r.checkFunctionDeclaration(node)
	case syntax.KindFunctionSignature:
		r.checkSignature(node)
	case syntax.KindArray:
		for _, element := range syntax.NamedChildren(node) {
			r.checkNode(element)
		}
	case syntax.KindObject:
		for _, property := range syntax.NamedChildren(node) {
			r.checkNode(property)
		}
	case syntax.KindPair:
		r.checkNode(node.ChildByFieldName("value"))
	case syntax.KindClass, syntax.KindClassDeclaration, syntax.KindAbstractClassDeclaration:
		if body := node.ChildByFieldName("body"); body != nil {
			for _, member := range syntax.NamedChildren(body) {
				r.checkNode(member)
			}
		}
	case syntax.KindMethodDefinition:
		if r.isPrivateMember(node) {
			return
		}
		r.checkFunctionExpression(node)
	case syntax.KindMethodSignature, syntax.KindAbstractMethodSignature:
		if r.isPrivateMember(node) {
			return
		}
		r.checkSignature(node)
	case syntax.KindPublicFieldDefinition:
		if r.isPrivateMember(node) {
			return
		}
		r.checkNode(node.ChildByFieldName("value"))
	case syntax.KindIdentifier, syntax.KindShorthandPropertyIdentifier:
		r.followReference(node)
	case syntax.KindLexicalDeclaration, syntax.KindVariableDeclaration:
		for _, declarator := range syntax.NamedChildren(node) {
			r.checkNode(declarator)
		}
	case syntax.KindVariableDeclarator:
		r.checkNode(node.ChildByFieldName("value"))
	case syntax.KindParenthesizedExpression:
		r.checkNode(syntax.Unparenthesize(node))
	case syntax.KindAmbientDeclaration:
		// declare wraps ordinary declarations
		for _, declaration := range syntax.NamedChildren(node) {
			r.checkNode(declaration)
		}
	default:
		// not a function carrier; the search ends on this branch
	}
}

// isPrivateMember reports whether a class member is private, either through
// an accessibility modifier or a #-prefixed name
func (r *run) isPrivateMember(member *sitter.Node) bool {
	if name := member.ChildByFieldName("name"); name != nil && name.Type() == syntax.KindPrivatePropertyIdentifier {
		return true
	}
	for i := uint32(0); i < member.ChildCount(); i++ {
		child := member.Child(int(i))
		if child.Type() == syntax.KindAccessibilityModifier && child.Content(r.src) == "private" {
			return true
		}
	}
	return false
}
