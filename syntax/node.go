package syntax

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Key identifies a node within a single syntax tree. Tree-sitter hands out
// transient node wrappers, so identity is derived from the node's span and
// kind rather than from pointer equality.
type Key struct {
	Start uint32
	End   uint32
	Kind  string
}

// KeyOf returns the identity key of a node
func KeyOf(node *sitter.Node) Key {
	return Key{Start: node.StartByte(), End: node.EndByte(), Kind: node.Type()}
}

// Same reports whether two nodes denote the same tree node
func Same(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return KeyOf(a) == KeyOf(b)
}

// NamedChildren returns the named children of a node, skipping comments
func NamedChildren(node *sitter.Node) []*sitter.Node {
	var children []*sitter.Node
	for i := uint32(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(int(i))
		if child.Type() == KindComment {
			continue
		}
		children = append(children, child)
	}
	return children
}

// FirstNamedChild returns the first named non-comment child of a node
func FirstNamedChild(node *sitter.Node) *sitter.Node {
	for i := uint32(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(int(i))
		if child.Type() != KindComment {
			return child
		}
	}
	return nil
}

// Unparenthesize strips any levels of wrapping parentheses from an expression
func Unparenthesize(node *sitter.Node) *sitter.Node {
	for node != nil && node.Type() == KindParenthesizedExpression {
		inner := FirstNamedChild(node)
		if inner == nil {
			break
		}
		node = inner
	}
	return node
}

// EnclosingNonParen returns the closest ancestor that is not a
// parenthesized expression
func EnclosingNonParen(node *sitter.Node) *sitter.Node {
	parent := node.Parent()
	for parent != nil && parent.Type() == KindParenthesizedExpression {
		parent = parent.Parent()
	}
	return parent
}

// HasKeywordChild reports whether a node carries the given anonymous
// keyword token among its direct children
func HasKeywordChild(node *sitter.Node, keyword string) bool {
	for i := uint32(0); i < node.ChildCount(); i++ {
		if node.Child(int(i)).Type() == keyword {
			return true
		}
	}
	return false
}

// Walk traverses named nodes in preorder; visit returning false prunes the
// subtree
func Walk(node *sitter.Node, visit func(node *sitter.Node) bool) {
	if node == nil || !visit(node) {
		return
	}
	for i := uint32(0); i < node.NamedChildCount(); i++ {
		Walk(node.NamedChild(int(i)), visit)
	}
}
