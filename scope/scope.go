package scope

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/tscheck/syntax"
)

// DefKind classifies how a binding name was introduced
type DefKind int

const (
	DefVariable DefKind = iota
	DefFunction
	DefClass
	DefEnum
	DefImport
	DefParameter
	DefCatchParameter
)

// Def records a single definition of a binding
type Def struct {
	Kind DefKind
	// Node is the declarator or declaration that introduces the name
	Node *sitter.Node
	// Name is the identifier being introduced
	Name *sitter.Node
}

// Ref records a read or write of a binding, in source order
type Ref struct {
	Ident *sitter.Node
	// IsInitializer marks the declarator-name reference of an initialized
	// declaration
	IsInitializer bool
	IsWrite       bool
	// WriteExpr is the assigned expression when the reference is a write
	WriteExpr *sitter.Node
}

// Binding is the resolved identity of a declared name within a lexical scope
type Binding struct {
	Name string
	Defs []*Def
	Refs []*Ref
}

// Kind discriminates scope flavours
type Kind int

const (
	KindModule Kind = iota
	KindFunction
	KindBlock
	KindCatch
)

// Scope is one lexical scope with its local bindings
type Scope struct {
	Kind     Kind
	Node     *sitter.Node
	Parent   *Scope
	bindings map[string]*Binding
}

func (s *Scope) declare(name string, def *Def) *Binding {
	binding, ok := s.bindings[name]
	if !ok {
		binding = &Binding{Name: name}
		s.bindings[name] = binding
	}
	binding.Defs = append(binding.Defs, def)
	return binding
}

// lookup resolves a name through the scope chain, innermost first
func (s *Scope) lookup(name string) *Binding {
	for scope := s; scope != nil; scope = scope.Parent {
		if binding, ok := scope.bindings[name]; ok {
			return binding
		}
	}
	return nil
}

// hoistTarget returns the nearest enclosing function or module scope
func (s *Scope) hoistTarget() *Scope {
	for scope := s; scope != nil; scope = scope.Parent {
		if scope.Kind == KindFunction || scope.Kind == KindModule {
			return scope
		}
	}
	return s
}

// Table resolves identifier occurrences to bindings for one syntax tree
type Table struct {
	Module  *Scope
	byIdent map[syntax.Key]*Binding
	byNode  map[syntax.Key]*Scope
}

// Resolve returns the binding an identifier occurrence refers to, or nil
// when the name is unresolved in its scope chain
func (t *Table) Resolve(ident *sitter.Node) *Binding {
	if ident == nil {
		return nil
	}
	return t.byIdent[syntax.KeyOf(ident)]
}
