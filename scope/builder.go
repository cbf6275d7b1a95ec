package scope

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/tscheck/syntax"
)

// Build constructs the scope table for a parsed module. The first walk
// creates scopes and definitions, the second resolves every identifier
// occurrence against them, so references may precede their declaration.
func Build(root *sitter.Node, src []byte) *Table {
	b := &builder{
		src: src,
		table: &Table{
			byIdent: map[syntax.Key]*Binding{},
			byNode:  map[syntax.Key]*Scope{},
		},
		defNames: map[syntax.Key]bool{},
	}
	module := b.open(KindModule, root, nil)
	b.table.Module = module
	b.collect(root, module)
	b.resolve(root, module)
	return b.table
}

type builder struct {
	src      []byte
	table    *Table
	defNames map[syntax.Key]bool
}

func (b *builder) open(kind Kind, node *sitter.Node, parent *Scope) *Scope {
	scope := &Scope{Kind: kind, Node: node, Parent: parent, bindings: map[string]*Binding{}}
	b.table.byNode[syntax.KeyOf(node)] = scope
	return scope
}

func (b *builder) declare(scope *Scope, name *sitter.Node, def *Def) {
	scope.declare(name.Content(b.src), def)
	b.defNames[syntax.KeyOf(name)] = true
}

func (b *builder) collect(node *sitter.Node, current *Scope) {
	switch node.Type() {
	case syntax.KindFunctionDeclaration, syntax.KindGeneratorFunctionDeclaration,
		syntax.KindFunctionSignature:
		if name := node.ChildByFieldName("name"); name != nil {
			b.declare(current, name, &Def{Kind: DefFunction, Node: node, Name: name})
		}
		inner := b.open(KindFunction, node, current)
		b.declareParameters(node, inner)
		b.collectChildren(node, inner)
	case syntax.KindFunction, syntax.KindFunctionExpression, syntax.KindGeneratorFunction,
		syntax.KindArrowFunction, syntax.KindMethodDefinition,
		syntax.KindMethodSignature, syntax.KindAbstractMethodSignature:
		inner := b.open(KindFunction, node, current)
		// a named function expression binds its own name inside itself
		if name := node.ChildByFieldName("name"); name != nil && name.Type() == syntax.KindIdentifier {
			b.declare(inner, name, &Def{Kind: DefFunction, Node: node, Name: name})
		}
		b.declareParameters(node, inner)
		b.collectChildren(node, inner)
	case syntax.KindClassDeclaration, syntax.KindAbstractClassDeclaration:
		if name := node.ChildByFieldName("name"); name != nil {
			b.declare(current, name, &Def{Kind: DefClass, Node: node, Name: name})
		}
		b.collectChildren(node, current)
	case syntax.KindEnumDeclaration:
		if name := node.ChildByFieldName("name"); name != nil {
			b.declare(current, name, &Def{Kind: DefEnum, Node: node, Name: name})
		}
		b.collectChildren(node, current)
	case syntax.KindLexicalDeclaration, syntax.KindVariableDeclaration:
		target := current
		if node.Type() == syntax.KindVariableDeclaration {
			// var declarations hoist to the nearest function or module scope
			target = current.hoistTarget()
		}
		for _, declarator := range syntax.NamedChildren(node) {
			if declarator.Type() != syntax.KindVariableDeclarator {
				continue
			}
			for _, name := range patternNames(declarator.ChildByFieldName("name")) {
				b.declare(target, name, &Def{Kind: DefVariable, Node: declarator, Name: name})
			}
		}
		b.collectChildren(node, current)
	case syntax.KindImportStatement:
		b.collectImports(node, current)
	case syntax.KindStatementBlock, syntax.KindForStatement:
		inner := b.open(KindBlock, node, current)
		b.collectChildren(node, inner)
	case syntax.KindForInStatement:
		// for-in/of headers declare their pattern without a nested
		// declaration node
		inner := b.open(KindBlock, node, current)
		target := inner
		if syntax.HasKeywordChild(node, "var") {
			target = current.hoistTarget()
		}
		if target != inner || syntax.HasKeywordChild(node, "const") || syntax.HasKeywordChild(node, "let") {
			for _, name := range patternNames(node.ChildByFieldName("left")) {
				b.declare(target, name, &Def{Kind: DefVariable, Node: node, Name: name})
			}
		}
		b.collectChildren(node, inner)
	case syntax.KindCatchClause:
		inner := b.open(KindCatch, node, current)
		for _, name := range patternNames(node.ChildByFieldName("parameter")) {
			b.declare(inner, name, &Def{Kind: DefCatchParameter, Node: node, Name: name})
		}
		b.collectChildren(node, inner)
	default:
		b.collectChildren(node, current)
	}
}

func (b *builder) collectChildren(node *sitter.Node, current *Scope) {
	for i := uint32(0); i < node.NamedChildCount(); i++ {
		b.collect(node.NamedChild(int(i)), current)
	}
}

func (b *builder) declareParameters(fn *sitter.Node, scope *Scope) {
	if single := fn.ChildByFieldName("parameter"); single != nil && single.Type() == syntax.KindIdentifier {
		b.declare(scope, single, &Def{Kind: DefParameter, Node: single, Name: single})
		return
	}
	parameters := fn.ChildByFieldName("parameters")
	if parameters == nil {
		return
	}
	for _, parameter := range syntax.NamedChildren(parameters) {
		switch parameter.Type() {
		case syntax.KindRequiredParameter, syntax.KindOptionalParameter:
			for _, name := range patternNames(parameter.ChildByFieldName("pattern")) {
				b.declare(scope, name, &Def{Kind: DefParameter, Node: parameter, Name: name})
			}
		}
	}
}

func (b *builder) collectImports(node *sitter.Node, current *Scope) {
	declare := func(name *sitter.Node) {
		if name != nil && name.Type() == syntax.KindIdentifier {
			b.declare(current, name, &Def{Kind: DefImport, Node: node, Name: name})
		}
	}
	for _, child := range syntax.NamedChildren(node) {
		if child.Type() != syntax.KindImportClause {
			continue
		}
		for _, clause := range syntax.NamedChildren(child) {
			switch clause.Type() {
			case syntax.KindIdentifier:
				declare(clause)
			case syntax.KindNamespaceImport:
				declare(syntax.FirstNamedChild(clause))
			case syntax.KindNamedImports:
				for _, specifier := range syntax.NamedChildren(clause) {
					if specifier.Type() != syntax.KindImportSpecifier {
						continue
					}
					local := specifier.ChildByFieldName("alias")
					if local == nil {
						local = specifier.ChildByFieldName("name")
					}
					declare(local)
				}
			}
		}
	}
}

// patternNames collects the identifiers a binding pattern introduces
func patternNames(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	switch node.Type() {
	case syntax.KindIdentifier, syntax.KindShorthandPropertyIdentifierPattern:
		return []*sitter.Node{node}
	case syntax.KindObjectPattern, syntax.KindArrayPattern:
		var names []*sitter.Node
		for _, child := range syntax.NamedChildren(node) {
			names = append(names, patternNames(child)...)
		}
		return names
	case syntax.KindPairPattern:
		return patternNames(node.ChildByFieldName("value"))
	case syntax.KindRestPattern:
		return patternNames(syntax.FirstNamedChild(node))
	case syntax.KindAssignmentPattern, syntax.KindObjectAssignmentPattern:
		return patternNames(node.ChildByFieldName("left"))
	}
	return nil
}

func (b *builder) resolve(node *sitter.Node, current *Scope) {
	if scope, ok := b.table.byNode[syntax.KeyOf(node)]; ok {
		current = scope
	}
	switch node.Type() {
	case syntax.KindIdentifier, syntax.KindShorthandPropertyIdentifier:
		b.reference(node, current)
		return
	}
	for i := uint32(0); i < node.NamedChildCount(); i++ {
		b.resolve(node.NamedChild(int(i)), current)
	}
}

func (b *builder) reference(ident *sitter.Node, current *Scope) {
	name := ident.Content(b.src)
	if b.defNames[syntax.KeyOf(ident)] {
		// a definition occurrence; only an initialized declarator name
		// counts as a reference
		parent := ident.Parent()
		if parent == nil || parent.Type() != syntax.KindVariableDeclarator ||
			!syntax.Same(parent.ChildByFieldName("name"), ident) {
			return
		}
		value := parent.ChildByFieldName("value")
		if value == nil {
			return
		}
		if binding := current.lookup(name); binding != nil {
			binding.Refs = append(binding.Refs, &Ref{Ident: ident, IsInitializer: true, IsWrite: true, WriteExpr: value})
			b.table.byIdent[syntax.KeyOf(ident)] = binding
		}
		return
	}
	binding := current.lookup(name)
	if binding == nil {
		// unresolved names are not an error; they are simply not tracked
		return
	}
	ref := &Ref{Ident: ident}
	if parent := ident.Parent(); parent != nil {
		switch parent.Type() {
		case syntax.KindAssignmentExpression, syntax.KindAugmentedAssignment:
			if syntax.Same(parent.ChildByFieldName("left"), ident) {
				ref.IsWrite = true
				ref.WriteExpr = parent.ChildByFieldName("right")
			}
		case syntax.KindUpdateExpression:
			ref.IsWrite = true
		}
	}
	binding.Refs = append(binding.Refs, ref)
	b.table.byIdent[syntax.KeyOf(ident)] = binding
}
