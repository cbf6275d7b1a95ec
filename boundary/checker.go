package boundary

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/tscheck/syntax"
)

// checkFunctionDeclaration validates a named function declaration
func (r *run) checkFunctionDeclaration(node *sitter.Node) {
	if r.done(node) {
		return
	}
	if r.isAllowedName(node) || r.ancestorHasReturnType(node) {
		return
	}
	r.checkFunctionReturnType(node)
	r.checkParameters(node)
}

// checkFunctionExpression validates a function expression, arrow function
// or method body
func (r *run) checkFunctionExpression(node *sitter.Node) {
	if r.done(node) {
		return
	}
	if r.isAllowedName(r.enclosingDeclaration(node)) ||
		r.isTypedFunctionExpression(node) ||
		r.ancestorHasReturnType(node) {
		return
	}
	r.checkFunctionExpressionReturnType(node)
	r.checkParameters(node)
}

// checkSignature validates a body-less function signature. Constructors and
// set accessors have no meaningful return type; parameters are always
// checked.
func (r *run) checkSignature(node *sitter.Node) {
	if r.done(node) {
		return
	}
	if r.isAllowedName(node) {
		return
	}
	if !r.isConstructor(node) && !r.isSetter(node) && node.ChildByFieldName("return_type") == nil {
		r.report(node, MissingReturnType, nil)
	}
	r.checkParameters(node)
}

// done marks a function as checked, reporting whether it already was
func (r *run) done(node *sitter.Node) bool {
	key := syntax.KeyOf(node)
	if r.checked[key] {
		return true
	}
	r.checked[key] = true
	return false
}

// enclosingDeclaration returns the construct that names a function
// expression: the method itself, or the declarator, property or member the
// expression is assigned to
func (r *run) enclosingDeclaration(fn *sitter.Node) *sitter.Node {
	if fn.Type() == syntax.KindMethodDefinition {
		return fn
	}
	return syntax.EnclosingNonParen(fn)
}

// isAllowedName reports whether the declaration naming a function matches a
// configured allowed name
func (r *run) isAllowedName(decl *sitter.Node) bool {
	if decl == nil || len(r.opts.AllowedNames) == 0 {
		return false
	}
	switch decl.Type() {
	case syntax.KindFunctionDeclaration, syntax.KindGeneratorFunctionDeclaration,
		syntax.KindFunctionSignature, syntax.KindVariableDeclarator:
		name := decl.ChildByFieldName("name")
		return name != nil && name.Type() == syntax.KindIdentifier && r.opts.allowedName(name.Content(r.src))
	case syntax.KindMethodDefinition, syntax.KindMethodSignature,
		syntax.KindAbstractMethodSignature, syntax.KindPublicFieldDefinition:
		return r.keyMatchesAllowedName(decl.ChildByFieldName("name"))
	case syntax.KindPair:
		return r.keyMatchesAllowedName(decl.ChildByFieldName("key"))
	}
	return false
}

// keyMatchesAllowedName matches a member key against the allowed names:
// identifiers, string literal keys and substitution-free template keys
// match; other computed keys never do
func (r *run) keyMatchesAllowedName(key *sitter.Node) bool {
	if key == nil {
		return false
	}
	switch key.Type() {
	case syntax.KindPropertyIdentifier, syntax.KindIdentifier:
		return r.opts.allowedName(key.Content(r.src))
	case syntax.KindString:
		if fragment := syntax.FirstNamedChild(key); fragment != nil && fragment.Type() == syntax.KindStringFragment {
			return r.opts.allowedName(fragment.Content(r.src))
		}
		content := key.Content(r.src)
		if len(content) < 2 {
			return false
		}
		return r.opts.allowedName(content[1 : len(content)-1])
	case syntax.KindTemplateString:
		var fragment string
		for _, child := range syntax.NamedChildren(key) {
			if child.Type() == syntax.KindTemplateSubstitution {
				return false
			}
			fragment += child.Content(r.src)
		}
		if fragment == "" {
			content := key.Content(r.src)
			fragment = content[1 : len(content)-1]
		}
		return r.opts.allowedName(fragment)
	case syntax.KindComputedPropertyName:
		return r.keyMatchesAllowedName(syntax.FirstNamedChild(key))
	}
	return false
}

// isTypedFunctionExpression reports whether the context surrounding a
// function expression already fixes its type, making a local annotation
// redundant
func (r *run) isTypedFunctionExpression(fn *sitter.Node) bool {
	if !r.opts.AllowTypedFunctionExpressions {
		return false
	}
	return r.isTypedParent(syntax.EnclosingNonParen(fn), fn)
}

func (r *run) isTypedParent(parent, child *sitter.Node) bool {
	if parent == nil {
		return false
	}
	switch parent.Type() {
	case syntax.KindAsExpression, syntax.KindSatisfiesExpression, syntax.KindTypeAssertion:
		return true
	case syntax.KindVariableDeclarator, syntax.KindPublicFieldDefinition:
		return parent.ChildByFieldName("type") != nil
	case syntax.KindRequiredParameter, syntax.KindOptionalParameter:
		// the function is the default value of an annotated parameter
		return parent.ChildByFieldName("type") != nil
	case syntax.KindPair:
		// a property value is typed when its object literal is
		object := parent.Parent()
		if object == nil {
			return false
		}
		return r.isTypedParent(syntax.EnclosingNonParen(object), object)
	case syntax.KindArguments:
		// passed as a call argument, the callee supplies the type; an
		// immediately invoked expression supplies nothing
		call := parent.Parent()
		if call == nil || call.Type() != syntax.KindCallExpression {
			return false
		}
		callee := call.ChildByFieldName("function")
		return callee != nil && !syntax.Same(syntax.Unparenthesize(callee), child)
	}
	return false
}

// ancestorHasReturnType reports whether a function sits in the return
// position of a context that already supplies its return type
func (r *run) ancestorHasReturnType(fn *sitter.Node) bool {
	parent := syntax.EnclosingNonParen(fn)
	if parent == nil {
		return false
	}
	isReturned := parent.Type() == syntax.KindReturnStatement
	isArrowBody := parent.Type() == syntax.KindArrowFunction &&
		syntax.Same(syntax.Unparenthesize(parent.ChildByFieldName("body")), fn)
	if !isReturned && !isArrowBody {
		return false
	}
	for ancestor := parent; ancestor != nil; ancestor = ancestor.Parent() {
		switch ancestor.Type() {
		case syntax.KindArrowFunction, syntax.KindFunction, syntax.KindFunctionExpression,
			syntax.KindGeneratorFunction, syntax.KindFunctionDeclaration,
			syntax.KindGeneratorFunctionDeclaration, syntax.KindMethodDefinition:
			if ancestor.ChildByFieldName("return_type") != nil {
				return true
			}
		case syntax.KindVariableDeclarator, syntax.KindPublicFieldDefinition:
			return ancestor.ChildByFieldName("type") != nil
		case syntax.KindExpressionStatement:
			return false
		}
	}
	return false
}

// checkFunctionExpressionReturnType reports a missing return type unless an
// expression-form exemption applies
func (r *run) checkFunctionExpressionReturnType(fn *sitter.Node) {
	if r.returnsConstAssertionDirectly(fn) {
		return
	}
	r.checkFunctionReturnType(fn)
}

func (r *run) checkFunctionReturnType(fn *sitter.Node) {
	if r.opts.AllowHigherOrderFunctions && r.immediatelyReturnsFunction(fn) {
		return
	}
	if fn.ChildByFieldName("return_type") != nil {
		return
	}
	if r.isConstructor(fn) || r.isSetter(fn) {
		return
	}
	r.report(fn, MissingReturnType, nil)
}

// returnsConstAssertionDirectly reports an arrow whose expression body is a
// direct `as const` assertion
func (r *run) returnsConstAssertionDirectly(fn *sitter.Node) bool {
	if !r.opts.AllowDirectConstAssertionInArrowFunctions || fn.Type() != syntax.KindArrowFunction {
		return false
	}
	body := fn.ChildByFieldName("body")
	if body == nil || body.Type() == syntax.KindStatementBlock {
		return false
	}
	body = syntax.Unparenthesize(body)
	switch body.Type() {
	case syntax.KindAsExpression:
		if syntax.HasKeywordChild(body, "const") {
			return true
		}
		children := syntax.NamedChildren(body)
		return len(children) >= 2 && children[len(children)-1].Content(r.src) == "const"
	case syntax.KindTypeAssertion:
		arguments := syntax.FirstNamedChild(body)
		if arguments == nil || arguments.Type() != syntax.KindTypeArguments {
			return false
		}
		asserted := syntax.FirstNamedChild(arguments)
		return asserted != nil && asserted.Content(r.src) == "const"
	}
	return false
}

// immediatelyReturnsFunction reports whether a function does nothing except
// return another function expression
func (r *run) immediatelyReturnsFunction(fn *sitter.Node) bool {
	body := fn.ChildByFieldName("body")
	if body == nil {
		return false
	}
	if body.Type() != syntax.KindStatementBlock {
		return syntax.IsFunctionExpression(syntax.Unparenthesize(body).Type())
	}
	statements := syntax.NamedChildren(body)
	if len(statements) != 1 || statements[0].Type() != syntax.KindReturnStatement {
		return false
	}
	returned := syntax.FirstNamedChild(statements[0])
	if returned == nil {
		return false
	}
	return syntax.IsFunctionExpression(syntax.Unparenthesize(returned).Type())
}

// memberOf returns the class member a function belongs to, if any
func memberOf(fn *sitter.Node) *sitter.Node {
	switch fn.Type() {
	case syntax.KindMethodDefinition, syntax.KindMethodSignature, syntax.KindAbstractMethodSignature:
		return fn
	}
	return nil
}

func (r *run) isConstructor(fn *sitter.Node) bool {
	member := memberOf(fn)
	if member == nil {
		return false
	}
	name := member.ChildByFieldName("name")
	return name != nil && name.Type() == syntax.KindPropertyIdentifier && name.Content(r.src) == "constructor"
}

func (r *run) isSetter(fn *sitter.Node) bool {
	member := memberOf(fn)
	return member != nil && syntax.HasKeywordChild(member, "set")
}

// checkParameters validates the annotation on every declared parameter,
// reporting at most one diagnostic per parameter
func (r *run) checkParameters(fn *sitter.Node) {
	if single := fn.ChildByFieldName("parameter"); single != nil {
		// a bare arrow parameter can never carry an annotation
		r.report(single, MissingArgType, map[string]string{"name": single.Content(r.src)})
		return
	}
	parameters := fn.ChildByFieldName("parameters")
	if parameters == nil {
		return
	}
	for _, parameter := range syntax.NamedChildren(parameters) {
		switch parameter.Type() {
		case syntax.KindRequiredParameter, syntax.KindOptionalParameter:
			r.checkParameter(parameter)
		}
	}
}

func (r *run) checkParameter(parameter *sitter.Node) {
	if parameter.ChildByFieldName("value") != nil {
		// a default value supplies the type through inference
		return
	}
	pattern := parameter.ChildByFieldName("pattern")
	if pattern == nil {
		return
	}
	annotation := parameter.ChildByFieldName("type")
	if annotation == nil {
		r.reportParameter(parameter, pattern, MissingArgType, MissingArgTypeUnnamed)
		return
	}
	if !r.opts.AllowArgumentsExplicitlyTypedAsAny && r.isAnyType(annotation) {
		r.reportParameter(parameter, pattern, AnyTypedArg, AnyTypedArgUnnamed)
	}
}

func (r *run) reportParameter(parameter, pattern *sitter.Node, named, unnamed Kind) {
	switch pattern.Type() {
	case syntax.KindIdentifier, syntax.KindThis:
		r.report(parameter, named, map[string]string{"name": pattern.Content(r.src)})
	case syntax.KindArrayPattern:
		r.report(parameter, unnamed, map[string]string{"type": "Array pattern"})
	case syntax.KindObjectPattern:
		r.report(parameter, unnamed, map[string]string{"type": "Object pattern"})
	case syntax.KindRestPattern:
		if inner := syntax.FirstNamedChild(pattern); inner != nil && inner.Type() == syntax.KindIdentifier {
			r.report(parameter, named, map[string]string{"name": inner.Content(r.src)})
		} else {
			r.report(parameter, unnamed, map[string]string{"type": "Rest"})
		}
	}
}

func (r *run) isAnyType(annotation *sitter.Node) bool {
	typ := syntax.FirstNamedChild(annotation)
	return typ != nil && typ.Type() == syntax.KindPredefinedType && typ.Content(r.src) == "any"
}
