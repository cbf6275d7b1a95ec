package syntax

// Tree-sitter node kinds for the TypeScript grammar. Only the kinds the
// checker dispatches on are listed; anything else terminates a search.
const (
	KindProgram = "program"

	// Export and import forms
	KindExportStatement = "export_statement"
	KindExportClause    = "export_clause"
	KindExportSpecifier = "export_specifier"
	KindImportStatement = "import_statement"
	KindImportClause    = "import_clause"
	KindNamedImports    = "named_imports"
	KindImportSpecifier = "import_specifier"
	KindNamespaceImport = "namespace_import"

	// Functions. The bundled grammar names a function expression "function";
	// later grammar revisions renamed it to "function_expression", so both
	// are recognized throughout.
	KindFunctionDeclaration          = "function_declaration"
	KindGeneratorFunctionDeclaration = "generator_function_declaration"
	KindFunction                     = "function"
	KindFunctionExpression           = "function_expression"
	KindGeneratorFunction            = "generator_function"
	KindArrowFunction                = "arrow_function"
	KindFunctionSignature            = "function_signature"

	// Classes and members
	KindClassDeclaration         = "class_declaration"
	KindAbstractClassDeclaration = "abstract_class_declaration"
	KindClass                    = "class"
	KindClassBody                = "class_body"
	KindMethodDefinition         = "method_definition"
	KindMethodSignature          = "method_signature"
	KindAbstractMethodSignature  = "abstract_method_signature"
	KindPublicFieldDefinition    = "public_field_definition"
	KindAccessibilityModifier    = "accessibility_modifier"
	KindComputedPropertyName     = "computed_property_name"

	// Parameters and patterns
	KindFormalParameters        = "formal_parameters"
	KindRequiredParameter       = "required_parameter"
	KindOptionalParameter       = "optional_parameter"
	KindRestPattern             = "rest_pattern"
	KindObjectPattern           = "object_pattern"
	KindArrayPattern            = "array_pattern"
	KindPairPattern             = "pair_pattern"
	KindAssignmentPattern       = "assignment_pattern"
	KindObjectAssignmentPattern = "object_assignment_pattern"
	KindThis                    = "this"

	// Types
	KindTypeAnnotation = "type_annotation"
	KindPredefinedType = "predefined_type"
	KindTypeIdentifier = "type_identifier"
	KindTypeArguments  = "type_arguments"

	// Identifiers and keys
	KindIdentifier                         = "identifier"
	KindPropertyIdentifier                 = "property_identifier"
	KindPrivatePropertyIdentifier          = "private_property_identifier"
	KindShorthandPropertyIdentifier        = "shorthand_property_identifier"
	KindShorthandPropertyIdentifierPattern = "shorthand_property_identifier_pattern"
	KindStatementIdentifier                = "statement_identifier"

	// Literals and expressions
	KindObject                  = "object"
	KindPair                    = "pair"
	KindArray                   = "array"
	KindSpreadElement           = "spread_element"
	KindString                  = "string"
	KindStringFragment          = "string_fragment"
	KindTemplateString          = "template_string"
	KindTemplateSubstitution    = "template_substitution"
	KindParenthesizedExpression = "parenthesized_expression"
	KindAsExpression            = "as_expression"
	KindSatisfiesExpression     = "satisfies_expression"
	KindTypeAssertion           = "type_assertion"
	KindNonNullExpression       = "non_null_expression"
	KindCallExpression          = "call_expression"
	KindArguments               = "arguments"
	KindAssignmentExpression    = "assignment_expression"
	KindAugmentedAssignment     = "augmented_assignment_expression"
	KindUpdateExpression        = "update_expression"

	// Statements and declarations
	KindStatementBlock      = "statement_block"
	KindReturnStatement     = "return_statement"
	KindExpressionStatement = "expression_statement"
	KindLexicalDeclaration  = "lexical_declaration"
	KindVariableDeclaration = "variable_declaration"
	KindVariableDeclarator  = "variable_declarator"
	KindForStatement        = "for_statement"
	KindForInStatement      = "for_in_statement"
	KindAmbientDeclaration  = "ambient_declaration"
	KindCatchClause         = "catch_clause"
	KindEnumDeclaration     = "enum_declaration"
	KindComment             = "comment"
)

// IsFunctionExpression reports whether kind is a function-valued expression
func IsFunctionExpression(kind string) bool {
	switch kind {
	case KindArrowFunction, KindFunction, KindFunctionExpression, KindGeneratorFunction:
		return true
	}
	return false
}

// IsFunction reports whether kind is any function carrying parameters and a
// body, including declarations and class methods
func IsFunction(kind string) bool {
	switch kind {
	case KindFunctionDeclaration, KindGeneratorFunctionDeclaration, KindMethodDefinition:
		return true
	}
	return IsFunctionExpression(kind)
}
