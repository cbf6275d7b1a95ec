package boundary

// Options control which functions at a module's public surface may omit
// explicit type annotations
type Options struct {
	// AllowArgumentsExplicitlyTypedAsAny accepts parameters annotated with
	// the universal any type
	AllowArgumentsExplicitlyTypedAsAny bool `yaml:"allowArgumentsExplicitlyTypedAsAny" json:"allowArgumentsExplicitlyTypedAsAny"`
	// AllowDirectConstAssertionInArrowFunctions accepts arrows whose body
	// is a direct `as const` assertion in place of a return annotation
	AllowDirectConstAssertionInArrowFunctions bool `yaml:"allowDirectConstAssertionInArrowFunctions" json:"allowDirectConstAssertionInArrowFunctions"`
	// AllowedNames lists function, variable, property and method names
	// that are exempt from checking
	AllowedNames []string `yaml:"allowedNames" json:"allowedNames"`
	// AllowHigherOrderFunctions accepts functions that immediately return
	// another function expression in place of a return annotation
	AllowHigherOrderFunctions bool `yaml:"allowHigherOrderFunctions" json:"allowHigherOrderFunctions"`
	// AllowTypedFunctionExpressions accepts function expressions whose
	// surrounding context already fixes their type
	AllowTypedFunctionExpressions bool `yaml:"allowTypedFunctionExpressions" json:"allowTypedFunctionExpressions"`
}

// DefaultOptions returns the option defaults
func DefaultOptions() Options {
	return Options{
		AllowDirectConstAssertionInArrowFunctions: true,
		AllowHigherOrderFunctions:                 true,
		AllowTypedFunctionExpressions:             true,
	}
}

func (o *Options) allowedName(name string) bool {
	for _, candidate := range o.AllowedNames {
		if candidate == name {
			return true
		}
	}
	return false
}
