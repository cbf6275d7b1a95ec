package boundary

import (
	"strings"
)

// Kind identifies a diagnostic message template
type Kind string

const (
	MissingReturnType     Kind = "missingReturnType"
	MissingArgType        Kind = "missingArgType"
	MissingArgTypeUnnamed Kind = "missingArgTypeUnnamed"
	AnyTypedArg           Kind = "anyTypedArg"
	AnyTypedArgUnnamed    Kind = "anyTypedArgUnnamed"
)

var messages = map[Kind]string{
	MissingReturnType:     "Missing return type on function.",
	MissingArgType:        "Argument '{{name}}' should be typed.",
	MissingArgTypeUnnamed: "{{type}} argument should be typed.",
	AnyTypedArg:           "Argument '{{name}}' should be typed with a non-any type.",
	AnyTypedArgUnnamed:    "{{type}} argument should be typed with a non-any type.",
}

// Render produces the user-facing message for a kind with data interpolated
func (k Kind) Render(data map[string]string) string {
	message := messages[k]
	for key, value := range data {
		message = strings.ReplaceAll(message, "{{"+key+"}}", value)
	}
	return message
}

// Position is a 1-based source location
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
	Offset int `json:"offset" yaml:"offset"`
}

// Diagnostic reports one missing or disallowed annotation
type Diagnostic struct {
	Pos     Position          `json:"pos" yaml:"pos"`
	Kind    Kind              `json:"kind" yaml:"kind"`
	Data    map[string]string `json:"data,omitempty" yaml:"data,omitempty"`
	Message string            `json:"message" yaml:"message"`
}
