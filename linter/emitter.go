package linter

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Emitter renders lint results
type Emitter interface {
	Emit(results []*Result) ([]byte, error)
}

// TextEmitter renders one line per diagnostic
type TextEmitter struct{}

func (e *TextEmitter) Emit(results []*Result) ([]byte, error) {
	var buffer bytes.Buffer
	for _, result := range results {
		for _, diagnostic := range result.Diagnostics {
			fmt.Fprintf(&buffer, "%s:%d:%d: %s [%s]\n",
				result.Path, diagnostic.Pos.Line, diagnostic.Pos.Column, diagnostic.Message, diagnostic.Kind)
		}
	}
	return buffer.Bytes(), nil
}

// JSONEmitter renders results as a JSON document
type JSONEmitter struct{}

func (e *JSONEmitter) Emit(results []*Result) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}

// NewEmitter returns the emitter for a format name
func NewEmitter(format string) (Emitter, error) {
	switch format {
	case "", "text":
		return &TextEmitter{}, nil
	case "json":
		return &JSONEmitter{}, nil
	}
	return nil, fmt.Errorf("unsupported output format: %s", format)
}
