package syntax

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Dialect selects the grammar used to parse a source file
type Dialect int

const (
	// DialectTypeScript parses plain .ts sources
	DialectTypeScript Dialect = iota
	// DialectTSX parses .tsx sources with JSX enabled
	DialectTSX
)

// DialectForFile returns the parsing dialect for filename based on its extension
func DialectForFile(filename string) Dialect {
	if strings.ToLower(filepath.Ext(filename)) == ".tsx" {
		return DialectTSX
	}
	return DialectTypeScript
}

// Parse parses TypeScript source code and returns its syntax tree
func Parse(ctx context.Context, src []byte, dialect Dialect) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	switch dialect {
	case DialectTSX:
		parser.SetLanguage(tsx.GetLanguage())
	default:
		parser.SetLanguage(typescript.GetLanguage())
	}
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	return tree, nil
}

// ParseFile reads and parses a TypeScript source file, returning the tree
// together with the source it was parsed from
func ParseFile(ctx context.Context, filename string) (*sitter.Tree, []byte, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	tree, err := Parse(ctx, src, DialectForFile(filename))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse file %s: %w", filename, err)
	}
	return tree, src, nil
}
