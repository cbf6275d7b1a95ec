package linter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/tscheck/boundary"
	"github.com/viant/tscheck/syntax"
	"golang.org/x/sync/errgroup"
)

// Result holds the diagnostics for a single source file
type Result struct {
	Path        string                `json:"path"`
	Digest      uint64                `json:"digest"`
	Diagnostics []boundary.Diagnostic `json:"diagnostics"`
}

// Linter runs the boundary rule across files and directories. A Linter is
// reusable: results are memoized by content digest, so unchanged files cost
// nothing on later runs.
type Linter struct {
	config *Config
	fs     afs.Service
	mux    sync.Mutex
	memo   map[uint64][]boundary.Diagnostic
}

// New creates a linter with the supplied config; a nil config uses defaults
func New(config *Config) *Linter {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Concurrency <= 0 {
		config.Concurrency = DefaultConfig().Concurrency
	}
	return &Linter{
		config: config,
		fs:     afs.New(),
		memo:   map[uint64][]boundary.Diagnostic{},
	}
}

// Lint analyzes every TypeScript source reachable from location, which may
// be a single file or a directory tree
func (l *Linter) Lint(ctx context.Context, location string) ([]*Result, error) {
	files, err := l.listFiles(ctx, location)
	if err != nil {
		return nil, err
	}
	results := make([]*Result, len(files))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(l.config.Concurrency)
	for i, name := range files {
		i, name := i, name
		group.Go(func() error {
			result, err := l.lintFile(groupCtx, name)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})
	return results, nil
}

func (l *Linter) listFiles(ctx context.Context, location string) ([]string, error) {
	info, err := os.Stat(location)
	if err != nil {
		return nil, fmt.Errorf("failed to locate %s: %w", location, err)
	}
	if !info.IsDir() {
		return []string{location}, nil
	}
	var files []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return info.Name() != "node_modules", nil
		}
		candidate := url.Join(baseURL, parent, info.Name())
		if l.lintable(info.Name(), candidate) {
			files = append(files, candidate)
		}
		return true, nil
	}
	if err := l.fs.Walk(ctx, location, visitor); err != nil {
		return nil, fmt.Errorf("error walking %s: %w", location, err)
	}
	return files, nil
}

// lintable applies the extension, test and include/exclude filters
func (l *Linter) lintable(name, location string) bool {
	ext := strings.ToLower(path.Ext(name))
	if ext != ".ts" && ext != ".tsx" {
		return false
	}
	if strings.HasSuffix(strings.ToLower(name), ".d.ts") {
		return false
	}
	if l.config.SkipTests && (strings.Contains(name, ".test.") || strings.Contains(name, ".spec.")) {
		return false
	}
	for _, pattern := range l.config.Exclude {
		if matched, _ := path.Match(pattern, name); matched {
			return false
		}
	}
	if len(l.config.Include) == 0 {
		return true
	}
	for _, pattern := range l.config.Include {
		if matched, _ := path.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// LintSource analyzes a single in-memory source, using filename only to
// pick the dialect and label the result
func (l *Linter) LintSource(ctx context.Context, filename string, src []byte) (*Result, error) {
	digest, err := Digest(src)
	if err != nil {
		return nil, fmt.Errorf("failed to hash %s: %w", filename, err)
	}
	if diagnostics, ok := l.cached(digest); ok {
		return &Result{Path: filename, Digest: digest, Diagnostics: diagnostics}, nil
	}
	tree, err := syntax.Parse(ctx, src, syntax.DialectForFile(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	diagnostics := boundary.Check(tree.RootNode(), src, l.config.Rule)
	l.store(digest, diagnostics)
	return &Result{Path: filename, Digest: digest, Diagnostics: diagnostics}, nil
}

func (l *Linter) lintFile(ctx context.Context, location string) (*Result, error) {
	data, err := l.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}
	return l.LintSource(ctx, location, data)
}

func (l *Linter) cached(digest uint64) ([]boundary.Diagnostic, bool) {
	l.mux.Lock()
	defer l.mux.Unlock()
	diagnostics, ok := l.memo[digest]
	return diagnostics, ok
}

func (l *Linter) store(digest uint64, diagnostics []boundary.Diagnostic) {
	l.mux.Lock()
	defer l.mux.Unlock()
	l.memo[digest] = diagnostics
}
