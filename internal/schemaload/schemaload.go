// Package schemaload resolves and loads the GraphQL schema named by a
// generation directive.
package schemaload

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dfeyer/lambda-appsync/internal/directive"
	"github.com/dfeyer/lambda-appsync/internal/language"
)

// IOError reports a schema file that could not be read. Path is the
// resolved absolute path; Pos points at the schema-path argument of
// the directive.
type IOError struct {
	Path string
	Pos  directive.Position
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: read schema %s: %v", e.Pos, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a schema file the GraphQL parser rejected.
type ParseError struct {
	Path string
	Pos  directive.Position
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: parse schema %s: %v", e.Pos, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Resolve turns a schema path into an absolute one. Absolute paths
// pass through. Relative paths resolve against the workspace root
// when one exists, else the project root, else fromDir: walking up
// from fromDir, the nearest ancestor containing go.work is the
// workspace root and, failing that, the nearest ancestor containing
// go.mod is the project root.
func Resolve(path, fromDir string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	base, err := filepath.Abs(fromDir)
	if err != nil {
		return "", fmt.Errorf("resolve base dir %s: %w", fromDir, err)
	}
	root := findRoot(base)
	return filepath.Join(root, path), nil
}

func findRoot(dir string) string {
	if root := findUp(dir, "go.work"); root != "" {
		return root
	}
	if root := findUp(dir, "go.mod"); root != "" {
		return root
	}
	return dir
}

// findUp returns the nearest ancestor of dir (inclusive) containing
// the marker file, or "".
func findUp(dir, marker string) string {
	for {
		if fi, err := os.Stat(filepath.Join(dir, marker)); err == nil && !fi.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load resolves, reads and parses the schema. The returned path is the
// resolved absolute path, also on failure when resolution succeeded.
func Load(path, fromDir string, pos directive.Position) (*language.SchemaDocument, string, error) {
	abs, err := Resolve(path, fromDir)
	if err != nil {
		return nil, "", &IOError{Path: path, Pos: pos, Err: err}
	}
	src, err := os.ReadFile(abs)
	if err != nil {
		return nil, abs, &IOError{Path: abs, Pos: pos, Err: err}
	}
	doc, err := language.ParseSchema(abs, string(src))
	if err != nil {
		return nil, abs, &ParseError{Path: abs, Pos: pos, Err: err}
	}
	return doc, abs, nil
}
