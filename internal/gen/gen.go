// Package gen renders a declaration set into Go source: a types file,
// an operations file and a runtime wiring file, each gated by the
// directive's visibility flags.
package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/dfeyer/lambda-appsync/internal/directive"
	"github.com/dfeyer/lambda-appsync/internal/model"
)

const (
	runtimePkg   = "github.com/dfeyer/lambda-appsync/appsync"
	subfilterPkg = "github.com/dfeyer/lambda-appsync/appsync/subfilter"

	header = "// Code generated by lambda-appsync. DO NOT EDIT.\n\n"
)

// Options controls generation output.
type Options struct {
	// Package is the package name of the emitted files, "main" when
	// empty.
	Package string
}

// File is one emitted source file.
type File struct {
	Name   string
	Source []byte
}

// Generate renders the files selected by the directive's visibility
// flags. Output is gofmt-formatted with imports resolved.
func Generate(cfg *directive.Config, decls *model.Declarations, opts Options) ([]File, error) {
	pkg := opts.Package
	if pkg == "" {
		pkg = "main"
	}

	var files []File
	emit := func(name, body string) error {
		src, err := imports.Process(name, []byte(body), nil)
		if err != nil {
			return fmt.Errorf("format %s: %w", name, err)
		}
		files = append(files, File{Name: name, Source: src})
		return nil
	}

	if cfg.Flags.AppsyncTypes && (len(decls.Types) > 0 || len(decls.Enums) > 0) {
		if err := emit("appsync_types.go", renderTypes(pkg, decls)); err != nil {
			return nil, err
		}
	}
	if cfg.Flags.AppsyncOperations {
		if err := emit("appsync_operations.go", renderOperations(pkg, decls)); err != nil {
			return nil, err
		}
	}
	if cfg.Flags.LambdaHandler {
		if err := emit("appsync_runtime.go", renderRuntime(pkg, cfg)); err != nil {
			return nil, err
		}
	}
	return files, nil
}

// WriteFiles writes generated files into outDir, creating it as
// needed.
func WriteFiles(outDir string, files []File) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for _, f := range files {
		fp := filepath.Join(outDir, f.Name)
		if err := os.WriteFile(fp, f.Source, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", fp, err)
		}
	}
	return nil
}

// importBlock renders an import declaration from path -> alias pairs;
// an empty alias means no alias.
func importBlock(imps map[string]string) string {
	if len(imps) == 0 {
		return ""
	}
	paths := make([]string, 0, len(imps))
	for p := range imps {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var b strings.Builder
	b.WriteString("import (\n")
	for _, p := range paths {
		if alias := imps[p]; alias != "" {
			fmt.Fprintf(&b, "\t%s %q\n", alias, p)
		} else {
			fmt.Fprintf(&b, "\t%q\n", p)
		}
	}
	b.WriteString(")\n\n")
	return b.String()
}

// docComment renders a schema description as a doc comment.
func docComment(b *strings.Builder, doc, indent string) {
	if doc == "" {
		return
	}
	for _, line := range strings.Split(strings.TrimSpace(doc), "\n") {
		fmt.Fprintf(b, "%s// %s\n", indent, strings.TrimRight(line, " \t"))
	}
}

// usesAppsync reports whether any declared Go type references the
// runtime package.
func usesAppsync(decls *model.Declarations) bool {
	for _, td := range decls.Types {
		for _, f := range td.Fields {
			if strings.Contains(f.GoType, "appsync.") {
				return true
			}
		}
	}
	return false
}

// usesRawJSON reports whether any declared Go type references
// json.RawMessage.
func usesRawJSON(decls *model.Declarations) bool {
	for _, td := range decls.Types {
		for _, f := range td.Fields {
			if strings.Contains(f.GoType, "json.RawMessage") {
				return true
			}
		}
	}
	return false
}
