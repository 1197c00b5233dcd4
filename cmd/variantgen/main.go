package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
)

// Variant is one generated type.
type Variant struct {
	// Type is the generated struct name.
	Type string `json:"type"`

	// Line is what the role method prints.
	Line string `json:"line"`
}

// Spec is the full input schema consumed by the generator.
type Spec struct {
	Package      string            `json:"package"`
	Role         string            `json:"role"`
	Method       string            `json:"method"`
	ReturnsError bool              `json:"returnsError"`
	Printer      string            `json:"printer"`
	Imports      map[string]string `json:"imports"`
	Variants     []Variant         `json:"variants"`
}

// ImportSpec models one Go import: optional alias and full import path.
type ImportSpec struct {
	Alias string
	Path  string
}

type templateData struct {
	Spec        Spec
	ImportsList []ImportSpec
}

var errUsage = errors.New("usage: variantgen -spec <file.variant.json> -out <file.gen.go>")

// run executes the generator and returns an exit code.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("variantgen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	specPath := flags.String("spec", "", "path to roles.variant.json")
	outPath := flags.String("out", "", "output .gen.go file path")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if strings.TrimSpace(*specPath) == "" || strings.TrimSpace(*outPath) == "" {
		_, _ = fmt.Fprintln(stderr, errUsage)
		return 2
	}

	if err := generate(*specPath, *outPath); err != nil {
		_, _ = fmt.Fprintln(stderr, "variantgen:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func generate(specPath, outPath string) error {
	specBytes, err := os.ReadFile(specPath)
	if err != nil {
		return err
	}

	var spec Spec
	if err := json.Unmarshal(specBytes, &spec); err != nil {
		return fmt.Errorf("decode spec: %w", err)
	}
	if err := validateSpec(&spec); err != nil {
		return err
	}

	generatedFilePath := filepath.Clean(outPath)
	ownerFilePath, err := findOwnerGoGenerateFile(filepath.Dir(generatedFilePath))
	if err != nil {
		// Generation still works from spec.imports.
		ownerFilePath = ""
	}

	importsList, err := resolveImports(ownerFilePath, &spec)
	if err != nil {
		return err
	}

	src, err := render(templateData{Spec: spec, ImportsList: importsList})
	if err != nil {
		return err
	}
	return writeFileAtomic(generatedFilePath, src, 0o644)
}

// render executes the template and gofmts the result.
func render(data templateData) ([]byte, error) {
	var out bytes.Buffer
	if err := genTemplate.Execute(&out, data); err != nil {
		return nil, err
	}
	return format.Source(out.Bytes())
}

// validateSpec checks required fields and duplicate variant types.
func validateSpec(spec *Spec) error {
	var missingFields []string

	requireNonEmpty := func(fieldName, value string) {
		if strings.TrimSpace(value) == "" {
			missingFields = append(missingFields, fieldName)
		}
	}

	requireNonEmpty("package", spec.Package)
	requireNonEmpty("role", spec.Role)
	requireNonEmpty("method", spec.Method)
	requireNonEmpty("printer", spec.Printer)

	if len(spec.Variants) == 0 {
		missingFields = append(missingFields, "variants (must have at least 1)")
	}
	if len(missingFields) > 0 {
		return fmt.Errorf("spec missing required fields: %v", missingFields)
	}

	if !token.IsIdentifier(spec.Role) || !token.IsIdentifier(spec.Method) {
		return fmt.Errorf("role and method must be Go identifiers; got %q, %q", spec.Role, spec.Method)
	}

	seen := make(map[string]struct{}, len(spec.Variants))
	for _, v := range spec.Variants {
		if !token.IsIdentifier(v.Type) || v.Line == "" {
			return fmt.Errorf("each variant must have a type identifier and a line; got: %+v", v)
		}
		if _, ok := seen[v.Type]; ok {
			return fmt.Errorf("duplicate variant type: %s", v.Type)
		}
		seen[v.Type] = struct{}{}
	}
	return nil
}

// printerQualifier returns the package identifier of spec.Printer, e.g.
// "demo" for "demo.Printer", or "" for a local type.
func printerQualifier(printer string) string {
	if i := strings.Index(printer, "."); i > 0 {
		return strings.TrimPrefix(printer[:i], "*")
	}
	return ""
}

// findOwnerGoGenerateFile finds the Go file in packageDir whose go:generate
// directive invokes cmd/variantgen.
func findOwnerGoGenerateFile(packageDir string) (string, error) {
	dirEntries, err := os.ReadDir(packageDir)
	if err != nil {
		return "", err
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}

		fileName := entry.Name()
		if !strings.HasSuffix(fileName, ".go") ||
			strings.HasSuffix(fileName, "_test.go") ||
			strings.HasSuffix(fileName, ".gen.go") {
			continue
		}

		filePath := filepath.Join(packageDir, fileName)
		fileBytes, err := os.ReadFile(filePath)
		if err != nil {
			continue
		}

		if bytes.Contains(fileBytes, []byte("go:generate")) && bytes.Contains(fileBytes, []byte("cmd/variantgen")) {
			return filePath, nil
		}
	}

	return "", fmt.Errorf("could not find owner file with go:generate invoking cmd/variantgen in %s", packageDir)
}

// readImportsFromFile parses imports from a Go file.
func readImportsFromFile(goFilePath string) ([]ImportSpec, error) {
	fileSet := token.NewFileSet()
	parsedFile, err := parser.ParseFile(fileSet, goFilePath, nil, parser.ImportsOnly)
	if err != nil {
		return nil, err
	}

	var imports []ImportSpec
	for _, importDecl := range parsedFile.Imports {
		importPath := strings.Trim(importDecl.Path.Value, `"`)
		importAlias := ""
		if importDecl.Name != nil {
			importAlias = importDecl.Name.Name
		}
		imports = append(imports, ImportSpec{Alias: importAlias, Path: importPath})
	}
	return imports, nil
}

func importDefaultIdent(importPath string) string {
	return path.Base(strings.TrimSpace(importPath))
}

// findUsableImport returns the import that makes ident resolvable, either by
// explicit alias or by the default identifier of its path.
func findUsableImport(imports []ImportSpec, ident string) (ImportSpec, bool) {
	for _, imp := range imports {
		if imp.Alias == ident {
			return imp, true
		}
	}
	for _, imp := range imports {
		if imp.Alias == "" && importDefaultIdent(imp.Path) == ident {
			return imp, true
		}
	}
	return ImportSpec{}, false
}

// resolveImports builds the imports of the generated file. Only the printer's
// package is needed:
//   - a local printer type needs no import
//   - otherwise the owner file's import for the qualifier wins
//   - otherwise spec.imports[qualifier] is imported
func resolveImports(ownerFilePath string, spec *Spec) ([]ImportSpec, error) {
	qualifier := printerQualifier(spec.Printer)
	if qualifier == "" {
		return nil, nil
	}

	if strings.TrimSpace(ownerFilePath) != "" {
		if ownerImports, err := readImportsFromFile(ownerFilePath); err == nil {
			if imp, ok := findUsableImport(ownerImports, qualifier); ok {
				return []ImportSpec{imp}, nil
			}
		}
	}

	fallback := strings.TrimSpace(spec.Imports[qualifier])
	if fallback == "" {
		return nil, fmt.Errorf(
			"printer %q needs an import usable as %q, but the owner file has none and spec.imports[%q] is empty",
			spec.Printer, qualifier, qualifier,
		)
	}

	imp := ImportSpec{Path: fallback}
	if importDefaultIdent(fallback) != qualifier {
		imp.Alias = qualifier
	}
	return []ImportSpec{imp}, nil
}

var genTemplate = template.Must(
	template.New("variantgen").Parse(`// Code generated by variantgen; DO NOT EDIT.

package {{.Spec.Package}}
{{if .ImportsList}}
import (
{{- range .ImportsList}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
{{end}}
{{- range .Spec.Variants}}
// {{.Type}} is a {{$.Spec.Role}} variant.
type {{.Type}} struct {
	out {{$.Spec.Printer}}
}

// New{{.Type}} returns a {{.Type}} printing to out.
func New{{.Type}}(out {{$.Spec.Printer}}) *{{.Type}} {
	return &{{.Type}}{out: out}
}

// {{$.Spec.Method}} implements {{$.Spec.Role}}.
func (v *{{.Type}}) {{$.Spec.Method}}() {{if $.Spec.ReturnsError}}error {{end}}{
	v.out.Println({{printf "%q" .Line}})
{{- if $.Spec.ReturnsError}}
	return nil
{{- end}}
}

var _ {{$.Spec.Role}} = (*{{.Type}})(nil)
{{end}}`),
)

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes to a temp file in the target directory and renames
// it over targetPath, so readers never observe a partial file.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	tmpFile, err := createTempFile(filepath.Dir(targetPath), filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	return renameFile(tmpPath, targetPath)
}
