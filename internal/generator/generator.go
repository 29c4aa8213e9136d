// Package generator pre-expands command literals at build time. It scans Go
// sources for directives of the form
//
//	//cmdlit:cmd GetUser GET user:1000
//	//cmdlit:cmd SetCounter SET {} {}
//
// and emits one constructor function per directive containing the fully
// expanded builder call, so malformed literals fail the build instead of
// surfacing at runtime.
package generator

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cmdlit-engine/cmdlit/engine/lexer"
	"github.com/cmdlit-engine/cmdlit/engine/validator"
)

// DirectivePrefix marks a command-literal directive comment
const DirectivePrefix = "//cmdlit:cmd"

// Header marks generated output so scans skip it
const Header = "// Code generated by cmdlit gen. DO NOT EDIT."

// Directive is one //cmdlit:cmd comment found in a source file
type Directive struct {
	FuncName string // Name of the generated constructor
	Literal  string // The command literal to expand
	Package  string // Package of the file the directive was found in
	File     string // Source file path
	Line     int    // Line of the directive comment
}

// DirectiveError wraps an expansion error with the directive's source location
type DirectiveError struct {
	Directive Directive
	Err       error
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("%s:%d: directive %s: %v", e.Directive.File, e.Directive.Line, e.Directive.FuncName, e.Err)
}

func (e *DirectiveError) Unwrap() error {
	return e.Err
}

// ScanDirs collects directives from all Go files in the given directories
func ScanDirs(dirs []string) ([]Directive, error) {
	var directives []Directive
	for _, dir := range dirs {
		found, err := ScanDir(dir)
		if err != nil {
			return nil, err
		}
		directives = append(directives, found...)
	}
	return directives, nil
}

// ScanDir collects directives from the Go files directly inside dir.
// Previously generated output is skipped so regeneration is idempotent.
func ScanDir(dir string) ([]Directive, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	fset := token.NewFileSet()
	var directives []Directive

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if isGenerated(file.Comments) {
			continue
		}

		for _, group := range file.Comments {
			for _, comment := range group.List {
				directive, ok, err := parseDirective(comment.Text)
				if err != nil {
					pos := fset.Position(comment.Pos())
					return nil, fmt.Errorf("%s:%d: %w", pos.Filename, pos.Line, err)
				}
				if !ok {
					continue
				}
				pos := fset.Position(comment.Pos())
				directive.Package = file.Name.Name
				directive.File = pos.Filename
				directive.Line = pos.Line
				directives = append(directives, directive)
			}
		}
	}

	return directives, nil
}

func isGenerated(comments []*ast.CommentGroup) bool {
	if len(comments) == 0 || len(comments[0].List) == 0 {
		return false
	}
	return comments[0].List[0].Text == Header
}

func parseDirective(text string) (Directive, bool, error) {
	if !strings.HasPrefix(text, DirectivePrefix+" ") {
		return Directive{}, false, nil
	}
	rest := strings.TrimSpace(strings.TrimPrefix(text, DirectivePrefix))

	name, literal, found := strings.Cut(rest, " ")
	if !found || strings.TrimSpace(literal) == "" {
		return Directive{}, false, fmt.Errorf("malformed directive: want %q", DirectivePrefix+" FuncName LITERAL")
	}
	if !token.IsIdentifier(name) {
		return Directive{}, false, fmt.Errorf("invalid function name %q in directive", name)
	}

	return Directive{FuncName: name, Literal: strings.TrimSpace(literal)}, true, nil
}

// Generate builds the Go source for a set of directives. Output is
// deterministic: directives are ordered by file and line, and every
// generated constructor returns a fresh *redis.Cmd per call.
func Generate(pkg string, directives []Directive, validate bool) (string, error) {
	if len(directives) == 0 {
		return "", fmt.Errorf("no %s directives found", DirectivePrefix)
	}

	sort.Slice(directives, func(i, j int) bool {
		if directives[i].File != directives[j].File {
			return directives[i].File < directives[j].File
		}
		return directives[i].Line < directives[j].Line
	})

	seen := make(map[string]Directive)
	for _, d := range directives {
		if prev, dup := seen[d.FuncName]; dup {
			return "", &DirectiveError{Directive: d, Err: fmt.Errorf(
				"duplicate function name (first defined at %s:%d)", prev.File, prev.Line)}
		}
		seen[d.FuncName] = d
	}

	var sb strings.Builder
	sb.WriteString(Header + "\n\n")
	fmt.Fprintf(&sb, "package %s\n\n", pkg)
	sb.WriteString("import (\n")
	sb.WriteString("\t\"context\"\n\n")
	sb.WriteString("\t\"github.com/redis/go-redis/v9\"\n")
	sb.WriteString(")\n")

	for _, d := range directives {
		params, args, err := expand(d, validate)
		if err != nil {
			return "", err
		}

		fmt.Fprintf(&sb, "\n// %s is generated from the command literal %q.\n", d.FuncName, d.Literal)
		fmt.Fprintf(&sb, "func %s(%s) *redis.Cmd {\n", d.FuncName, signature(params))
		fmt.Fprintf(&sb, "\treturn redis.NewCmd(ctx, %s)\n", strings.Join(args, ", "))
		sb.WriteString("}\n")
	}

	return sb.String(), nil
}

// expand turns a directive's literal into argument expressions: quoted Go
// string literals for fixed tokens, parameter names for placeholders.
// Returns the parameter count and the expressions in literal order.
func expand(d Directive, validate bool) (int, []string, error) {
	tokens, err := lexer.Tokenize(d.Literal)
	if err != nil {
		return 0, nil, &DirectiveError{Directive: d, Err: err}
	}

	var args []string
	nextSub := 0
	maxIndex := -1
	nameIsFixed := false

	for _, tok := range tokens {
		switch tok.Type {
		case lexer.TOKEN_EOF:
			// Done
		case lexer.TOKEN_WORD, lexer.TOKEN_STRING:
			if len(args) == 0 {
				nameIsFixed = true
			}
			args = append(args, strconv.Quote(tok.Value))
		case lexer.TOKEN_PLACEHOLDER:
			idx := 0
			if tok.Value == "" {
				idx = nextSub
				nextSub++
			} else {
				idx, err = strconv.Atoi(tok.Value)
				if err != nil {
					return 0, nil, &DirectiveError{Directive: d, Err: fmt.Errorf(
						"placeholder index {%s} out of range", tok.Value)}
				}
			}
			if idx > maxIndex {
				maxIndex = idx
			}
			args = append(args, paramName(idx))
		}
	}

	if len(args) == 0 {
		return 0, nil, &DirectiveError{Directive: d, Err: fmt.Errorf("empty command literal")}
	}

	if validate && nameIsFixed {
		name, _ := strconv.Unquote(args[0])
		if err := validator.ValidateArity(name, len(args)-1); err != nil {
			return 0, nil, &DirectiveError{Directive: d, Err: err}
		}
	}

	params := nextSub
	if maxIndex+1 > params {
		params = maxIndex + 1
	}
	return params, args, nil
}

func signature(params int) string {
	parts := []string{"ctx context.Context"}
	for i := 0; i < params; i++ {
		parts = append(parts, paramName(i)+" any")
	}
	return strings.Join(parts, ", ")
}

func paramName(i int) string {
	return fmt.Sprintf("a%d", i)
}
