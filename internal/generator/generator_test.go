package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, dir, name, src string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "store.go", `package store

//cmdlit:cmd GetUser GET user:1000

//cmdlit:cmd SetCounter SET counter {}
`)

	directives, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir() error = %v", err)
	}
	if len(directives) != 2 {
		t.Fatalf("ScanDir() = %d directives, want 2", len(directives))
	}

	if directives[0].FuncName != "GetUser" || directives[0].Literal != "GET user:1000" {
		t.Errorf("directive 0 = %+v", directives[0])
	}
	if directives[1].FuncName != "SetCounter" || directives[1].Literal != "SET counter {}" {
		t.Errorf("directive 1 = %+v", directives[1])
	}
	if directives[0].Package != "store" {
		t.Errorf("package = %q, want store", directives[0].Package)
	}
}

func TestScanSkipsGeneratedOutput(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "cmdlit_gen.go", Header+`

package store

//cmdlit:cmd Stale GET stale
`)

	directives, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir() error = %v", err)
	}
	if len(directives) != 0 {
		t.Errorf("ScanDir() picked up directives from generated output: %+v", directives)
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "store.go", `package store

//cmdlit:cmd GetUser GET user:1000

//cmdlit:cmd SetCounter SET counter {}
`)

	directives, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir() error = %v", err)
	}

	code, err := Generate("store", directives, true)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Check that generated code contains expected elements
	checks := []string{
		Header,
		"package store",
		"func GetUser(ctx context.Context) *redis.Cmd {",
		`return redis.NewCmd(ctx, "GET", "user:1000")`,
		"func SetCounter(ctx context.Context, a0 any) *redis.Cmd {",
		`return redis.NewCmd(ctx, "SET", "counter", a0)`,
	}
	for _, check := range checks {
		if !strings.Contains(code, check) {
			t.Errorf("generated code missing: %q", check)
		}
	}
}

func TestGenerateIndexedPlaceholders(t *testing.T) {
	directives := []Directive{
		{FuncName: "CopyValue", Literal: "MSET {0} {1} {2} {1}", File: "x.go", Line: 1},
	}

	code, err := Generate("store", directives, false)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !strings.Contains(code, "func CopyValue(ctx context.Context, a0 any, a1 any, a2 any) *redis.Cmd {") {
		t.Errorf("wrong signature in:\n%s", code)
	}
	if !strings.Contains(code, `return redis.NewCmd(ctx, "MSET", a0, a1, a2, a1)`) {
		t.Errorf("wrong expansion in:\n%s", code)
	}
}

func TestGenerateOverflowingIndex(t *testing.T) {
	// An index that does not fit in an int must fail generation with a
	// diagnostic; emitting a constructor for it would not compile
	directives := []Directive{
		{FuncName: "HugeIndex", Literal: "GET {9223372036854775808}", File: "x.go", Line: 1},
	}

	code, err := Generate("store", directives, false)
	if err == nil {
		t.Fatalf("expected error, got output:\n%s", code)
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("error %q missing cause", err)
	}
	if !strings.Contains(err.Error(), "x.go:1") {
		t.Errorf("error %q missing source location", err)
	}
}

func TestGenerateMalformedLiteral(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "store.go", `package store

//cmdlit:cmd Broken GET "unclosed
`)

	directives, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir() error = %v", err)
	}

	_, err = Generate("store", directives, false)
	if err == nil {
		t.Fatal("expected error for malformed literal")
	}
	if !strings.Contains(err.Error(), "store.go:3") {
		t.Errorf("error %q missing source location", err)
	}
	if !strings.Contains(err.Error(), "unclosed double quote") {
		t.Errorf("error %q missing cause", err)
	}
}

func TestGenerateUnknownCommand(t *testing.T) {
	directives := []Directive{
		{FuncName: "Typo", Literal: "GETT my_key", File: "x.go", Line: 1},
	}

	_, err := Generate("store", directives, true)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "Did you mean 'GET'") {
		t.Errorf("error %q missing suggestion", err)
	}
}

func TestGenerateArityChecked(t *testing.T) {
	directives := []Directive{
		{FuncName: "NoKey", Literal: "GET", File: "x.go", Line: 1},
	}

	_, err := Generate("store", directives, true)
	if err == nil {
		t.Fatal("expected arity error")
	}
	if !strings.Contains(err.Error(), "at least 1 argument") {
		t.Errorf("error %q missing arity detail", err)
	}
}

func TestGenerateDuplicateNames(t *testing.T) {
	directives := []Directive{
		{FuncName: "GetUser", Literal: "GET a", File: "x.go", Line: 1},
		{FuncName: "GetUser", Literal: "GET b", File: "x.go", Line: 5},
	}

	_, err := Generate("store", directives, false)
	if err == nil {
		t.Fatal("expected duplicate name error")
	}
	if !strings.Contains(err.Error(), "duplicate function name") {
		t.Errorf("error = %q", err)
	}
}

func TestGenerateNoDirectives(t *testing.T) {
	if _, err := Generate("store", nil, false); err == nil {
		t.Error("expected error for empty directive set")
	}
}

func TestParseDirectiveRejectsBadName(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "store.go", `package store

//cmdlit:cmd 123bad GET my_key
`)

	if _, err := ScanDir(dir); err == nil {
		t.Error("expected error for invalid function name")
	}
}
