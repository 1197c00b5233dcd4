package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

func paymentSpec() Spec {
	return Spec{
		Package:      "ocp",
		Role:         "Payment",
		Method:       "Pay",
		ReturnsError: true,
		Printer:      "demo.Printer",
		Imports:      map[string]string{"demo": "github.com/sghaida/solid/demo"},
		Variants: []Variant{
			{Type: "GooglePayPayment", Line: "Payment done using Google Pay"},
		},
	}
}

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// fakeTempFile lets writeFileAtomic tests force Write and Close errors.
type fakeTempFile struct {
	fileName string
	writeErr error
	closeErr error
}

func (f *fakeTempFile) Name() string { return f.fileName }

func (f *fakeTempFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return len(p), nil
}

func (f *fakeTempFile) Close() error { return f.closeErr }

//
// -----------------------------------------------------------------------------
// run()
// -----------------------------------------------------------------------------

func TestRun_Usage(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stderr))
	assert.Contains(t, stderr.String(), "usage: variantgen")

	stderr.Reset()
	assert.Equal(t, 2, run([]string{"-unknown"}, &stderr))
}

func TestRun_BadSpec(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	specPath := writeTempFile(t, dir, "bad.variant.json", `{"package": "x"}`)

	var stderr bytes.Buffer
	code := run([]string{"-spec", specPath, "-out", filepath.Join(dir, "x.gen.go")}, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "spec missing required fields")
}

func TestRun_GeneratesFromOwnerImports(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTempFile(t, dir, "payment.go", `package ocp

import printer "github.com/sghaida/solid/demo"

//go:generate go run ../../cmd/variantgen -spec ./p.variant.json -out ./bitcoin.gen.go

type Payment interface{ Pay() error }

var _ printer.Printer
`)
	specPath := writeTempFile(t, dir, "p.variant.json", `{
  "package": "ocp",
  "role": "Payment",
  "method": "Pay",
  "returnsError": true,
  "printer": "printer.Printer",
  "variants": [ { "type": "BitcoinPayment", "line": "Payment done using Bitcoin" } ]
}`)
	outPath := filepath.Join(dir, "bitcoin.gen.go")

	var stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-spec", specPath, "-out", outPath}, &stderr), stderr.String())

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	src := string(got)
	assert.Contains(t, src, `printer "github.com/sghaida/solid/demo"`)
	assert.Contains(t, src, "type BitcoinPayment struct")
	assert.Contains(t, src, "func (v *BitcoinPayment) Pay() error {")
	assert.Contains(t, src, `v.out.Println("Payment done using Bitcoin")`)
	assert.Contains(t, src, "var _ Payment = (*BitcoinPayment)(nil)")
}

//
// -----------------------------------------------------------------------------
// render()
// -----------------------------------------------------------------------------

// The checked-in Google Pay variant must be exactly what the generator emits.
func TestRender_MatchesCheckedInGooglePay(t *testing.T) {
	t.Parallel()

	spec := paymentSpec()
	imports, err := resolveImports("", &spec)
	require.NoError(t, err)

	got, err := render(templateData{Spec: spec, ImportsList: imports})
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join("..", "..", "examples", "ocp", "googlepay_payment.gen.go"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestRender_NoErrorNoImports(t *testing.T) {
	t.Parallel()

	spec := Spec{
		Package: "isp",
		Role:    "SaladMaker",
		Method:  "PrepareSalad",
		Printer: "Printer",
		Variants: []Variant{
			{Type: "SaladChef", Line: "Making Salad..."},
			{Type: "VeganChef", Line: "Making Vegan Salad..."},
		},
	}

	got, err := render(templateData{Spec: spec})
	require.NoError(t, err)

	src := string(got)
	assert.NotContains(t, src, "import")
	assert.Contains(t, src, "func (v *SaladChef) PrepareSalad() {")
	assert.Contains(t, src, "func (v *VeganChef) PrepareSalad() {")
	assert.NotContains(t, src, "return nil")
}

//
// -----------------------------------------------------------------------------
// validateSpec()
// -----------------------------------------------------------------------------

func TestValidateSpec(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*Spec)
		wantErr string
	}{
		{name: "valid", mutate: func(*Spec) {}},
		{name: "missing role", mutate: func(s *Spec) { s.Role = " " }, wantErr: "role"},
		{name: "no variants", mutate: func(s *Spec) { s.Variants = nil }, wantErr: "variants"},
		{name: "bad method", mutate: func(s *Spec) { s.Method = "pay now" }, wantErr: "Go identifiers"},
		{
			name:    "variant without line",
			mutate:  func(s *Spec) { s.Variants = []Variant{{Type: "X"}} },
			wantErr: "type identifier and a line",
		},
		{
			name: "duplicate variant",
			mutate: func(s *Spec) {
				s.Variants = append(s.Variants, Variant{Type: "GooglePayPayment", Line: "again"})
			},
			wantErr: "duplicate variant type: GooglePayPayment",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			spec := paymentSpec()
			tc.mutate(&spec)
			err := validateSpec(&spec)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

//
// -----------------------------------------------------------------------------
// resolveImports()
// -----------------------------------------------------------------------------

func TestResolveImports(t *testing.T) {
	t.Parallel()

	t.Run("local printer needs nothing", func(t *testing.T) {
		spec := paymentSpec()
		spec.Printer = "Printer"
		got, err := resolveImports("", &spec)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("fallback aliases when base differs", func(t *testing.T) {
		spec := paymentSpec()
		spec.Printer = "out.Printer"
		spec.Imports = map[string]string{"out": "github.com/sghaida/solid/demo"}
		got, err := resolveImports("", &spec)
		require.NoError(t, err)
		assert.Equal(t, []ImportSpec{{Alias: "out", Path: "github.com/sghaida/solid/demo"}}, got)
	})

	t.Run("missing fallback", func(t *testing.T) {
		spec := paymentSpec()
		spec.Imports = nil
		_, err := resolveImports("", &spec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `spec.imports["demo"] is empty`)
	})

	t.Run("owner import by default identifier", func(t *testing.T) {
		dir := t.TempDir()
		owner := writeTempFile(t, dir, "owner.go", "package ocp\n\nimport \"example.com/x/demo\"\n")
		spec := paymentSpec()
		got, err := resolveImports(owner, &spec)
		require.NoError(t, err)
		assert.Equal(t, []ImportSpec{{Path: "example.com/x/demo"}}, got)
	})
}

func TestFindOwnerGoGenerateFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTempFile(t, dir, "a.go", "package x\n")
	writeTempFile(t, dir, "b_test.go", "package x\n//go:generate go run ../../cmd/variantgen\n")
	writeTempFile(t, dir, "c.gen.go", "package x\n//go:generate go run ../../cmd/variantgen\n")

	_, err := findOwnerGoGenerateFile(dir)
	require.Error(t, err)

	owner := writeTempFile(t, dir, "d.go", "package x\n//go:generate go run ../../cmd/variantgen -spec s -out o\n")
	got, err := findOwnerGoGenerateFile(dir)
	require.NoError(t, err)
	assert.Equal(t, owner, got)
}

//
// -----------------------------------------------------------------------------
// writeFileAtomic()
// -----------------------------------------------------------------------------

func TestWriteFileAtomic_Success(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "out.gen.go")
	require.NoError(t, writeFileAtomic(target, []byte("package x\n"), 0o644))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "package x\n", string(got))
}

func TestWriteFileAtomic_ErrorBranches(t *testing.T) {
	// NOT parallel: mutates global seams.

	testCases := []struct {
		name        string
		createTemp  func(dir, pattern string) (tempFile, error)
		chmodTmp    func(path string, mode os.FileMode) error
		renameTmp   func(oldpath, newpath string) error
		wantErr     string
		wantRemoves int
	}{
		{
			name: "create temp error",
			createTemp: func(string, string) (tempFile, error) {
				return nil, errors.New("create temp failed")
			},
			wantErr: "create temp failed",
		},
		{
			name: "write error",
			createTemp: func(dir, _ string) (tempFile, error) {
				return &fakeTempFile{fileName: filepath.Join(dir, "tmp"), writeErr: errors.New("write failed")}, nil
			},
			wantErr:     "write failed",
			wantRemoves: 1,
		},
		{
			name: "close error",
			createTemp: func(dir, _ string) (tempFile, error) {
				return &fakeTempFile{fileName: filepath.Join(dir, "tmp"), closeErr: errors.New("close failed")}, nil
			},
			wantErr:     "close failed",
			wantRemoves: 1,
		},
		{
			name: "chmod error",
			createTemp: func(dir, _ string) (tempFile, error) {
				return &fakeTempFile{fileName: filepath.Join(dir, "tmp")}, nil
			},
			chmodTmp:    func(string, os.FileMode) error { return errors.New("chmod failed") },
			wantErr:     "chmod failed",
			wantRemoves: 1,
		},
		{
			name: "rename error",
			createTemp: func(dir, _ string) (tempFile, error) {
				return &fakeTempFile{fileName: filepath.Join(dir, "tmp")}, nil
			},
			chmodTmp:    func(string, os.FileMode) error { return nil },
			renameTmp:   func(string, string) error { return errors.New("rename failed") },
			wantErr:     "rename failed",
			wantRemoves: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			origCreate, origChmod, origRename, origRemove := createTempFile, chmodFile, renameFile, removeFile
			t.Cleanup(func() {
				createTempFile, chmodFile, renameFile, removeFile = origCreate, origChmod, origRename, origRemove
			})

			removes := 0
			createTempFile = tc.createTemp
			removeFile = func(string) error { removes++; return nil }
			if tc.chmodTmp != nil {
				chmodFile = tc.chmodTmp
			}
			if tc.renameTmp != nil {
				renameFile = tc.renameTmp
			}

			err := writeFileAtomic(filepath.Join(t.TempDir(), "out.go"), []byte("x"), 0o644)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			assert.Equal(t, tc.wantRemoves, removes)
		})
	}
}
