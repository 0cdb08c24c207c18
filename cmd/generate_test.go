package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"

	"github.com/goatx/resultsgen/internal/config"
	"github.com/goatx/resultsgen/internal/generator"
)

// runRoot executes rootCmd with args against an empty config file.
func runRoot(t *testing.T, args ...string) error {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "resultsgen.yaml")
	if err := os.WriteFile(configPath, []byte("log:\n  level: error\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	origOut := rootCmd.OutOrStdout()
	origErr := rootCmd.ErrOrStderr()

	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append(args, "--config", configPath))

	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(origOut)
		rootCmd.SetErr(origErr)
	})

	return rootCmd.Execute()
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	classPath := filepath.Join(dir, "unions_gen.go")
	testPath := filepath.Join(dir, "unions_gen_test.go")

	err := runRoot(t, "generate", "--package", "unions", "--max-arity", "3", "--format=false", classPath, testPath)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	opts := generator.Options{PackageName: "unions", MaxArity: 3}
	wantClasses, err := generator.ClassFile(opts)
	if err != nil {
		t.Fatal(err)
	}
	wantTests, err := generator.TestFile(opts)
	if err != nil {
		t.Fatal(err)
	}

	for path, want := range map[string][]byte{classPath: wantClasses, testPath: wantTests} {
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(string(want), string(got)); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", filepath.Base(path), diff)
		}
	}
}

func TestGenerateCommandFormatted(t *testing.T) {
	dir := t.TempDir()
	classPath := filepath.Join(dir, "results_gen.go")
	testPath := filepath.Join(dir, "results_gen_test.go")

	err := runRoot(t, "generate", "--package", "results", "--max-arity", "2", "--format=true", classPath, testPath)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	for _, path := range []string{classPath, testPath} {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s is empty", path)
		}
	}
}

func TestGenerateCommandRejectsArgumentCount(t *testing.T) {
	err := runRoot(t, "generate", filepath.Join(t.TempDir(), "only_one.go"))
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("execute error = %v, want ErrInvalidConfig", err)
	}
}

func TestGenerateCommandInvalidArityWritesNothing(t *testing.T) {
	dir := t.TempDir()
	classPath := filepath.Join(dir, "results_gen.go")
	testPath := filepath.Join(dir, "results_gen_test.go")

	err := runRoot(t, "generate", "--package", "results", "--max-arity", "21", classPath, testPath)
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("execute error = %v, want ErrInvalidConfig", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files, found %d", len(entries))
	}
}

func TestGenerateCommandRejectsKeywordPackage(t *testing.T) {
	dir := t.TempDir()

	err := runRoot(t, "generate", "--package", "func", "--max-arity", "2", "--format=false",
		filepath.Join(dir, "a.go"), filepath.Join(dir, "a_test.go"))
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("execute error = %v, want ErrInvalidConfig", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files, found %d", len(entries))
	}
}
