// Package test holds helpers shared by the package tests.
package test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var update = flag.Bool("update", false, "rewrite golden files with the current output")

// FixtureDir returns the testdata directory of the package under test.
func FixtureDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs("testdata")
	if err != nil {
		t.Fatalf("failed to resolve testdata: %v", err)
	}
	return dir
}

func ReadGolden(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(FixtureDir(t), name)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", path, err)
	}
	return string(b)
}

// CompareGolden fails t when got differs from the named golden file. With
// -update the golden file is rewritten instead.
func CompareGolden(t *testing.T, name, got string) {
	t.Helper()
	if *update {
		path := filepath.Join(FixtureDir(t), name)
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", path, err)
		}
		return
	}
	if diff := cmp.Diff(ReadGolden(t, name), got); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
	}
}
