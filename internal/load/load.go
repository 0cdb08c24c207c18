// Package load resolves the Go package that generated files are written into.
package load

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/packages"
)

// ErrNoPackage is returned when a directory holds no loadable Go package.
var ErrNoPackage = errors.New("no Go package found")

// PackageName returns the name of the package in dir. Generated files are
// skipped by the go tool only when they fail to parse, so an existing output
// file keeps resolving to the package it was generated for.
func PackageName(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve directory %s", dir)
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Dir:  abs,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return "", errors.Wrapf(ErrNoPackage, "failed to load package in %s: %v", abs, err)
	}
	if len(pkgs) == 0 {
		return "", errors.Wrapf(ErrNoPackage, "no packages in %s", abs)
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		msgs := make([]string, len(pkg.Errors))
		for i, pkgErr := range pkg.Errors {
			msgs[i] = pkgErr.Error()
		}
		return "", errors.Wrapf(ErrNoPackage, "failed to load package in %s: %s", abs, strings.Join(msgs, "\n"))
	}
	if pkg.Name == "" {
		return "", errors.Wrapf(ErrNoPackage, "package in %s has no name", abs)
	}
	return pkg.Name, nil
}
