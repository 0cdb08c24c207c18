package genfs

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/imports"
)

// FormatGo is a FileMapper that gofmt-formats .go files and groups their
// imports. Imports are neither added nor removed. Other files pass through.
func FormatGo(f File) (File, error) {
	if filepath.Ext(f.Path) != ".go" {
		return f, nil
	}

	out, err := imports.Process(f.Path, f.Data, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return f, errors.Wrapf(err, "failed to format generated code")
	}

	f.Data = out
	return f, nil
}
