package generator

import (
	"bytes"

	"github.com/cockroachdb/errors"

	"github.com/goatx/resultsgen/internal/emit"
	"github.com/goatx/resultsgen/internal/genfs"
)

const (
	generatorName = "resultsgen"
	header        = "// Code generated by resultsgen. DO NOT EDIT."
)

var testImports = []string{
	`"net/http"`,
	`"net/http/httptest"`,
	`"strconv"`,
	`"testing"`,
	"",
	`"github.com/stretchr/testify/assert"`,
	`"github.com/stretchr/testify/require"`,
}

// ClassFile renders the union type definitions.
func ClassFile(opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := emit.New(&buf, emit.DefaultIndent)
	writeHeader(w, opts.PackageName)
	if opts.MaxArity >= 2 {
		w.Blank()
	}
	if err := EmitClasses(w, opts.MaxArity); err != nil {
		return nil, errors.Wrap(err, "failed to emit union types")
	}
	return buf.Bytes(), nil
}

// TestFile renders the test suite and the fixture types it uses. The import
// block is left out when there are no tests to use it.
func TestFile(opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := emit.New(&buf, emit.DefaultIndent)
	writeHeader(w, opts.PackageName)
	w.Blank()
	if opts.MaxArity >= 2 {
		w.WriteLine(0, "import (")
		for _, imp := range testImports {
			w.WriteLine(1, imp)
		}
		w.WriteLine(0, ")")
		w.Blank()
	}
	if err := EmitTests(w, opts.MaxArity); err != nil {
		return nil, errors.Wrap(err, "failed to emit tests")
	}
	return buf.Bytes(), nil
}

func writeHeader(w *emit.Writer, pkg string) {
	w.WriteLine(0, header)
	w.Blank()
	w.WriteLine(0, "package "+pkg)
}

// Files renders both outputs into a genfs.FS at classPath and testPath. Each
// output is rendered into its own FS and merged, so two outputs claiming the
// same path are an error. The postprocessors run on each file as it is
// merged. Nothing touches the disk until the caller writes the FS.
func Files(opts Options, classPath, testPath string, post ...genfs.FileMapper) (*genfs.FS, error) {
	outputs := []struct {
		owner  string
		path   string
		render func(Options) ([]byte, error)
	}{
		{"classes", classPath, ClassFile},
		{"tests", testPath, TestFile},
	}

	gfs := genfs.New()
	gfs.AddPostprocessors(post...)
	for _, out := range outputs {
		data, err := out.render(opts)
		if err != nil {
			return nil, err
		}

		part := genfs.New()
		if err := part.Add(generatorName+"/"+out.owner, genfs.File{Path: out.path, Data: data}); err != nil {
			return nil, err
		}
		if err := gfs.Merge(part); err != nil {
			return nil, errors.Wrapf(err, "failed to collect %s output", out.owner)
		}
	}
	return gfs, nil
}
