package genfs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestAddRejectsDuplicatePaths(t *testing.T) {
	is := is.New(t)

	gfs := New()
	is.NoErr(gfs.Add("classes", File{Path: "results_gen.go", Data: []byte("package results\n")}))

	err := gfs.Add("tests", File{Path: "results_gen.go", Data: []byte("package results\n")})
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), `already created for "classes"`))
	is.Equal(gfs.Len(), 1)
}

func TestAddRejectsDuplicatesWithinOneCall(t *testing.T) {
	is := is.New(t)

	gfs := New()
	err := gfs.Add("classes",
		File{Path: "a.go", Data: []byte("a")},
		File{Path: "./a.go", Data: []byte("b")},
	)
	is.True(err != nil)
	is.Equal(gfs.Len(), 0)
}

func TestAddRejectsEmptyPath(t *testing.T) {
	is := is.New(t)

	err := New().Add("classes", File{Data: []byte("x")})
	is.True(err != nil)
}

func TestMerge(t *testing.T) {
	is := is.New(t)

	a := New()
	is.NoErr(a.Add("classes", File{Path: "a.go", Data: []byte("a")}))
	b := New()
	is.NoErr(b.Add("tests", File{Path: "b.go", Data: []byte("b")}))

	is.NoErr(a.Merge(b))
	files := a.Files()
	is.Equal(len(files), 2)
	is.Equal(files[0].Path, "a.go")
	is.Equal(files[1].Path, "b.go")
	is.Equal(files[1].From, "tests")

	is.True(a.Merge(b) != nil) // duplicate paths
	is.True(a.Merge(a) != nil)
}

func TestPostprocessors(t *testing.T) {
	is := is.New(t)

	gfs := New()
	gfs.AddPostprocessors(func(f File) (File, error) {
		f.Data = append(f.Data, '!')
		return f, nil
	})
	is.NoErr(gfs.Add("classes", File{Path: "a.txt", Data: []byte("hi")}))
	is.Equal(string(gfs.Files()[0].Data), "hi!")

	gfs.AddPostprocessors(func(f File) (File, error) {
		return f, errors.New("boom")
	})
	err := gfs.Add("classes", File{Path: "b.txt", Data: []byte("hi")})
	is.True(err != nil)
	is.Equal(gfs.Len(), 1) // failed add leaves the FS unchanged
}

func TestWriteAndVerify(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()

	gfs := New()
	is.NoErr(gfs.Add("classes", File{Path: "results_gen.go", Data: []byte("package results\n")}))
	is.NoErr(gfs.Add("tests", File{Path: filepath.Join("nested", "results_gen_test.go"), Data: []byte("package results\n")}))

	is.NoErr(gfs.Write(context.Background(), dir))
	is.NoErr(gfs.VerifyWritten(dir))

	b, err := os.ReadFile(filepath.Join(dir, "nested", "results_gen_test.go"))
	is.NoErr(err)
	is.Equal(string(b), "package results\n")

	entries, err := os.ReadDir(dir)
	is.NoErr(err)
	for _, e := range entries {
		is.True(!strings.Contains(e.Name(), ".tmp-")) // no temporary files left behind
	}
}

func TestWriteReplacesExistingFile(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "results_gen.go")
	is.NoErr(os.WriteFile(path, []byte("stale contents that are longer than the new ones\n"), 0o644))

	gfs := New()
	is.NoErr(gfs.Add("classes", File{Path: path, Data: []byte("fresh\n")}))
	is.NoErr(gfs.Write(context.Background(), "ignored-for-absolute-paths"))

	b, err := os.ReadFile(path)
	is.NoErr(err)
	is.Equal(string(b), "fresh\n")
}

func TestVerifyWrittenMissingFile(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()

	gfs := New()
	is.NoErr(gfs.Add("classes", File{Path: "results_gen.go", Data: []byte("x")}))

	err := gfs.VerifyWritten(dir)
	is.True(errors.Is(err, fs.ErrNotExist))
	is.True(strings.Contains(err.Error(), filepath.Join(dir, "results_gen.go")))
}

func TestVerifyWrittenEmptyFile(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()

	gfs := New()
	is.NoErr(gfs.Add("classes", File{Path: "results_gen.go", Data: nil}))
	is.NoErr(gfs.Write(context.Background(), dir))

	err := gfs.VerifyWritten(dir)
	is.True(errors.Is(err, fs.ErrNotExist))
	is.True(strings.Contains(err.Error(), "results_gen.go"))
}

func TestWriteCanceledContext(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()

	gfs := New()
	is.NoErr(gfs.Add("classes", File{Path: "results_gen.go", Data: []byte("x")}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	is.True(gfs.Write(ctx, dir) != nil)

	_, err := os.Stat(filepath.Join(dir, "results_gen.go"))
	is.True(errors.Is(err, fs.ErrNotExist))
}

func TestFormatGo(t *testing.T) {
	is := is.New(t)

	in := File{Path: "x.go", Data: []byte("package x\n\nfunc  f( ) {\nreturn\n}\n")}
	out, err := FormatGo(in)
	is.NoErr(err)
	is.Equal(string(out.Data), "package x\n\nfunc f() {\n\treturn\n}\n")

	txt := File{Path: "x.txt", Data: []byte("func  f( )")}
	out, err = FormatGo(txt)
	is.NoErr(err)
	is.Equal(string(out.Data), "func  f( )")

	_, err = FormatGo(File{Path: "bad.go", Data: []byte("package x\nfunc {")})
	is.True(err != nil)
}
