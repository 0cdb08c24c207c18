// Package genfs holds generated files in memory and writes them to disk in
// one batch.
//
// Generation happens entirely in memory, so a generator that fails leaves
// nothing behind on disk. Write replaces each target atomically, and
// VerifyWritten confirms every file actually landed and is non-empty.
package genfs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyFile is returned by VerifyWritten for a target that exists but is
// empty. It matches fs.ErrNotExist, since an empty artifact is as unusable as
// a missing one.
var ErrEmptyFile = errors.Wrap(fs.ErrNotExist, "generated file is empty")

const writeConcurrency = 12

// File is a single generated file.
type File struct {
	// Path is where the file is written. Relative paths are resolved against
	// the prefix given to Write.
	Path string

	// Data is the file contents.
	Data []byte

	// From names the generator that produced the file.
	From string
}

// FileMapper transforms a File before it is stored, e.g. to format it.
type FileMapper func(File) (File, error)

// FS is an in-memory set of generated files keyed by path.
type FS struct {
	mu    sync.Mutex
	files map[string]File
	post  []FileMapper
}

// New creates an empty FS, ready for use.
func New() *FS {
	return &FS{files: make(map[string]File)}
}

// AddPostprocessors appends mappers run (FIFO) on every file passed to Add
// afterwards.
func (gfs *FS) AddPostprocessors(fn ...FileMapper) {
	gfs.mu.Lock()
	gfs.post = append(gfs.post, fn...)
	gfs.mu.Unlock()
}

// Add adds files on behalf of owner. Nothing is added if any file has an
// empty path or conflicts with a file already in the FS.
func (gfs *FS) Add(owner string, files ...File) error {
	gfs.mu.Lock()
	defer gfs.mu.Unlock()
	return gfs.add(owner, files...)
}

func (gfs *FS) add(owner string, files ...File) error {
	var result *multierror.Error
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if f.Path == "" {
			result = multierror.Append(result, errors.Newf("genfs: file from %q has no path", owner))
			continue
		}
		key := filepath.Clean(f.Path)
		if rf, has := gfs.files[key]; has {
			result = multierror.Append(result, errors.Newf("genfs: cannot create %s for %q, already created for %q", f.Path, owner, rf.From))
		} else if seen[key] {
			result = multierror.Append(result, errors.Newf("genfs: %q produced %s more than once", owner, f.Path))
		}
		seen[key] = true
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	processed := make([]File, 0, len(files))
	for _, f := range files {
		f.From = owner
		for _, post := range gfs.post {
			of, err := post(f)
			if err != nil {
				return errors.Wrapf(err, "postprocessing of %s from %s failed", f.Path, owner)
			}
			f = of
		}
		processed = append(processed, f)
	}
	for _, f := range processed {
		gfs.files[filepath.Clean(f.Path)] = f
	}
	return nil
}

// Merge adds every file of other to gfs. Duplicate paths are an error.
func (gfs *FS) Merge(other *FS) error {
	if other == gfs {
		return errors.New("genfs: cannot merge an FS into itself")
	}
	other.mu.Lock()
	incoming := other.sorted()
	other.mu.Unlock()

	gfs.mu.Lock()
	defer gfs.mu.Unlock()
	var result *multierror.Error
	for _, f := range incoming {
		if err := gfs.add(f.From, f); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Files returns the files sorted by path.
func (gfs *FS) Files() []File {
	gfs.mu.Lock()
	defer gfs.mu.Unlock()
	return gfs.sorted()
}

// Len returns the number of files.
func (gfs *FS) Len() int {
	gfs.mu.Lock()
	defer gfs.mu.Unlock()
	return len(gfs.files)
}

func (gfs *FS) sorted() []File {
	sl := make([]File, 0, len(gfs.files))
	for _, f := range gfs.files {
		sl = append(sl, f)
	}
	sort.Slice(sl, func(i, j int) bool {
		return sl[i].Path < sl[j].Path
	})
	return sl
}

func resolve(prefix, path string) string {
	if filepath.IsAbs(path) || prefix == "" {
		return path
	}
	return filepath.Join(prefix, path)
}

// Write writes every file, replacing existing ones. Each file is written to
// a temporary file in the target directory and renamed into place, so a
// failed write never leaves a truncated target behind.
//
// If prefix is non-empty, it is prepended to every relative path.
func (gfs *FS) Write(ctx context.Context, prefix string) error {
	gfs.mu.Lock()
	defer gfs.mu.Unlock()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(writeConcurrency)

	for _, f := range gfs.sorted() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writeAtomic(resolve(prefix, f.Path), f.Data)
		})
	}

	return g.Wait()
}

func writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "%s: failed to ensure parent directory exists", path)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "%s: failed to create temporary file", path)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "%s: error while writing file", path)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "%s: error while closing file", path)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrapf(err, "%s: error while setting file mode", path)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "%s: error while replacing file", path)
	}
	return nil
}

// VerifyWritten checks that every file exists on disk and is non-empty. The
// returned error matches fs.ErrNotExist and names every offending path.
func (gfs *FS) VerifyWritten(prefix string) error {
	gfs.mu.Lock()
	defer gfs.mu.Unlock()
	var result *multierror.Error

	for _, f := range gfs.sorted() {
		path := resolve(prefix, f.Path)
		info, err := os.Stat(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			result = multierror.Append(result, errors.Wrapf(err, "%s: generated file should exist, but does not", path))
		case err != nil:
			result = multierror.Append(result, errors.Wrapf(err, "%s: could not stat generated file", path))
		case info.IsDir():
			result = multierror.Append(result, errors.Wrapf(fs.ErrNotExist, "%s: generated file is a directory", path))
		case info.Size() == 0:
			result = multierror.Append(result, errors.Wrapf(ErrEmptyFile, "%s", path))
		}
	}

	return result.ErrorOrNil()
}
