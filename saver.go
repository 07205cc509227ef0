package reportpdf

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Saver delivers a finished document. It is only called once the whole
// document is in memory.
type Saver interface {
	Save(ctx context.Context, filename string, data []byte) error
}

// SaverFunc adapts a function to the [Saver] interface.
type SaverFunc func(ctx context.Context, filename string, data []byte) error

// Save calls f.
func (f SaverFunc) Save(ctx context.Context, filename string, data []byte) error {
	return f(ctx, filename, data)
}

// FSSaver writes documents into Dir on Fs. A nil Fs means the OS
// filesystem and an empty Dir the working directory.
//
// Files are written to a temporary name first and renamed into place, so
// a reader never observes a partial PDF.
type FSSaver struct {
	Fs  afero.Fs
	Dir string
}

// NewFSSaver returns an FSSaver for dir on fs.
func NewFSSaver(fs afero.Fs, dir string) *FSSaver {
	return &FSSaver{Fs: fs, Dir: dir}
}

// Path is where filename ends up. Directory parts of filename are dropped.
func (s *FSSaver) Path(filename string) string {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, filepath.Base(filename))
}

// Save implements [Saver].
func (s *FSSaver) Save(ctx context.Context, filename string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	base := filepath.Base(filename)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return fmt.Errorf("invalid file name %q", filename)
	}
	fs := s.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	dst := s.Path(base)
	dir := filepath.Dir(dst)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := afero.TempFile(fs, dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		fs.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		fs.Remove(name)
		return err
	}
	if err := fs.Rename(name, dst); err != nil {
		fs.Remove(name)
		return err
	}
	return nil
}
