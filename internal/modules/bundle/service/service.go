package service

import (
	"archive/zip"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/reshetovitsme/archive-viewer/internal/shared/errors"
	"github.com/samber/oops"
)

const entryMode fs.FileMode = 0o755

// Result describes a written bundle
type Result struct {
	Path  string
	Files int
	Bytes int64
}

// Service handles zipping an exported archive directory
type Service struct{}

// New creates a new bundle service
func New() *Service {
	return &Service{}
}

// Bundle zips every file and directory below dir into target. Entry names are
// relative to dir; target itself is skipped when it lives inside dir.
func (s *Service) Bundle(ctx context.Context, dir, target string) (*Result, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, oops.With("archive_dir", dir).Wrap(errors.ErrArchiveDirMissing)
	}

	absTarget, err := filepath.Abs(target)
	if err != nil {
		return nil, oops.With("bundle_file", target, "context", "failed to resolve bundle path").Wrap(err)
	}

	out, err := os.Create(target)
	if err != nil {
		return nil, oops.With("bundle_file", target, "context", "failed to create bundle").Wrap(err)
	}

	result, err := writeBundle(ctx, out, dir, absTarget)
	if err != nil {
		// drop the partial zip
		out.Close()
		os.Remove(target)
		return nil, oops.With("archive_dir", dir, "bundle_file", target, "context", "failed to write bundle").Wrap(err)
	}
	if err := out.Close(); err != nil {
		os.Remove(target)
		return nil, oops.With("bundle_file", target, "context", "failed to close bundle").Wrap(err)
	}

	result.Path = target
	return result, nil
}

// writeBundle streams the entries of dir into out, skipping absTarget
func writeBundle(ctx context.Context, out io.Writer, dir, absTarget string) (*Result, error) {
	result := &Result{}
	zw := zip.NewWriter(out)

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if abs, _ := filepath.Abs(path); abs == absTarget {
			return nil
		}

		name, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if name == "." {
			return nil
		}
		name = filepath.ToSlash(name)

		if d.IsDir() {
			header := &zip.FileHeader{Name: name + "/"}
			header.SetMode(entryMode | fs.ModeDir)
			_, err := zw.CreateHeader(header)
			return err
		}

		written, err := addFile(zw, path, name)
		if err != nil {
			return err
		}
		result.Files++
		result.Bytes += written
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}

	return result, nil
}

func addFile(zw *zip.Writer, path, name string) (int64, error) {
	src, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	header := &zip.FileHeader{Name: name, Method: zip.Deflate}
	header.SetMode(entryMode)
	if info, err := src.Stat(); err == nil {
		header.Modified = info.ModTime()
	}

	dst, err := zw.CreateHeader(header)
	if err != nil {
		return 0, err
	}
	return io.Copy(dst, src)
}
