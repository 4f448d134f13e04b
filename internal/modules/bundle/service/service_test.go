package service

import (
	"archive/zip"
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/reshetovitsme/archive-viewer/internal/shared/errors"
)

func writeArchive(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "messages.jsonp"), []byte("jsonp_parse([])"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "archive.html"), []byte("<!DOCTYPE html>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "1_cat.png"), []byte("png"), 0644))
	return dir
}

func readEntries(t *testing.T, path string) map[string]string {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	entries := make(map[string]string, len(r.File))
	for _, f := range r.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		entries[f.Name] = string(data)
	}
	return entries
}

func TestBundle(t *testing.T) {
	dir := writeArchive(t)
	target := filepath.Join(t.TempDir(), "archive.zip")

	result, err := New().Bundle(context.Background(), dir, target)
	require.NoError(t, err)
	require.Equal(t, target, result.Path)
	require.Equal(t, 3, result.Files)
	require.Equal(t, int64(len("jsonp_parse([])")+len("<!DOCTYPE html>")+len("png")), result.Bytes)

	entries := readEntries(t, target)
	require.ElementsMatch(t,
		[]string{"assets/", "assets/1_cat.png", "archive.html", "messages.jsonp"},
		lo.Keys(entries))
	require.Equal(t, "png", entries["assets/1_cat.png"])
}

func TestBundleSkipsTargetInsideDir(t *testing.T) {
	dir := writeArchive(t)
	target := filepath.Join(dir, "bundle.zip")

	result, err := New().Bundle(context.Background(), dir, target)
	require.NoError(t, err)
	require.Equal(t, 3, result.Files)
	require.NotContains(t, readEntries(t, target), "bundle.zip")
}

func TestBundleMissingDir(t *testing.T) {
	_, err := New().Bundle(context.Background(), filepath.Join(t.TempDir(), "nope"), filepath.Join(t.TempDir(), "a.zip"))
	require.True(t, stderrors.Is(err, errors.ErrArchiveDirMissing))
}

func TestBundleCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	target := filepath.Join(t.TempDir(), "a.zip")
	_, err := New().Bundle(ctx, writeArchive(t), target)
	require.True(t, stderrors.Is(err, context.Canceled))
	require.NoFileExists(t, target)
}
