package cli

import (
	"archive/zip"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reshetovitsme/archive-viewer/internal/shared/errors"
)

const payload = `jsonp_parse([
{"id":"2","author":{"id":"11","username":"alice"},"content":"second","timestamp":"2023-05-01T09:31:00Z"},
{"id":"1","author":{"id":"11","username":"alice"},"content":"first","timestamp":"2023-05-01T09:30:00Z"}
])`

func writeArchive(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "general")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "messages.jsonp"), []byte(payload), 0644))
	return dir
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd("test")
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestRenderCommand(t *testing.T) {
	dir := writeArchive(t)

	require.NoError(t, run(t, "--archive-dir", dir, "--title", "General", "--timezone", "UTC", "render"))

	page, err := os.ReadFile(filepath.Join(dir, "archive.html"))
	require.NoError(t, err)
	require.Contains(t, string(page), "<title>General</title>")
	require.Contains(t, string(page), `<div class="pfp-spacer time">09:31</div>`)
}

func TestRenderCommandOutputFlag(t *testing.T) {
	dir := writeArchive(t)
	output := filepath.Join(t.TempDir(), "page.html")

	require.NoError(t, run(t, "--archive-dir", dir, "render", "--output", output))
	require.FileExists(t, output)
	require.NoFileExists(t, filepath.Join(dir, "archive.html"))
}

func TestRenderCommandMissingPayload(t *testing.T) {
	dir := t.TempDir()

	err := run(t, "--archive-dir", dir, "render")
	require.True(t, stderrors.Is(err, errors.ErrPayloadNotFound))
	require.NoFileExists(t, filepath.Join(dir, "archive.html"))
}

func TestRenderCommandInvalidTimezone(t *testing.T) {
	err := run(t, "--archive-dir", writeArchive(t), "--timezone", "Nowhere/Special", "render")
	require.True(t, stderrors.Is(err, errors.ErrInvalidTimezone))
}

func TestBundleCommand(t *testing.T) {
	dir := writeArchive(t)

	require.NoError(t, run(t, "--archive-dir", dir, "bundle"))

	r, err := zip.OpenReader(dir + ".zip")
	require.NoError(t, err)
	defer r.Close()

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	require.ElementsMatch(t, []string{"assets/", "archive.html", "messages.jsonp"}, names)
}

func TestBundleCommandSkipRender(t *testing.T) {
	dir := writeArchive(t)
	output := filepath.Join(t.TempDir(), "out.zip")

	require.NoError(t, run(t, "--archive-dir", dir, "bundle", "--skip-render", "--output", output))
	require.FileExists(t, output)
	require.NoFileExists(t, filepath.Join(dir, "archive.html"))
}
