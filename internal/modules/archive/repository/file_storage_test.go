package repository

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reshetovitsme/archive-viewer/internal/modules/archive/domain"
	"github.com/reshetovitsme/archive-viewer/internal/shared/errors"
)

const jsonpPayload = `jsonp_parse([
{"id":"200000000000000002","channel_id":"1","author":{"id":"10","username":"bob"},"content":"second","timestamp":"2023-05-02T10:00:00.000000+00:00","attachments":[],"embeds":[]},
{"id":"200000000000000001","channel_id":"1","author":{"id":"11","username":"alice","avatar":"assets/11.png"},"content":"first","timestamp":"2023-05-01T09:30:00.000000+00:00","edited_timestamp":null,"attachments":[],"embeds":[],"mention_channels::processed":{"300000000000000000":"general"}}
])`

func writePayload(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	return dir
}

func TestLoadJSONP(t *testing.T) {
	dir := writePayload(t, "messages.jsonp", jsonpPayload)
	repo, err := NewFileStorage(dir, "messages.jsonp")
	require.NoError(t, err)

	root, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, root, 2)
	require.Equal(t, "200000000000000002", root[0].ID)
	require.Equal(t, "alice", root[1].Author.Username)
	require.Nil(t, root[1].EditedTimestamp)
	require.Equal(t, "general", root[1].ProcessedMentionChannels["300000000000000000"])

	avatar, ok := root[1].AvatarPath()
	require.True(t, ok)
	require.Equal(t, "assets/11.png", avatar)
}

func TestLoadPlainJSON(t *testing.T) {
	dir := writePayload(t, "messages.json", `[{"id":"1","author":{"id":"1","username":"a"},"content":"x","timestamp":"2023-05-01T09:30:00Z"}, null]`)
	repo, err := NewFileStorage(dir, "messages.json")
	require.NoError(t, err)

	root, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, root, 1)
}

func TestLoadMissingPayload(t *testing.T) {
	repo, err := NewFileStorage(t.TempDir(), "messages.jsonp")
	require.NoError(t, err)

	root, err := repo.Load()
	require.Nil(t, root)
	require.True(t, stderrors.Is(err, errors.ErrPayloadNotFound))
}

func TestLoadMalformedPayload(t *testing.T) {
	dir := writePayload(t, "messages.jsonp", "jsonp_parse([{\"id\": ")
	repo, err := NewFileStorage(dir, "messages.jsonp")
	require.NoError(t, err)

	_, err = repo.Load()
	require.True(t, stderrors.Is(err, errors.ErrMalformedPayload))
}

func TestNewFileStorageRequiresPath(t *testing.T) {
	_, err := NewFileStorage("", "messages.jsonp")
	require.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	require.Equal(t, domain.PayloadFormatJson, DetectFormat([]byte("  [ ]")))
	require.Equal(t, domain.PayloadFormatJsonp, DetectFormat([]byte("jsonp_parse([])")))
}

func TestDecodeEmptyList(t *testing.T) {
	root, err := Decode([]byte("jsonp_parse([\n\n])"))
	require.NoError(t, err)
	require.Empty(t, root)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte("alert(1"))
	require.True(t, stderrors.Is(err, errors.ErrMalformedPayload))

	_, err = Decode([]byte(`jsonp_parse([{"id": 1}])`))
	require.True(t, stderrors.Is(err, errors.ErrMalformedPayload))
	require.Contains(t, err.Error(), "cannot unmarshal")
}
