package service

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reshetovitsme/archive-viewer/internal/modules/archive/domain"
	"github.com/reshetovitsme/archive-viewer/internal/modules/archive/repository"
	"github.com/reshetovitsme/archive-viewer/internal/shared/errors"
)

type stubRepository struct {
	root domain.Root
	err  error
}

func (r stubRepository) Load() (domain.Root, error) { return r.root, r.err }
func (r stubRepository) Path() string               { return "stub/messages.jsonp" }

var _ repository.Repository = stubRepository{}

func message(id, author string, ts time.Time, attachments int) *domain.Message {
	return &domain.Message{
		ID:          id,
		Author:      domain.User{ID: author, Username: author},
		Timestamp:   ts,
		Attachments: make([]domain.Attachment, attachments),
	}
}

func TestLoadSummarizes(t *testing.T) {
	day := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := New(stubRepository{root: domain.Root{
		message("3", "bob", day.Add(48*time.Hour), 1),
		message("2", "alice", day.Add(time.Hour), 0),
		message("1", "bob", day, 2),
	}})

	archive, err := svc.Load()
	require.NoError(t, err)
	require.Len(t, archive.Messages, 3)
	require.Equal(t, 3, archive.Stats.Messages)
	require.Equal(t, 2, archive.Stats.Authors)
	require.Equal(t, 3, archive.Stats.Attachments)
	require.Equal(t, day, archive.Stats.First)
	require.Equal(t, "2023-05-01 to 2023-05-03", archive.Stats.DateRange())
	require.Equal(t, "stub/messages.jsonp", svc.PayloadPath())
}

func TestDateRangeSingleDay(t *testing.T) {
	day := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	stats := Summarize(domain.Root{message("1", "a", day, 0), message("2", "a", day.Add(time.Hour), 0)})
	require.Equal(t, "2023-05-01", stats.DateRange())
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil)
	require.Zero(t, stats.Messages)
	require.Empty(t, stats.DateRange())
}

func TestLoadPropagatesMissingPayload(t *testing.T) {
	svc := New(stubRepository{err: errors.ErrPayloadNotFound})
	_, err := svc.Load()
	require.True(t, stderrors.Is(err, errors.ErrPayloadNotFound))
}

func TestSummary(t *testing.T) {
	day := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "No messages", Summarize(nil).Summary())
	require.Equal(t, "1 message, 2023-05-01", Summarize(domain.Root{message("1", "a", day, 0)}).Summary())

	stats := Stats{Messages: 12345, First: day, Last: day.Add(24 * time.Hour)}
	require.Equal(t, "12,345 messages, 2023-05-01 to 2023-05-02", stats.Summary())
}
