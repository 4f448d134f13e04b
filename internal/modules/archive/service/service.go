package service

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/reshetovitsme/archive-viewer/internal/modules/archive/domain"
	"github.com/reshetovitsme/archive-viewer/internal/modules/archive/repository"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Archive is a loaded, immutable message snapshot
type Archive struct {
	Messages domain.Root
	Stats    Stats
}

// Stats summarizes an archive
type Stats struct {
	Messages    int
	Authors     int
	Attachments int
	First       time.Time
	Last        time.Time
}

// Service handles archive loading
type Service struct {
	repo repository.Repository
}

// New creates a new archive service
func New(repo repository.Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// Load reads the payload once and computes its summary
func (s *Service) Load() (*Archive, error) {
	messages, err := s.repo.Load()
	if err != nil {
		return nil, oops.With("context", "failed to load archive").Wrap(err)
	}

	return &Archive{
		Messages: messages,
		Stats:    Summarize(messages),
	}, nil
}

// PayloadPath returns where the payload is read from
func (s *Service) PayloadPath() string {
	return s.repo.Path()
}

// Summarize computes archive statistics
func Summarize(messages domain.Root) Stats {
	stats := Stats{Messages: len(messages)}
	if len(messages) == 0 {
		return stats
	}

	stats.Authors = len(lo.UniqBy(messages, func(m *domain.Message) string {
		return m.Author.ID
	}))
	stats.Attachments = lo.SumBy(messages, func(m *domain.Message) int {
		return len(m.Attachments)
	})

	timestamps := lo.Map(messages, func(m *domain.Message, _ int) time.Time {
		return m.Timestamp
	})
	stats.First = lo.MinBy(timestamps, func(a, b time.Time) bool { return a.Before(b) })
	stats.Last = lo.MaxBy(timestamps, func(a, b time.Time) bool { return a.After(b) })

	return stats
}

// DateRange formats the covered days the way archives are named
func (s Stats) DateRange() string {
	if s.Messages == 0 {
		return ""
	}

	start := s.First.UTC().Format(time.DateOnly)
	end := s.Last.UTC().Format(time.DateOnly)
	if start == end {
		return end
	}
	return fmt.Sprintf("%s to %s", start, end)
}

// Summary is the one-line description shown under the archive title
func (s Stats) Summary() string {
	if s.Messages == 0 {
		return "No messages"
	}

	noun := "messages"
	if s.Messages == 1 {
		noun = "message"
	}
	return fmt.Sprintf("%s %s, %s", humanize.Comma(int64(s.Messages)), noun, s.DateRange())
}
