package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/gorilla/feeds"
	archiveDomain "github.com/reshetovitsme/archive-viewer/internal/modules/archive/domain"
	archiveService "github.com/reshetovitsme/archive-viewer/internal/modules/archive/service"
	"github.com/reshetovitsme/archive-viewer/internal/modules/feed/domain"
	renderService "github.com/reshetovitsme/archive-viewer/internal/modules/render/service"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

const titleLength = 100

// Service handles archive feed generation
type Service struct {
	archive *archiveService.Service
	render  *renderService.Service
}

// New creates a new feed service
func New(archive *archiveService.Service, render *renderService.Service) *Service {
	return &Service{
		archive: archive,
		render:  render,
	}
}

// GenerateFeed builds a feed of the newest archived messages
func (s *Service) GenerateFeed(opts domain.Options) (*feeds.Feed, error) {
	archive, err := s.archive.Load()
	if err != nil {
		return nil, oops.With("context", "failed to load messages").Wrap(err)
	}

	// The payload is newest-first already
	recent := []*archiveDomain.Message(archive.Messages)
	if opts.Limit > 0 && len(recent) > opts.Limit {
		recent = recent[:opts.Limit]
	}

	baseURL := strings.TrimSuffix(opts.BaseURL, "/")
	feed := &feeds.Feed{
		Title:       opts.Title,
		Link:        &feeds.Link{Href: baseURL + "/"},
		Description: fmt.Sprintf("%d archived messages, %s", archive.Stats.Messages, archive.Stats.DateRange()),
		Created:     archive.Stats.First,
		Updated:     archive.Stats.Last,
	}

	feed.Items = lo.Map(recent, func(msg *archiveDomain.Message, _ int) *feeds.Item {
		return s.messageToFeedItem(msg, baseURL)
	})
	return feed, nil
}

// Write generates the feed and encodes it in format
func (s *Service) Write(w io.Writer, format domain.Format, opts domain.Options) error {
	feed, err := s.GenerateFeed(opts)
	if err != nil {
		return err
	}

	switch format {
	case domain.FormatRss:
		err = feed.WriteRss(w)
	case domain.FormatAtom:
		err = feed.WriteAtom(w)
	case domain.FormatJson:
		err = feed.WriteJSON(w)
	default:
		return oops.With("format", format).Wrap(domain.ErrInvalidFormat)
	}
	if err != nil {
		return oops.With("format", format, "context", "failed to encode feed").Wrap(err)
	}

	return nil
}

func (s *Service) messageToFeedItem(msg *archiveDomain.Message, baseURL string) *feeds.Item {
	// Message body plus its attachments, rendered the same way as the page
	nodes := s.render.Content(msg.Content, msg)
	for _, a := range msg.Attachments {
		nodes = append(nodes, s.render.Attachment(a))
	}

	item := &feeds.Item{
		Title:       itemTitle(msg),
		Link:        &feeds.Link{Href: baseURL + "/#" + msg.ID},
		Description: msg.Content,
		Content:     renderService.String(nodes...),
		Author:      &feeds.Author{Name: msg.Author.DisplayName()},
		Created:     msg.Timestamp,
		Id:          msg.ID,
	}
	if msg.EditedTimestamp != nil {
		item.Updated = *msg.EditedTimestamp
	}

	return item
}

func itemTitle(msg *archiveDomain.Message) string {
	line, _, _ := strings.Cut(strings.TrimSpace(msg.Content), "\n")
	if line != "" {
		return truncate(line, titleLength)
	}
	if len(msg.Attachments) > 0 {
		return "Attachment: " + msg.Attachments[0].Filename
	}
	return "Message from " + msg.Author.DisplayName()
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
