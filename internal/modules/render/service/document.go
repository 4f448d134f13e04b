package service

import (
	"bytes"
	"html/template"
	"io"

	"github.com/samber/oops"

	"github.com/reshetovitsme/archive-viewer/internal/modules/archive/domain"
	"github.com/reshetovitsme/archive-viewer/internal/modules/render/assets"
)

var pageTemplate = template.Must(template.New("page").Parse(assets.PageTemplate))

// Heading is the text shown above the messages
type Heading struct {
	Title   string
	Summary string
}

type documentData struct {
	Title      string
	Summary    string
	Stylesheet template.CSS
	Script     template.JS
	Messages   template.HTML
}

// Document writes a complete HTML page holding the rendered messages
func (s *Service) Document(w io.Writer, heading Heading, messages domain.Root) error {
	var page bytes.Buffer
	if err := Write(&page, s.Page(messages)); err != nil {
		return oops.With("messages", len(messages), "context", "failed to serialize messages").Wrap(err)
	}

	data := documentData{
		Title:      heading.Title,
		Summary:    heading.Summary,
		Stylesheet: template.CSS(assets.Stylesheet),
		Script:     template.JS(assets.Script),
		// node text and attributes were escaped while serializing
		Messages: template.HTML(page.String()),
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return oops.With("context", "failed to execute page template").Wrap(err)
	}

	return nil
}
