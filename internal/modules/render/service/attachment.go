package service

import (
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/reshetovitsme/archive-viewer/internal/modules/archive/domain"
	"github.com/reshetovitsme/archive-viewer/internal/modules/render/assets"
)

var imageExtensions = []string{"png", "jpg", "jpeg", "jfif", "pjpeg", "pjp", "svg", "gif", "webp", "apng", "avif"}

// Classify decides whether an attachment is shown inline or as a file card.
// The declared content type wins; the URL extension is only consulted when
// the exporter recorded none.
func Classify(a domain.Attachment) domain.AttachmentKind {
	if a.ContentType != nil {
		if strings.HasPrefix(*a.ContentType, "image") {
			return domain.AttachmentKindImage
		}
		return domain.AttachmentKindFile
	}

	if lo.Contains(imageExtensions, extension(a.URL)) {
		return domain.AttachmentKindImage
	}
	return domain.AttachmentKindFile
}

// Attachment renders an inline image or a downloadable file card
func (s *Service) Attachment(a domain.Attachment) *html.Node {
	if Classify(a) == domain.AttachmentKindImage {
		img := image("image", a.URL, a.Filename)
		if a.Width != nil && a.Height != nil {
			attr(img, "width", strconv.Itoa(*a.Width))
			attr(img, "height", strconv.Itoa(*a.Height))
		}
		attr(img, "loading", "lazy")
		return img
	}

	card := element(atom.A, "attachment flex-row",
		image("", assets.FileIcon, "file icon"),
		element(atom.Div, "attachment-body",
			element(atom.Div, "attachment-title", text(a.Filename)),
			element(atom.Div, "attachment-size", text(FormatSize(a.Size))),
		),
	)
	return attr(card, "href", a.URL)
}

// FormatSize renders a byte count in decimal SI units, e.g. "1.5 MB"
func FormatSize(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.Bytes(uint64(size))
}

// extension returns the lowercase extension of the URL path. Query strings
// and fragments are ignored; relative asset paths are accepted as well.
func extension(raw string) string {
	p := raw
	if u, err := url.Parse(raw); err == nil {
		p = u.Path
	}
	return strings.TrimPrefix(strings.ToLower(path.Ext(p)), ".")
}
