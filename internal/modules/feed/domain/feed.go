//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Format represents a syndication format the archive is published in
// ENUM(rss,atom,json)
type Format string

// ContentType returns the media type served for the format
func (x Format) ContentType() string {
	switch x {
	case FormatAtom:
		return "application/atom+xml; charset=utf-8"
	case FormatJson:
		return "application/feed+json; charset=utf-8"
	default:
		return "application/rss+xml; charset=utf-8"
	}
}

// Options represents feed generation settings
type Options struct {
	Title   string
	BaseURL string
	Limit   int
}
