package domain

import "encoding/json"

// Embed represents a rich embed. Embeds are kept in the archive but not rendered.
type Embed struct {
	Type        string          `json:"type"`
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	URL         *string         `json:"url,omitempty"`
	Color       *int            `json:"color,omitempty"`
	Fields      []EmbedField    `json:"fields"`
	Author      *EmbedAuthor    `json:"author,omitempty"`
	Image       *EmbedMedia     `json:"image,omitempty"`
	Thumbnail   *EmbedMedia     `json:"thumbnail,omitempty"`
	Video       *EmbedMedia     `json:"video,omitempty"`
	Provider    *EmbedProvider  `json:"provider,omitempty"`
	Footer      json.RawMessage `json:"footer,omitempty"`
	Timestamp   json.RawMessage `json:"timestamp,omitempty"`
}

// EmbedField is a name/value pair inside an embed
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// EmbedAuthor is the author block of an embed
type EmbedAuthor struct {
	Name         string          `json:"name"`
	URL          *string         `json:"url,omitempty"`
	IconURL      json.RawMessage `json:"icon_url,omitempty"`
	ProxyIconURL json.RawMessage `json:"proxy_icon_url,omitempty"`
}

// EmbedMedia is an image, thumbnail or video of an embed
type EmbedMedia struct {
	URL      string  `json:"url"`
	ProxyURL *string `json:"proxy_url,omitempty"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
}

// EmbedProvider names the site an embed came from
type EmbedProvider struct {
	Name string  `json:"name"`
	URL  *string `json:"url,omitempty"`
}
