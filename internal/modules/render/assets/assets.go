// Package assets holds the static files shipped inside every rendered page.
package assets

import (
	_ "embed"
	"encoding/base64"
)

var (
	//go:embed viewer.css
	Stylesheet string

	//go:embed viewer.js
	Script string

	//go:embed page.html.tmpl
	PageTemplate string

	//go:embed file.svg
	fileIcon []byte
)

// FileIcon is the generic file icon as a data URI
var FileIcon = "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(fileIcon)
