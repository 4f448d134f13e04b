package service

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/russross/blackfriday/v2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/reshetovitsme/archive-viewer/internal/modules/archive/domain"
)

const utcLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

const markdownExtensions = blackfriday.NoIntraEmphasis |
	blackfriday.FencedCode |
	blackfriday.Autolink |
	blackfriday.Strikethrough |
	blackfriday.SpaceHeadings |
	blackfriday.HardLineBreak |
	blackfriday.BackslashLineBreak

const snowflake = `(\d{18})`

// Token patterns, applied in declaration order. Every pattern except the
// timestamp one runs against text the markdown pass already escaped.
var (
	emojiToken     = regexp.MustCompile(`&lt;:\w+:` + snowflake + `&gt;`)
	timestampToken = regexp.MustCompile(`<t:(-?\d+)(?::.)?>`)
	userToken      = regexp.MustCompile(`&lt;@!?` + snowflake + `&gt;`)
	roleToken      = regexp.MustCompile(`&lt;@&amp;` + snowflake + `&gt;`)
	channelToken   = regexp.MustCompile(`&lt;#` + snowflake + `&gt;`)

	timestampLiteral = regexp.MustCompile(`^<t:-?\d+(?::.)?>$`)
)

// Content renders a message body: markdown first, then the inline token
// substitutions. Tokens whose target is not part of msg stay literal text.
func (s *Service) Content(content string, msg *domain.Message) []*html.Node {
	parsed := markdown(content)

	parsed = replaceSubmatches(emojiToken, parsed, func(match string, id string) string {
		return fmt.Sprintf(`<img class="inline-emoji" src="assets/%s.png" alt="%s">`, id, id)
	})

	parsed = replaceSubmatches(timestampToken, parsed, func(match string, seconds string) string {
		sec, err := strconv.ParseInt(seconds, 10, 64)
		if err != nil {
			return html.EscapeString(match)
		}
		return fmt.Sprintf(`<span class="mention timestamp">%s</span>`, time.Unix(sec, 0).UTC().Format(utcLayout))
	})

	parsed = replaceSubmatches(userToken, parsed, func(match string, id string) string {
		user, ok := msg.Mention(id)
		if !ok {
			return match
		}
		return fmt.Sprintf(`<span class="mention">@%s</span>`, html.EscapeString(user.DisplayName()))
	})

	parsed = replaceSubmatches(roleToken, parsed, func(match string, id string) string {
		role, ok := msg.MentionedRole(id)
		if !ok {
			return match
		}
		color := RoleColor(role.Color)
		return fmt.Sprintf(`<span class="mention" style="color: %s; background-color: %s1a">@%s</span>`,
			color, color, html.EscapeString(role.Name))
	})

	parsed = replaceSubmatches(channelToken, parsed, func(match string, id string) string {
		name, ok := msg.MentionedChannel(id)
		if !ok {
			return match
		}
		return fmt.Sprintf(`<span class="mention">#%s</span>`, html.EscapeString(name))
	})

	parent := &html.Node{Type: html.ElementNode, DataAtom: atom.Div, Data: "div"}
	nodes, err := html.ParseFragment(strings.NewReader(parsed), parent)
	if err != nil {
		return []*html.Node{text(content)}
	}
	return nodes
}

// RoleColor formats a role colour as a 6 digit hex colour
func RoleColor(color int) string {
	return fmt.Sprintf("#%06x", color&0xffffff)
}

// replaceSubmatches replaces every match of re, handing the callback the
// whole match and its first capture group
func replaceSubmatches(re *regexp.Regexp, src string, repl func(match, group string) string) string {
	indexes := re.FindAllStringSubmatchIndex(src, -1)
	if len(indexes) == 0 {
		return src
	}

	var b strings.Builder
	last := 0
	for _, idx := range indexes {
		b.WriteString(src[last:idx[0]])
		b.WriteString(repl(src[idx[0]:idx[1]], src[idx[2]:idx[3]]))
		last = idx[1]
	}
	b.WriteString(src[last:])
	return b.String()
}

func markdown(content string) string {
	if content == "" {
		return ""
	}

	renderer := &markdownRenderer{
		HTMLRenderer: blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
			Flags: blackfriday.Safelink | blackfriday.HrefTargetBlank | blackfriday.NoreferrerLinks,
		}),
	}
	out := blackfriday.Run([]byte(content),
		blackfriday.WithExtensions(markdownExtensions),
		blackfriday.WithRenderer(renderer),
	)
	return string(out)
}

// markdownRenderer escapes raw HTML the author typed. Timestamp tokens look
// like inline tags to the parser and are kept for the substitution pass.
type markdownRenderer struct {
	*blackfriday.HTMLRenderer
}

func (r *markdownRenderer) RenderNode(w io.Writer, node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
	switch node.Type {
	case blackfriday.HTMLSpan:
		if !timestampLiteral.Match(node.Literal) {
			io.WriteString(w, html.EscapeString(string(node.Literal)))
			return blackfriday.GoToNext
		}
	case blackfriday.HTMLBlock:
		io.WriteString(w, "<p>")
		io.WriteString(w, html.EscapeString(strings.TrimSpace(string(node.Literal))))
		io.WriteString(w, "</p>\n")
		return blackfriday.GoToNext
	}
	return r.HTMLRenderer.RenderNode(w, node, entering)
}
