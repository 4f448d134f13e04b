package service

import (
	"strconv"

	"github.com/samber/lo"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/reshetovitsme/archive-viewer/internal/modules/archive/domain"
)

const attachmentPlaceholder = "Click to see attachment"

// ShowHeader reports whether msg gets the avatar/username/date header.
// Consecutive messages of one author collapse, replies never do.
func ShowHeader(msg, previous *domain.Message) bool {
	return previous == nil || previous.Author.ID != msg.Author.ID || msg.IsReply()
}

// Message renders one message block. history holds the messages rendered so
// far in this pass and is only read, never modified.
func (s *Service) Message(msg, previous *domain.Message, history map[string]*domain.Message) *html.Node {
	showHeader := ShowHeader(msg, previous)

	var side, header *html.Node
	if showHeader {
		side = s.avatar(msg)
		header = s.header(msg)
	} else {
		side = element(atom.Div, "pfp-spacer time", text(msg.Timestamp.In(s.location).Format("15:04")))
	}

	body := element(atom.Div, "body",
		header,
		element(atom.Div, "content markdown", s.Content(msg.Content, msg)...),
	)
	if !showHeader {
		// collapsed messages carry the marker below their content
		appendChildren(body, editedMarker(msg))
	}
	for _, a := range msg.Attachments {
		body.AppendChild(s.Attachment(a))
	}
	appendChildren(body, s.stickers(msg)...)
	appendChildren(body, s.reactions(msg))

	block := element(atom.Div, "message",
		s.replyBanner(msg, history),
		element(atom.Div, "flex-row", side, body),
	)
	return attr(block, "id", msg.ID)
}

func (s *Service) avatar(msg *domain.Message) *html.Node {
	src, ok := msg.AvatarPath()
	if !ok {
		return element(atom.Div, "pfp-spacer")
	}
	return image("pfp", src, msg.Author.DisplayName())
}

func (s *Service) header(msg *domain.Message) *html.Node {
	var bot *html.Node
	if msg.Author.Bot {
		bot = element(atom.Span, "bot-tag", text("BOT"))
	}

	return element(atom.Span, "header",
		element(atom.Span, "username", text(msg.Author.DisplayName())),
		text(" "),
		bot,
		element(atom.Span, "time", text(msg.Timestamp.UTC().Format(utcLayout))),
		editedMarker(msg),
	)
}

func editedMarker(msg *domain.Message) *html.Node {
	if msg.EditedTimestamp == nil {
		return nil
	}
	marker := element(atom.Span, "edited", text("(edited)"))
	return attr(marker, "title", msg.EditedTimestamp.UTC().Format(utcLayout))
}

// replyBanner links back to the replied-to message when it was already
// rendered; otherwise the banner is left out
func (s *Service) replyBanner(msg *domain.Message, history map[string]*domain.Message) *html.Node {
	targetID := msg.ReplyTargetID()
	if targetID == "" {
		return nil
	}
	target, ok := history[targetID]
	if !ok {
		return nil
	}

	var preview *html.Node
	if target.Content == "" {
		preview = element(atom.Div, "reply-text reply-text-attachment", text(attachmentPlaceholder))
	} else {
		preview = element(atom.Div, "reply-text", s.Content(target.Content, target)...)
	}

	var pfp *html.Node
	if src, ok := target.AvatarPath(); ok {
		pfp = image("pfp-reply", src, target.Author.DisplayName())
	}

	banner := element(atom.A, "flex-row reply",
		element(atom.Div, "reply-spacer", element(atom.Div, "reply-spacer-inner")),
		element(atom.Div, "flex-row header-reply",
			pfp,
			element(atom.Div, "reply-username", text(target.Author.DisplayName())),
			preview,
		),
	)
	attr(banner, "href", "#"+target.ID)
	return attr(banner, "data-reply-target", target.ID)
}

func (s *Service) stickers(msg *domain.Message) []*html.Node {
	return lo.FilterMap(msg.StickerItems, func(sticker domain.StickerItem, _ int) (*html.Node, bool) {
		src, ok := msg.ProcessedStickers[sticker.ID]
		if !ok || src == "" {
			return nil, false
		}
		return image("sticker", src, sticker.Name), true
	})
}

func (s *Service) reactions(msg *domain.Message) *html.Node {
	if len(msg.ProcessedReactions) == 0 {
		return nil
	}

	row := element(atom.Div, "reactions")
	for _, reaction := range msg.ProcessedReactions {
		row.AppendChild(element(atom.Span, "reaction",
			image("", reaction.Path, "reaction"),
			element(atom.Span, "reaction-count", text(strconv.Itoa(reaction.Count))),
		))
	}
	return row
}
