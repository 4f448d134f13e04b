package service

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/reshetovitsme/archive-viewer/internal/modules/archive/domain"
)

// Page renders a newest-first message list into one container, oldest
// message on top. A reply can only link to messages rendered before it.
func (s *Service) Page(messages domain.Root) *html.Node {
	container := element(atom.Div, "messages")
	history := make(map[string]*domain.Message, len(messages))

	for i := len(messages) - 1; i >= 0; i-- {
		current := messages[i]
		var previous *domain.Message
		if i+1 < len(messages) {
			previous = messages[i+1]
		}

		container.AppendChild(s.Message(current, previous, history))
		// duplicate ids: the later entry wins
		history[current.ID] = current
	}

	return container
}
