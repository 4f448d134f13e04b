package domain

import (
	"encoding/json"
	"time"

	"github.com/samber/lo"
)

// Root is the archive payload: messages ordered newest-first
type Root []*Message

// Message represents one archived chat message with the companion
// fields resolved by the exporter
type Message struct {
	ID               string            `json:"id"`
	ChannelID        string            `json:"channel_id"`
	GuildID          json.RawMessage   `json:"guild_id,omitempty"`
	Type             int               `json:"type"`
	Flags            int               `json:"flags"`
	Author           User              `json:"author"`
	Content          string            `json:"content"`
	Timestamp        time.Time         `json:"timestamp"`
	EditedTimestamp  *time.Time        `json:"edited_timestamp,omitempty"`
	TTS              bool              `json:"tts"`
	Pinned           bool              `json:"pinned"`
	MentionEveryone  bool              `json:"mention_everyone"`
	Attachments      []Attachment      `json:"attachments"`
	Embeds           []Embed           `json:"embeds"`
	Reactions        []Reaction        `json:"reactions"`
	StickerItems     []StickerItem     `json:"sticker_items"`
	Mentions         []User            `json:"mentions"`
	MentionRoles     []string          `json:"mention_roles"`
	MentionChannels  []json.RawMessage `json:"mention_channels"`
	MessageReference *MessageReference `json:"message_reference,omitempty"`
	// Snapshot of the replied-to message as the chat service delivered it
	ReferencedMessage *ReferencedMessage `json:"referenced_message,omitempty"`
	Interaction       *Interaction       `json:"interaction,omitempty"`
	ApplicationID     *string            `json:"application_id,omitempty"`
	WebhookID         *string            `json:"webhook_id,omitempty"`
	Activity          json.RawMessage    `json:"activity,omitempty"`
	Application       json.RawMessage    `json:"application,omitempty"`
	Member            json.RawMessage    `json:"member,omitempty"`
	Nonce             json.RawMessage    `json:"nonce,omitempty"`
	Thread            json.RawMessage    `json:"thread,omitempty"`
	Components        []json.RawMessage  `json:"components"`

	ProcessedMentionChannels map[string]string   `json:"mention_channels::processed"`
	ProcessedMentionRoles    []Role              `json:"mention_roles::processed"`
	ProcessedReactions       []ProcessedReaction `json:"reactions::processed"`
	ProcessedStickers        map[string]string   `json:"stickers::processed"`
	ProcessedAuthorAvatar    *string             `json:"author_avatar::processed,omitempty"`
}

// ReplyTargetID returns the id of the message this one replies to, or ""
func (m *Message) ReplyTargetID() string {
	if m.ReferencedMessage != nil && m.ReferencedMessage.ID != "" {
		return m.ReferencedMessage.ID
	}
	if m.MessageReference != nil {
		return m.MessageReference.MessageID
	}
	return ""
}

// IsReply reports whether the message references another message
func (m *Message) IsReply() bool {
	return m.ReplyTargetID() != ""
}

// AvatarPath returns the exported avatar asset of the author, if any
func (m *Message) AvatarPath() (string, bool) {
	if m.ProcessedAuthorAvatar != nil && *m.ProcessedAuthorAvatar != "" {
		return *m.ProcessedAuthorAvatar, true
	}
	return m.Author.AvatarPath()
}

// Mention looks up a mentioned user by id
func (m *Message) Mention(id string) (User, bool) {
	return lo.Find(m.Mentions, func(u User) bool {
		return u.ID == id
	})
}

// MentionedRole looks up a resolved role mention by id
func (m *Message) MentionedRole(id string) (Role, bool) {
	return lo.Find(m.ProcessedMentionRoles, func(r Role) bool {
		return r.ID == id
	})
}

// MentionedChannel looks up a resolved channel name by id
func (m *Message) MentionedChannel(id string) (string, bool) {
	name, ok := m.ProcessedMentionChannels[id]
	return name, ok && name != ""
}

// User represents a message author, a mentioned user or an interaction user
type User struct {
	ID            string          `json:"id"`
	Username      string          `json:"username"`
	Discriminator string          `json:"discriminator"`
	Avatar        *string         `json:"avatar,omitempty"`
	Bot           bool            `json:"bot"`
	PublicFlags   int             `json:"public_flags"`
	AccentColor   json.RawMessage `json:"accent_color,omitempty"`
	Banner        json.RawMessage `json:"banner,omitempty"`
	Member        json.RawMessage `json:"member,omitempty"`
}

// DisplayName returns the name shown for the user. Nicknames are not resolved.
func (u User) DisplayName() string {
	return u.Username
}

// AvatarPath returns the avatar reference, if any
func (u User) AvatarPath() (string, bool) {
	if u.Avatar == nil || *u.Avatar == "" {
		return "", false
	}
	return *u.Avatar, true
}

// Attachment represents a file attached to a message
type Attachment struct {
	ID          string  `json:"id"`
	Filename    string  `json:"filename"`
	Size        int64   `json:"size"`
	URL         string  `json:"url"`
	ProxyURL    string  `json:"proxy_url"`
	ContentType *string `json:"content_type,omitempty"`
	Width       *int    `json:"width,omitempty"`
	Height      *int    `json:"height,omitempty"`
}

// Role represents a mentioned role as resolved at export time
type Role struct {
	ID           string          `json:"id"`
	GuildID      string          `json:"guild_id"`
	Name         string          `json:"name"`
	Color        int             `json:"color"`
	Position     int             `json:"position"`
	Permissions  string          `json:"permissions"`
	Hoist        bool            `json:"hoist"`
	Managed      bool            `json:"managed"`
	Mentionable  bool            `json:"mentionable"`
	Icon         json.RawMessage `json:"icon,omitempty"`
	UnicodeEmoji json.RawMessage `json:"unicode_emoji,omitempty"`
	Tags         RoleTags        `json:"tags"`
}

// RoleTags carries the opaque role tag data
type RoleTags struct {
	BotID         json.RawMessage `json:"bot_id,omitempty"`
	IntegrationID json.RawMessage `json:"integration_id,omitempty"`
}

// Reaction represents an emoji reaction on a message
type Reaction struct {
	Count int   `json:"count"`
	Me    bool  `json:"me"`
	Emoji Emoji `json:"emoji"`
}

// Emoji describes a unicode or custom emoji
type Emoji struct {
	ID       *string `json:"id,omitempty"`
	Name     string  `json:"name"`
	Animated *bool   `json:"animated,omitempty"`
}

// ProcessedReaction is a reaction with its emoji image already exported
type ProcessedReaction struct {
	Count int    `json:"count"`
	Path  string `json:"path"`
}

// StickerItem represents a sticker sent with a message
type StickerItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	FormatType int    `json:"format_type"`
}

// MessageReference points at another message, possibly in another channel
type MessageReference struct {
	MessageID string  `json:"message_id"`
	ChannelID string  `json:"channel_id"`
	GuildID   *string `json:"guild_id,omitempty"`
}

// Interaction describes the slash command that produced a message
type Interaction struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type int    `json:"type"`
	User User   `json:"user"`
}

// ReferencedMessage is the denormalized snapshot of a replied-to message.
// Nested fields the viewer never reads are kept as raw JSON.
type ReferencedMessage struct {
	ID                string            `json:"id"`
	ChannelID         string            `json:"channel_id"`
	Type              int               `json:"type"`
	Flags             int               `json:"flags"`
	Author            User              `json:"author"`
	Content           string            `json:"content"`
	Timestamp         time.Time         `json:"timestamp"`
	EditedTimestamp   *time.Time        `json:"edited_timestamp,omitempty"`
	TTS               bool              `json:"tts"`
	Pinned            bool              `json:"pinned"`
	MentionEveryone   bool              `json:"mention_everyone"`
	Attachments       []Attachment      `json:"attachments"`
	Embeds            []Embed           `json:"embeds"`
	Mentions          []User            `json:"mentions"`
	StickerItems      []StickerItem     `json:"sticker_items"`
	MessageReference  *MessageReference `json:"message_reference,omitempty"`
	MentionRoles      []json.RawMessage `json:"mention_roles"`
	MentionChannels   []json.RawMessage `json:"mention_channels"`
	Reactions         []json.RawMessage `json:"reactions"`
	Components        []json.RawMessage `json:"components"`
	ReferencedMessage json.RawMessage   `json:"referenced_message,omitempty"`
	Interaction       json.RawMessage   `json:"interaction,omitempty"`
	ApplicationID     json.RawMessage   `json:"application_id,omitempty"`
	WebhookID         json.RawMessage   `json:"webhook_id,omitempty"`
	GuildID           json.RawMessage   `json:"guild_id,omitempty"`
	Activity          json.RawMessage   `json:"activity,omitempty"`
	Application       json.RawMessage   `json:"application,omitempty"`
	Member            json.RawMessage   `json:"member,omitempty"`
	Nonce             json.RawMessage   `json:"nonce,omitempty"`
	Thread            json.RawMessage   `json:"thread,omitempty"`
}
