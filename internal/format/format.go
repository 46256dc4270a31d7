// Package format turns tracker events into chat messages. It is pure: no I/O,
// and identical events always produce identical messages.
package format

import (
	"fmt"

	"github.com/Priya8975/board-notify/internal/domain"
)

const (
	// maxCommentChars bounds the quoted comment body, counted in characters.
	maxCommentChars = 300
	ellipsis        = "…"

	fallbackEmoji = "📌"
	defaultActor  = "Someone"

	contextTimeLayout = "Jan 2, 2006 3:04 PM MST"
)

var actionLabels = map[domain.ActionKind]string{
	domain.ActionCardCreated:      "created",
	domain.ActionCardPublished:    "published",
	domain.ActionCardUpdated:      "updated",
	domain.ActionCardMoved:        "moved",
	domain.ActionCardCompleted:    "completed",
	domain.ActionCardArchived:     "archived",
	domain.ActionCardRestored:     "restored",
	domain.ActionCardAssigned:     "was assigned to",
	domain.ActionCardDueSoon:      "has an upcoming due date on",
	domain.ActionCardMarkedGolden: "marked as golden",
}

var actionEmojis = map[domain.ActionKind]string{
	domain.ActionCardCreated:      "🆕",
	domain.ActionCardPublished:    "🚀",
	domain.ActionCardUpdated:      "✏️",
	domain.ActionCardMoved:        "📦",
	domain.ActionCardCompleted:    "✅",
	domain.ActionCardArchived:     "🗄️",
	domain.ActionCardRestored:     "♻️",
	domain.ActionCardAssigned:     "👤",
	domain.ActionCardDueSoon:      "⏰",
	domain.ActionCardMarkedGolden: "⭐",
	domain.ActionCommentCreated:   "💬",
}

// Label returns the header verb phrase for a kind. Unknown kinds fall back to
// the raw kind string so that new tracker actions render instead of failing.
func Label(kind domain.ActionKind) string {
	if label, ok := actionLabels[kind]; ok {
		return label
	}
	return string(kind)
}

// Emoji returns the header glyph for a kind, with a generic pin fallback.
func Emoji(kind domain.ActionKind) string {
	if emoji, ok := actionEmojis[kind]; ok {
		return emoji
	}
	return fallbackEmoji
}

// Format renders an event into a chat message. The comment layout applies to
// comment_created, the card layout to every other kind. It errors only when
// the target object required by the action kind is missing from the event.
func Format(ev *domain.Event) (*domain.Message, error) {
	if ev.Action.IsComment() {
		if ev.Comment == nil {
			return nil, fmt.Errorf("event %s: action %s carries no comment", ev.ID, ev.Action)
		}
		return commentMessage(ev), nil
	}
	if ev.Card == nil {
		return nil, fmt.Errorf("event %s: action %s carries no card", ev.ID, ev.Action)
	}
	return cardMessage(ev), nil
}

func commentMessage(ev *domain.Event) *domain.Message {
	header := fmt.Sprintf("%s *%s* commented on a card in *%s*",
		Emoji(ev.Action), actorName(ev.User), ev.Board.Name)
	quote := "> " + truncate(ev.Comment.Text, maxCommentChars)

	return &domain.Message{Blocks: []domain.Block{
		section(header),
		section(quote),
		contextBlock(fmt.Sprintf("<%s|View comment>", ev.Comment.URL)),
	}}
}

func cardMessage(ev *domain.Event) *domain.Message {
	card := ev.Card
	header := fmt.Sprintf("%s *%s* %s <%s|%s>",
		Emoji(ev.Action), actorName(ev.User), Label(ev.Action), card.URL, card.Title)

	// Board is unconditional, so the field block is never empty.
	fields := make([]domain.TextObject, 0, 3)
	if card.Column != nil {
		fields = append(fields, mrkdwn("*Column:*\n"+card.Column.Name))
	}
	fields = append(fields, mrkdwn("*Board:*\n"+ev.Board.Name))
	if card.IsGolden {
		fields = append(fields, mrkdwn("*Golden:*\n⭐ Yes"))
	}

	when := ev.CreatedAt.UTC().Format(contextTimeLayout)

	return &domain.Message{Blocks: []domain.Block{
		section(header),
		{Type: domain.BlockSection, Fields: fields},
		contextBlock(fmt.Sprintf("%s • %s", ev.Board.Name, when)),
	}}
}

func actorName(u domain.User) string {
	if u.Name == "" {
		return defaultActor
	}
	return u.Name
}

// truncate cuts s to at most n characters, appending an ellipsis when cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + ellipsis
}

func section(text string) domain.Block {
	t := mrkdwn(text)
	return domain.Block{Type: domain.BlockSection, Text: &t}
}

func contextBlock(text string) domain.Block {
	return domain.Block{Type: domain.BlockContext, Elements: []domain.TextObject{mrkdwn(text)}}
}

func mrkdwn(text string) domain.TextObject {
	return domain.TextObject{Type: domain.TextMrkdwn, Text: text}
}
