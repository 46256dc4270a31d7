package domain

import (
	"time"
)

// ActionKind categorizes what happened on a board. The tracker may introduce
// new kinds at any time; consumers must treat unknown values as valid.
type ActionKind string

const (
	ActionCardCreated      ActionKind = "card_created"
	ActionCardPublished    ActionKind = "card_published"
	ActionCardUpdated      ActionKind = "card_updated"
	ActionCardMoved        ActionKind = "card_moved"
	ActionCardCompleted    ActionKind = "card_completed"
	ActionCardArchived     ActionKind = "card_archived"
	ActionCardRestored     ActionKind = "card_restored"
	ActionCardAssigned     ActionKind = "card_assigned"
	ActionCardDueSoon      ActionKind = "card_due_soon"
	ActionCardMarkedGolden ActionKind = "card_marked_golden"
	ActionCommentCreated   ActionKind = "comment_created"
)

// IsComment reports whether this kind targets a comment rather than a card.
// The kind is the sole discriminant: comment_created carries a Comment, every
// other kind (known or not) carries a Card.
func (k ActionKind) IsComment() bool {
	return k == ActionCommentCreated
}

type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	IsActive   bool      `json:"is_active"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
	ProfileURL string    `json:"profile_url"`
}

type Board struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsPrivate bool      `json:"is_private"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy *User     `json:"created_by,omitempty"`
}

type Column struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Card struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	ImageURL     string    `json:"image_url,omitempty"`
	IsGolden     bool      `json:"is_golden"`
	LastActiveAt time.Time `json:"last_active_at"`
	CreatedAt    time.Time `json:"created_at"`
	URL          string    `json:"url"`
	Board        *Board    `json:"board,omitempty"`
	Column       *Column   `json:"column,omitempty"`
	CreatedBy    *User     `json:"created_by,omitempty"`
}

type Comment struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Text         string    `json:"text"`
	HTML         string    `json:"html"`
	CreatedBy    *User     `json:"created_by,omitempty"`
	ReactionsURL string    `json:"reactions_url"`
	URL          string    `json:"url"`
}

// Event is one tracker notification: an actor performed an action on a card
// or comment within a board.
type Event struct {
	ID        string     `json:"id"`
	Action    ActionKind `json:"action"`
	CreatedAt time.Time  `json:"created_at"`
	User      User       `json:"user"`
	Board     Board      `json:"board"`
	Card      *Card      `json:"card,omitempty"`
	Comment   *Comment   `json:"comment,omitempty"`
}
