package domain

// Block types understood by the chat platform.
const (
	BlockSection = "section"
	BlockContext = "context"
)

// Text object types.
const (
	TextMrkdwn = "mrkdwn"
	TextPlain  = "plain_text"
)

// Message is the Block Kit payload posted to the chat webhook. It carries no
// reference back to the Event it was built from.
type Message struct {
	Blocks []Block `json:"blocks"`
}

type Block struct {
	Type     string       `json:"type"`
	Text     *TextObject  `json:"text,omitempty"`
	Fields   []TextObject `json:"fields,omitempty"`
	Elements []TextObject `json:"elements,omitempty"`
}

type TextObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
