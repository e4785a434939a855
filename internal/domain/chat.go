package domain

import "time"

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

type Message struct {
	ID        string
	Content   string
	Sender    Sender
	Timestamp time.Time
}

// Transcript is the ordered conversation history of one assistant widget.
// It is append-only and lives only as long as the widget does.
type Transcript struct {
	messages []Message
}

func (t *Transcript) Append(msg Message) {
	t.messages = append(t.messages, msg)
}

func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Transcript) Len() int {
	return len(t.messages)
}
