// Package domain contains core concepts of the chat client.
// This file defines transcript messages.
// Messages are immutable once appended to a transcript.
package domain

import (
	"time"

	"github.com/google/uuid"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message represents an immutable transcript entry.
type Message struct {
	ID        uuid.UUID // unique identifier
	Text      string
	Sender    Sender
	CreatedAt time.Time
}

func NewMessage(text string, sender Sender) Message {
	return Message{
		ID:        uuid.New(),
		Text:      text,
		Sender:    sender,
		CreatedAt: time.Now().UTC(),
	}
}

func (m Message) FromUser() bool {
	return m.Sender == SenderUser
}
