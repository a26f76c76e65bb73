// Package projection builds the local transcript from the exchanges of the conversation.
// It owns ordering and the typing indicator, and pushes every change to the UI port.
package projection

import (
	"hr-chat/contract"
	"hr-chat/domain"
	"slices"
	"sync"
)

// Transcript holds the ordered messages of the conversation and the singleton typing flag.
// The flag is global rather than per exchange: a stale reply hiding it also hides it for a
// later exchange still in flight.
type Transcript struct {
	mu       sync.RWMutex
	ui       contract.ConversationUI
	messages []domain.Message
	typing   bool
}

func NewTranscript(ui contract.ConversationUI) *Transcript {
	return &Transcript{ui: ui}
}

// AppendMessage adds a message at the end and scrolls to it.
func (t *Transcript) AppendMessage(text string, sender domain.Sender) domain.Message {
	msg := domain.NewMessage(text, sender)

	t.mu.Lock()
	t.messages = append(t.messages, msg)
	t.mu.Unlock()

	t.ui.RenderMessage(msg)
	t.ui.ScrollToBottom()
	return msg
}

// ShowTyping displays the indicator. Showing it twice keeps a single indicator.
func (t *Transcript) ShowTyping() {
	t.mu.Lock()
	if t.typing {
		t.mu.Unlock()
		return
	}
	t.typing = true
	t.mu.Unlock()

	t.ui.ShowTyping()
	t.ui.ScrollToBottom()
}

// HideTyping removes the indicator; it is a no-op when none is shown.
func (t *Transcript) HideTyping() {
	t.mu.Lock()
	if !t.typing {
		t.mu.Unlock()
		return
	}
	t.typing = false
	t.mu.Unlock()

	t.ui.HideTyping()
}

// Clear removes every message and the typing indicator with them. Only a full reset
// uses it.
func (t *Transcript) Clear() {
	t.mu.Lock()
	t.messages = nil
	t.typing = false
	t.mu.Unlock()

	t.ui.ClearMessages()
}

func (t *Transcript) Messages() []domain.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.messages)
}

func (t *Transcript) Typing() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.typing
}
