package ui

import (
	"hr-chat/contract"
	"hr-chat/domain"
	"slices"
	"sync"
)

// Headless keeps the rendered state in memory instead of drawing it.
// It backs the end-to-end scenarios and any run without a terminal.
type Headless struct {
	mu       sync.RWMutex
	messages []domain.Message
	typing   bool
	otp      bool
	prompt   string
	status   string
	input    string
	notices  []string
	examples []string
}

var _ contract.UI = (*Headless)(nil)

func NewHeadless() *Headless {
	return &Headless{}
}

func (h *Headless) RenderMessage(msg domain.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, msg)
}

func (h *Headless) ClearMessages() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = nil
	h.typing = false
}

func (h *Headless) ShowTyping() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.typing = true
}

func (h *Headless) HideTyping() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.typing = false
}

func (h *Headless) ScrollToBottom() {}

func (h *Headless) ShowOtp(prompt string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.otp = true
	h.prompt = prompt
}

func (h *Headless) HideOtp() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.otp = false
	h.prompt = ""
}

func (h *Headless) FocusOtpInput() {}

func (h *Headless) ClearOtpInput() {}

func (h *Headless) SetOtpStatus(status string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = status
}

func (h *Headless) SetInput(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.input = text
}

func (h *Headless) ClearInput() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.input = ""
}

func (h *Headless) FocusInput() {}

func (h *Headless) ShowNotice(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notices = append(h.notices, text)
}

func (h *Headless) ShowExamples(examples []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.examples = slices.Clone(examples)
}

func (h *Headless) Messages() []domain.Message {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.messages)
}

func (h *Headless) Typing() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.typing
}

// Otp returns whether the challenge is displayed, with its prompt and status.
func (h *Headless) Otp() (bool, string, string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.otp, h.prompt, h.status
}

func (h *Headless) Input() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.input
}

func (h *Headless) Notices() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.notices)
}

func (h *Headless) Examples() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.examples)
}
