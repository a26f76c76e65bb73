package services

import (
	"hr-chat/auth"
	"hr-chat/contract"
	"hr-chat/domain"
	"log/slog"
	"sync"
)

// MessageAppender receives the confirmation the backend returns after a successful verification.
type MessageAppender interface {
	AppendMessage(text string, sender domain.Sender) domain.Message
}

// OtpChallenge drives the step-up passcode prompt.
//
//	closed -> open -> closed (verified or cancelled)
//	               -> open   (local format error or server rejection, retries unlimited)
type OtpChallenge struct {
	mu        sync.RWMutex
	ui        contract.OtpUI
	messages  MessageAppender
	log       *slog.Logger
	state     domain.OtpState
	challenge domain.OtpChallenge
}

func NewOtpChallenge(ui contract.OtpUI, messages MessageAppender, log *slog.Logger) *OtpChallenge {
	return &OtpChallenge{ui: ui, messages: messages, log: log, state: domain.OtpClosed}
}

// Open shows the prompt, clears any previous status and focuses the input.
// Opening an open challenge replaces its prompt, there is never more than one.
func (o *OtpChallenge) Open(prompt string) {
	o.mu.Lock()
	o.state = domain.OtpOpen
	o.challenge = domain.OtpChallenge{Prompt: prompt}
	o.mu.Unlock()

	o.ui.ShowOtp(prompt)
	o.ui.SetOtpStatus("")
	o.ui.FocusOtpInput()
}

// Submit validates the code locally. On a format error the challenge stays open with
// a local status and false is returned: nothing must be sent. Otherwise the trimmed
// code to verify is returned.
func (o *OtpChallenge) Submit(code string) (string, bool) {
	trimmed, err := auth.ValidateOtpCode(code)
	if err != nil {
		o.setStatus(domain.OtpFormatMessage)
		return "", false
	}
	return trimmed, true
}

// Resolve applies the outcome of a verification. A success closes the challenge and
// appends the confirmation when there is one. A rejection keeps it open with the
// server text. A result landing after a cancellation never reopens the challenge.
func (o *OtpChallenge) Resolve(result domain.OtpResult) {
	if result.Success {
		if o.IsOpen() {
			o.close()
		}
		if result.Message != "" {
			o.messages.AppendMessage(result.Message, domain.SenderBot)
		}
		return
	}

	if !o.IsOpen() {
		o.log.Debug("Dropping OTP rejection for a closed challenge")
		return
	}
	o.setStatus(result.Message)
}

// Cancel closes the challenge whatever the state of the verification.
func (o *OtpChallenge) Cancel() {
	o.close()
}

func (o *OtpChallenge) IsOpen() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state == domain.OtpOpen
}

func (o *OtpChallenge) State() domain.OtpState {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state
}

// Challenge returns the open challenge, false when closed.
func (o *OtpChallenge) Challenge() (domain.OtpChallenge, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.challenge, o.state == domain.OtpOpen
}

func (o *OtpChallenge) setStatus(status string) {
	o.mu.Lock()
	o.challenge.Status = status
	o.mu.Unlock()

	o.ui.SetOtpStatus(status)
}

func (o *OtpChallenge) close() {
	o.mu.Lock()
	o.state = domain.OtpClosed
	o.challenge = domain.OtpChallenge{}
	o.mu.Unlock()

	o.ui.HideOtp()
	o.ui.ClearOtpInput()
	o.ui.SetOtpStatus("")
}
