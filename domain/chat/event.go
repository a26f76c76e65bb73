// Package chat defines the typed events entering the dispatcher.
// User actions come from the console; completions are posted back by in-flight exchanges.
package chat

import "hr-chat/domain"

type Event interface {
	isEvent()
}

// MessageSubmitted is the chat form submission.
type MessageSubmitted struct {
	Text string
}

// LineEntered is a raw line typed by the user. The dispatcher routes it
// to the reset confirmation, the OTP challenge or the send path.
type LineEntered struct {
	Text string
}

// ExampleSelected copies an example prompt into the input without sending it.
type ExampleSelected struct {
	Index int
}

type ExamplesRequested struct{}

// OtpSubmitted covers both the submit action and the Enter keypress on the OTP input.
type OtpSubmitted struct {
	Code string
}

// OtpCancelled covers both the cancel and the close actions of the challenge.
type OtpCancelled struct{}

type ResetRequested struct{}

type ResetAnswered struct {
	Confirmed bool
}

// ChatCompleted carries the reply of one /api/chat exchange.
type ChatCompleted struct {
	Reply domain.ChatReply
}

// ResetCompleted carries the reply of the reset sentinel.
type ResetCompleted struct {
	Reply domain.ChatReply
}

// OtpVerified carries the result of one /api/verify-otp exchange.
type OtpVerified struct {
	Result domain.OtpResult
}

func (MessageSubmitted) isEvent()  {}
func (LineEntered) isEvent()       {}
func (ExampleSelected) isEvent()   {}
func (ExamplesRequested) isEvent() {}
func (OtpSubmitted) isEvent()      {}
func (OtpCancelled) isEvent()      {}
func (ResetRequested) isEvent()    {}
func (ResetAnswered) isEvent()     {}
func (ChatCompleted) isEvent()     {}
func (ResetCompleted) isEvent()    {}
func (OtpVerified) isEvent()       {}
