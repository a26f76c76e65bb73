//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"hr-chat/domain"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// SessionStore persists the opaque session identifier across restarts.
type SessionStore interface {
	Get() (domain.Session, error)
	Set(session domain.Session) error
}

// ChatBackend is the raw HTTP surface of the conversational backend.
// Errors are returned as-is; ChatTransport turns them into uniform results.
type ChatBackend interface {
	Chat(ctx context.Context, message string, session domain.Session) (domain.ChatReply, error)
	VerifyOtp(ctx context.Context, code string, session domain.Session) (domain.OtpResult, error)
}

// ChatTransport performs the exchanges the dispatcher needs and never fails on the network.
type ChatTransport interface {
	SendMessage(ctx context.Context, text string, session domain.Session) (domain.ChatReply, error)
	VerifyOtp(ctx context.Context, code string, session domain.Session) (domain.OtpResult, error)
}

// ConversationUI renders the transcript and the typing indicator.
type ConversationUI interface {
	RenderMessage(msg domain.Message)
	// ClearMessages also removes the typing indicator.
	ClearMessages()
	ShowTyping()
	HideTyping()
	ScrollToBottom()
}

// OtpUI renders the step-up challenge.
type OtpUI interface {
	ShowOtp(prompt string)
	HideOtp()
	FocusOtpInput()
	ClearOtpInput()
	SetOtpStatus(status string)
}

// InputUI renders the message input and the auxiliary prompts around it.
type InputUI interface {
	SetInput(text string)
	ClearInput()
	FocusInput()
	ShowNotice(text string)
	ShowExamples(examples []string)
}

// UI is the whole rendering surface the dispatcher drives.
type UI interface {
	ConversationUI
	OtpUI
	InputUI
}
