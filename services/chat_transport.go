package services

import (
	"context"
	"fmt"
	"hr-chat/auth"
	"hr-chat/contract"
	"hr-chat/domain"
	"log/slog"
)

// ChatTransport performs the chat and verification exchanges and translates every
// transport failure into a uniform result. It never retries.
type ChatTransport struct {
	backend contract.ChatBackend
	log     *slog.Logger
}

func NewChatTransport(backend contract.ChatBackend, log *slog.Logger) *ChatTransport {
	return &ChatTransport{backend: backend, log: log}
}

// SendMessage sends the text as typed. Blank text is rejected with ErrEmptyMessage
// before any request; a failed exchange yields the apology reply instead of an error.
func (t *ChatTransport) SendMessage(ctx context.Context, text string, session domain.Session) (domain.ChatReply, error) {
	if err := auth.ValidateMessage(text); err != nil {
		return domain.ChatReply{}, err
	}

	reply, err := t.backend.Chat(ctx, text, session)
	if err != nil {
		t.log.Warn("Chat exchange failed", "error", err)
		return domain.ChatReply{Message: domain.ApologyMessage, Failed: true}, nil
	}
	return reply, nil
}

// VerifyOtp checks the code format locally and only then reaches the backend.
// A malformed code returns ErrInvalidOtpFormat and never leaves the process.
func (t *ChatTransport) VerifyOtp(ctx context.Context, code string, session domain.Session) (domain.OtpResult, error) {
	code, err := auth.ValidateOtpCode(code)
	if err != nil {
		return domain.OtpResult{}, err
	}

	result, err := t.backend.VerifyOtp(ctx, code, session)
	if err != nil {
		t.log.Warn("OTP verification failed", "error", err)
		return domain.OtpResult{Success: false, Message: domain.OtpErrorMessage}, nil
	}
	if !result.Success && result.Message == "" {
		t.log.Debug(fmt.Sprintf("Backend rejected OTP without a message, using %q", domain.OtpRejectedMessage))
		result.Message = domain.OtpRejectedMessage
	}
	return result, nil
}
