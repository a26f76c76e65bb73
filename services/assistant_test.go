package services

import (
	"context"
	"hr-chat/auth"
	"hr-chat/domain"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newAssistant() (*Assistant, *capturedOtp) {
	svc, captured := newAuthService()
	return NewAssistant(slog.Default(), svc, auth.NewTokenIssuer("test-secret", time.Hour)), captured
}

func TestAssistant_Chat(t *testing.T) {
	ctx := context.Background()

	t.Run("should open a session on the first message and keep it", func(t *testing.T) {
		req := require.New(t)
		assistant, _ := newAssistant()

		first, err := assistant.Chat(ctx, "hello", domain.Session{})
		req.NoError(err)
		req.NotEmpty(first.SessionID)
		req.Equal(FallbackReply, first.Message)

		second, err := assistant.Chat(ctx, "What is the maternity leave policy?", domain.Session{ID: first.SessionID})
		req.NoError(err)
		req.Equal(first.SessionID, second.SessionID)
		req.Equal(PolicyReply, second.Message)
	})

	t.Run("should replace an unknown session", func(t *testing.T) {
		req := require.New(t)
		assistant, _ := newAssistant()

		reply, err := assistant.Chat(ctx, "hello", domain.Session{ID: "not-a-token"})
		req.NoError(err)
		req.NotEqual("not-a-token", reply.SessionID)
		req.NotEmpty(reply.SessionID)
	})

	t.Run("should step up, then answer the pending request after verification", func(t *testing.T) {
		req := require.New(t)
		assistant, captured := newAssistant()

		reply, err := assistant.Chat(ctx, "What is my leave balance?", domain.Session{})
		req.NoError(err)
		req.True(reply.RequireAuth)
		req.Equal(StepUpPrompt, reply.Message)
		session := domain.Session{ID: reply.SessionID}

		req.Len(captured.codes, 1)
		var code string
		for _, c := range captured.codes {
			code = c
		}

		result, err := assistant.VerifyOtp(ctx, code, session)
		req.NoError(err)
		req.True(result.Success)
		req.Equal(LeaveBalanceReply, result.Message)

		again, err := assistant.Chat(ctx, "What is my leave balance?", session)
		req.NoError(err)
		req.False(again.RequireAuth)
		req.Equal(LeaveBalanceReply, again.Message)
	})

	t.Run("should forget the authentication on reset", func(t *testing.T) {
		req := require.New(t)
		assistant, captured := newAssistant()

		reply, err := assistant.Chat(ctx, "leave balance", domain.Session{})
		req.NoError(err)
		session := domain.Session{ID: reply.SessionID}
		for _, code := range captured.codes {
			_, err = assistant.VerifyOtp(ctx, code, session)
			req.NoError(err)
		}

		reset, err := assistant.Chat(ctx, domain.ResetSentinel, session)
		req.NoError(err)
		req.Equal(ResetDoneMessage, reset.Message)
		req.Equal(session.ID, reset.SessionID)

		after, err := assistant.Chat(ctx, "leave balance", session)
		req.NoError(err)
		req.True(after.RequireAuth)
	})

	t.Run("should report the authentication on debug_auth", func(t *testing.T) {
		req := require.New(t)
		assistant, _ := newAssistant()

		reply, err := assistant.Chat(ctx, "debug_auth", domain.Session{})
		req.NoError(err)
		req.Contains(reply.Message, "Authenticated: false")
	})
}

func TestAssistant_VerifyOtp(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		code     string
		session  func(a *Assistant) domain.Session
		expected domain.OtpResult
	}{
		{
			name:     "unknown session",
			code:     "123456",
			session:  func(*Assistant) domain.Session { return domain.Session{ID: "abc123"} },
			expected: domain.OtpResult{Success: false, Message: InvalidSessionReply},
		},
		{
			name: "malformed code",
			code: "12345",
			session: func(a *Assistant) domain.Session {
				reply, _ := a.Chat(ctx, "hello", domain.Session{})
				return domain.Session{ID: reply.SessionID}
			},
			expected: domain.OtpResult{Success: false, Message: domain.OtpFormatMessage},
		},
		{
			name: "no pending challenge",
			code: "123456",
			session: func(a *Assistant) domain.Session {
				reply, _ := a.Chat(ctx, "hello", domain.Session{})
				return domain.Session{ID: reply.SessionID}
			},
			expected: domain.OtpResult{Success: false, Message: "❌ No pending authentication found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			assistant, _ := newAssistant()

			result, err := assistant.VerifyOtp(ctx, tt.code, tt.session(assistant))
			req.NoError(err)
			req.Equal(tt.expected, result)
		})
	}
}
