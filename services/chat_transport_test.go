package services

import (
	"context"
	"fmt"
	"hr-chat/domain"
	"hr-chat/errors"
	"hr-chat/mocks"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTransport(t *testing.T) (*ChatTransport, *mocks.MockChatBackend) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockChatBackend(ctrl)
	return NewChatTransport(backend, slog.Default()), backend
}

func TestChatTransport_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("should send the text with the current session", func(t *testing.T) {
		req := require.New(t)
		transport, backend := newTransport(t)
		expected := domain.ChatReply{Message: "You have 5 days", SessionID: "abc123"}

		backend.EXPECT().
			Chat(gomock.Any(), "What is my leave balance?", domain.Session{}).
			Return(expected, nil).
			Times(1)

		reply, err := transport.SendMessage(ctx, "What is my leave balance?", domain.Session{})
		req.NoError(err)
		req.Equal(expected, reply)
	})

	t.Run("should not reach the backend for blank text", func(t *testing.T) {
		req := require.New(t)
		transport, backend := newTransport(t)
		backend.EXPECT().Chat(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		for _, text := range []string{"", "   ", "\t\n"} {
			_, err := transport.SendMessage(ctx, text, domain.Session{ID: "abc123"})
			req.ErrorIs(err, errors.ErrEmptyMessage)
		}
	})

	t.Run("should turn a network failure into the apology", func(t *testing.T) {
		req := require.New(t)
		transport, backend := newTransport(t)
		backend.EXPECT().
			Chat(gomock.Any(), "hello", domain.Session{ID: "abc123"}).
			Return(domain.ChatReply{}, fmt.Errorf("connection refused")).
			Times(1)

		reply, err := transport.SendMessage(ctx, "hello", domain.Session{ID: "abc123"})
		req.NoError(err)
		req.True(reply.Failed)
		req.Equal(domain.ApologyMessage, reply.Message)
		req.Empty(reply.SessionID)
	})
}

func TestChatTransport_VerifyOtp_OnlyReachesBackendForSixDigits(t *testing.T) {
	inputs := []struct {
		code     string
		sent     string
		reachNet bool
	}{
		{"123456", "123456", true},
		{" 123456\n", "123456", true},
		{"12a456", "", false},
		{"12345", "", false},
		{"1234567", "", false},
		{"", "", false},
		{"+12345", "", false},
		{"12 456", "", false},
	}

	for _, in := range inputs {
		t.Run(fmt.Sprintf("%q", in.code), func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			backend := mocks.NewMockChatBackend(ctrl)
			transport := NewChatTransport(backend, slog.Default())
			session := domain.Session{ID: "abc123"}

			if in.reachNet {
				backend.EXPECT().
					VerifyOtp(gomock.Any(), in.sent, session).
					Return(domain.OtpResult{Success: true, Message: "✅ Authentication successful!"}, nil).
					Times(1)
			} else {
				backend.EXPECT().VerifyOtp(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			result, err := transport.VerifyOtp(context.Background(), in.code, session)
			if in.reachNet {
				req.NoError(err)
				req.True(result.Success)
				return
			}
			req.ErrorIs(err, errors.ErrInvalidOtpFormat)
		})
	}
}

func TestChatTransport_VerifyOtp_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockChatBackend(ctrl)
	transport := NewChatTransport(backend, slog.Default())
	session := domain.Session{ID: "abc123"}

	t.Run("should use the fixed status on network failure", func(t *testing.T) {
		req := require.New(t)
		backend.EXPECT().
			VerifyOtp(gomock.Any(), "123456", session).
			Return(domain.OtpResult{}, fmt.Errorf("timeout")).
			Times(1)

		result, err := transport.VerifyOtp(context.Background(), "123456", session)
		req.NoError(err)
		req.Equal(domain.OtpResult{Success: false, Message: domain.OtpErrorMessage}, result)
	})

	t.Run("should keep the server rejection text", func(t *testing.T) {
		req := require.New(t)
		backend.EXPECT().
			VerifyOtp(gomock.Any(), "123456", session).
			Return(domain.OtpResult{Success: false, Message: "❌ Invalid OTP"}, nil).
			Times(1)

		result, err := transport.VerifyOtp(context.Background(), "123456", session)
		req.NoError(err)
		req.Equal("❌ Invalid OTP", result.Message)
	})

	t.Run("should fall back when the rejection has no text", func(t *testing.T) {
		req := require.New(t)
		backend.EXPECT().
			VerifyOtp(gomock.Any(), "123456", session).
			Return(domain.OtpResult{Success: false}, nil).
			Times(1)

		result, err := transport.VerifyOtp(context.Background(), "123456", session)
		req.NoError(err)
		req.False(result.Success)
		req.Equal(domain.OtpRejectedMessage, result.Message)
	})
}
