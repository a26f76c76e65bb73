package client

import (
	"context"
	"encoding/json"
	"hr-chat/domain"
	"hr-chat/errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestChatClient_Chat_SendsEmptySessionWhenAbsent(t *testing.T) {
	req := require.New(t)

	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal(http.MethodPost, r.Method)
		req.Equal(ChatPath, r.URL.Path)
		req.Equal("application/json", r.Header.Get("Content-Type"))
		req.NoError(json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(ChatResponse{Message: "You have 5 days", SessionID: "abc123"})
	}))
	defer server.Close()

	reply, err := NewChatClient(server.URL, time.Second).
		Chat(context.Background(), "What is my leave balance?", domain.Session{})
	req.NoError(err)

	req.Equal(map[string]any{"message": "What is my leave balance?", "session_id": ""}, received)
	req.Equal(domain.ChatReply{Message: "You have 5 days", SessionID: "abc123"}, reply)
}

func TestChatClient_Chat_RequireAuth(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body ChatRequest
		req.NoError(json.NewDecoder(r.Body).Decode(&body))
		req.Equal("abc123", body.SessionID)
		_, _ = w.Write([]byte(`{"message":"Enter the code sent to you","require_auth":true}`))
	}))
	defer server.Close()

	reply, err := NewChatClient(server.URL+"/", time.Second).
		Chat(context.Background(), "balance", domain.Session{ID: "abc123"})
	req.NoError(err)
	req.True(reply.RequireAuth)
	req.Equal("Enter the code sent to you", reply.Message)
	req.Empty(reply.SessionID)
}

func TestChatClient_VerifyOtp(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal(VerifyOtpPath, r.URL.Path)
		var body VerifyOtpRequest
		req.NoError(json.NewDecoder(r.Body).Decode(&body))
		req.Equal(VerifyOtpRequest{Otp: "123456", SessionID: "abc123"}, body)
		_, _ = w.Write([]byte(`{"success":false,"message":"❌ Invalid OTP"}`))
	}))
	defer server.Close()

	result, err := NewChatClient(server.URL, time.Second).
		VerifyOtp(context.Background(), "123456", domain.Session{ID: "abc123"})
	req.NoError(err)
	req.Equal(domain.OtpResult{Success: false, Message: "❌ Invalid OTP"}, result)
}

func TestChatClient_Failures(t *testing.T) {
	t.Run("non 2xx status", func(t *testing.T) {
		req := require.New(t)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := NewChatClient(server.URL, time.Second).Chat(context.Background(), "hi", domain.Session{})
		req.ErrorIs(err, errors.ErrUnexpectedStatus)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := require.New(t)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}))
		defer server.Close()

		_, err := NewChatClient(server.URL, time.Second).Chat(context.Background(), "hi", domain.Session{})
		req.Error(err)
	})

	t.Run("unreachable server", func(t *testing.T) {
		req := require.New(t)
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		_, err := NewChatClient(url, time.Second).VerifyOtp(context.Background(), "123456", domain.Session{})
		req.Error(err)
	})
}
