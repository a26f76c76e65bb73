// Package server exposes a chat backend over the JSON endpoints the client speaks.
package server

import (
	"encoding/json"
	"fmt"
	"hr-chat/contract"
	"hr-chat/domain"
	"hr-chat/errors"
	"hr-chat/infrastructure/http/client"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type ChatServer struct {
	log     *slog.Logger
	backend contract.ChatBackend
}

func NewChatServer(log *slog.Logger, backend contract.ChatBackend) *ChatServer {
	return &ChatServer{log: log, backend: backend}
}

// Router wires the two chat endpoints.
func (s *ChatServer) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Post(client.ChatPath, s.handleChat)
	r.Post(client.VerifyOtpPath, s.handleVerifyOtp)
	return r
}

func (s *ChatServer) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload client.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err))
		return
	}

	reply, err := s.backend.Chat(r.Context(), payload.Message, domain.Session{ID: payload.SessionID})
	if err != nil {
		s.log.Error("Chat failed", "request_id", middleware.GetReqID(r.Context()), "error", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, client.ChatResponse{
		Message:     reply.Message,
		SessionID:   reply.SessionID,
		RequireAuth: reply.RequireAuth,
	})
}

func (s *ChatServer) handleVerifyOtp(w http.ResponseWriter, r *http.Request) {
	var payload client.VerifyOtpRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err))
		return
	}

	result, err := s.backend.VerifyOtp(r.Context(), payload.Otp, domain.Session{ID: payload.SessionID})
	if err != nil {
		s.log.Error("OTP verification failed", "request_id", middleware.GetReqID(r.Context()), "error", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, client.VerifyOtpResponse{Success: result.Success, Message: result.Message})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, errors.MapToHTTPStatus(err), map[string]string{"error": err.Error()})
}
