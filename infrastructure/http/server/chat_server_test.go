package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hr-chat/domain"
	"hr-chat/infrastructure/http/client"
	"hr-chat/mocks"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRouter(t *testing.T) (http.Handler, *mocks.MockChatBackend) {
	backend := mocks.NewMockChatBackend(gomock.NewController(t))
	return NewChatServer(slog.Default(), backend).Router(), backend
}

func post(router http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func TestChatServer_Chat(t *testing.T) {
	t.Run("should answer with the backend reply", func(t *testing.T) {
		req := require.New(t)
		router, backend := setupRouter(t)

		backend.EXPECT().
			Chat(gomock.Any(), "What is my leave balance?", domain.Session{}).
			Return(domain.ChatReply{Message: "🔐 OTP needed", SessionID: "abc123", RequireAuth: true}, nil)

		response := post(router, client.ChatPath, []byte(`{"message":"What is my leave balance?","session_id":""}`))

		req.Equal(http.StatusOK, response.Code)
		req.Equal("application/json", response.Header().Get("Content-Type"))
		var body client.ChatResponse
		req.NoError(json.NewDecoder(response.Body).Decode(&body))
		req.Equal(client.ChatResponse{Message: "🔐 OTP needed", SessionID: "abc123", RequireAuth: true}, body)
	})

	t.Run("should reject a malformed body", func(t *testing.T) {
		req := require.New(t)
		router, backend := setupRouter(t)
		backend.EXPECT().Chat(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		response := post(router, client.ChatPath, []byte(`{"message":`))

		req.Equal(http.StatusBadRequest, response.Code)
	})

	t.Run("should answer 500 when the backend fails", func(t *testing.T) {
		req := require.New(t)
		router, backend := setupRouter(t)
		backend.EXPECT().
			Chat(gomock.Any(), "hello", domain.Session{ID: "abc123"}).
			Return(domain.ChatReply{}, fmt.Errorf("model unavailable"))

		response := post(router, client.ChatPath, []byte(`{"message":"hello","session_id":"abc123"}`))

		req.Equal(http.StatusInternalServerError, response.Code)
	})

	t.Run("should only accept POST", func(t *testing.T) {
		req := require.New(t)
		router, _ := setupRouter(t)

		request := httptest.NewRequest(http.MethodGet, client.ChatPath, nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		req.Equal(http.StatusMethodNotAllowed, response.Code)
	})
}

func TestChatServer_VerifyOtp(t *testing.T) {
	req := require.New(t)
	router, backend := setupRouter(t)

	backend.EXPECT().
		VerifyOtp(gomock.Any(), "123456", domain.Session{ID: "abc123"}).
		Return(domain.OtpResult{Success: false, Message: "❌ Incorrect OTP. Please try again."}, nil)

	response := post(router, client.VerifyOtpPath, []byte(`{"otp":"123456","session_id":"abc123"}`))

	req.Equal(http.StatusOK, response.Code)
	var body client.VerifyOtpResponse
	req.NoError(json.NewDecoder(response.Body).Decode(&body))
	req.False(body.Success)
	req.Equal("❌ Incorrect OTP. Please try again.", body.Message)
}
