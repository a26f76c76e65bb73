package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hr-chat/domain"
	"hr-chat/errors"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	ChatPath      = "/api/chat"
	VerifyOtpPath = "/api/verify-otp"
)

// ChatRequest is the body of POST /api/chat. An absent session is sent as "".
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type ChatResponse struct {
	Message     string `json:"message"`
	SessionID   string `json:"session_id,omitempty"`
	RequireAuth bool   `json:"require_auth,omitempty"`
}

// VerifyOtpRequest is the body of POST /api/verify-otp.
type VerifyOtpRequest struct {
	Otp       string `json:"otp"`
	SessionID string `json:"session_id"`
}

type VerifyOtpResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ChatClient talks JSON over HTTP to the conversational backend.
type ChatClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewChatClient(baseURL string, timeout time.Duration) *ChatClient {
	return &ChatClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithHTTPClient replaces the underlying client, e.g. to install a logging transport.
func (c *ChatClient) WithHTTPClient(httpClient *http.Client) *ChatClient {
	c.httpClient = httpClient
	return c
}

// Chat posts one user message with the current session.
func (c *ChatClient) Chat(ctx context.Context, message string, session domain.Session) (domain.ChatReply, error) {
	var response ChatResponse
	err := c.post(ctx, ChatPath, ChatRequest{Message: message, SessionID: session.ID}, &response)
	if err != nil {
		return domain.ChatReply{}, err
	}
	return domain.ChatReply{
		Message:     response.Message,
		SessionID:   response.SessionID,
		RequireAuth: response.RequireAuth,
	}, nil
}

// VerifyOtp posts a passcode for the pending step-up challenge of the session.
func (c *ChatClient) VerifyOtp(ctx context.Context, code string, session domain.Session) (domain.OtpResult, error) {
	var response VerifyOtpResponse
	err := c.post(ctx, VerifyOtpPath, VerifyOtpRequest{Otp: code, SessionID: session.ID}, &response)
	if err != nil {
		return domain.OtpResult{}, err
	}
	return domain.OtpResult{Success: response.Success, Message: response.Message}, nil
}

func (c *ChatClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", path, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, response.Body)
		return fmt.Errorf("%w: %s answered %d", errors.ErrUnexpectedStatus, path, response.StatusCode)
	}

	if err = json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
