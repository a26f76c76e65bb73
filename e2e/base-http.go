package e2e

import (
	"bytes"
	"context"
	"fmt"
	"hr-chat/auth"
	"hr-chat/domain"
	"hr-chat/domain/chat"
	"hr-chat/infrastructure/http/client"
	"hr-chat/infrastructure/http/server"
	"hr-chat/projection"
	"hr-chat/repositories"
	"hr-chat/runtime"
	"hr-chat/services"
	"hr-chat/ui"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config  Config
	baseURL string
	local   *httptest.Server

	mu      sync.Mutex
	lastOtp string
}

// SetupSuite loads the environment configuration and, unless a backend URL is given,
// serves the in-memory assistant with its passcodes captured instead of logged.
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	s.baseURL = s.Config.BackendURL
	if s.baseURL != "" {
		return
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	authService := services.NewAuthService(log, services.DefaultOtpTTL, func(userID, code string) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.lastOtp = code
	})
	assistant := services.NewAssistant(log, authService, auth.NewTokenIssuer(s.Config.Secret, time.Hour))
	s.local = httptest.NewServer(server.NewChatServer(log, assistant).Router())
	s.baseURL = s.local.URL
}

func (s *BaseHTTPSuite) TearDownSuite() {
	if s.local != nil {
		s.local.Close()
	}
}

// LastOtp returns the most recently issued passcode. Only the local backend exposes them.
func (s *BaseHTTPSuite) LastOtp() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOtp, s.lastOtp != ""
}

func (s *BaseHTTPSuite) RequireLocalBackend() {
	if s.local == nil {
		s.T().Skip("passcodes are only observable on the local backend")
	}
}

// Header prints a colorized step header in the test logs.
func (s *BaseHTTPSuite) Header(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

type loggingTransport struct {
	t     *testing.T
	debug bool
	next  http.RoundTripper
}

func (l loggingTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	start := time.Now()
	var requestBody []byte
	if l.debug && request.Body != nil {
		requestBody, _ = io.ReadAll(request.Body)
		request.Body = io.NopCloser(bytes.NewReader(requestBody))
	}

	response, err := l.next.RoundTrip(request)

	logBuilder := strings.Builder{}
	if err != nil {
		fmt.Fprintf(&logBuilder, "HTTP %s %s failed in %v: %v", request.Method, request.URL.Path, time.Since(start), err)
		l.t.Log(logBuilder.String())
		return nil, err
	}
	fmt.Fprintf(&logBuilder, "HTTP %s %s [%d] in %v", request.Method, request.URL.Path, response.StatusCode, time.Since(start))
	if l.debug {
		responseBody, _ := io.ReadAll(response.Body)
		response.Body = io.NopCloser(bytes.NewReader(responseBody))
		fmt.Fprintf(&logBuilder, "\nREQUEST:\n%s\nRESPONSE:\n%s", requestBody, responseBody)
	}
	l.t.Log(logBuilder.String())
	return response, nil
}

// ClientStack is a complete client wired to the backend, rendering headlessly.
type ClientStack struct {
	Dispatcher *runtime.Dispatcher
	Transcript *projection.Transcript
	Otp        *services.OtpChallenge
	Screen     *ui.Headless
	Store      repositories.SessionRepository
	ctx        context.Context
}

func (c *ClientStack) Post(event chat.Event) error {
	return c.Dispatcher.Post(c.ctx, event)
}

// StartClient runs a client persisting its session in dir, stopped at the end of the test.
func (s *BaseHTTPSuite) StartClient(t *testing.T, dir string) *ClientStack {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	httpClient := &http.Client{
		Timeout:   10 * time.Second,
		Transport: loggingTransport{t: t, debug: s.Config.DebugJSON, next: http.DefaultTransport},
	}
	backend := client.NewChatClient(s.baseURL, 10*time.Second).WithHTTPClient(httpClient)

	screen := ui.NewHeadless()
	transcript := projection.NewTranscript(screen)
	otp := services.NewOtpChallenge(screen, transcript, log)
	store := repositories.NewSessionRepository(db, log)
	dispatcher := runtime.NewDispatcher(log, services.NewChatTransport(backend, log), store, transcript, otp, screen,
		runtime.Options{Greeting: domain.GreetingMessage, Examples: domain.DefaultExamples})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = dispatcher.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		_ = db.Close()
	})

	return &ClientStack{Dispatcher: dispatcher, Transcript: transcript, Otp: otp, Screen: screen, Store: store, ctx: ctx}
}
