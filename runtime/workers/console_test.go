package workers

import (
	"context"
	"hr-chat/domain/chat"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingPoster struct {
	mu     sync.Mutex
	events []chat.Event
}

func (p *recordingPoster) Post(_ context.Context, event chat.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPoster) Events() []chat.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]chat.Event(nil), p.events...)
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line  string
		event chat.Event
		quit  bool
	}{
		{"What is my leave balance?", chat.LineEntered{Text: "What is my leave balance?"}, false},
		{"", chat.LineEntered{Text: ""}, false},
		{"123456", chat.LineEntered{Text: "123456"}, false},
		{"/reset", chat.ResetRequested{}, false},
		{"/cancel", chat.OtpCancelled{}, false},
		{"/close", chat.OtpCancelled{}, false},
		{"/examples", chat.ExamplesRequested{}, false},
		{"/example 2", chat.ExampleSelected{Index: 1}, false},
		{"/example 0", chat.ExampleSelected{Index: -1}, false},
		{"/example two", chat.ExampleSelected{Index: -1}, false},
		{"/example", chat.ExampleSelected{Index: -1}, false},
		{"/otp 123456", chat.OtpSubmitted{Code: "123456"}, false},
		{"/unknown thing", chat.LineEntered{Text: "/unknown thing"}, false},
		{"/QUIT", nil, true},
		{"/exit", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			req := require.New(t)
			event, quit := ParseLine(tt.line)
			req.Equal(tt.quit, quit)
			req.Equal(tt.event, event)
		})
	}
}

func TestConsoleWorker_PostsLinesUntilQuit(t *testing.T) {
	req := require.New(t)
	poster := &recordingPoster{}
	quitted := make(chan struct{})
	in := strings.NewReader("hello\n/example 1\n/quit\nnever read\n")

	worker := NewConsoleWorker(slog.Default(), in, poster, func() { close(quitted) })

	err := worker.Run(context.Background())
	req.NoError(err)

	select {
	case <-quitted:
	case <-time.After(time.Second):
		req.Fail("quit was not requested")
	}
	req.Equal([]chat.Event{chat.LineEntered{Text: "hello"}, chat.ExampleSelected{Index: 0}}, poster.Events())
}

func TestConsoleWorker_QuitsOnEndOfInput(t *testing.T) {
	req := require.New(t)
	poster := &recordingPoster{}
	quitted := false

	worker := NewConsoleWorker(slog.Default(), strings.NewReader("/reset"), poster, func() { quitted = true })

	req.NoError(worker.Run(context.Background()))
	req.True(quitted)
	req.Equal([]chat.Event{chat.ResetRequested{}}, poster.Events())
}
