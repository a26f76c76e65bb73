package workers

import (
	"bufio"
	"context"
	"hr-chat/domain/chat"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// EventPoster accepts events for the dispatcher loop.
type EventPoster interface {
	Post(ctx context.Context, event chat.Event) error
}

// ConsoleWorker turns lines read from the terminal into dispatcher events.
// Reading happens in a single goroutine started on the first Run, so a restart
// after a panic resumes on the same stream instead of opening a second reader.
type ConsoleWorker struct {
	log    *slog.Logger
	in     io.Reader
	poster EventPoster
	quit   context.CancelFunc
	lines  chan string
	start  sync.Once
}

func NewConsoleWorker(log *slog.Logger, in io.Reader, poster EventPoster, quit context.CancelFunc) *ConsoleWorker {
	return &ConsoleWorker{
		log:    log,
		in:     in,
		poster: poster,
		quit:   quit,
		lines:  make(chan string),
	}
}

func (w *ConsoleWorker) Run(ctx context.Context) error {
	w.start.Do(func() { go w.read() })

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-w.lines:
			if !ok {
				w.log.Info("Input closed")
				w.quit()
				return nil
			}
			event, quit := ParseLine(line)
			if quit {
				w.quit()
				return nil
			}
			if err := w.poster.Post(ctx, event); err != nil {
				return err
			}
		}
	}
}

func (w *ConsoleWorker) read() {
	defer close(w.lines)
	scanner := bufio.NewScanner(w.in)
	for scanner.Scan() {
		w.lines <- scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		w.log.Warn("Failed to read input", "error", err)
	}
}

// ParseLine maps a typed line to an event. Slash commands drive the auxiliary
// actions; anything else is a plain line routed by the dispatcher.
// The boolean is true when the user asked to quit.
func ParseLine(line string) (chat.Event, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return chat.LineEntered{Text: line}, false
	}

	switch strings.ToLower(fields[0]) {
	case "/quit", "/exit":
		return nil, true
	case "/reset":
		return chat.ResetRequested{}, false
	case "/cancel", "/close":
		return chat.OtpCancelled{}, false
	case "/examples":
		return chat.ExamplesRequested{}, false
	case "/example":
		if len(fields) != 2 {
			return chat.ExampleSelected{Index: -1}, false
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return chat.ExampleSelected{Index: -1}, false
		}
		return chat.ExampleSelected{Index: n - 1}, false
	case "/otp":
		return chat.OtpSubmitted{Code: strings.Join(fields[1:], " ")}, false
	default:
		return chat.LineEntered{Text: line}, false
	}
}
