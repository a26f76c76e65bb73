// Package runtime binds user actions to the conversation components.
// It owns the only loop that mutates client state; network exchanges run aside and
// post their completion back as events.
package runtime

import (
	"context"
	"fmt"
	"hr-chat/auth"
	"hr-chat/contract"
	"hr-chat/domain"
	"hr-chat/domain/chat"
	"hr-chat/errors"
	"hr-chat/projection"
	"hr-chat/services"
	"log/slog"
	"strings"
	"sync"

	"github.com/samber/lo"
)

type Options struct {
	Greeting     string
	Examples     []string
	ConfirmReset bool
	BufferSize   int
}

// Dispatcher receives typed events and drives the transcript, the OTP challenge and
// the session. Exchanges are not serialized: replies are applied in arrival order,
// so the last reply wins for both the session id and the typing indicator.
type Dispatcher struct {
	log        *slog.Logger
	transport  contract.ChatTransport
	store      contract.SessionStore
	transcript *projection.Transcript
	otp        *services.OtpChallenge
	input      contract.InputUI
	options    Options
	events     chan chat.Event
	start      sync.Once

	mu              sync.RWMutex
	session         domain.Session
	draft           string
	awaitingConfirm bool
}

func NewDispatcher(log *slog.Logger, transport contract.ChatTransport, store contract.SessionStore,
	transcript *projection.Transcript, otp *services.OtpChallenge, input contract.InputUI,
	options Options) *Dispatcher {
	return &Dispatcher{
		log:        log,
		transport:  transport,
		store:      store,
		transcript: transcript,
		otp:        otp,
		input:      input,
		options:    options,
		events:     make(chan chat.Event, max(options.BufferSize, 1)),
	}
}

// Post hands an event to the loop. It blocks until the event is accepted or ctx ends.
func (d *Dispatcher) Post(ctx context.Context, event chat.Event) error {
	select {
	case d.events <- event:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", errors.ErrDispatcherStopped, ctx.Err())
	}
}

// Run restores the persisted session, shows the greeting once, then handles events
// until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.start.Do(d.restore)

	for {
		select {
		case <-ctx.Done():
			d.log.Debug("Stopping dispatcher")
			return ctx.Err()
		case event := <-d.events:
			d.handle(ctx, event)
		}
	}
}

func (d *Dispatcher) restore() {
	session, err := d.store.Get()
	if err != nil {
		d.log.Warn("Could not restore session, starting a new one", "error", err)
	}
	d.mu.Lock()
	d.session = session
	d.mu.Unlock()

	if !session.Empty() {
		d.log.Info("Session restored")
	}
	if d.options.Greeting != "" {
		d.transcript.AppendMessage(d.options.Greeting, domain.SenderBot)
	}
	d.input.FocusInput()
}

func (d *Dispatcher) handle(ctx context.Context, event chat.Event) {
	switch evt := event.(type) {
	case chat.MessageSubmitted:
		d.send(ctx, evt.Text)
	case chat.LineEntered:
		d.route(ctx, evt.Text)
	case chat.ExampleSelected:
		d.selectExample(evt.Index)
	case chat.ExamplesRequested:
		d.input.ShowExamples(d.options.Examples)
	case chat.OtpSubmitted:
		if !d.otp.IsOpen() {
			d.log.Debug("Ignoring OTP submission without an open challenge")
			return
		}
		d.submitOtp(ctx, evt.Code)
	case chat.OtpCancelled:
		d.otp.Cancel()
	case chat.ResetRequested:
		d.requestReset(ctx)
	case chat.ResetAnswered:
		d.answerReset(ctx, evt.Confirmed)
	case chat.ChatCompleted:
		d.completeChat(evt.Reply)
	case chat.ResetCompleted:
		d.completeReset(evt.Reply)
	case chat.OtpVerified:
		d.otp.Resolve(evt.Result)
	default:
		d.log.Warn(fmt.Sprintf("Unhandled event %T", event))
	}
}

// route sends a typed line to whatever currently owns the input.
func (d *Dispatcher) route(ctx context.Context, line string) {
	d.mu.RLock()
	awaitingConfirm := d.awaitingConfirm
	d.mu.RUnlock()

	switch {
	case awaitingConfirm:
		answer := strings.ToLower(strings.TrimSpace(line))
		d.answerReset(ctx, lo.Contains([]string{"y", "yes"}, answer))
	case d.otp.IsOpen():
		d.submitOtp(ctx, line)
	default:
		d.send(ctx, line)
	}
}

// send runs the message path: echo, clear input, typing, exchange. A blank line
// submits the draft left by an example selection.
func (d *Dispatcher) send(ctx context.Context, text string) {
	if strings.TrimSpace(text) == "" {
		text = d.Draft()
	}
	if err := auth.ValidateMessage(text); err != nil {
		d.log.Debug("Ignoring empty message")
		return
	}

	d.transcript.AppendMessage(text, domain.SenderUser)
	d.clearInput()
	d.transcript.ShowTyping()

	session := d.Session()
	go func() {
		reply, err := d.transport.SendMessage(ctx, text, session)
		if err != nil {
			reply = domain.ChatReply{Message: domain.ApologyMessage, Failed: true}
		}
		d.post(ctx, chat.ChatCompleted{Reply: reply})
	}()
}

func (d *Dispatcher) completeChat(reply domain.ChatReply) {
	d.transcript.HideTyping()
	d.renewSession(reply.SessionID)

	if reply.RequireAuth {
		d.otp.Open(reply.Message)
		return
	}
	d.transcript.AppendMessage(reply.Message, domain.SenderBot)
}

func (d *Dispatcher) submitOtp(ctx context.Context, code string) {
	trimmed, ok := d.otp.Submit(code)
	if !ok {
		return
	}

	session := d.Session()
	go func() {
		result, err := d.transport.VerifyOtp(ctx, trimmed, session)
		if err != nil {
			result = domain.OtpResult{Success: false, Message: domain.OtpErrorMessage}
		}
		d.post(ctx, chat.OtpVerified{Result: result})
	}()
}

func (d *Dispatcher) selectExample(index int) {
	if index < 0 || index >= len(d.options.Examples) {
		d.log.Debug("Unknown example", "index", index)
		d.input.ShowNotice(errors.ErrUnknownExample.Error())
		return
	}
	example := d.options.Examples[index]

	d.mu.Lock()
	d.draft = example
	d.mu.Unlock()

	d.input.SetInput(example)
	d.input.FocusInput()
}

func (d *Dispatcher) requestReset(ctx context.Context) {
	if !d.options.ConfirmReset {
		d.reset(ctx)
		return
	}
	d.mu.Lock()
	d.awaitingConfirm = true
	d.mu.Unlock()

	d.input.ShowNotice(domain.ResetConfirmPrompt)
}

func (d *Dispatcher) answerReset(ctx context.Context, confirmed bool) {
	d.mu.Lock()
	d.awaitingConfirm = false
	d.mu.Unlock()

	if confirmed {
		d.reset(ctx)
	}
}

// reset sends the sentinel without waiting for it and rebuilds the transcript with
// exactly one greeting, whatever happens to the sentinel.
func (d *Dispatcher) reset(ctx context.Context) {
	session := d.Session()
	go func() {
		reply, err := d.transport.SendMessage(ctx, domain.ResetSentinel, session)
		if err != nil {
			return
		}
		d.post(ctx, chat.ResetCompleted{Reply: reply})
	}()

	d.transcript.Clear()
	d.transcript.AppendMessage(d.greeting(), domain.SenderBot)
	d.log.Info("Conversation reset")
}

func (d *Dispatcher) completeReset(reply domain.ChatReply) {
	if reply.Failed {
		d.log.Debug("Reset sentinel did not reach the backend")
		return
	}
	d.renewSession(reply.SessionID)
}

func (d *Dispatcher) renewSession(issued string) {
	d.mu.Lock()
	session, changed := d.session.Renew(issued)
	d.session = session
	d.mu.Unlock()

	if !changed {
		return
	}
	if err := d.store.Set(session); err != nil {
		d.log.Warn("Could not persist session", "error", err)
	}
}

func (d *Dispatcher) clearInput() {
	d.mu.Lock()
	d.draft = ""
	d.mu.Unlock()

	d.input.ClearInput()
}

func (d *Dispatcher) greeting() string {
	return lo.Ternary(d.options.Greeting != "", d.options.Greeting, domain.GreetingMessage)
}

func (d *Dispatcher) post(ctx context.Context, event chat.Event) {
	if err := d.Post(ctx, event); err != nil {
		d.log.Debug(fmt.Sprintf("Dropping %T", event), "error", err)
	}
}

// Session returns the session sent with the next exchange.
func (d *Dispatcher) Session() domain.Session {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.session
}

func (d *Dispatcher) Draft() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.draft
}
