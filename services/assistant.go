package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"hr-chat/auth"
	"hr-chat/domain"
	"hr-chat/errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Texts answered by the development assistant.
const (
	StepUpPrompt        = "🔐 This request needs additional verification. Please enter the 6-digit one-time password (OTP) sent to your registered email."
	ResetDoneMessage    = "🧹 All session data reset"
	AuthSuccessMessage  = "✅ Authentication successful!"
	InvalidSessionReply = "Invalid session"
	LeaveBalanceReply   = "You have 12 days of annual leave and 5 days of sick leave remaining."
	LeaveRequestReply   = "Your leave request has been submitted and is pending approval from your manager."
	PendingLeaveReply   = "You have no pending leave requests."
	PolicyReply         = "Eligible employees receive 26 weeks of paid maternity leave. Please check the HR portal for the full policy."
	FallbackReply       = "I can help you with leave balances, company policies, or submitting leave requests."
)

type intent struct {
	keywords  []string
	reply     string
	sensitive bool
}

// Personal data needs a verified session; policy questions do not.
var intents = []intent{
	{keywords: []string{"leave balance", "how many days"}, reply: LeaveBalanceReply, sensitive: true},
	{keywords: []string{"apply for leave", "leave request", "take leave"}, reply: LeaveRequestReply, sensitive: true},
	{keywords: []string{"pending leave", "pending request"}, reply: PendingLeaveReply, sensitive: true},
	{keywords: []string{"policy", "maternity", "paternity"}, reply: PolicyReply},
}

type conversation struct {
	userID  string
	turns   int
	pending string
}

// Assistant is an in-memory HR assistant speaking the chat protocol. It backs the
// development server and the end-to-end tests; it is not the production agent.
// Session ids it hands out are signed tokens wrapping a server-side key.
type Assistant struct {
	mu            sync.Mutex
	log           *slog.Logger
	auth          *AuthService
	tokens        auth.TokenIssuer
	conversations map[string]*conversation
}

func NewAssistant(log *slog.Logger, authService *AuthService, tokens auth.TokenIssuer) *Assistant {
	return &Assistant{
		log:           log,
		auth:          authService,
		tokens:        tokens,
		conversations: make(map[string]*conversation),
	}
}

// Chat answers one message. A missing or unreadable session starts a new conversation
// and the reply carries its id.
func (a *Assistant) Chat(_ context.Context, message string, session domain.Session) (domain.ChatReply, error) {
	sessionID, conv, err := a.resolve(session)
	if err != nil {
		return domain.ChatReply{}, err
	}

	reply := domain.ChatReply{SessionID: sessionID}
	switch message {
	case "debug_auth":
		reply.Message = fmt.Sprintf("User: %s...\nAuthenticated: %t", conv.userID[:8], a.auth.IsAuthenticated(conv.userID))
		return reply, nil
	case domain.ResetSentinel:
		a.reset(conv)
		reply.Message = ResetDoneMessage
		return reply, nil
	}

	a.mu.Lock()
	conv.turns++
	a.mu.Unlock()

	matched, found := lo.Find(intents, func(i intent) bool {
		lower := strings.ToLower(message)
		return lo.SomeBy(i.keywords, func(k string) bool { return strings.Contains(lower, k) })
	})
	if !found {
		reply.Message = FallbackReply
		return reply, nil
	}
	if !matched.sensitive || a.auth.IsAuthenticated(conv.userID) {
		reply.Message = matched.reply
		return reply, nil
	}

	if err = a.auth.Initiate(conv.userID); err != nil {
		return domain.ChatReply{}, err
	}
	a.mu.Lock()
	conv.pending = matched.reply
	a.mu.Unlock()

	reply.Message = StepUpPrompt
	reply.RequireAuth = true
	return reply, nil
}

// VerifyOtp checks a passcode for the session and, once verified, answers the request
// that triggered the challenge.
func (a *Assistant) VerifyOtp(_ context.Context, code string, session domain.Session) (domain.OtpResult, error) {
	conv, ok := a.lookup(session)
	if !ok {
		return domain.OtpResult{Success: false, Message: InvalidSessionReply}, nil
	}

	trimmed, err := auth.ValidateOtpCode(code)
	if err != nil {
		return domain.OtpResult{Success: false, Message: domain.OtpFormatMessage}, nil
	}

	err = a.auth.Verify(conv.userID, trimmed)
	switch {
	case err == nil:
	case stderrors.Is(err, errors.ErrNoPendingAuth):
		return domain.OtpResult{Success: false, Message: "❌ No pending authentication found"}, nil
	case stderrors.Is(err, errors.ErrOtpExpired):
		return domain.OtpResult{Success: false, Message: "❌ OTP has expired. Please try your request again."}, nil
	case stderrors.Is(err, errors.ErrOtpMismatch):
		return domain.OtpResult{Success: false, Message: "❌ Incorrect OTP. Please try again."}, nil
	default:
		return domain.OtpResult{}, err
	}

	a.mu.Lock()
	pending := conv.pending
	conv.pending = ""
	a.mu.Unlock()

	return domain.OtpResult{Success: true, Message: lo.Ternary(pending != "", pending, AuthSuccessMessage)}, nil
}

func (a *Assistant) resolve(session domain.Session) (string, *conversation, error) {
	if conv, ok := a.lookup(session); ok {
		return session.ID, conv, nil
	}

	key := uuid.NewString()
	sessionID, err := a.tokens.Issue(key)
	if err != nil {
		return "", nil, fmt.Errorf("issue session: %w", err)
	}
	conv := &conversation{userID: uuid.NewString()}

	a.mu.Lock()
	a.conversations[key] = conv
	a.mu.Unlock()

	a.log.Info("Session created", "key", key)
	return sessionID, conv, nil
}

func (a *Assistant) lookup(session domain.Session) (*conversation, bool) {
	if session.Empty() {
		return nil, false
	}
	claims, err := a.tokens.Validate(session.ID)
	if err != nil {
		a.log.Debug("Rejected session", "error", err)
		return nil, false
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	conv, ok := a.conversations[claims.SessionKey]
	return conv, ok
}

func (a *Assistant) reset(conv *conversation) {
	a.auth.Clear(conv.userID)

	a.mu.Lock()
	conv.pending = ""
	conv.turns = 0
	a.mu.Unlock()
}
