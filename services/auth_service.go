package services

import (
	"fmt"
	"hr-chat/auth"
	"hr-chat/errors"
	"log/slog"
	"sync"
	"time"
)

// DefaultOtpTTL is how long an issued passcode stays valid.
const DefaultOtpTTL = time.Minute

// OtpNotifier delivers a freshly generated passcode to the user out of band.
type OtpNotifier func(userID, code string)

type pendingOtp struct {
	hash      string
	expiresAt time.Time
}

// AuthService is the backend side of the step-up challenge: it issues passcodes,
// keeps only their Argon2id hash, and remembers which users passed verification.
type AuthService struct {
	mu            sync.Mutex
	log           *slog.Logger
	ttl           time.Duration
	params        auth.HashParams
	notify        OtpNotifier
	now           func() time.Time
	authenticated map[string]bool
	pending       map[string]pendingOtp
}

func NewAuthService(log *slog.Logger, ttl time.Duration, notify OtpNotifier) *AuthService {
	if notify == nil {
		notify = func(userID, code string) {
			log.Info("[DEV MODE] OTP issued", "user", userID, "otp", code)
		}
	}
	return &AuthService{
		log:           log,
		ttl:           ttl,
		params:        auth.DefaultHashParams,
		notify:        notify,
		now:           time.Now,
		authenticated: make(map[string]bool),
		pending:       make(map[string]pendingOtp),
	}
}

// WithHashParams replaces the Argon2id costs used for passcodes issued from now on.
// Pending passcodes keep verifying with the costs they were hashed with.
func (s *AuthService) WithHashParams(params auth.HashParams) *AuthService {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params = params
	return s
}

func (s *AuthService) IsAuthenticated(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated[userID]
}

// Initiate issues a new passcode for the user, replacing any previous one.
func (s *AuthService) Initiate(userID string) error {
	code, err := auth.GenerateOtp()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	hash, err := auth.HashOtp(userID, code, s.params)
	if err != nil {
		return fmt.Errorf("hash otp: %w", err)
	}

	s.mu.Lock()
	s.pending[userID] = pendingOtp{hash: hash, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	s.notify(userID, code)
	return nil
}

// Verify checks a passcode against the pending one. An expired passcode is discarded;
// a wrong one stays pending so the user can retry.
func (s *AuthService) Verify(userID, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, ok := s.pending[userID]
	if !ok {
		return errors.ErrNoPendingAuth
	}
	if s.now().After(pending.expiresAt) {
		delete(s.pending, userID)
		return errors.ErrOtpExpired
	}

	match, err := auth.CompareOtp(userID, code, pending.hash)
	if err != nil {
		return fmt.Errorf("compare otp: %w", err)
	}
	if !match {
		return errors.ErrOtpMismatch
	}

	delete(s.pending, userID)
	s.authenticated[userID] = true
	s.log.Debug("User authenticated", "user", userID)
	return nil
}

// Clear forgets the authentication and any pending passcode of the user.
func (s *AuthService) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.authenticated, userID)
	delete(s.pending, userID)
}
