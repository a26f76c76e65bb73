package repositories

import (
	stderrors "errors"
	"fmt"
	"hr-chat/domain"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// SessionKey is the single key the client persists.
const SessionKey = "session_id"

// SessionRepository keeps the session identifier in BadgerDB so it survives restarts.
// The value is stored as raw bytes: it is an opaque bearer token and is never parsed.
type SessionRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSessionRepository(db *badger.DB, log *slog.Logger) SessionRepository {
	return SessionRepository{db: db, log: log}
}

// Get returns the persisted session, or the zero Session when none was ever stored.
func (s SessionRepository) Get() (domain.Session, error) {
	var id string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(SessionKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id = string(val)
			return nil
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Session{}, nil
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("read %s: %w", SessionKey, err)
	}
	return domain.Session{ID: id}, nil
}

// Set overwrites the persisted session. Empty ids are ignored so a reply without
// a session never erases the stored one.
func (s SessionRepository) Set(session domain.Session) error {
	if session.Empty() {
		return nil
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(SessionKey), []byte(session.ID))
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", SessionKey, err)
	}
	s.log.Debug("Session persisted")
	return nil
}
