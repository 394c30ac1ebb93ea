package ports

import (
	"context"

	"caisse/internal/core/domain/model/session"
)

// SessionRepository defines the persistence contract for the single
// terminal session snapshot: the open cart, the current table selection,
// the active server and the selected customer.
type SessionRepository interface {
	// Get rehydrates the session snapshot. When none has been persisted
	// yet, a pristine session is returned.
	Get(ctx context.Context) (*session.Session, error)

	// Save persists the session snapshot, replacing any previous one.
	Save(ctx context.Context, aggregate *session.Session) error
}
