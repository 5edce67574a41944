package repository

import (
	"context"
	"errors"

	"github.com/SaiSriramKurapati/chatBot-backend/internal/models"
)

// ErrNotFound is returned when no message matches the requested id or range.
var ErrNotFound = errors.New("message not found")

// MessageRepository defines message data access methods.
//
// Ids are assigned by the store on Create: strictly increasing, race-free
// under concurrent creates, and never reused. Callers always receive copies,
// never aliases into store state.
type MessageRepository interface {
	// Create persists a new message and returns it with its assigned id.
	Create(ctx context.Context, content, response string) (*models.Message, error)
	// Get returns the message with the given id, or ErrNotFound.
	Get(ctx context.Context, id int64) (*models.Message, error)
	// List returns messages ordered by id ascending, skipping the first skip
	// records and returning at most limit.
	List(ctx context.Context, skip, limit int) ([]*models.Message, error)
	// Update replaces content and response of an existing message in place.
	// Returns ErrNotFound if the id does not exist.
	Update(ctx context.Context, id int64, content, response string) (*models.Message, error)
	// DeleteFrom removes every message with id >= the given id in one atomic
	// statement and returns the number deleted. Zero is not an error here;
	// the service layer maps it to ErrNotFound.
	DeleteFrom(ctx context.Context, id int64) (int64, error)
	// Ping reports whether the underlying store is reachable.
	Ping(ctx context.Context) error
}

// Store couples message access with the lifecycle operations the server
// wires at startup.
type Store interface {
	MessageRepository
	RunMigrations(migrationSQL string) error
	Close() error
}
