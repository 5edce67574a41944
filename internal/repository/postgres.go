package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/SaiSriramKurapati/chatBot-backend/internal/models"
)

// PostgresRepository implements MessageRepository using PostgreSQL
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(connectionString string) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// RunMigrations runs database migrations
func (r *PostgresRepository) RunMigrations(migrationSQL string) error {
	_, err := r.db.Exec(migrationSQL)
	return err
}

// Ping verifies the database is reachable
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *PostgresRepository) Create(ctx context.Context, content, response string) (*models.Message, error) {
	var m models.Message
	err := instrumentQuery("message_create", func() error {
		query := `
			INSERT INTO messages (content, response)
			VALUES ($1, $2)
			RETURNING id, content, response
		`
		return r.db.GetContext(ctx, &m, query, content, response)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return &m, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Message, error) {
	var m models.Message
	err := instrumentQuery("message_get", func() error {
		return r.db.GetContext(ctx, &m, `SELECT * FROM messages WHERE id = $1`, id)
	})
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *PostgresRepository) List(ctx context.Context, skip, limit int) ([]*models.Message, error) {
	messages := []*models.Message{}
	err := instrumentQuery("message_list", func() error {
		query := `SELECT * FROM messages ORDER BY id ASC LIMIT $1 OFFSET $2`
		return r.db.SelectContext(ctx, &messages, query, limit, skip)
	})
	return messages, err
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, content, response string) (*models.Message, error) {
	var m models.Message
	err := instrumentQuery("message_update", func() error {
		query := `
			UPDATE messages
			SET content = $1, response = $2
			WHERE id = $3
			RETURNING id, content, response
		`
		return r.db.GetContext(ctx, &m, query, content, response, id)
	})
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update message: %w", err)
	}

	return &m, nil
}

func (r *PostgresRepository) DeleteFrom(ctx context.Context, id int64) (int64, error) {
	var deleted int64
	err := instrumentQuery("message_delete_from", func() error {
		res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id >= $1`, id)
		if err != nil {
			return err
		}
		deleted, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete messages: %w", err)
	}

	return deleted, nil
}
