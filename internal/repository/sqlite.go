package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/SaiSriramKurapati/chatBot-backend/internal/models"
)

// SQLiteRepository implements MessageRepository using SQLite
type SQLiteRepository struct {
	db *sqlx.DB
}

// NewSQLiteRepository creates a new SQLite repository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Pragmas go in the DSN so every pooled connection gets them: WAL lets
	// readers proceed during writes, busy_timeout queues concurrent appends
	// instead of failing them.
	dsn := dbPath
	if dbPath != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", dbPath)
	}

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	// An in-memory database exists per connection; keep the pool at one so
	// every query sees the same database.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// RunMigrations runs database migrations
func (r *SQLiteRepository) RunMigrations(migrationSQL string) error {
	_, err := r.db.Exec(migrationSQL)
	return err
}

// Ping verifies the database is reachable
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLiteRepository) Create(ctx context.Context, content, response string) (*models.Message, error) {
	var id int64
	err := instrumentQuery("message_create", func() error {
		res, err := r.db.ExecContext(ctx,
			`INSERT INTO messages (content, response) VALUES (?, ?)`,
			content, response,
		)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return &models.Message{ID: id, Content: content, Response: response}, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id int64) (*models.Message, error) {
	var m models.Message
	err := instrumentQuery("message_get", func() error {
		return r.db.GetContext(ctx, &m, `SELECT * FROM messages WHERE id = ?`, id)
	})
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *SQLiteRepository) List(ctx context.Context, skip, limit int) ([]*models.Message, error) {
	messages := []*models.Message{}
	err := instrumentQuery("message_list", func() error {
		query := `SELECT * FROM messages ORDER BY id ASC LIMIT ? OFFSET ?`
		return r.db.SelectContext(ctx, &messages, query, limit, skip)
	})
	return messages, err
}

func (r *SQLiteRepository) Update(ctx context.Context, id int64, content, response string) (*models.Message, error) {
	var affected int64
	err := instrumentQuery("message_update", func() error {
		res, err := r.db.ExecContext(ctx,
			`UPDATE messages SET content = ?, response = ? WHERE id = ?`,
			content, response, id,
		)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update message: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return &models.Message{ID: id, Content: content, Response: response}, nil
}

func (r *SQLiteRepository) DeleteFrom(ctx context.Context, id int64) (int64, error) {
	var deleted int64
	err := instrumentQuery("message_delete_from", func() error {
		res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id >= ?`, id)
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
