package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"aether/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresRepository persists accepted leads. It is the durable lead sink
// behind the LeadSink interface in the service layer.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute) // Shorter lifetime to avoid stale connections
	db.SetConnMaxIdleTime(2 * time.Minute) // Close idle connections sooner

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// NewFromDB wraps an existing connection (used by tests)
func NewFromDB(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// EnsureSchema creates the leads table when it does not exist yet
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS leads (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT NOT NULL,
			visit_date TEXT NOT NULL DEFAULT '',
			visit_time TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL DEFAULT '',
			received_at TIMESTAMPTZ NOT NULL
		)
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure leads schema: %w", err)
	}
	return nil
}

// SaveLead inserts an accepted lead. Leads are insert-only; identical
// resubmissions are stored as independent rows.
func (r *PostgresRepository) SaveLead(ctx context.Context, lead *model.Lead) error {
	query := `
		INSERT INTO leads (id, name, phone, email, visit_date, visit_time, message, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		lead.ID, lead.Name, lead.Phone, lead.Email,
		lead.VisitDate, lead.VisitTime, lead.Message, lead.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save lead: %w", err)
	}
	return nil
}

// RecentLeads returns the most recently received leads, newest first
func (r *PostgresRepository) RecentLeads(ctx context.Context, limit int) ([]model.Lead, error) {
	query := `
		SELECT id, name, phone, email, visit_date, visit_time, message, received_at
		FROM leads
		ORDER BY received_at DESC
		LIMIT $1
	`
	var leads []model.Lead
	if err := r.db.SelectContext(ctx, &leads, query, limit); err != nil {
		return nil, fmt.Errorf("failed to fetch leads: %w", err)
	}
	return leads, nil
}
