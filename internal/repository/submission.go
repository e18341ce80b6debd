package repository

import (
	"context"
	"fmt"

	"vehicle/finder/internal/domain/event"

	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type SubmissionRepository interface {
	EnsureSchema(ctx context.Context) error
	SaveSubmission(ctx context.Context, e *event.SubmissionSettled) error
	Record(ctx context.Context, e *event.SubmissionSettled) error
}

type submissionRepository struct {
	db DB
}

func NewSubmissionRepository(db DB) SubmissionRepository {
	return &submissionRepository{
		db: db,
	}
}

const createSubmissionsTable = `
	CREATE TABLE IF NOT EXISTS submissions (
		id              UUID PRIMARY KEY,
		vehicle_type    TEXT NOT NULL,
		budget          TEXT NOT NULL,
		vehicle_subtype TEXT NOT NULL,
		status          TEXT NOT NULL,
		result_count    INTEGER NOT NULL,
		error           TEXT,
		started_at      TIMESTAMPTZ NOT NULL,
		duration_ms     BIGINT NOT NULL,
		data            JSONB NOT NULL
	)`

func (r *submissionRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createSubmissionsTable); err != nil {
		return fmt.Errorf("failed to create submissions table: %w", err)
	}
	return nil
}

func (r *submissionRepository) SaveSubmission(ctx context.Context, e *event.SubmissionSettled) error {
	data, err := e.EventValue()
	if err != nil {
		return fmt.Errorf("failed to serialize submission: %w", err)
	}

	query := `
	INSERT INTO submissions (id, vehicle_type, budget, vehicle_subtype, status, result_count, error, started_at, duration_ms, data)
	VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10)
	ON CONFLICT (id) DO NOTHING`
	_, err = r.db.Exec(ctx, query,
		e.ID,
		e.Payload.VehicleType.String(),
		e.Payload.Budget,
		e.Payload.VehicleSubtype,
		e.Status,
		e.ResultCount,
		e.Error,
		e.StartedAt,
		e.DurationMS,
		string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to save submission %s: %w", e.ID, err)
	}

	return nil
}

// Record lets the repository act as a submission recorder.
func (r *submissionRepository) Record(ctx context.Context, e *event.SubmissionSettled) error {
	return r.SaveSubmission(ctx, e)
}
