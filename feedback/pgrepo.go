package feedback

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/newmoodle/backend/subm"
)

type PgRepo struct {
	pool *pgxpool.Pool
}

func NewPgRepo(pool *pgxpool.Pool) *PgRepo {
	return &PgRepo{pool: pool}
}

func (r *PgRepo) GetBySubmission(ctx context.Context, submissionID uuid.UUID) (*Feedback, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT uuid, submission_uuid, teacher_uuid, content, created_at
		FROM feedbacks
		WHERE submission_uuid = $1
	`, submissionID)

	var fb Feedback
	err := row.Scan(
		&fb.UUID,
		&fb.SubmissionUUID,
		&fb.TeacherUUID,
		&fb.Content,
		&fb.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select feedback: %w", err)
	}
	return &fb, nil
}

// StoreReviewed inserts the feedback and flips the submission status in one
// transaction. The unique constraint on submission_uuid turns a concurrent
// double generation into ErrDuplicate instead of a second feedback row. Only
// pending submissions transition; a submission graded before feedback
// generation keeps its graded status.
func (r *PgRepo) StoreReviewed(ctx context.Context, fb Feedback) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO feedbacks (uuid, submission_uuid, teacher_uuid, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`,
		fb.UUID,
		fb.SubmissionUUID,
		fb.TeacherUUID,
		fb.Content,
		fb.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert feedback: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE submissions
		SET status = $2
		WHERE uuid = $1 AND status = $3
	`, fb.SubmissionUUID, subm.StatusReviewed, subm.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to update submission status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
