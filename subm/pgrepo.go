package subm

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgSubmRepo persists submissions in postgres.
type PgSubmRepo struct {
	pool *pgxpool.Pool
}

func NewPgSubmRepo(pool *pgxpool.Pool) *PgSubmRepo {
	return &PgSubmRepo{pool: pool}
}

func (r *PgSubmRepo) Store(ctx context.Context, subm Submission) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO submissions (uuid, assignment_uuid, student_uuid, file_key, status, grade, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		subm.UUID,
		subm.AssignmentUUID,
		subm.StudentUUID,
		subm.FileKey,
		subm.Status,
		subm.Grade,
		subm.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

func (r *PgSubmRepo) Get(ctx context.Context, id uuid.UUID) (*Submission, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT uuid, assignment_uuid, student_uuid, file_key, status, grade, created_at
		FROM submissions
		WHERE uuid = $1
	`, id)

	var subm Submission
	err := row.Scan(
		&subm.UUID,
		&subm.AssignmentUUID,
		&subm.StudentUUID,
		&subm.FileKey,
		&subm.Status,
		&subm.Grade,
		&subm.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select submission: %w", err)
	}
	return &subm, nil
}

func (r *PgSubmRepo) ListByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]Submission, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT uuid, assignment_uuid, student_uuid, file_key, status, grade, created_at
		FROM submissions
		WHERE assignment_uuid = $1
		ORDER BY created_at
	`, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to select submissions: %w", err)
	}
	defer rows.Close()

	var subms []Submission
	for rows.Next() {
		var subm Submission
		err := rows.Scan(
			&subm.UUID,
			&subm.AssignmentUUID,
			&subm.StudentUUID,
			&subm.FileKey,
			&subm.Status,
			&subm.Grade,
			&subm.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		subms = append(subms, subm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return subms, nil
}

func (r *PgSubmRepo) Update(ctx context.Context, subm Submission) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE submissions
		SET status = $2, grade = $3
		WHERE uuid = $1
	`, subm.UUID, subm.Status, subm.Grade)
	if err != nil {
		return fmt.Errorf("failed to update submission: %w", err)
	}
	return nil
}

func (r *PgSubmRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM submissions WHERE uuid = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}
	return nil
}

// PgAssignmentRepo persists assignments in postgres.
type PgAssignmentRepo struct {
	pool *pgxpool.Pool
}

func NewPgAssignmentRepo(pool *pgxpool.Pool) *PgAssignmentRepo {
	return &PgAssignmentRepo{pool: pool}
}

func (r *PgAssignmentRepo) Store(ctx context.Context, assignment Assignment) error {
	var fileKey *string
	if assignment.FileKey != "" {
		fileKey = &assignment.FileKey
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO assignments (uuid, title, description, due_date, file_key, section_uuid, teacher_uuid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		assignment.UUID,
		assignment.Title,
		assignment.Description,
		assignment.DueDate,
		fileKey,
		assignment.SectionUUID,
		assignment.TeacherUUID,
		assignment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}
	return nil
}

func (r *PgAssignmentRepo) Get(ctx context.Context, id uuid.UUID) (*Assignment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT uuid, title, description, due_date, file_key, section_uuid, teacher_uuid, created_at
		FROM assignments
		WHERE uuid = $1
	`, id)

	var assignment Assignment
	var fileKey *string
	err := row.Scan(
		&assignment.UUID,
		&assignment.Title,
		&assignment.Description,
		&assignment.DueDate,
		&fileKey,
		&assignment.SectionUUID,
		&assignment.TeacherUUID,
		&assignment.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select assignment: %w", err)
	}
	if fileKey != nil {
		assignment.FileKey = *fileKey
	}
	return &assignment, nil
}

// PgUserRepo persists users in postgres.
type PgUserRepo struct {
	pool *pgxpool.Pool
}

func NewPgUserRepo(pool *pgxpool.Pool) *PgUserRepo {
	return &PgUserRepo{pool: pool}
}

func (r *PgUserRepo) Store(ctx context.Context, user User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (uuid, firstname, lastname, email, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		user.UUID,
		user.Firstname,
		user.Lastname,
		user.Email,
		user.Role,
		user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *PgUserRepo) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT uuid, firstname, lastname, email, role, created_at
		FROM users
		WHERE uuid = $1
	`, id)

	var user User
	err := row.Scan(
		&user.UUID,
		&user.Firstname,
		&user.Lastname,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	return &user, nil
}
