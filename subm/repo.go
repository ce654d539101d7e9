package subm

import (
	"context"

	"github.com/google/uuid"
)

// Repositories return (nil, nil) when the row does not exist; services turn
// that into the matching not-found error.

type SubmRepo interface {
	Store(ctx context.Context, subm Submission) error
	Get(ctx context.Context, id uuid.UUID) (*Submission, error)
	ListByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]Submission, error)
	Update(ctx context.Context, subm Submission) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AssignmentRepo interface {
	Store(ctx context.Context, assignment Assignment) error
	Get(ctx context.Context, id uuid.UUID) (*Assignment, error)
}

type UserRepo interface {
	Store(ctx context.Context, user User) error
	Get(ctx context.Context, id uuid.UUID) (*User, error)
}
