package feedback

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrDuplicate is returned by StoreReviewed when feedback for the submission
// already exists.
var ErrDuplicate = errors.New("feedback already exists for submission")

// Repo persists feedback records. StoreReviewed must atomically insert the
// feedback and move the submission to the reviewed status: either both become
// visible or neither does.
type Repo interface {
	GetBySubmission(ctx context.Context, submissionID uuid.UUID) (*Feedback, error)
	StoreReviewed(ctx context.Context, fb Feedback) error
}
