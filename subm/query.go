package subm

import (
	"context"

	"github.com/google/uuid"
)

func (s *SubmSrvc) GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error) {
	subm, err := s.submRepo.Get(ctx, id)
	if err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}
	if subm == nil {
		return nil, ErrSubmissionNotFound()
	}
	return subm, nil
}

func (s *SubmSrvc) ListSubmissions(ctx context.Context, assignmentID uuid.UUID) ([]Submission, error) {
	assignment, err := s.assignRepo.Get(ctx, assignmentID)
	if err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}
	if assignment == nil {
		return nil, ErrAssignmentNotFound()
	}

	subms, err := s.submRepo.ListByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}
	return subms, nil
}
