package subm

import (
	"context"

	"github.com/google/uuid"
	"github.com/newmoodle/backend/logger"
)

type GradeSubmissionParams struct {
	SubmissionUUID uuid.UUID
	TeacherUUID    uuid.UUID
	Grade          int
}

// GradeSubmission records a grade on behalf of the assignment's teacher and
// marks the submission graded.
func (s *SubmSrvc) GradeSubmission(ctx context.Context, p GradeSubmissionParams) (*Submission, error) {
	log := logger.FromContext(ctx)

	if p.Grade < 0 || p.Grade > 100 {
		return nil, ErrGradeOutOfRange()
	}

	subm, err := s.submRepo.Get(ctx, p.SubmissionUUID)
	if err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}
	if subm == nil {
		return nil, ErrSubmissionNotFound()
	}

	assignment, err := s.assignRepo.Get(ctx, subm.AssignmentUUID)
	if err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}
	if assignment == nil {
		return nil, ErrAssignmentNotFound()
	}
	if assignment.TeacherUUID != p.TeacherUUID {
		return nil, ErrNotAssignmentTeacher()
	}

	grade := p.Grade
	subm.Grade = &grade
	subm.Status = StatusGraded
	err = s.submRepo.Update(ctx, *subm)
	if err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}

	log.Info("submission graded",
		"submission_id", subm.UUID,
		"grade", grade)

	return subm, nil
}
