package subm

import (
	"context"

	"github.com/google/uuid"
	"github.com/newmoodle/backend/logger"
)

// DeleteSubmission removes the stored file and then the submission row.
// The row survives if the object store delete fails, so the operation can
// be retried without leaking orphaned files.
func (s *SubmSrvc) DeleteSubmission(ctx context.Context, submissionID uuid.UUID, studentUUID uuid.UUID) error {
	log := logger.FromContext(ctx)

	subm, err := s.submRepo.Get(ctx, submissionID)
	if err != nil {
		return ErrInternalSE().SetDebug(err)
	}
	if subm == nil {
		return ErrSubmissionNotFound()
	}
	if subm.StudentUUID != studentUUID {
		return ErrNotSubmissionOwner()
	}

	err = s.store.Delete(ctx, subm.FileKey)
	if err != nil {
		return ErrInternalSE().SetDebug(err)
	}

	err = s.submRepo.Delete(ctx, submissionID)
	if err != nil {
		return ErrInternalSE().SetDebug(err)
	}

	log.Info("submission deleted",
		"submission_id", submissionID,
		"file_key", subm.FileKey)

	return nil
}
