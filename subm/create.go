package subm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/newmoodle/backend/logger"
	"github.com/newmoodle/backend/objstore"
)

type CreateSubmissionParams struct {
	StudentUUID    uuid.UUID
	AssignmentUUID uuid.UUID
	Filename       string
	Content        []byte
}

// CreateSubmission uploads the student's file to the object store and
// records a pending submission referencing it.
func (s *SubmSrvc) CreateSubmission(ctx context.Context, p CreateSubmissionParams) (*Submission, error) {
	log := logger.FromContext(ctx)

	if p.Filename == "" {
		return nil, ErrUploadFilenameMissing()
	}
	if len(p.Content) == 0 {
		return nil, ErrUploadEmpty()
	}

	student, err := s.userRepo.Get(ctx, p.StudentUUID)
	if err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}
	if student == nil {
		return nil, ErrUserNotFound()
	}
	if student.Role != RoleStudent {
		return nil, ErrNotAStudent()
	}

	assignment, err := s.assignRepo.Get(ctx, p.AssignmentUUID)
	if err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}
	if assignment == nil {
		return nil, ErrAssignmentNotFound()
	}

	submUuid := uuid.New()
	key := fmt.Sprintf("submissions/%s_%s", submUuid, p.Filename)

	mediaType := objstore.SniffMimeType(p.Filename, p.Content)
	err = s.store.Upload(ctx, key, p.Content, mediaType)
	if err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}

	subm := Submission{
		UUID:           submUuid,
		AssignmentUUID: p.AssignmentUUID,
		StudentUUID:    p.StudentUUID,
		FileKey:        key,
		Status:         StatusPending,
		CreatedAt:      time.Now(),
	}
	err = s.submRepo.Store(ctx, subm)
	if err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}

	log.Info("submission created",
		"submission_id", subm.UUID,
		"assignment_id", p.AssignmentUUID,
		"file_key", key)

	return &subm, nil
}
