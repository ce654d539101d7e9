package feedback

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/newmoodle/backend/subm"
)

// InMemRepo mirrors the transactional behavior of the postgres repo for
// tests: the feedback insert and the status flip happen under one lock.
type InMemRepo struct {
	mu       sync.RWMutex
	bySubm   map[uuid.UUID]Feedback
	submRepo *subm.InMemSubmRepo
}

func NewInMemRepo(submRepo *subm.InMemSubmRepo) *InMemRepo {
	return &InMemRepo{
		bySubm:   make(map[uuid.UUID]Feedback),
		submRepo: submRepo,
	}
}

func (r *InMemRepo) GetBySubmission(ctx context.Context, submissionID uuid.UUID) (*Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fb, ok := r.bySubm[submissionID]
	if !ok {
		return nil, nil
	}
	return &fb, nil
}

func (r *InMemRepo) StoreReviewed(ctx context.Context, fb Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bySubm[fb.SubmissionUUID]; ok {
		return ErrDuplicate
	}
	r.bySubm[fb.SubmissionUUID] = fb
	r.submRepo.SetStatusForReview(fb.SubmissionUUID)
	return nil
}
