package subm

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InMemSubmRepo is an in-memory SubmRepo for tests and local development.
type InMemSubmRepo struct {
	mu    sync.RWMutex
	subms map[uuid.UUID]Submission
}

func NewInMemSubmRepo() *InMemSubmRepo {
	return &InMemSubmRepo{subms: make(map[uuid.UUID]Submission)}
}

func (r *InMemSubmRepo) Store(ctx context.Context, subm Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subms[subm.UUID] = subm
	return nil
}

func (r *InMemSubmRepo) Get(ctx context.Context, id uuid.UUID) (*Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if subm, ok := r.subms[id]; ok {
		return &subm, nil
	}
	return nil, nil
}

func (r *InMemSubmRepo) ListByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []Submission
	for _, subm := range r.subms {
		if subm.AssignmentUUID == assignmentID {
			res = append(res, subm)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.Before(res[j].CreatedAt)
	})
	return res, nil
}

func (r *InMemSubmRepo) Update(ctx context.Context, subm Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subms[subm.UUID] = subm
	return nil
}

func (r *InMemSubmRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subms, id)
	return nil
}

// SetStatusForReview flips a pending submission to reviewed under the repo
// lock. Exported for the feedback package's in-memory repo, which mirrors the
// transactional store-and-review. Graded submissions keep their status.
func (r *InMemSubmRepo) SetStatusForReview(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if subm, ok := r.subms[id]; ok && subm.Status == StatusPending {
		subm.Status = StatusReviewed
		r.subms[id] = subm
	}
}

// InMemAssignmentRepo is an in-memory AssignmentRepo.
type InMemAssignmentRepo struct {
	mu          sync.RWMutex
	assignments map[uuid.UUID]Assignment
}

func NewInMemAssignmentRepo() *InMemAssignmentRepo {
	return &InMemAssignmentRepo{assignments: make(map[uuid.UUID]Assignment)}
}

func (r *InMemAssignmentRepo) Store(ctx context.Context, assignment Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assignments[assignment.UUID] = assignment
	return nil
}

func (r *InMemAssignmentRepo) Get(ctx context.Context, id uuid.UUID) (*Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if assignment, ok := r.assignments[id]; ok {
		return &assignment, nil
	}
	return nil, nil
}

// InMemUserRepo is an in-memory UserRepo.
type InMemUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]User
}

func NewInMemUserRepo() *InMemUserRepo {
	return &InMemUserRepo{users: make(map[uuid.UUID]User)}
}

func (r *InMemUserRepo) Store(ctx context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.UUID] = user
	return nil
}

func (r *InMemUserRepo) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if user, ok := r.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}
