package subm

import (
	"github.com/newmoodle/backend/objstore"
)

// SubmSrvc implements the submission lifecycle: students upload files,
// teachers grade them, and the review pipeline reads them back.
type SubmSrvc struct {
	submRepo   SubmRepo
	assignRepo AssignmentRepo
	userRepo   UserRepo
	store      objstore.Store
}

func NewSubmSrvc(
	submRepo SubmRepo,
	assignRepo AssignmentRepo,
	userRepo UserRepo,
	store objstore.Store,
) *SubmSrvc {
	return &SubmSrvc{
		submRepo:   submRepo,
		assignRepo: assignRepo,
		userRepo:   userRepo,
		store:      store,
	}
}
