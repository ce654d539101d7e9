package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/newmoodle/backend/subm"
)

// principal resolves the acting user from the X-User-Uuid header. Session
// handling lives in the gateway in front of this service; by the time a
// request reaches us the header is trusted.
func (h *SubmHttpHandler) principal(r *http.Request) (*subm.User, error) {
	header := r.Header.Get("X-User-Uuid")
	if header == "" {
		return nil, subm.ErrMissingUserHeader()
	}
	userUuid, err := uuid.Parse(header)
	if err != nil {
		return nil, subm.ErrInvalidUserUuid()
	}
	user, err := h.userRepo.Get(r.Context(), userUuid)
	if err != nil {
		return nil, subm.ErrInternalSE().SetDebug(err)
	}
	if user == nil {
		return nil, subm.ErrUserNotFound()
	}
	return user, nil
}

type SubmView struct {
	UUID           string    `json:"uuid"`
	AssignmentUUID string    `json:"assignment_uuid"`
	StudentUUID    string    `json:"student_uuid"`
	FileKey        string    `json:"file_key"`
	Status         string    `json:"status"`
	Grade          *int      `json:"grade"`
	CreatedAt      time.Time `json:"created_at"`
}

func mapSubm(s subm.Submission) SubmView {
	return SubmView{
		UUID:           s.UUID.String(),
		AssignmentUUID: s.AssignmentUUID.String(),
		StudentUUID:    s.StudentUUID.String(),
		FileKey:        s.FileKey,
		Status:         string(s.Status),
		Grade:          s.Grade,
		CreatedAt:      s.CreatedAt,
	}
}
