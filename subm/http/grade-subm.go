package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/newmoodle/backend/httpjson"
	"github.com/newmoodle/backend/logger"
	"github.com/newmoodle/backend/subm"
)

func (h *SubmHttpHandler) GradeSubm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	principal, err := h.principal(r)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	submUuid, err := uuid.Parse(chi.URLParam(r, "subm-uuid"))
	if err != nil {
		httpjson.HandleError(log, w, subm.ErrSubmissionNotFound())
		return
	}

	type gradeRequest struct {
		Grade int `json:"grade"`
	}
	var request gradeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	graded, err := h.submSrvc.GradeSubmission(r.Context(), subm.GradeSubmissionParams{
		SubmissionUUID: submUuid,
		TeacherUUID:    principal.UUID,
		Grade:          request.Grade,
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapSubm(*graded))
}
