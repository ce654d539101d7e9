package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/newmoodle/backend/httpjson"
	"github.com/newmoodle/backend/logger"
	"github.com/newmoodle/backend/subm"
)

func (h *SubmHttpHandler) GetSubm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if _, err := h.principal(r); err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	submUuid, err := uuid.Parse(chi.URLParam(r, "subm-uuid"))
	if err != nil {
		httpjson.HandleError(log, w, subm.ErrSubmissionNotFound())
		return
	}

	found, err := h.submSrvc.GetSubmission(r.Context(), submUuid)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapSubm(*found))
}

func (h *SubmHttpHandler) GetSubmList(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if _, err := h.principal(r); err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	assignmentUuid, err := uuid.Parse(r.URL.Query().Get("assignment_id"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	subms, err := h.submSrvc.ListSubmissions(r.Context(), assignmentUuid)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	views := make([]SubmView, 0, len(subms))
	for _, s := range subms {
		views = append(views, mapSubm(s))
	}
	httpjson.WriteSuccessJson(w, views)
}
