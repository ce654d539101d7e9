package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/newmoodle/backend/httpjson"
	"github.com/newmoodle/backend/logger"
	"github.com/newmoodle/backend/subm"
)

func (h *SubmHttpHandler) DeleteSubm(w http.ResponseWriter, r *http.Request) {
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

	err = h.submSrvc.DeleteSubmission(r.Context(), submUuid, principal.UUID)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, struct{}{})
}
