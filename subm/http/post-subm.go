package http

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/newmoodle/backend/httpjson"
	"github.com/newmoodle/backend/logger"
	"github.com/newmoodle/backend/subm"
)

const maxUploadBytes = 20 << 20 // 20 MiB

func (h *SubmHttpHandler) PostSubm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	principal, err := h.principal(r)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	assignmentUuid, err := uuid.Parse(r.FormValue("assignment_uuid"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		httpjson.HandleError(log, w, subm.ErrInternalSE().SetDebug(err))
		return
	}

	created, err := h.submSrvc.CreateSubmission(r.Context(), subm.CreateSubmissionParams{
		StudentUUID:    principal.UUID,
		AssignmentUUID: assignmentUuid,
		Filename:       fileHeader.Filename,
		Content:        content,
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapSubm(*created))
}
