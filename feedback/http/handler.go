package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/newmoodle/backend/feedback"
	"github.com/newmoodle/backend/httpjson"
	"github.com/newmoodle/backend/logger"
	"github.com/newmoodle/backend/subm"
)

type FeedbackHttpHandler struct {
	feedbackSrvc *feedback.FeedbackSrvc
	userRepo     subm.UserRepo
}

func NewFeedbackHttpHandler(feedbackSrvc *feedback.FeedbackSrvc, userRepo subm.UserRepo) *FeedbackHttpHandler {
	return &FeedbackHttpHandler{
		feedbackSrvc: feedbackSrvc,
		userRepo:     userRepo,
	}
}

func (h *FeedbackHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Post("/feedback/{subm-uuid}", h.PostFeedback)
	r.Get("/feedback/{subm-uuid}", h.GetFeedback)
}

type FeedbackView struct {
	UUID           string    `json:"uuid"`
	SubmissionUUID string    `json:"submission_uuid"`
	TeacherUUID    string    `json:"teacher_uuid"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

func mapFeedback(fb feedback.Feedback) FeedbackView {
	return FeedbackView{
		UUID:           fb.UUID.String(),
		SubmissionUUID: fb.SubmissionUUID.String(),
		TeacherUUID:    fb.TeacherUUID.String(),
		Content:        fb.Content,
		CreatedAt:      fb.CreatedAt,
	}
}

func (h *FeedbackHttpHandler) principal(r *http.Request) (*subm.User, error) {
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

func (h *FeedbackHttpHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
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

	lang, err := feedback.ParseLanguage(r.URL.Query().Get("language"))
	if err != nil {
		httpjson.HandleError(log, w, feedback.ErrInvalidLanguage(r.URL.Query().Get("language")))
		return
	}

	fb, err := h.feedbackSrvc.GenerateFeedback(r.Context(), submUuid, *principal, lang)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapFeedback(*fb))
}

func (h *FeedbackHttpHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
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

	fb, err := h.feedbackSrvc.GetFeedback(r.Context(), submUuid)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapFeedback(*fb))
}
