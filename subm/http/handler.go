package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/newmoodle/backend/subm"
)

type SubmHttpHandler struct {
	submSrvc *subm.SubmSrvc
	userRepo subm.UserRepo
}

func NewSubmHttpHandler(submSrvc *subm.SubmSrvc, userRepo subm.UserRepo) *SubmHttpHandler {
	return &SubmHttpHandler{
		submSrvc: submSrvc,
		userRepo: userRepo,
	}
}

func (h *SubmHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Post("/submissions", h.PostSubm)
	r.Get("/submissions", h.GetSubmList)
	r.Get("/submissions/{subm-uuid}", h.GetSubm)
	r.Post("/submissions/{subm-uuid}/grade", h.GradeSubm)
	r.Delete("/submissions/{subm-uuid}", h.DeleteSubm)
}
