package feedback

import (
	"github.com/newmoodle/backend/extract"
	"github.com/newmoodle/backend/llm"
	"github.com/newmoodle/backend/objstore"
	"github.com/newmoodle/backend/subm"
)

// FeedbackSrvc orchestrates feedback generation: it extracts the submission's
// content, assembles the review prompt and persists the generated feedback
// together with the submission's status transition.
type FeedbackSrvc struct {
	feedbackRepo Repo
	submRepo     subm.SubmRepo
	assignRepo   subm.AssignmentRepo
	store        objstore.Store
	generator    llm.Generator

	// recognizer is only consulted when ocrMode is on: image submissions are
	// then turned into text through OCR instead of being sent to the vision
	// model.
	recognizer extract.TextRecognizer
	ocrMode    bool
}

func NewFeedbackSrvc(
	feedbackRepo Repo,
	submRepo subm.SubmRepo,
	assignRepo subm.AssignmentRepo,
	store objstore.Store,
	generator llm.Generator,
	opts ...Option,
) *FeedbackSrvc {
	s := &FeedbackSrvc{
		feedbackRepo: feedbackRepo,
		submRepo:     submRepo,
		assignRepo:   assignRepo,
		store:        store,
		generator:    generator,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type Option func(*FeedbackSrvc)

// WithOCR routes image submissions through the OCR provider.
func WithOCR(recognizer extract.TextRecognizer) Option {
	return func(s *FeedbackSrvc) {
		s.recognizer = recognizer
		s.ocrMode = true
	}
}
