package feedback

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/newmoodle/backend/extract"
	"github.com/newmoodle/backend/llm"
	"github.com/newmoodle/backend/logger"
	"github.com/newmoodle/backend/subm"
)

// GenerateFeedback runs the review pipeline for one submission and returns
// the persisted feedback. On success the submission moves from pending to
// reviewed together with the feedback insert. Any failure before that point
// leaves the submission untouched.
func (s *FeedbackSrvc) GenerateFeedback(
	ctx context.Context,
	submissionID uuid.UUID,
	teacher subm.User,
	lang Language,
) (*Feedback, error) {
	ctx = logger.WithSubmission(ctx, submissionID.String())
	log := logger.FromContext(ctx)

	if lang.Name() == "" {
		return nil, ErrInvalidLanguage(string(lang))
	}

	submission, err := s.submRepo.Get(ctx, submissionID)
	if err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}
	if submission == nil {
		return nil, subm.ErrSubmissionNotFound()
	}
	if submission.AssignmentUUID == uuid.Nil {
		return nil, ErrSubmissionNotLinked()
	}
	if submission.FileKey == "" {
		return nil, ErrSubmissionHasNoFile()
	}

	existing, err := s.feedbackRepo.GetBySubmission(ctx, submissionID)
	if err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}
	if existing != nil {
		return nil, ErrFeedbackAlreadyExists()
	}

	assignment, err := s.assignRepo.Get(ctx, submission.AssignmentUUID)
	if err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}
	if assignment == nil {
		return nil, subm.ErrAssignmentNotFound()
	}

	format := extract.Classify(submission.FileKey)
	if format == extract.Unsupported {
		return nil, ErrUnsupportedFileFormat(submission.FileKey)
	}

	referenceContent := resolveReferenceContent(ctx, s.store, *assignment)

	content, err := s.store.DownloadBytes(ctx, submission.FileKey)
	if err != nil {
		return nil, ErrFileExtractionFailed().SetDebug(err)
	}

	extracted, err := s.extractSubmission(ctx, content, format, submission.FileKey)
	if err != nil {
		return nil, ErrFileExtractionFailed().SetDebug(err)
	}

	prompt := buildPrompt(*assignment, referenceContent, extracted, lang)

	log.Info("invoking feedback generation",
		"format", format.String(),
		"has_image", prompt.HasImage(),
		"language", lang.Name())

	generated, err := s.generator.Generate(ctx, prompt.Text, prompt.ImageDataURI)
	if err != nil {
		if errors.Is(err, llm.ErrEmptyGeneration) {
			return nil, ErrEmptyGeneration().SetDebug(err)
		}
		return nil, ErrProviderCallFailed().SetDebug(err)
	}

	fb := Feedback{
		UUID:           uuid.New(),
		SubmissionUUID: submissionID,
		TeacherUUID:    teacher.UUID,
		Content:        generated,
		CreatedAt:      time.Now(),
	}
	err = s.feedbackRepo.StoreReviewed(ctx, fb)
	if errors.Is(err, ErrDuplicate) {
		return nil, ErrFeedbackAlreadyExists()
	}
	if err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}

	log.Info("feedback generated",
		"feedback_id", fb.UUID,
		"content_len", len(fb.Content))

	return &fb, nil
}

// GetFeedback returns the feedback generated for a submission, if any.
func (s *FeedbackSrvc) GetFeedback(ctx context.Context, submissionID uuid.UUID) (*Feedback, error) {
	fb, err := s.feedbackRepo.GetBySubmission(ctx, submissionID)
	if err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}
	if fb == nil {
		return nil, ErrFeedbackNotFound()
	}
	return fb, nil
}

func (s *FeedbackSrvc) extractSubmission(ctx context.Context, content []byte, format extract.Format, key string) (extract.Result, error) {
	if format == extract.Image && s.ocrMode {
		return extract.TextViaOCR(ctx, s.recognizer, content)
	}
	return extract.Extract(content, format, key)
}
