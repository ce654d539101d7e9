package feedback

import (
	"context"
	"fmt"
	"strings"

	"github.com/newmoodle/backend/extract"
	"github.com/newmoodle/backend/logger"
	"github.com/newmoodle/backend/objstore"
	"github.com/newmoodle/backend/subm"
)

const (
	noDescriptionPlaceholder    = "[no description provided]"
	noAssignmentFilePlaceholder = "[no assignment file attached]"
	noTextPlaceholder           = "[No text provided]"
	imageSubmissionPlaceholder  = "[see the attached image]"
)

// Prompt is the instruction sent to the generation provider. ImageDataURI is
// empty for text-only prompts.
type Prompt struct {
	Text         string
	ImageDataURI string
}

func (p Prompt) HasImage() bool {
	return p.ImageDataURI != ""
}

// buildPrompt fills the four slots of the review template. Blank slots get a
// bracketed placeholder so the provider never sees raw empty sections.
func buildPrompt(assignment subm.Assignment, referenceContent string, submission extract.Result, lang Language) Prompt {
	description := assignment.Description
	if strings.TrimSpace(description) == "" {
		description = noDescriptionPlaceholder
	}
	if strings.TrimSpace(referenceContent) == "" {
		referenceContent = noAssignmentFilePlaceholder
	}

	submissionText := submission.Text
	imageDataURI := ""
	if submission.IsImage {
		submissionText = imageSubmissionPlaceholder
		imageDataURI = submission.DataURI()
	} else if strings.TrimSpace(submissionText) == "" {
		submissionText = noTextPlaceholder
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are reviewing a student's submission for the assignment %q.\n\n", assignment.Title)
	fmt.Fprintf(&sb, "Assignment description:\n%s\n\n", description)
	fmt.Fprintf(&sb, "Assignment reference material:\n%s\n\n", referenceContent)
	fmt.Fprintf(&sb, "Student submission:\n%s\n\n", submissionText)
	fmt.Fprintf(&sb, "Provide detailed feedback in %s on the submission above. ", lang.Name())
	fmt.Fprintf(&sb, "Include a rationale for a grade between 0 and 100 and recommendations for improvement. ")
	fmt.Fprintf(&sb, "Write everything in %s.", lang.Name())

	return Prompt{
		Text:         sb.String(),
		ImageDataURI: imageDataURI,
	}
}

// resolveReferenceContent extracts the assignment's reference file. Failures
// here never abort generation: an image file, an unsupported format or a
// broken file all degrade to a placeholder naming the problem.
func resolveReferenceContent(ctx context.Context, store objstore.Store, assignment subm.Assignment) string {
	log := logger.FromContext(ctx)

	if assignment.FileKey == "" {
		return noAssignmentFilePlaceholder
	}

	format := extract.Classify(assignment.FileKey)
	switch format {
	case extract.Unsupported:
		return fmt.Sprintf("[assignment file %s has an unsupported format]", assignment.FileKey)
	case extract.Image:
		return fmt.Sprintf("[assignment file %s is an image and is not included]", assignment.FileKey)
	}

	content, err := store.DownloadBytes(ctx, assignment.FileKey)
	if err != nil {
		log.Warn("failed to download assignment file",
			"file_key", assignment.FileKey,
			"error", err)
		return fmt.Sprintf("[assignment file %s could not be downloaded]", assignment.FileKey)
	}

	res, err := extract.Extract(content, format, assignment.FileKey)
	if err != nil {
		log.Warn("failed to extract assignment file",
			"file_key", assignment.FileKey,
			"error", err)
		return fmt.Sprintf("[assignment file %s could not be read: %v]", assignment.FileKey, err)
	}

	return res.Text
}
