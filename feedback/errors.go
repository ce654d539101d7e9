package feedback

import (
	"fmt"
	"net/http"

	"github.com/newmoodle/backend/srvcerror"
)

const ErrCodeSubmissionHasNoFile = "submission_has_no_file"

func ErrSubmissionHasNoFile() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionHasNoFile,
		"the submission has no uploaded file to review",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeSubmissionNotLinked = "submission_not_linked"

func ErrSubmissionNotLinked() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionNotLinked,
		"the submission is not linked to an assignment",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeUnsupportedFileFormat = "unsupported_file_format"

func ErrUnsupportedFileFormat(key string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnsupportedFileFormat,
		fmt.Sprintf("the file %q is not a supported format", key),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeFileExtractionFailed = "file_extraction_failed"

func ErrFileExtractionFailed() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeFileExtractionFailed,
		"the submitted file could not be read",
	).SetHttpStatusCode(http.StatusUnprocessableEntity)
}

const ErrCodeEmptyGeneration = "empty_generation"

func ErrEmptyGeneration() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmptyGeneration,
		"the review service returned no content",
	).SetHttpStatusCode(http.StatusBadGateway)
}

const ErrCodeProviderCallFailed = "provider_call_failed"

func ErrProviderCallFailed() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeProviderCallFailed,
		"the review service could not be reached",
	).SetHttpStatusCode(http.StatusBadGateway)
}

const ErrCodeFeedbackNotFound = "feedback_not_found"

func ErrFeedbackNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeFeedbackNotFound,
		"no feedback has been generated for this submission",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeFeedbackAlreadyExists = "feedback_already_exists"

func ErrFeedbackAlreadyExists() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeFeedbackAlreadyExists,
		"feedback for this submission has already been generated",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeInvalidLanguage = "invalid_language"

func ErrInvalidLanguage(s string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidLanguage,
		fmt.Sprintf("language %q is not supported, expected english, kazakh or russian", s),
	).SetHttpStatusCode(http.StatusBadRequest)
}

func ErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
