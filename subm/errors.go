package subm

import (
	"net/http"

	"github.com/newmoodle/backend/srvcerror"
)

const ErrCodeSubmissionNotFound = "submission_not_found"

func ErrSubmissionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionNotFound,
		"the requested submission was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeAssignmentNotFound = "assignment_not_found"

func ErrAssignmentNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAssignmentNotFound,
		"the corresponding assignment was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeUserNotFound = "user_not_found"

func ErrUserNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUserNotFound,
		"the specified user was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeNotAStudent = "not_a_student"

func ErrNotAStudent() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNotAStudent,
		"only students can create submissions",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeNotSubmissionOwner = "not_submission_owner"

func ErrNotSubmissionOwner() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNotSubmissionOwner,
		"only the student who created the submission can delete it",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeNotAssignmentTeacher = "not_assignment_teacher"

func ErrNotAssignmentTeacher() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNotAssignmentTeacher,
		"only the teacher of the assignment can grade its submissions",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeGradeOutOfRange = "grade_out_of_range"

func ErrGradeOutOfRange() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeGradeOutOfRange,
		"grade must be between 0 and 100",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeMissingUserHeader = "missing_user_header"

func ErrMissingUserHeader() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMissingUserHeader,
		"the X-User-Uuid header is required",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeInvalidUserUuid = "invalid_user_uuid"

func ErrInvalidUserUuid() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidUserUuid,
		"the X-User-Uuid header is not a valid uuid",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUploadFilenameMissing = "upload_filename_missing"

func ErrUploadFilenameMissing() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUploadFilenameMissing,
		"the uploaded file has no filename",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUploadEmpty = "upload_empty"

func ErrUploadEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUploadEmpty,
		"the uploaded file is empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func ErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
