package subm

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

type User struct {
	UUID      uuid.UUID
	Firstname string
	Lastname  string
	Email     string
	Role      Role
	CreatedAt time.Time
}

func (u User) FullName() string {
	return u.Firstname + " " + u.Lastname
}

// Assignment is read-only to the review pipeline. FileKey optionally names
// reference material in the object store; an empty key means the teacher
// attached nothing.
type Assignment struct {
	UUID        uuid.UUID
	Title       string
	Description string
	DueDate     time.Time
	FileKey     string
	SectionUUID uuid.UUID
	TeacherUUID uuid.UUID
	CreatedAt   time.Time
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusGraded   Status = "graded"
)

// Submission references its assignment and student by id, not by embedded
// objects, so the object graph stays an acyclic ownership tree.
type Submission struct {
	UUID           uuid.UUID
	AssignmentUUID uuid.UUID
	StudentUUID    uuid.UUID
	FileKey        string
	Status         Status
	Grade          *int // 0-100, nil until graded
	CreatedAt      time.Time
}
