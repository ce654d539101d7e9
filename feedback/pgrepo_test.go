package feedback_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/newmoodle/backend/feedback"
	"github.com/newmoodle/backend/subm"
	"github.com/peterldowns/pgtestdb"
	"github.com/peterldowns/pgtestdb/migrators/golangmigrator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPgDb(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres test in short mode")
	}
	ctx := context.Background()
	conf := pgtestdb.Config{
		DriverName: "pgx",
		User:       "newmoodle", // local dev pg user
		Password:   "newmoodle", // local dev pg password
		Host:       "localhost",
		Port:       "5433",
		Options:    "sslmode=disable",
	}
	gm := golangmigrator.New("../migrate")
	config := pgtestdb.Custom(t, conf, gm)

	pool, err := pgxpool.New(ctx, config.URL())
	if err != nil {
		t.Fatalf("Failed to create connection pool: %v", err)
	}
	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func seedSubmission(t *testing.T, pool *pgxpool.Pool) (subm.Submission, subm.User) {
	t.Helper()
	ctx := context.Background()

	userRepo := subm.NewPgUserRepo(pool)
	teacher := subm.User{
		UUID:      uuid.New(),
		Firstname: "Marat",
		Lastname:  "Ospanov",
		Email:     "marat@example.com",
		Role:      subm.RoleTeacher,
		CreatedAt: time.Now(),
	}
	require.NoError(t, userRepo.Store(ctx, teacher))

	student := subm.User{
		UUID:      uuid.New(),
		Firstname: "Aigerim",
		Lastname:  "Bekova",
		Email:     "aigerim@example.com",
		Role:      subm.RoleStudent,
		CreatedAt: time.Now(),
	}
	require.NoError(t, userRepo.Store(ctx, student))

	sectionUuid := uuid.New()
	_, err := pool.Exec(ctx, `
		INSERT INTO sections (uuid, name, teacher_uuid)
		VALUES ($1, $2, $3)
	`, sectionUuid, "Section A", teacher.UUID)
	require.NoError(t, err)

	assignRepo := subm.NewPgAssignmentRepo(pool)
	assignment := subm.Assignment{
		UUID:        uuid.New(),
		Title:       "Essay on rivers",
		Description: "Write a short essay.",
		DueDate:     time.Now().Add(24 * time.Hour),
		SectionUUID: sectionUuid,
		TeacherUUID: teacher.UUID,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, assignRepo.Store(ctx, assignment))

	submRepo := subm.NewPgSubmRepo(pool)
	submission := subm.Submission{
		UUID:           uuid.New(),
		AssignmentUUID: assignment.UUID,
		StudentUUID:    student.UUID,
		FileKey:        "submissions/essay.txt",
		Status:         subm.StatusPending,
		CreatedAt:      time.Now(),
	}
	require.NoError(t, submRepo.Store(ctx, submission))

	return submission, teacher
}

func TestPgStoreReviewed(t *testing.T) {
	pool := newTestPgDb(t)
	ctx := context.Background()

	submission, teacher := seedSubmission(t, pool)
	repo := feedback.NewPgRepo(pool)

	fb := feedback.Feedback{
		UUID:           uuid.New(),
		SubmissionUUID: submission.UUID,
		TeacherUUID:    teacher.UUID,
		Content:        "Well structured essay.",
		CreatedAt:      time.Now(),
	}
	require.NoError(t, repo.StoreReviewed(ctx, fb))

	stored, err := repo.GetBySubmission(ctx, submission.UUID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, fb.Content, stored.Content)

	submRepo := subm.NewPgSubmRepo(pool)
	updated, err := submRepo.Get(ctx, submission.UUID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, subm.StatusReviewed, updated.Status)
}

func TestPgStoreReviewedDuplicate(t *testing.T) {
	pool := newTestPgDb(t)
	ctx := context.Background()

	submission, teacher := seedSubmission(t, pool)
	repo := feedback.NewPgRepo(pool)

	first := feedback.Feedback{
		UUID:           uuid.New(),
		SubmissionUUID: submission.UUID,
		TeacherUUID:    teacher.UUID,
		Content:        "Well structured essay.",
		CreatedAt:      time.Now(),
	}
	require.NoError(t, repo.StoreReviewed(ctx, first))

	second := first
	second.UUID = uuid.New()
	err := repo.StoreReviewed(ctx, second)
	assert.True(t, errors.Is(err, feedback.ErrDuplicate))

	stored, err := repo.GetBySubmission(ctx, submission.UUID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, first.UUID, stored.UUID)
}

func TestPgStoreReviewedKeepsGradedStatus(t *testing.T) {
	pool := newTestPgDb(t)
	ctx := context.Background()

	submission, teacher := seedSubmission(t, pool)
	submRepo := subm.NewPgSubmRepo(pool)
	grade := 95
	submission.Status = subm.StatusGraded
	submission.Grade = &grade
	require.NoError(t, submRepo.Update(ctx, submission))

	repo := feedback.NewPgRepo(pool)
	fb := feedback.Feedback{
		UUID:           uuid.New(),
		SubmissionUUID: submission.UUID,
		TeacherUUID:    teacher.UUID,
		Content:        "Well structured essay.",
		CreatedAt:      time.Now(),
	}
	require.NoError(t, repo.StoreReviewed(ctx, fb))

	updated, err := submRepo.Get(ctx, submission.UUID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, subm.StatusGraded, updated.Status)
}

func TestPgGetBySubmissionAbsent(t *testing.T) {
	pool := newTestPgDb(t)
	repo := feedback.NewPgRepo(pool)

	fb, err := repo.GetBySubmission(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, fb)
}
