package grades

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gearhub/gearhub/internal/dependencies/clock"
	"github.com/gearhub/gearhub/internal/model"
	"github.com/gearhub/gearhub/internal/storage"
)

// Service records and lists grades. Only teachers and admins may record;
// students read their own results. Percent and letter grade are derived on
// read and never stored.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new grades Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// RecordGrade is the input for Record. The student is addressed by email,
// the registry key.
type RecordGrade struct {
	StudentEmail string
	Subject      string
	TestName     string
	Score        int
	Total        int
	Remarks      string
}

// Record stores a grade for the addressed student. The actor must be a
// teacher or an admin, and the student must exist in the registry.
func (s *Service) Record(ctx context.Context, actor *model.UserProfile, input RecordGrade) (*model.Grade, error) {
	if actor.Role != model.RoleTeacher && actor.Role != model.RoleAdmin {
		return nil, model.ErrForbidden
	}
	if input.Total <= 0 || input.Score < 0 || input.Score > input.Total {
		return nil, model.ErrInvalidScore
	}

	student, err := s.storage.GetProfile(ctx, input.StudentEmail)
	if err != nil {
		return nil, err
	}

	grade := &model.Grade{
		ID:         model.GradeID(uuid.NewString()),
		StudentID:  student.ID,
		GraderID:   actor.ID,
		Subject:    input.Subject,
		TestName:   input.TestName,
		Score:      input.Score,
		Total:      input.Total,
		Remarks:    input.Remarks,
		RecordedAt: s.clock.Now(),
	}

	if err := s.storage.SaveGrade(ctx, grade); err != nil {
		return nil, err
	}

	s.logger.Info("grade recorded",
		slog.String("grade_id", string(grade.ID)),
		slog.String("student_id", string(grade.StudentID)),
		slog.String("grader_id", string(grade.GraderID)))
	return grade, nil
}

// ListOwn returns the actor's grades in the order they were recorded
func (s *Service) ListOwn(ctx context.Context, actor *model.UserProfile) ([]*model.Grade, error) {
	return s.storage.ListGradesForStudent(ctx, actor.ID)
}

// ListForStudent returns a student's grades for a teacher or admin reader
func (s *Service) ListForStudent(ctx context.Context, actor *model.UserProfile, studentID model.ProfileID) ([]*model.Grade, error) {
	if actor.Role != model.RoleTeacher && actor.Role != model.RoleAdmin {
		return nil, model.ErrForbidden
	}
	return s.storage.ListGradesForStudent(ctx, studentID)
}
