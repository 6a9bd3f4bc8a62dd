package grades

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/gearhub/gearhub/internal/dependencies/mocks"
	"github.com/gearhub/gearhub/internal/model"
	"github.com/gearhub/gearhub/internal/storage/memory"
	"github.com/gearhub/gearhub/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context

	student *model.UserProfile
	teacher *model.UserProfile
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()

	s.student = &model.UserProfile{ID: "a_x_com", Email: "a@x.com", Role: model.RoleStudent}
	s.teacher = &model.UserProfile{ID: "t_x_com", Email: "t@x.com", Role: model.RoleTeacher}
	s.Require().NoError(s.storage.SaveProfile(s.ctx, s.student))
	s.Require().NoError(s.storage.SaveProfile(s.ctx, s.teacher))
}

func (s *ServiceSuite) TestTeacherRecordsGrade() {
	grade, err := s.service.Record(s.ctx, s.teacher, RecordGrade{
		StudentEmail: "a@x.com",
		Subject:      "Math",
		TestName:     "Midterm",
		Score:        17,
		Total:        20,
		Remarks:      "Good work",
	})
	s.Require().NoError(err)

	s.NotEmpty(grade.ID)
	s.Equal(s.student.ID, grade.StudentID)
	s.Equal(s.teacher.ID, grade.GraderID)
	s.InDelta(85.0, grade.Percent(), 0.001)
	s.Equal("B", grade.Letter())
}

func (s *ServiceSuite) TestStudentCannotRecord() {
	_, err := s.service.Record(s.ctx, s.student, RecordGrade{
		StudentEmail: "a@x.com", Subject: "Math", Score: 10, Total: 20,
	})
	s.ErrorIs(err, model.ErrForbidden)
}

func (s *ServiceSuite) TestRecordValidatesScore() {
	for _, tc := range []struct{ score, total int }{
		{10, 0},
		{-1, 20},
		{21, 20},
	} {
		_, err := s.service.Record(s.ctx, s.teacher, RecordGrade{
			StudentEmail: "a@x.com", Subject: "Math", Score: tc.score, Total: tc.total,
		})
		s.ErrorIs(err, model.ErrInvalidScore, "%d/%d", tc.score, tc.total)
	}
}

func (s *ServiceSuite) TestRecordUnknownStudentFails() {
	_, err := s.service.Record(s.ctx, s.teacher, RecordGrade{
		StudentEmail: "nobody@x.com", Subject: "Math", Score: 10, Total: 20,
	})
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *ServiceSuite) TestListOwnReturnsRecordedOrder() {
	_, _ = s.service.Record(s.ctx, s.teacher, RecordGrade{
		StudentEmail: "a@x.com", Subject: "Math", TestName: "Quiz 1", Score: 8, Total: 10,
	})
	s.clock.Advance(time.Hour)
	_, _ = s.service.Record(s.ctx, s.teacher, RecordGrade{
		StudentEmail: "a@x.com", Subject: "Math", TestName: "Quiz 2", Score: 9, Total: 10,
	})

	grades, err := s.service.ListOwn(s.ctx, s.student)
	s.Require().NoError(err)
	s.Require().Len(grades, 2)
	s.Equal("Quiz 1", grades[0].TestName)
	s.Equal("Quiz 2", grades[1].TestName)
}

func (s *ServiceSuite) TestListForStudentRequiresTeacher() {
	_, err := s.service.ListForStudent(s.ctx, s.student, s.student.ID)
	s.ErrorIs(err, model.ErrForbidden)

	_, err = s.service.ListForStudent(s.ctx, s.teacher, s.student.ID)
	s.NoError(err)
}
