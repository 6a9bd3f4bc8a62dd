package chat

import (
	"context"
	"fmt"
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

	sender *model.UserProfile
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()

	s.sender = &model.UserProfile{ID: "a_x_com", Name: "Ann", Role: model.RoleStudent}
}

func (s *ServiceSuite) TestSendStampsSenderIdentity() {
	msg, err := s.service.Send(s.ctx, s.sender, "hello everyone")
	s.Require().NoError(err)

	s.NotEmpty(msg.ID)
	s.Equal(s.sender.ID, msg.SenderID)
	s.Equal("Ann", msg.SenderName)
	s.Equal(model.RoleStudent, msg.SenderRole)
	s.Equal("hello everyone", msg.Text)
}

func (s *ServiceSuite) TestSendTrimsWhitespace() {
	msg, err := s.service.Send(s.ctx, s.sender, "  hi  ")
	s.Require().NoError(err)
	s.Equal("hi", msg.Text)
}

func (s *ServiceSuite) TestSendRejectsEmptyText() {
	_, err := s.service.Send(s.ctx, s.sender, "   ")
	s.ErrorIs(err, ErrEmptyMessage)
}

func (s *ServiceSuite) TestRecentReturnsChronologicalTail() {
	for i := 0; i < 5; i++ {
		_, err := s.service.Send(s.ctx, s.sender, fmt.Sprintf("message %d", i))
		s.Require().NoError(err)
		s.clock.Advance(time.Second)
	}

	recent, err := s.service.Recent(s.ctx, 3)
	s.Require().NoError(err)
	s.Require().Len(recent, 3)
	s.Equal("message 2", recent[0].Text)
	s.Equal("message 4", recent[2].Text)
}

func (s *ServiceSuite) TestRecentDefaultsLimit() {
	_, _ = s.service.Send(s.ctx, s.sender, "one")

	recent, err := s.service.Recent(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(recent, 1)
}
