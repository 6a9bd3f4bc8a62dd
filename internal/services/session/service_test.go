package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/gearhub/gearhub/internal/dependencies/mocks"
	"github.com/gearhub/gearhub/internal/model"
	"github.com/gearhub/gearhub/internal/storage/memory"
	"github.com/gearhub/gearhub/internal/testutil"
)

// captureNotifier records published notifications for assertions
type captureNotifier struct {
	published []capturedNotification
}

type capturedNotification struct {
	Title    string
	Message  string
	Severity model.Severity
}

func (n *captureNotifier) Publish(title, message string, severity model.Severity) {
	n.published = append(n.published, capturedNotification{title, message, severity})
}

func (n *captureNotifier) levelUps() []capturedNotification {
	var out []capturedNotification
	for _, p := range n.published {
		if strings.Contains(p.Message, "Level") {
			out = append(out, p)
		}
	}
	return out
}

type ServiceSuite struct {
	suite.Suite
	storage  *memory.Storage
	clock    *mocks.MockClock
	notifier *captureNotifier
	service  *Service
	ctx      context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.notifier = &captureNotifier{}
	s.service = New(s.storage, s.clock, s.notifier, testutil.NopLogger())
	s.ctx = context.Background()
}

// Login tests

func (s *ServiceSuite) TestLoginCreatesNewProfile() {
	profile, err := s.service.Login(s.ctx, "a@x.com", "Ann")
	s.Require().NoError(err)

	s.Equal(model.ProfileID("a_x_com"), profile.ID)
	s.Equal("Ann", profile.Name)
	s.Equal("a@x.com", profile.Email)
	s.Equal(model.RoleUnset, profile.Role)
	s.Equal(0, profile.XP)
	s.Equal(1, profile.Level)
	s.Equal(1, profile.Streak)
	s.Empty(profile.Badges)
}

func (s *ServiceSuite) TestLoginPersistsToRegistryAndSession() {
	_, err := s.service.Login(s.ctx, "a@x.com", "Ann")
	s.Require().NoError(err)

	stored, err := s.storage.GetProfile(s.ctx, "a@x.com")
	s.Require().NoError(err)
	s.Equal("Ann", stored.Name)

	active, err := s.storage.GetActiveSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(stored.ID, active.ID)
}

func (s *ServiceSuite) TestLoginEmitsWelcomeForNewProfileOnly() {
	_, _ = s.service.Login(s.ctx, "a@x.com", "Ann")
	s.Len(s.notifier.published, 1)

	_ = s.service.Logout(s.ctx)
	_, _ = s.service.Login(s.ctx, "a@x.com", "Ann")
	s.Len(s.notifier.published, 1)
}

func (s *ServiceSuite) TestLoginExistingProfileIgnoresSuppliedName() {
	_, _ = s.service.Login(s.ctx, "a@x.com", "Ann")
	_ = s.service.Logout(s.ctx)

	profile, err := s.service.Login(s.ctx, "a@x.com", "DifferentName")
	s.Require().NoError(err)
	s.Equal("Ann", profile.Name)
}

func (s *ServiceSuite) TestLoginIsIdempotentForSameUser() {
	first, _ := s.service.Login(s.ctx, "a@x.com", "Ann")
	second, err := s.service.Login(s.ctx, "a@x.com", "Ann")
	s.Require().NoError(err)

	s.Equal(first.ID, second.ID)
	s.Equal(first.XP, second.XP)
	s.Equal(first.CreatedAt, second.CreatedAt)

	profiles, err := s.storage.ListProfiles(s.ctx)
	s.Require().NoError(err)
	s.Len(profiles, 1)
}

func (s *ServiceSuite) TestLoginRequiresEmailAndName() {
	_, err := s.service.Login(s.ctx, "", "Ann")
	s.ErrorIs(err, ErrEmailRequired)

	_, err = s.service.Login(s.ctx, "a@x.com", "")
	s.ErrorIs(err, ErrNameRequired)
}

// SelectRole tests

func (s *ServiceSuite) TestSelectRoleSucceeds() {
	_, _ = s.service.Login(s.ctx, "a@x.com", "Ann")

	profile, err := s.service.SelectRole(s.ctx, model.RoleStudent)
	s.Require().NoError(err)
	s.Equal(model.RoleStudent, profile.Role)

	stored, _ := s.storage.GetProfile(s.ctx, "a@x.com")
	s.Equal(model.RoleStudent, stored.Role)
}

func (s *ServiceSuite) TestSelectRoleFailsWithoutSession() {
	_, err := s.service.SelectRole(s.ctx, model.RoleStudent)
	s.ErrorIs(err, model.ErrNoActiveSession)
}

func (s *ServiceSuite) TestSelectRoleFailsWhenAlreadySet() {
	_, _ = s.service.Login(s.ctx, "a@x.com", "Ann")
	_, _ = s.service.SelectRole(s.ctx, model.RoleStudent)

	_, err := s.service.SelectRole(s.ctx, model.RoleTeacher)
	s.ErrorIs(err, model.ErrRoleAlreadySet)
}

func (s *ServiceSuite) TestSelectRoleRejectsUnknownRole() {
	_, _ = s.service.Login(s.ctx, "a@x.com", "Ann")

	_, err := s.service.SelectRole(s.ctx, model.Role("wizard"))
	s.ErrorIs(err, model.ErrInvalidRole)
}

// AwardXP tests

func (s *ServiceSuite) TestAwardXPLevelsUpWithSingleNotification() {
	_, _ = s.service.Login(s.ctx, "a@x.com", "Ann")
	_, _ = s.service.SelectRole(s.ctx, model.RoleStudent)

	profile, err := s.service.AwardXP(s.ctx, 250)
	s.Require().NoError(err)
	s.Equal(250, profile.XP)
	s.Equal(2, profile.Level)

	ups := s.notifier.levelUps()
	s.Require().Len(ups, 1)
	s.Contains(ups[0].Message, "Level 2")
	s.Equal(model.SeveritySuccess, ups[0].Severity)
}

func (s *ServiceSuite) TestAwardXPWithoutLevelUpEmitsNothing() {
	_, _ = s.service.Login(s.ctx, "a@x.com", "Ann")
	_, _ = s.service.AwardXP(s.ctx, 250)
	before := len(s.notifier.published)

	profile, err := s.service.AwardXP(s.ctx, 10)
	s.Require().NoError(err)
	s.Equal(260, profile.XP)
	s.Equal(2, profile.Level)
	s.Len(s.notifier.published, before)
}

func (s *ServiceSuite) TestAwardXPPersistsEvenWithoutLevelUp() {
	_, _ = s.service.Login(s.ctx, "a@x.com", "Ann")
	_, _ = s.service.AwardXP(s.ctx, 10)

	stored, _ := s.storage.GetProfile(s.ctx, "a@x.com")
	s.Equal(10, stored.XP)
}

func (s *ServiceSuite) TestAwardXPNegativeAmountIsNotClamped() {
	_, _ = s.service.Login(s.ctx, "a@x.com", "Ann")
	_, _ = s.service.AwardXP(s.ctx, 250)

	profile, err := s.service.AwardXP(s.ctx, -300)
	s.Require().NoError(err)
	s.Equal(-50, profile.XP)
	s.Equal(1, profile.Level)
}

func (s *ServiceSuite) TestAwardXPFailsWithoutSession() {
	_, err := s.service.AwardXP(s.ctx, 100)
	s.ErrorIs(err, model.ErrNoActiveSession)
}

func (s *ServiceSuite) TestLevelFollowsFormulaAcrossThresholds() {
	_, _ = s.service.Login(s.ctx, "a@x.com", "Ann")

	for _, tc := range []struct {
		award int
		level int
	}{
		{99, 1},   // 99 XP
		{1, 2},    // 100 XP
		{299, 2},  // 399 XP
		{1, 3},    // 400 XP
		{500, 4},  // 900 XP
		{8100, 10}, // 9000 XP -> floor(sqrt(90))+1
	} {
		profile, err := s.service.AwardXP(s.ctx, tc.award)
		s.Require().NoError(err)
		s.Equal(tc.level, profile.Level, "xp=%d", profile.XP)
		s.Equal(model.LevelForXP(profile.XP), profile.Level)
	}
}

// UpdateProfile tests

func (s *ServiceSuite) TestUpdateProfileMergesSetFields() {
	_, _ = s.service.Login(s.ctx, "a@x.com", "Ann")

	name := "Annabel"
	bio := "Learning Go"
	profile, err := s.service.UpdateProfile(s.ctx, ProfileUpdate{Name: &name, Bio: &bio})
	s.Require().NoError(err)

	s.Equal("Annabel", profile.Name)
	s.Equal("Learning Go", profile.Bio)
	s.Equal("a@x.com", profile.Email)

	stored, _ := s.storage.GetProfile(s.ctx, "a@x.com")
	s.Equal("Annabel", stored.Name)
}

func (s *ServiceSuite) TestUpdateProfileRoundTripsUnchangedFields() {
	_, _ = s.service.Login(s.ctx, "a@x.com", "Ann")
	_, _ = s.service.SelectRole(s.ctx, model.RoleStudent)
	_, _ = s.service.AwardXP(s.ctx, 250)

	avatar := "robot"
	profile, err := s.service.UpdateProfile(s.ctx, ProfileUpdate{Avatar: &avatar})
	s.Require().NoError(err)

	s.Equal(250, profile.XP)
	s.Equal(2, profile.Level)
	s.Equal(model.RoleStudent, profile.Role)
	s.Equal(model.ProfileID("a_x_com"), profile.ID)
}

func (s *ServiceSuite) TestUpdateProfileEmailChangeKeepsID() {
	_, _ = s.service.Login(s.ctx, "a@x.com", "Ann")

	email := "b@y.com"
	profile, err := s.service.UpdateProfile(s.ctx, ProfileUpdate{Email: &email})
	s.Require().NoError(err)

	// The ID is frozen at creation; only the registry key moves
	s.Equal(model.ProfileID("a_x_com"), profile.ID)

	stored, err := s.storage.GetProfile(s.ctx, "b@y.com")
	s.Require().NoError(err)
	s.Equal("Ann", stored.Name)

	// The old key stays behind with the stale snapshot
	orphan, err := s.storage.GetProfile(s.ctx, "a@x.com")
	s.Require().NoError(err)
	s.Equal("a@x.com", orphan.Email)
}

func (s *ServiceSuite) TestUpdateProfileFailsWithoutSession() {
	name := "Nobody"
	_, err := s.service.UpdateProfile(s.ctx, ProfileUpdate{Name: &name})
	s.ErrorIs(err, model.ErrNoActiveSession)
}

// SetCredential tests

func (s *ServiceSuite) TestSetCredentialStoresHash() {
	_, _ = s.service.Login(s.ctx, "a@x.com", "Ann")

	profile, err := s.service.SetCredential(s.ctx, "hunter2")
	s.Require().NoError(err)

	s.NotEmpty(profile.CredentialHash)
	s.NotEqual("hunter2", profile.CredentialHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(profile.CredentialHash), []byte("hunter2")))
}

// Logout tests

func (s *ServiceSuite) TestLogoutClearsSessionKeepsRegistry() {
	_, _ = s.service.Login(s.ctx, "a@x.com", "Ann")
	_, _ = s.service.AwardXP(s.ctx, 260)

	err := s.service.Logout(s.ctx)
	s.Require().NoError(err)

	_, err = s.service.ActiveProfile(s.ctx)
	s.ErrorIs(err, model.ErrNoActiveSession)

	stored, err := s.storage.GetProfile(s.ctx, "a@x.com")
	s.Require().NoError(err)
	s.Equal(260, stored.XP)
	s.Equal(2, stored.Level)
}

// Full journey per the original portal flow

func (s *ServiceSuite) TestFullJourney() {
	profile, err := s.service.Login(s.ctx, "a@x.com", "Ann")
	s.Require().NoError(err)
	s.Equal(model.ProfileID("a_x_com"), profile.ID)

	profile, err = s.service.SelectRole(s.ctx, model.RoleStudent)
	s.Require().NoError(err)
	s.Equal(model.RoleStudent, profile.Role)

	profile, err = s.service.AwardXP(s.ctx, 250)
	s.Require().NoError(err)
	s.Equal(2, profile.Level)
	s.Require().Len(s.notifier.levelUps(), 1)

	profile, err = s.service.AwardXP(s.ctx, 10)
	s.Require().NoError(err)
	s.Equal(260, profile.XP)
	s.Len(s.notifier.levelUps(), 1)

	s.Require().NoError(s.service.Logout(s.ctx))

	profile, err = s.service.Login(s.ctx, "a@x.com", "DifferentName")
	s.Require().NoError(err)
	s.Equal("Ann", profile.Name)
	s.Equal(260, profile.XP)
	s.Equal(2, profile.Level)
	s.Equal(model.RoleStudent, profile.Role)
}
