package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/gearhub/gearhub/internal/dependencies/clock"
	"github.com/gearhub/gearhub/internal/model"
	"github.com/gearhub/gearhub/internal/storage"
)

// Errors
var (
	ErrEmailRequired = errors.New("email is required")
	ErrNameRequired  = errors.New("name is required")
)

// Notifier receives the transient alerts the controller emits (welcome,
// level-up). Implementations must not block.
type Notifier interface {
	Publish(title, message string, severity model.Severity)
}

// Service is the single authority for session transitions: login, role
// selection, profile updates, XP progression and logout. Handlers never
// write to storage directly.
//
// Every operation is a read-modify-write against both the registry and the
// active-session slot; the mutex serializes them so a caller can never
// observe a partial write.
type Service struct {
	storage  storage.Storage
	clock    clock.Clock
	notifier Notifier
	logger   *slog.Logger

	mu sync.Mutex
}

// New creates a new session Service
func New(storage storage.Storage, clock clock.Clock, notifier Notifier, logger *slog.Logger) *Service {
	return &Service{
		storage:  storage,
		clock:    clock,
		notifier: notifier,
		logger:   logger,
	}
}

// Login starts a session for the given email. If the registry already holds
// a profile for the email, that stored profile becomes the active session
// as-is and the supplied name is ignored; a returning user's display name
// cannot be corrected by logging in again. Otherwise a fresh profile is
// synthesized with an unset role and persisted to both stores.
func (s *Service) Login(ctx context.Context, email, name string) (*model.UserProfile, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.storage.GetProfile(ctx, email)
	if err == nil {
		if err := s.storage.SaveActiveSession(ctx, existing); err != nil {
			return nil, err
		}
		s.logger.Info("session resumed",
			slog.String("profile_id", string(existing.ID)),
			slog.String("email", existing.Email))
		return existing, nil
	}
	if !errors.Is(err, model.ErrProfileNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	profile := &model.UserProfile{
		ID:        model.DeriveProfileID(email),
		Name:      name,
		Email:     email,
		Role:      model.RoleUnset,
		XP:        0,
		Level:     1,
		Streak:    1,
		Badges:    []model.Badge{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SaveActiveSession(ctx, profile); err != nil {
		return nil, err
	}
	if err := s.storage.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	s.notifier.Publish("Welcome to GEAR HUB!", "Explore the new features.", model.SeverityInfo)
	s.logger.Info("profile created",
		slog.String("profile_id", string(profile.ID)),
		slog.String("email", profile.Email))

	return profile, nil
}

// ActiveProfile returns the current active session's profile, or
// model.ErrNoActiveSession when nobody is logged in
func (s *Service) ActiveProfile(ctx context.Context) (*model.UserProfile, error) {
	return s.storage.GetActiveSession(ctx)
}

// SelectRole fixes the role for a freshly created profile. The role can be
// set exactly once; there is no path to change it afterwards.
func (s *Service) SelectRole(ctx context.Context, role model.Role) (*model.UserProfile, error) {
	if !role.IsValid() {
		return nil, model.ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.storage.GetActiveSession(ctx)
	if err != nil {
		return nil, err
	}
	if current.Role != model.RoleUnset {
		return nil, model.ErrRoleAlreadySet
	}

	updated := current.Clone()
	updated.Role = role
	return s.persist(ctx, updated)
}

// ProfileUpdate carries the profile fields a user may edit. Nil fields are
// left untouched (shallow merge).
type ProfileUpdate struct {
	Name   *string
	Email  *string
	Avatar *string
	Bio    *string
}

// UpdateProfile shallow-merges the given fields onto the active profile and
// persists the result to both stores under the profile's current email.
// Changing the email re-keys the registry entry; the entry under the old
// email is left in place (accepted inconsistency, see DESIGN.md).
func (s *Service) UpdateProfile(ctx context.Context, update ProfileUpdate) (*model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.storage.GetActiveSession(ctx)
	if err != nil {
		return nil, err
	}

	updated := current.Clone()
	if update.Name != nil {
		updated.Name = *update.Name
	}
	if update.Email != nil {
		updated.Email = *update.Email
	}
	if update.Avatar != nil {
		updated.Avatar = *update.Avatar
	}
	if update.Bio != nil {
		updated.Bio = *update.Bio
	}

	return s.persist(ctx, updated)
}

// SetCredential hashes and stores an optional credential on the active
// profile. The credential is never used as a login gate; it is kept so a
// clear-text secret never reaches storage.
func (s *Service) SetCredential(ctx context.Context, credential string) (*model.UserProfile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.storage.GetActiveSession(ctx)
	if err != nil {
		return nil, err
	}

	updated := current.Clone()
	updated.CredentialHash = string(hash)
	return s.persist(ctx, updated)
}

// AwardXP adds amount (which may be negative) to the active profile's XP
// and recomputes the level. When the level increases, exactly one level-up
// notification is emitted before the profile is persisted. Persistence
// happens whether or not the level changed.
func (s *Service) AwardXP(ctx context.Context, amount int) (*model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.storage.GetActiveSession(ctx)
	if err != nil {
		return nil, err
	}

	updated := current.Clone()
	updated.XP = current.XP + amount
	updated.Level = model.LevelForXP(updated.XP)

	if updated.Level > current.Level {
		s.notifier.Publish(
			"Level Up!",
			fmt.Sprintf("You reached Level %d!", updated.Level),
			model.SeveritySuccess,
		)
		s.logger.Info("level up",
			slog.String("profile_id", string(updated.ID)),
			slog.Int("level", updated.Level),
			slog.Int("xp", updated.XP))
	}

	return s.persist(ctx, updated)
}

// Logout clears the active session pointer. The registry entry survives.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.ClearActiveSession(ctx); err != nil {
		return err
	}
	s.logger.Info("session cleared")
	return nil
}

// persist stamps the update time and writes the profile to the session slot
// and to the registry under its current email. Callers hold the mutex.
func (s *Service) persist(ctx context.Context, profile *model.UserProfile) (*model.UserProfile, error) {
	profile.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveActiveSession(ctx, profile); err != nil {
		return nil, err
	}
	if err := s.storage.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
