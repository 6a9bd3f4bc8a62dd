package directory

import (
	"context"
	"log/slog"

	"github.com/gearhub/gearhub/internal/model"
	"github.com/gearhub/gearhub/internal/storage"
)

// Summary aggregates the registry by role
type Summary struct {
	Total    int
	Students int
	Teachers int
	Admins   int
	Unset    int
}

// Service exposes the registered-user directory backing the admin panel
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new directory Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// List returns every registered profile ordered by email
func (s *Service) List(ctx context.Context) ([]*model.UserProfile, error) {
	return s.storage.ListProfiles(ctx)
}

// Summarize returns role counts across the registry
func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	profiles, err := s.storage.ListProfiles(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Total: len(profiles)}
	for _, p := range profiles {
		switch p.Role {
		case model.RoleStudent:
			summary.Students++
		case model.RoleTeacher:
			summary.Teachers++
		case model.RoleAdmin:
			summary.Admins++
		default:
			summary.Unset++
		}
	}
	return summary, nil
}
