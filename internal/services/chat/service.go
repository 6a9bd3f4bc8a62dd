package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/gearhub/gearhub/internal/dependencies/clock"
	"github.com/gearhub/gearhub/internal/model"
	"github.com/gearhub/gearhub/internal/storage"
)

var ErrEmptyMessage = errors.New("message text is empty")

// DefaultRecentLimit is how many messages Recent returns when the caller
// does not ask for a specific count
const DefaultRecentLimit = 50

// Service is the shared portal chat room. Every logged-in user posts to the
// same history.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new chat Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Send appends a message stamped with the sender's identity at send time.
// Later profile edits do not rewrite history.
func (s *Service) Send(ctx context.Context, actor *model.UserProfile, text string) (*model.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	msg := &model.ChatMessage{
		ID:         uuid.NewString(),
		SenderID:   actor.ID,
		SenderName: actor.Name,
		SenderRole: actor.Role,
		Text:       text,
		SentAt:     s.clock.Now(),
	}

	if err := s.storage.AppendChatMessage(ctx, msg); err != nil {
		return nil, err
	}

	s.logger.Info("chat message sent",
		slog.String("message_id", msg.ID),
		slog.String("sender_id", string(msg.SenderID)))
	return msg, nil
}

// Recent returns the last limit messages in chronological order. A
// non-positive limit falls back to DefaultRecentLimit.
func (s *Service) Recent(ctx context.Context, limit int) ([]*model.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.storage.ListChatMessages(ctx, limit)
}
