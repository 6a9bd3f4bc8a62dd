package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/gearhub/gearhub/internal/dependencies/clock"
	"github.com/gearhub/gearhub/internal/services/chat"
	"github.com/gearhub/gearhub/internal/services/directory"
	"github.com/gearhub/gearhub/internal/services/grades"
	"github.com/gearhub/gearhub/internal/services/notes"
	"github.com/gearhub/gearhub/internal/services/notify"
	"github.com/gearhub/gearhub/internal/services/session"
	"github.com/gearhub/gearhub/internal/services/timetable"
	"github.com/gearhub/gearhub/internal/storage"
	"github.com/gearhub/gearhub/internal/storage/memory"
	redisstorage "github.com/gearhub/gearhub/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// DefaultNoteCompletionXP is granted per completed note when the factory
// config does not set an amount
const DefaultNoteCompletionXP = 25

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	NotifyCenter     *notify.Center
	SessionService   *session.Service
	NoteService      *notes.Service
	TimetableService *timetable.Service
	ChatService      *chat.Service
	GradeService     *grades.Service
	DirectoryService *directory.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// NoteCompletionXP is the XP granted per completed note
	// If zero, defaults to DefaultNoteCompletionXP
	NoteCompletionXP int
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig, logger)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	completionXP := cfg.NoteCompletionXP
	if completionXP == 0 {
		completionXP = DefaultNoteCompletionXP
	}

	return newWithDependencies(store, clock.New(), completionXP, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, completionXP int, logger *slog.Logger) *App {
	notifyCenter := notify.NewCenter(clk)
	sessionService := session.New(store, clk, notifyCenter, logger)
	noteService := notes.New(store, clk, sessionService, logger, completionXP)
	timetableService := timetable.New(store, clk, logger)
	chatService := chat.New(store, clk, logger)
	gradeService := grades.New(store, clk, logger)
	directoryService := directory.New(store, logger)

	return &App{
		Storage:          store,
		Clock:            clk,
		NotifyCenter:     notifyCenter,
		SessionService:   sessionService,
		NoteService:      noteService,
		TimetableService: timetableService,
		ChatService:      chatService,
		GradeService:     gradeService,
		DirectoryService: directoryService,
	}
}
