package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gearhub/gearhub/internal/api/handler"
	"github.com/gearhub/gearhub/internal/api/middleware"
	"github.com/gearhub/gearhub/internal/model"
	"github.com/gearhub/gearhub/internal/services/chat"
	"github.com/gearhub/gearhub/internal/services/directory"
	"github.com/gearhub/gearhub/internal/services/grades"
	"github.com/gearhub/gearhub/internal/services/notes"
	"github.com/gearhub/gearhub/internal/services/notify"
	"github.com/gearhub/gearhub/internal/services/session"
	"github.com/gearhub/gearhub/internal/services/timetable"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	SessionService   *session.Service
	NotifyCenter     *notify.Center
	NoteService      *notes.Service
	TimetableService *timetable.Service
	ChatService      *chat.Service
	GradeService     *grades.Service
	DirectoryService *directory.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.SessionService)
	notificationHandler := handler.NewNotificationHandler(cfg.NotifyCenter)
	noteHandler := handler.NewNoteHandler(cfg.NoteService)
	timetableHandler := handler.NewTimetableHandler(cfg.TimetableService)
	chatHandler := handler.NewChatHandler(cfg.ChatService)
	gradeHandler := handler.NewGradeHandler(cfg.GradeService)
	adminHandler := handler.NewAdminHandler(cfg.DirectoryService)

	// Create middleware
	sessionMiddleware := middleware.Session(cfg.SessionService)
	teacherOnly := middleware.RequireRole(model.RoleTeacher, model.RoleAdmin)
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Session routes (login/logout need no session)
	api.HandleFunc("/session/login", sessionHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/session/logout", sessionHandler.Logout).Methods(http.MethodPost)

	sessionRoutes := api.PathPrefix("/session").Subrouter()
	sessionRoutes.Use(sessionMiddleware)
	sessionRoutes.HandleFunc("", sessionHandler.Get).Methods(http.MethodGet)
	sessionRoutes.HandleFunc("/role", sessionHandler.SelectRole).Methods(http.MethodPost)

	// Profile routes
	profile := api.PathPrefix("/profile").Subrouter()
	profile.Use(sessionMiddleware)
	profile.HandleFunc("", sessionHandler.UpdateProfile).Methods(http.MethodPatch)
	profile.HandleFunc("/credential", sessionHandler.SetCredential).Methods(http.MethodPost)

	// XP route
	xp := api.PathPrefix("/xp").Subrouter()
	xp.Use(sessionMiddleware)
	xp.HandleFunc("", sessionHandler.AwardXP).Methods(http.MethodPost)

	// Notification routes
	notifications := api.PathPrefix("/notifications").Subrouter()
	notifications.Use(sessionMiddleware)
	notifications.HandleFunc("", notificationHandler.List).Methods(http.MethodGet)
	notifications.HandleFunc("/read-all", notificationHandler.MarkAllRead).Methods(http.MethodPost)
	notifications.HandleFunc("/{id}/read", notificationHandler.MarkRead).Methods(http.MethodPost)

	// Note routes; /public must be registered before /{id}
	noteRoutes := api.PathPrefix("/notes").Subrouter()
	noteRoutes.Use(sessionMiddleware)
	noteRoutes.HandleFunc("", noteHandler.Create).Methods(http.MethodPost)
	noteRoutes.HandleFunc("", noteHandler.ListOwn).Methods(http.MethodGet)
	noteRoutes.HandleFunc("/public", noteHandler.ListPublic).Methods(http.MethodGet)
	noteRoutes.HandleFunc("/{id}", noteHandler.Get).Methods(http.MethodGet)
	noteRoutes.HandleFunc("/{id}", noteHandler.Delete).Methods(http.MethodDelete)
	noteRoutes.HandleFunc("/{id}/complete", noteHandler.Complete).Methods(http.MethodPost)

	// Timetable routes
	timetableRoutes := api.PathPrefix("/timetable").Subrouter()
	timetableRoutes.Use(sessionMiddleware)
	timetableRoutes.HandleFunc("", timetableHandler.Add).Methods(http.MethodPost)
	timetableRoutes.HandleFunc("", timetableHandler.List).Methods(http.MethodGet)
	timetableRoutes.HandleFunc("/{id}", timetableHandler.Remove).Methods(http.MethodDelete)

	// Chat routes
	chatRoutes := api.PathPrefix("/chat").Subrouter()
	chatRoutes.Use(sessionMiddleware)
	chatRoutes.HandleFunc("", chatHandler.Send).Methods(http.MethodPost)
	chatRoutes.HandleFunc("", chatHandler.Recent).Methods(http.MethodGet)

	// Grade routes; recording is role-checked in the service as well
	gradeRoutes := api.PathPrefix("/grades").Subrouter()
	gradeRoutes.Use(sessionMiddleware)
	gradeRoutes.HandleFunc("", gradeHandler.Record).Methods(http.MethodPost)
	gradeRoutes.HandleFunc("", gradeHandler.ListOwn).Methods(http.MethodGet)

	gradeTeacherRoutes := gradeRoutes.PathPrefix("/student").Subrouter()
	gradeTeacherRoutes.Use(teacherOnly)
	gradeTeacherRoutes.HandleFunc("/{id}", gradeHandler.ListForStudent).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(sessionMiddleware)
	admin.Use(adminOnly)
	admin.HandleFunc("/users", adminHandler.ListUsers).Methods(http.MethodGet)

	// Health check endpoint (no session)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
