package app

import (
	"github.com/gorilla/sessions"

	"github.com/SamWeninger/shopping-assistant/pkg/cache"
	"github.com/SamWeninger/shopping-assistant/pkg/config"
	"github.com/SamWeninger/shopping-assistant/pkg/database"
	"github.com/SamWeninger/shopping-assistant/pkg/events"
	"github.com/SamWeninger/shopping-assistant/pkg/logger"
	"github.com/SamWeninger/shopping-assistant/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Passed to each bounded context's constructor during startup.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context
// methods and trace_id, span_id, request_id and user_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "adding item", "list_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config         *config.Config
	Db             *database.Database // nil unless STORE_BACKEND=postgres
	Logger         logger.Logger
	EventBus       *events.EventBus // nil when STORE_BACKEND=memory
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient // nil when TEMPORAL_ENABLED=false
	SessionStore   sessions.Store            // Redis-backed session store; nil in worker process
}
