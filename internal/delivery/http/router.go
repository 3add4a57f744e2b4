package http

import (
	"log/slog"
	"net/http"

	"esummit/internal/delivery/http/controllers"
	"esummit/internal/delivery/http/middleware"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the route handlers mounted by NewRouter.
type Controllers struct {
	System     *controllers.SystemController
	Speakers   *controllers.SpeakerController
	Events     *controllers.EventController
	Tickets    *controllers.TicketController
	Highlights *controllers.HighlightController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers, metricsHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", c.System.Root)
	mux.HandleFunc("GET /test", c.System.Test)

	// API Routes
	mux.HandleFunc("POST /api/speakers", c.Speakers.CreateSpeaker)
	mux.HandleFunc("GET /api/speakers", c.Speakers.ListSpeakers)
	mux.HandleFunc("POST /api/events", c.Events.CreateEvent)
	mux.HandleFunc("GET /api/events", c.Events.ListEvents)
	mux.HandleFunc("POST /api/tickets", c.Tickets.CreateTicketOrder)
	mux.HandleFunc("GET /api/tickets", c.Tickets.ListTicketOrders)
	mux.HandleFunc("POST /api/highlights", c.Highlights.CreateHighlight)
	mux.HandleFunc("GET /api/highlights", c.Highlights.ListHighlights)

	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// WithMiddleware wraps the router. Order from the outside: request id, CORS, logging, metrics.
// Metrics sits next to the mux so it can read the matched route pattern.
func WithMiddleware(mux *http.ServeMux, logger *slog.Logger, allowedOrigins []string, metrics *middleware.Metrics) http.Handler {
	var h http.Handler = mux
	if metrics != nil {
		h = metrics.Middleware(h)
	}
	h = middleware.LoggingMiddleware(logger, h)
	h = middleware.CORS(allowedOrigins, h)
	return middleware.RequestID(h)
}
