package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "recruitmail/docs"
	"recruitmail/internal/delivery/http/controllers"
	"recruitmail/internal/delivery/http/middleware"
	"recruitmail/internal/domain"
)

// RouterDeps holds the controllers and auth port the router wires together.
type RouterDeps struct {
	Templates *controllers.TemplateController
	Emails    *controllers.EmailController
	Health    *controllers.HealthController
	Verifier  domain.TokenVerifier
	Logger    *slog.Logger
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(deps.Verifier, deps.Logger)

	mux.HandleFunc("GET /health", deps.Health.Health)

	// Templates
	mux.HandleFunc("GET /templates", deps.Templates.ListTemplates)
	mux.HandleFunc("GET /templates/{templateID}", deps.Templates.GetTemplate)
	mux.HandleFunc("GET /templates/{templateID}/preview", deps.Templates.PreviewTemplateQuery)
	mux.HandleFunc("POST /templates/{templateID}/preview", deps.Templates.PreviewTemplate)

	// Emails
	mux.HandleFunc("POST /emails", requireAuth(deps.Emails.SendEmail))
	mux.HandleFunc("GET /emails", requireAuth(deps.Emails.ListDeliveries))
	mux.HandleFunc("GET /emails/{deliveryID}", requireAuth(deps.Emails.GetDelivery))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with request id, CORS and request logging.
func NewHandler(deps RouterDeps, allowedOrigins []string) http.Handler {
	var h http.Handler = NewRouter(deps)
	h = middleware.CORS(allowedOrigins, h)
	h = middleware.LoggingMiddleware(deps.Logger, h)
	return middleware.RequestID(h)
}
