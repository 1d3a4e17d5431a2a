package http

import (
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"eventroster/internal/delivery/http/controllers"
	"eventroster/internal/delivery/http/middleware"
	"eventroster/internal/domain"
)

// RouterConfig holds what NewRouter needs besides the controllers.
type RouterConfig struct {
	Logger             *slog.Logger
	Verifier           domain.TokenVerifier
	CORSAllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes and wraps it with the
// request id, real ip, recovery, logging and CORS middleware.
func NewRouter(cfg RouterConfig, viewController *controllers.ViewController) http.Handler {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(cfg.Verifier, cfg.Logger)

	mux.HandleFunc("GET /health", controllers.Health)

	// Views
	mux.HandleFunc("POST /views", auth(viewController.OpenView))
	mux.HandleFunc("GET /views/{viewID}", auth(viewController.GetView))
	mux.HandleFunc("DELETE /views/{viewID}", auth(viewController.CloseView))
	mux.HandleFunc("PUT /views/{viewID}/event", auth(viewController.ChangeEvent))
	mux.HandleFunc("PUT /views/{viewID}/search", auth(viewController.SetSearch))
	mux.HandleFunc("DELETE /views/{viewID}/search", auth(viewController.ClearSearch))
	mux.HandleFunc("DELETE /views/{viewID}/inscriptions/{inscriptionID}", auth(viewController.CancelInscription))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(cfg.Logger, handler)
	handler = chimiddleware.Recoverer(handler)
	handler = chimiddleware.RealIP(handler)
	handler = chimiddleware.RequestID(handler)
	return handler
}
