package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"playerone/internal/delivery/http/controllers"
	"playerone/internal/delivery/http/helpers"
	"playerone/internal/delivery/http/middleware"
	"playerone/internal/domain"
)

// RouterDeps carries the controllers and auth plumbing the router wires together.
type RouterDeps struct {
	Logger        *slog.Logger
	Auth          *controllers.AuthController
	Events        *controllers.EventController
	Registrations *controllers.RegistrationController
	Health        *controllers.HealthController

	Verifier    domain.TokenVerifier
	Resolver    middleware.PrincipalResolver
	AuthLimiter *middleware.RateLimiter
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(d RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	authed := middleware.RequireAuth(d.Verifier, d.Resolver, d.Logger)
	anyUser := authed
	player := func(h http.HandlerFunc) http.HandlerFunc {
		return authed(middleware.RequireRole(domain.RolePlayer)(h))
	}
	organizer := func(h http.HandlerFunc) http.HandlerFunc {
		return authed(middleware.RequireRole(domain.RoleOrganizer, domain.RoleAdmin)(h))
	}
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return authed(middleware.RequireRole(domain.RoleAdmin)(h))
	}

	// Auth
	mux.HandleFunc("POST /api/auth/signup", d.AuthLimiter.Limit(d.Auth.SignUp))
	mux.HandleFunc("POST /api/auth/login", d.AuthLimiter.Limit(d.Auth.Login))
	mux.HandleFunc("GET /api/auth/me", anyUser(d.Auth.Me))

	// Organizer
	mux.HandleFunc("POST /api/organizer/events", organizer(d.Events.CreateEvent))
	mux.HandleFunc("GET /api/organizer/events", organizer(d.Events.ListMyEvents))
	mux.HandleFunc("GET /api/organizer/events/{eventID}", organizer(d.Events.GetEvent))
	mux.HandleFunc("PUT /api/organizer/events/{eventID}", organizer(d.Events.UpdateEvent))
	mux.HandleFunc("DELETE /api/organizer/events/{eventID}", organizer(d.Events.DeleteEvent))
	mux.HandleFunc("POST /api/organizer/events/{eventID}/publish", organizer(d.Events.PublishEvent))
	mux.HandleFunc("POST /api/organizer/events/{eventID}/cancel", organizer(d.Events.CancelEvent))
	mux.HandleFunc("GET /api/organizer/events/{eventID}/registrations", organizer(d.Registrations.ListEventRegistrations))
	mux.HandleFunc("GET /api/organizer/events/{eventID}/registrations/confirmed", organizer(d.Registrations.ListConfirmedRegistrations))

	// Public events
	mux.HandleFunc("GET /api/events/public", d.Events.ListPublicEvents)
	mux.HandleFunc("GET /api/events/upcoming", d.Events.ListUpcomingEvents)
	mux.HandleFunc("GET /api/events/search", d.Events.SearchEvents)
	mux.HandleFunc("GET /api/events/game/{gameName}", d.Events.ListEventsByGame)
	mux.HandleFunc("GET /api/events/code/{eventCode}", d.Events.GetEventByCode)
	mux.HandleFunc("GET /api/events/{eventID}", d.Events.GetEvent)

	// Registrations
	mux.HandleFunc("POST /api/events/{eventID}/register", player(d.Registrations.Register))
	mux.HandleFunc("GET /api/events/{eventID}/{action}", subresource(map[string]http.HandlerFunc{
		"is-registered": player(d.Registrations.IsRegistered),
	}))
	mux.HandleFunc("GET /api/registrations/me", player(d.Registrations.ListMyRegistrations))
	mux.HandleFunc("DELETE /api/registrations/{registrationID}", player(d.Registrations.CancelRegistration))
	mux.HandleFunc("GET /api/registrations/{registrationID}", anyUser(d.Registrations.GetRegistration))
	mux.HandleFunc("PUT /api/registrations/{registrationID}/confirm", organizer(d.Registrations.ConfirmRegistration))
	mux.HandleFunc("PUT /api/registrations/{registrationID}/reject", organizer(d.Registrations.RejectRegistration))

	// Admin
	mux.HandleFunc("GET /api/admin/events", admin(d.Events.ListAllEvents))

	mux.HandleFunc("GET /healthz", d.Health.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// subresource dispatches GET /api/events/{eventID}/{action}. A literal
// /api/events/{eventID}/is-registered pattern would overlap game/{gameName}
// and code/{eventCode} without either being more specific, which ServeMux
// rejects at registration.
func subresource(routes map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := routes[r.PathValue("action")]; ok {
			h(w, r)
			return
		}
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "route not found")
	}
}

// NewHandler wraps the router with the global middleware chain.
func NewHandler(mux http.Handler, logger *slog.Logger, allowedOrigins []string) http.Handler {
	return middleware.CORS(allowedOrigins, middleware.RequestID(middleware.LoggingMiddleware(logger, mux)))
}
