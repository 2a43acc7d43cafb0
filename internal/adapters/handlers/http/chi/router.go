package chi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"photodrop/internal/adapters/handlers/http/chi/v1/event"
	"photodrop/internal/adapters/handlers/http/chi/v1/photo"
	"photodrop/internal/config"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterDeps carries everything the router needs
type RouterDeps struct {
	Logger       *slog.Logger
	EventHandler *event.HandlerV1
	PhotoHandler *photo.HandlerV1
	RateLimit    config.RateLimitConfig
	Env          string
}

// NewRouter builds http.Handler with chi
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.RequestSize(15 << 20)) //15mb, photos come in the body

	if deps.Env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	rateLimited := RateLimitMiddleware(deps.RateLimit)

	r.Route("/api/v1/event", func(r chi.Router) {
		r.Mount("/", deps.EventHandler.Routes())
		r.Mount("/{accessToken}/photo", deps.PhotoHandler.Routes(rateLimited))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	})

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
