package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andrebarceloschagas/sistema/api/controllers"
	"github.com/andrebarceloschagas/sistema/api/middleware"
	"github.com/andrebarceloschagas/sistema/internal/auth"
	listing "github.com/andrebarceloschagas/sistema/internal/listings"
	vehicle "github.com/andrebarceloschagas/sistema/internal/vehicles"
	"github.com/andrebarceloschagas/sistema/pkg/auth/session"
	"github.com/andrebarceloschagas/sistema/pkg/config"
	"github.com/andrebarceloschagas/sistema/pkg/logger"
	"github.com/andrebarceloschagas/sistema/pkg/redis"
)

// Deps carries everything the HTTP surface needs. cmd/api owns construction;
// the router only wires.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DBPinger       controllers.Pinger
	RedisClient    *redis.Client
	SessionManager session.AccessSessionChecker
	AuthService    auth.Service
	ListingService listing.Service
	VehicleService vehicle.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"postgres": deps.DBPinger,
			"redis":    redisPinger(deps.RedisClient),
		}))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.RedisClient, logg)).Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, deps.RedisClient, logg)).Post("/register", controllers.AuthRegister(deps.AuthService, logg))
		r.With(middleware.Auth(cfg.JWT, deps.SessionManager, logg)).Post("/logout", controllers.AuthLogout(deps.AuthService, logg))
	})

	r.Route("/api/v1/anuncios", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))
		r.Get("/", controllers.ListingsList(deps.ListingService, cfg.Listings, logg))
		r.Get("/{listingID}", controllers.ListingsDetail(deps.ListingService, logg))
		r.Post("/", controllers.ListingsCreate(deps.ListingService, logg))
		r.Put("/{listingID}", controllers.ListingsUpdate(deps.ListingService, logg))
		r.Delete("/{listingID}", controllers.ListingsDelete(deps.ListingService, logg))
		r.Post("/{listingID}/marcar-vendido", controllers.ListingsMarkSold(deps.ListingService, logg))
		r.Post("/{listingID}/reativar", controllers.ListingsReactivate(deps.ListingService, logg))
	})

	r.Route("/api/v1/veiculos", func(r chi.Router) {
		r.Get("/opcoes", controllers.VehiclesOptions(deps.VehicleService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))
			r.Get("/", controllers.VehiclesList(deps.VehicleService, cfg.Listings, logg))
			r.Get("/{vehicleID}", controllers.VehiclesDetail(deps.VehicleService, logg))
			r.Post("/", controllers.VehiclesCreate(deps.VehicleService, logg))
			r.Put("/{vehicleID}", controllers.VehiclesUpdate(deps.VehicleService, logg))
			r.Delete("/{vehicleID}", controllers.VehiclesDelete(deps.VehicleService, logg))
		})
	})

	return r
}

// redisPinger keeps the readiness probe nil-safe when redis is not configured.
func redisPinger(client *redis.Client) controllers.Pinger {
	if client == nil {
		return nil
	}
	return client
}
