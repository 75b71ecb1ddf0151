package http

import (
	"log/slog"
	"os"

	"github.com/alexialg05/tasty-operations-manager/internal/handler/http/middleware"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env         string
	FrontendURL string
	LogLevel    slog.Level
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	scheduleHandler ScheduleHandler,
	inventoryHandler InventoryHandler,
	salesHandler SalesHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "tasty-operations-manager"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Get("/login/oauth/google", authHandler.LoginWithGoogle)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", authHandler.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.Search)
				r.Get("/positions", employeeHandler.ListPositions)
				r.Get("/{employeeID}", employeeHandler.GetByID)
				r.Get("/{employeeID}/schedules", scheduleHandler.ListForEmployee)

				// Staff management only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaffManagement)
					r.Post("/", employeeHandler.Create)
					r.Post("/{employeeID}/schedules", scheduleHandler.Add)
					r.Delete("/{employeeID}/schedules/{scheduleID}", scheduleHandler.Remove)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/day", scheduleHandler.ListForDay)
				r.Get("/week", scheduleHandler.WeekView)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", inventoryHandler.List)
				r.Get("/categories", inventoryHandler.ListCategories)
				r.Get("/suppliers", inventoryHandler.ListSuppliers)
				r.Get("/{productID}", inventoryHandler.GetByID)

				// Inventory management only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireInventory)
					r.Post("/", inventoryHandler.Create)
					r.Post("/{productID}/stock", inventoryHandler.AdjustStock)
				})
			})

			r.Route("/sales", func(r chi.Router) {
				r.Get("/", salesHandler.List)
				r.Get("/{saleID}", salesHandler.GetByID)

				// Sales access only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSales)
					r.Post("/", salesHandler.Record)
				})
			})

			r.Get("/dashboard/stats", dashboardHandler.GetStats)
		})
	})

	return r
}
