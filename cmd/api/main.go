package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexialg05/tasty-operations-manager/internal/config"
	"github.com/alexialg05/tasty-operations-manager/internal/fixtures"
	appHTTP "github.com/alexialg05/tasty-operations-manager/internal/handler/http"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/clock"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/database"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/jwt"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/oauth"
	"github.com/alexialg05/tasty-operations-manager/internal/repository/memory"
	"github.com/alexialg05/tasty-operations-manager/internal/repository/postgresql"
	authService "github.com/alexialg05/tasty-operations-manager/internal/service/auth"
	dashboardService "github.com/alexialg05/tasty-operations-manager/internal/service/dashboard"
	employeeService "github.com/alexialg05/tasty-operations-manager/internal/service/employee"
	inventoryService "github.com/alexialg05/tasty-operations-manager/internal/service/inventory"
	salesService "github.com/alexialg05/tasty-operations-manager/internal/service/sales"
	schedulingService "github.com/alexialg05/tasty-operations-manager/internal/service/scheduling"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	clk := clock.System()

	var repos fixtures.Repositories
	switch cfg.Storage.Driver {
	case "memory":
		store := memory.NewStore(clk)
		repos = fixtures.Repositories{
			Users:     memory.NewUserRepository(store),
			Employees: memory.NewEmployeeRepository(store),
			Schedules: memory.NewScheduleRepository(store),
			Products:  memory.NewProductRepository(store),
			Sales:     memory.NewSaleRepository(store),
		}
		if cfg.Storage.SeedDemo {
			if err := fixtures.SeedDemo(context.Background(), repos, clk); err != nil {
				log.Fatal("Failed to seed demo data: ", err)
			}
		}
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Error connecting to database: ", err)
		}
		defer db.Close()
		repos = fixtures.Repositories{
			Users:     postgresql.NewUserRepository(db),
			Employees: postgresql.NewEmployeeRepository(db),
			Schedules: postgresql.NewScheduleRepository(db),
			Products:  postgresql.NewProductRepository(db),
			Sales:     postgresql.NewSaleRepository(db),
		}
	}

	weekStart := cfg.WeekStartDay()

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(repos.Users, jwtService)
	employeeSvc := employeeService.NewEmployeeService(repos.Employees, repos.Schedules, clk)
	schedulingSvc := schedulingService.NewSchedulingService(repos.Schedules, clk, weekStart)
	inventorySvc := inventoryService.NewInventoryService(repos.Products)
	salesSvc := salesService.NewSalesService(repos.Sales, repos.Products, clk, weekStart)
	dashboardSvc := dashboardService.NewDashboardService(repos.Sales, repos.Products, repos.Employees, clk, weekStart)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
			LogLevel:    logLevel(cfg.App.LogLevel),
		},
		jwtService,
		appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewScheduleHandler(schedulingSvc),
		appHTTP.NewInventoryHandler(inventorySvc),
		appHTTP.NewSalesHandler(salesSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening",
			slog.Int("port", cfg.App.Port),
			slog.String("storage_driver", cfg.Storage.Driver),
			slog.String("env", cfg.App.Env),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
