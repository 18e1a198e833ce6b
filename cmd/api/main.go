package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/koperasindo/koperasi-api/internal/config"
	"github.com/koperasindo/koperasi-api/internal/handler"
	"github.com/koperasindo/koperasi-api/internal/middleware"
	"github.com/koperasindo/koperasi-api/internal/repository"
	"github.com/koperasindo/koperasi-api/internal/seed"
	"github.com/koperasindo/koperasi-api/internal/service"
	"github.com/koperasindo/koperasi-api/internal/utils"
)

// main is the application entrypoint for the koperasi registry API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting koperasi api")

	utils.SetJWTSecret(cfg.JWTSecret)

	// 3. Load seed datasets
	provinces, cities, subdistricts, err := seed.Regions()
	if err != nil {
		log.Error().Err(err).Msg("region seed load failed")
		fmt.Fprintf(os.Stderr, "region seed load failed: %v\n", err)
		os.Exit(1)
	}
	users, err := seed.Users()
	if err != nil {
		log.Error().Err(err).Msg("user seed load failed")
		fmt.Fprintf(os.Stderr, "user seed load failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().
		Int("provinces", len(provinces)).
		Int("cities", len(cities)).
		Int("subdistricts", len(subdistricts)).
		Msg("seed datasets loaded")

	// 4. Initialize repositories
	opts := repository.Options{
		Latency:       cfg.Store.Latency,
		CascadeDelete: cfg.Store.DeletePolicy == config.DeleteCascade,
	}
	regionRepo := repository.NewRegionRepository(opts, provinces, cities, subdistricts)
	coopRepo := repository.NewCooperativeRepository(opts, regionRepo, seed.Cooperatives())
	savingRepo := repository.NewReportRepository(opts, repository.SavingReports, coopRepo, seed.SavingReports())
	loanRepo := repository.NewReportRepository(opts, repository.LoanReports, coopRepo, seed.LoanReports())
	requestRepo := repository.NewRequestRepository(opts, coopRepo, seed.Requests())
	userRepo := repository.NewUserRepository(opts, users)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo)
	cascadeService := service.NewCascadeService(regionRepo, coopRepo)
	dashboardService := service.NewDashboardService(regionRepo, coopRepo, savingRepo, loanRepo, requestRepo, userRepo)

	// 6. Initialize handlers
	healthHandler := handler.NewHealthHandler()
	authHandler := handler.NewAuthHandler(authService)
	regionHandler := handler.NewRegionHandler(regionRepo, cascadeService)
	coopHandler := handler.NewCooperativeHandler(coopRepo)
	savingHandler := handler.NewReportHandler(savingRepo, repository.SavingReports)
	loanHandler := handler.NewReportHandler(loanRepo, repository.LoanReports)
	requestHandler := handler.NewRequestHandler(requestRepo)
	userHandler := handler.NewUserHandler(userRepo, authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// 7. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	jwtMw := middleware.NewJWTMiddleware()

	v1 := router.Group("/v1")
	{
		v1.GET("/health", healthHandler.Handle)
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)

		authed := v1.Group("")
		authed.Use(jwtMw.Handle())
		{
			// Cascade reads for dependent selection inputs
			authed.GET("/provinces/:id/cities", regionHandler.CitiesOfProvince)
			authed.GET("/cities/:id/subdistricts", regionHandler.SubdistrictsOfCity)
			authed.GET("/subdistricts/:id/cooperatives", regionHandler.CooperativesOfSubdistrict)

			// Listings and single-record reads
			authed.GET("/provinces", regionHandler.ListProvinces)
			authed.GET("/provinces/:id", regionHandler.GetProvince)
			authed.GET("/cities", regionHandler.ListCities)
			authed.GET("/cities/:id", regionHandler.GetCity)
			authed.GET("/subdistricts", regionHandler.ListSubdistricts)
			authed.GET("/subdistricts/:id", regionHandler.GetSubdistrict)
			authed.GET("/cooperatives", coopHandler.List)
			authed.GET("/cooperatives/:id", coopHandler.Get)

			// Ledgers
			authed.GET("/reports/savings", savingHandler.List)
			authed.POST("/reports/savings", savingHandler.Create)
			authed.GET("/reports/savings/:id", savingHandler.Get)
			authed.PUT("/reports/savings/:id", savingHandler.Update)
			authed.DELETE("/reports/savings/:id", savingHandler.Delete)
			authed.GET("/reports/loans", loanHandler.List)
			authed.POST("/reports/loans", loanHandler.Create)
			authed.GET("/reports/loans/:id", loanHandler.Get)
			authed.PUT("/reports/loans/:id", loanHandler.Update)
			authed.DELETE("/reports/loans/:id", loanHandler.Delete)

			// Application requests
			authed.GET("/requests", requestHandler.List)
			authed.POST("/requests", requestHandler.Create)
			authed.GET("/requests/:id", requestHandler.Get)

			// Dashboard
			authed.GET("/dashboard/summary", dashboardHandler.Summary)

			admin := authed.Group("")
			admin.Use(jwtMw.RequireAdmin())
			{
				admin.POST("/provinces", regionHandler.CreateProvince)
				admin.PUT("/provinces/:id", regionHandler.UpdateProvince)
				admin.DELETE("/provinces/:id", regionHandler.DeleteProvince)
				admin.POST("/cities", regionHandler.CreateCity)
				admin.PUT("/cities/:id", regionHandler.UpdateCity)
				admin.DELETE("/cities/:id", regionHandler.DeleteCity)
				admin.POST("/subdistricts", regionHandler.CreateSubdistrict)
				admin.PUT("/subdistricts/:id", regionHandler.UpdateSubdistrict)
				admin.DELETE("/subdistricts/:id", regionHandler.DeleteSubdistrict)
				admin.POST("/cooperatives", coopHandler.Create)
				admin.PUT("/cooperatives/:id", coopHandler.Update)
				admin.DELETE("/cooperatives/:id", coopHandler.Delete)

				admin.GET("/users", userHandler.List)
				admin.GET("/users/:id", userHandler.Get)
				admin.POST("/users", userHandler.Create)
				admin.PUT("/users/:id", userHandler.Update)
				admin.DELETE("/users/:id", userHandler.Delete)

				admin.PATCH("/requests/:id/status", requestHandler.UpdateStatus)
				admin.DELETE("/requests/:id", requestHandler.Delete)
			}
		}
	}

	// 8. Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
