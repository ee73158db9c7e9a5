// Package main implements the REST service behind the event-ticketing
// application: event browsing, ticket purchase, subscriptions with a
// cancellation grace period, venue scheduling and sales reporting.
//
//	@title			Ticketing Service API
//	@version		1.0
//	@description	API for events, tickets, subscriptions, venues and rentals.
//	@host			localhost:8080
//	@BasePath		/
//	@schemes		http
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"ticketing-service/internal/auth"
	"ticketing-service/internal/config"
	"ticketing-service/internal/handler"
	"ticketing-service/internal/model"
	"ticketing-service/internal/repository"
	"ticketing-service/internal/subscription"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file, using environment or config.yaml")
	}

	var (
		dsn          string
		port         = 8080
		jwtSecret    = os.Getenv("JWT_SECRET")
		tokenTTL     = 24 * time.Hour
		allowOrigins = os.Getenv("FRONTEND_ORIGIN")
	)

	if os.Getenv("DB_HOST") != "" {
		dsn = buildDSNFromEnv()
		if p := os.Getenv("SERVER_PORT"); p != "" {
			parsed, err := strconv.Atoi(p)
			if err != nil {
				slog.Error("invalid SERVER_PORT", "value", p)
				os.Exit(1)
			}
			port = parsed
		}
	} else {
		cfg, err := config.LoadConfig("config/config.yaml")
		if err != nil {
			slog.Error("load config.yaml", "error", err)
			os.Exit(1)
		}
		dsn = buildDSNFromConfig(cfg.Database)
		port = cfg.Server.Port
		if jwtSecret == "" {
			jwtSecret = cfg.Auth.JWTSecret
		}
		tokenTTL = time.Duration(cfg.Auth.TokenTTLHrs) * time.Hour
		if allowOrigins == "" {
			allowOrigins = cfg.Auth.AllowOrigins
		}
	}

	if jwtSecret == "" {
		slog.Error("JWT secret is not configured")
		os.Exit(1)
	}
	if allowOrigins == "" {
		allowOrigins = "*"
	}

	db, err := repository.NewPostgresDB(dsn)
	if err != nil {
		slog.Error("init database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	eventRepo := repository.NewEventRepository(db)
	ticketRepo := repository.NewTicketRepository(db)

	tokens := auth.NewService(jwtSecret, tokenTTL)
	paymentCache := subscription.NewPaymentCache(subRepo.Payments)

	authHandler := handler.NewAuthHandler(userRepo, tokens)
	subHandler := handler.NewSubscriptionHandler(subRepo, paymentCache)
	venueHandler := handler.NewVenueHandler(venueRepo)
	rentalHandler := handler.NewRentalHandler(bookingRepo)
	eventHandler := handler.NewEventHandler(eventRepo)
	ticketHandler := handler.NewTicketHandler(ticketRepo, eventRepo)

	r := mux.NewRouter()
	r.Use(handler.LogRequest)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		handler.SendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/events", eventHandler.List).Methods("GET")
	api.HandleFunc("/events/{id}", eventHandler.Get).Methods("GET")

	// session-gated routes
	subs := api.PathPrefix("/subscriptions").Subrouter()
	subs.Use(tokens.Require)
	subs.HandleFunc("/current", subHandler.GetCurrent).Methods("GET")
	subs.HandleFunc("/plans", subHandler.ListPlans).Methods("GET")
	subs.HandleFunc("/cancel", subHandler.Cancel).Methods("POST")
	subs.HandleFunc("/{id}/payments", subHandler.ListPayments).Methods("GET")
	subs.HandleFunc("", subHandler.Purchase).Methods("POST")

	tickets := api.PathPrefix("/tickets").Subrouter()
	tickets.Use(tokens.Require)
	tickets.HandleFunc("", ticketHandler.Purchase).Methods("POST")
	tickets.HandleFunc("", ticketHandler.List).Methods("GET")

	venues := api.PathPrefix("/venues").Subrouter()
	venues.Use(tokens.Require, auth.RequireRole(model.RoleVenueOwner))
	venues.HandleFunc("", venueHandler.List).Methods("GET")

	rentals := api.PathPrefix("/rentals").Subrouter()
	rentals.Use(tokens.Require, auth.RequireRole(model.RoleVenueOwner))
	rentals.HandleFunc("", rentalHandler.List).Methods("GET")
	rentals.HandleFunc("/schedule", rentalHandler.Schedule).Methods("GET")

	reports := api.PathPrefix("/reports").Subrouter()
	reports.Use(tokens.Require, auth.RequireRole(model.RoleOrganizer))
	reports.HandleFunc("/sales", ticketHandler.SalesReport).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{allowOrigins},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: allowOrigins != "*",
	})

	addr := fmt.Sprintf(":%d", port)
	server := &http.Server{
		Addr:         addr,
		Handler:      c.Handler(r),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	slog.Info("server listening", "addr", addr)
	if err := server.ListenAndServe(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func buildDSNFromEnv() string {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	sslMode := os.Getenv("DB_SSL_MODE")
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslMode)
}

func buildDSNFromConfig(dbCfg config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host, dbCfg.Port, dbCfg.User, dbCfg.Password, dbCfg.Name, dbCfg.SSLMode)
}
