package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/linkvaultapp/linkvault/cliparse"
	"github.com/linkvaultapp/linkvault/db"
	"github.com/linkvaultapp/linkvault/middleware"
	"github.com/linkvaultapp/linkvault/router"
	"github.com/linkvaultapp/linkvault/store"
)

func main() {
	// Optional .env file for local development
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	dbConn, err := db.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Out-of-band admin promotion: flip the flag and exit without serving.
	if cfg.PromoteEmail != "" {
		profiles := store.NewProfileStore(dbConn)
		if err := profiles.Promote(cfg.PromoteEmail); err != nil {
			slog.Error("admin promotion failed", "email", cfg.PromoteEmail, "error", err)
			os.Exit(1)
		}
		slog.Info("admin promoted", "email", cfg.PromoteEmail)
		return
	}

	mux := router.NewRouter(dbConn, cfg)

	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
