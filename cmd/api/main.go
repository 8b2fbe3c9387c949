package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"tasklane.org/internal/auth"
	"tasklane.org/internal/config"
	"tasklane.org/internal/httpapi"
	"tasklane.org/internal/obs"
	"tasklane.org/internal/todo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	obs.Init()
	obs.InitBuildInfo(cfg.Version, cfg.Commit)

	// DB connection when a DSN is set; otherwise in-memory stores (dev mode)
	var (
		db        *sql.DB
		authStore auth.Store
		todoStore todo.Store
	)
	if cfg.PGDSN != "" {
		db, err = sql.Open("pgx", cfg.PGDSN)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)
		authStore = auth.NewPGStore(db)
		todoStore = todo.NewPGStore(db)
	} else {
		log.Println("no TASKLANE_PG_DSN set, using in-memory stores")
		authStore = auth.NewMemStore()
		todoStore = todo.NewMemStore()
	}

	codec, err := auth.NewCodec(cfg.AuthSecret, auth.WithAccessTTL(cfg.AccessTTL))
	if err != nil {
		log.Fatalf("token codec: %v", err)
	}
	authSvc, err := auth.NewService(authStore, codec)
	if err != nil {
		log.Fatalf("auth service: %v", err)
	}
	todoSvc, err := todo.NewService(todoStore)
	if err != nil {
		log.Fatalf("todo service: %v", err)
	}

	api := httpapi.New(httpapi.ReadyProbe{DB: db}, cfg.Version, authSvc, codec, todoSvc)
	api.SetRateLimit(cfg.RateBurst, cfg.RatePerSec)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting tasklane-api %s on %s", cfg.Version, srv.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
	if db != nil {
		_ = db.Close()
	}
	log.Println("Stopped")
}
