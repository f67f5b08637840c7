package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"gatecheck/internal/audit"
	auditmetrics "gatecheck/internal/audit/metrics"
	"gatecheck/internal/checkin/code"
	"gatecheck/internal/checkin/handler"
	checkinmetrics "gatecheck/internal/checkin/metrics"
	"gatecheck/internal/checkin/ports"
	"gatecheck/internal/checkin/service"
	failedStore "gatecheck/internal/checkin/store/failed"
	ledgerStore "gatecheck/internal/checkin/store/ledger"
	"gatecheck/internal/directory"
	httpapi "gatecheck/internal/http"
	jwttoken "gatecheck/internal/jwt_token"
	"gatecheck/internal/platform/config"
	"gatecheck/internal/platform/httpserver"
	"gatecheck/internal/platform/logger"
	redisclient "gatecheck/internal/platform/redis"
)

// main wires the process: stores by configuration, the auditor pipeline, the
// check-in service, and the HTTP surface. Business logic lives in internal
// packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	var (
		ledger        ports.Ledger
		failed        audit.Store
		attempts      ports.FailedAttemptLister
		registrations ports.RegistrationDirectory
		sessions      ports.SessionDirectory
		db            *sql.DB
	)

	if cfg.Postgres.URL != "" {
		var err error
		db, err = sql.Open("postgres", cfg.Postgres.URL)
		if err != nil {
			log.Error("failed to open postgres", "error", err)
			os.Exit(1)
		}
		if err := db.PingContext(ctx); err != nil {
			log.Error("postgres unreachable", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		ledger = ledgerStore.NewPostgres(db)
		pgFailed := failedStore.NewPostgres(db)
		failed, attempts = pgFailed, pgFailed
		registrations = directory.NewPostgresRegistrations(db)
		sessions = directory.NewPostgresSessions(db)
		log.Info("using postgres stores")
	} else {
		memDir := directory.NewInMemory()
		sessionID, regs := directory.Seed(memDir)
		memFailed := failedStore.NewInMemory()
		ledger = ledgerStore.NewInMemory()
		failed, attempts = memFailed, memFailed
		registrations = memDir
		sessions = memDir.Sessions()
		log.Info("using in-memory stores with demo seed",
			"session_id", sessionID.String(),
			"registrations", len(regs),
		)
	}

	redisCli, err := redisclient.New(cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	if redisCli != nil {
		defer redisCli.Close()
		registrations = directory.NewCachedRegistrations(registrations, redisCli.Client, cfg.Redis.CacheTTL, log)
		sessions = directory.NewCachedSessions(sessions, redisCli.Client, cfg.Redis.CacheTTL, log)
		log.Info("directory cache enabled", "ttl", cfg.Redis.CacheTTL.String())
	}

	auditOpts := []audit.Option{audit.WithMetrics(auditmetrics.New())}
	sink, err := audit.NewKafkaSink(cfg.Kafka, log)
	if err != nil {
		log.Error("failed to connect to kafka", "error", err)
		os.Exit(1)
	}
	if sink != nil {
		auditOpts = append(auditOpts, audit.WithSink(sink))
		log.Info("failed-attempt kafka mirror enabled", "topic", cfg.Kafka.Topic)
	}
	auditor := audit.New(failed, log, cfg.Audit.BufferSize, auditOpts...)

	svc := service.New(
		registrations,
		sessions,
		ledger,
		auditor,
		log,
		service.WithMetrics(checkinmetrics.New()),
		service.WithNormalizer(code.New(cfg.Checkin.MaxCodeLength)),
		service.WithWindowPolicy(service.WindowPolicy{
			EarlyCheckinLead: cfg.Checkin.EarlyCheckinLead,
			LateGracePeriod:  cfg.Checkin.LateGracePeriod,
		}),
		service.WithFailedAttempts(attempts),
	)

	jwtService := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	validator := jwttoken.NewJWTServiceAdapter(jwtService)

	health := map[string]httpapi.HealthChecker{}
	if db != nil {
		health["postgres"] = dbHealth{db}
	}
	if redisCli != nil {
		health["redis"] = redisCli
	}

	router := httpapi.NewRouter(handler.New(svc, log), validator, log, health)
	srv := httpserver.New(cfg.Server.Addr, router)

	go func() {
		log.Info("starting gatecheck", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}

	// Drain pending failed-attempt writes before closing the stores.
	auditor.Close()
	log.Info("shutdown complete")
}

type dbHealth struct {
	db *sql.DB
}

func (h dbHealth) Health(ctx context.Context) error {
	return h.db.PingContext(ctx)
}
