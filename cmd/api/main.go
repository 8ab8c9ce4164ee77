package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpadp "loan-request-service/internal/adapter/http"
	identityadp "loan-request-service/internal/adapter/identity"
	idem "loan-request-service/internal/adapter/middleware"
	notifyadp "loan-request-service/internal/adapter/notify"
	"loan-request-service/internal/adapter/repository/mysql"
	"loan-request-service/internal/config"
	"loan-request-service/internal/domain/identity"
	"loan-request-service/internal/domain/loantype"
	"loan-request-service/internal/domain/notify"
	"loan-request-service/internal/domain/request"
	"loan-request-service/internal/domain/review"
	"loan-request-service/internal/infrastructure/cache"
	"loan-request-service/internal/infrastructure/db"
	"loan-request-service/internal/infrastructure/metrics"
	uc "loan-request-service/internal/usecase/request"
)

const (
	notifyStreamMaxLen = 10000
	shutdownTimeout    = 10 * time.Second
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&loantype.LoanType{}, &request.LoanRequest{}, &review.Review{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	var ids identity.Gateway
	switch cfg.IdentityMode {
	case config.IdentityModeJWT:
		ids = identityadp.NewJWTGateway(cfg.JWTSecret, cfg.ReviewerRole)
	default:
		ids = identityadp.NewHTTPGateway(cfg.IdentityBaseURL, cfg.IdentityTimeout())
	}

	var notifier notify.Notifier = notifyadp.LogNotifier{}
	if cfg.NotifyEnabled {
		notifier = notifyadp.NewStreamNotifier(rdb, cfg.NotifyStream, notifyStreamMaxLen)
	}

	usecase := uc.NewUsecase(
		mysql.NewRequestRepository(gdb),
		mysql.NewLoanTypeRepository(gdb),
		ids,
		notifier,
		mysql.NewGormUoW(gdb),
	).WithMetrics(m)

	h := httpadp.NewHandler(reg)
	lh := httpadp.NewLoanRequestHandler(usecase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	// routes
	e.GET("/health", h.Health)
	e.GET("/metrics", h.Metrics)
	lh.Register(e.Group("/api/v1"), idem.Idempotency(rdb, cfg.IdempTTL()))

	addr := ":" + cfg.AppPort
	go func() {
		log.Printf("listening on %s (identity=%s, notify=%t)", addr, cfg.IdentityMode, cfg.NotifyEnabled)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
