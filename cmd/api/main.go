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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	eventadp "creditledger/internal/adapter/event"
	httpadp "creditledger/internal/adapter/http"
	idem "creditledger/internal/adapter/middleware"
	"creditledger/internal/adapter/repository/mysql"
	"creditledger/internal/config"
	"creditledger/internal/infrastructure/cache"
	"creditledger/internal/infrastructure/db"
	"creditledger/internal/infrastructure/logging"
	"creditledger/internal/infrastructure/metrics"
	"creditledger/internal/usecase/ledger"
)

func main() {
	cfg := config.Load()
	logOut := logging.Setup(cfg.LogFile)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer sqlDB.Close()
	if cfg.AutoMigrate {
		if err := mysql.Migrate(gdb); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	uc := ledger.NewUsecase(
		mysql.NewGormUoW(gdb),
		mysql.NewRepos(gdb),
		ledger.WithDurationUnit(cfg.LoanDurationUnit),
		ledger.WithPublisher(eventadp.NewRedisPublisher(rdb, cfg.EventsChannel)),
		ledger.WithObserver(metrics.NewLedger(reg)),
	)

	h := httpadp.NewHandler(
		httpadp.NamedCheck{Name: "db", Pinger: sqlDB},
		httpadp.NamedCheck{Name: "redis", Pinger: httpadp.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})},
	)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Output: logOut}), middleware.Recover())

	httpadp.Register(e, h, httpadp.NewLedgerHandler(uc), idem.IdempotencyMiddleware(rdb, cfg.IdempotencyTTL()))
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.AppPort
	go func() {
		log.Printf("listening on %s (db=%s, duration unit=%s)", addr, cfg.DBDriver, cfg.LoanDurationUnit)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
