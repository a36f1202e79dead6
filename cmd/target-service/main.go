package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/app/background"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/config"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/delivery/http/handlers"
	publisher "github.com/talhaqureshi123/sales-rep-hub--sub001/internal/infrastructure/kafka"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/infrastructure/metrics"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/infrastructure/migrate"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/infrastructure/postgres"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/infrastructure/postgres/repository"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/usecase"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/usecase/progress"
	"github.com/talhaqureshi123/sales-rep-hub--sub001/internal/usecase/reconcile"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.TargetDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.TargetDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v\n", err)
		}
	}

	// Reference timezone for target windows
	loc, err := time.LoadLocation(cfg.Reconcile.Timezone)
	if err != nil {
		log.Fatalf("failed to load timezone %q: %v\n", cfg.Reconcile.Timezone, err)
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	targetPublisher := publisher.NewKafkaPublisher(brokers, "target-events")
	sub := publisher.NewDefaultKafkaSubscriber(brokers)

	// Init target repo
	targetRepo := repository.NewDefaultTargetRepository(db)
	// Init order repo (read-only)
	orderRepo := repository.NewDefaultOrderRepository(db)

	targetMetrics := metrics.NewTargetMetrics()

	// Init calculator and usecases
	calculator := progress.NewDefaultProgressCalculator(orderRepo, loc)
	reconcileUC := reconcile.NewDefaultReconcileUsecase(
		targetRepo,
		calculator,
		targetPublisher,
		targetMetrics,
		cfg.Reconcile.Workers,
		loc,
	)
	targetUC := usecase.NewDefaultTargetUsecase(targetRepo, loc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Scheduled reconcile, expired sweep, approval event consumer
	tasks := background.NewBackgroundTasks(
		reconcileUC,
		targetUC,
		sub,
		targetMetrics,
		time.Duration(cfg.Reconcile.IntervalMinutes)*time.Minute,
	)
	tasks.StartAll(ctx)

	mux := handlers.NewRouter(
		handlers.NewReconcileHandler(reconcileUC),
		handlers.NewTargetHandler(targetUC),
	)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	log.Printf("target service started on %s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
