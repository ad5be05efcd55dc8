package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/washpoint/staffops/internal/config"
	"github.com/washpoint/staffops/internal/db"
	"github.com/washpoint/staffops/internal/logger"
	"github.com/washpoint/staffops/internal/outbox"
	"github.com/washpoint/staffops/internal/remote"
	"github.com/washpoint/staffops/internal/repository/postgresql"
	"github.com/washpoint/staffops/internal/server"
	"github.com/washpoint/staffops/internal/session"
	"github.com/washpoint/staffops/internal/store"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger := logger.New(cfg.LogLevel)
	defer zapLogger.Sync() //nolint:errcheck

	database, err := db.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	sess := session.New(cfg.SessionFile)
	if sess.Token() == "" {
		if token := os.Getenv("PLATFORM_TOKEN"); token != "" {
			if err := sess.SetSession(token, os.Getenv("PLATFORM_STAFF_ID")); err != nil {
				zapLogger.Warn("failed to persist platform session", zap.Error(err))
			}
		}
	}

	remoteClient := remote.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout, sess, zapLogger)

	historyRepo := postgresql.NewHistoryRepo(database)
	staffRepo := postgresql.NewStaffRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo(cfg.OutboxMaxAttempts)

	orderStore := store.New(remoteClient, historyRepo, zapLogger)
	go logNotifications(ctx, orderStore, zapLogger)

	var producer outbox.Producer
	if cfg.AuditOutput == "kafka" {
		producer = outbox.NewKafkaProducer(cfg.KafkaBrokers)
	} else {
		producer = outbox.NewConsoleProducer()
	}

	auditSink := outbox.NewSink(database, outboxRepo, cfg.AuditTopic)
	publisher := outbox.NewPublisher(database, outboxRepo, producer, outbox.PublisherConfig{
		PollInterval: cfg.OutboxPollInterval,
		BatchSize:    cfg.OutboxBatchSize,
		MaxAttempts:  cfg.OutboxMaxAttempts,
	}, zapLogger)

	auditManager := server.NewAuditManager(cfg.AuditWorkers, cfg.AuditBatchSize, cfg.AuditFlushInterval, auditSink)

	srv := server.New(orderStore, staffRepo, remoteClient, historyRepo, auditManager, zapLogger)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		publisher.Run(groupCtx)
		return nil
	})

	group.Go(func() error {
		return srv.Run(groupCtx, cfg.ListenPort)
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()

		publisher.Shutdown()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		zapLogger.Fatal("server stopped with error", zap.Error(err))
	}
	zapLogger.Info("staffops gateway stopped")
}

func logNotifications(ctx context.Context, orderStore *store.Store, zapLogger *zap.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-orderStore.Notifications():
			zapLogger.Warn("store notification",
				zap.String("operation", n.Operation),
				zap.String("message", n.Message),
				zap.Time("occurredAt", n.OccurredAt),
			)
		}
	}
}
