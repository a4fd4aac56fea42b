package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookhive/lending-service/lending/config"
	"github.com/bookhive/lending-service/lending/internal/events"
	"github.com/bookhive/lending-service/lending/internal/handler"
	"github.com/bookhive/lending-service/lending/internal/repository"
	"github.com/bookhive/lending-service/lending/internal/server"
	"github.com/bookhive/lending-service/lending/internal/service"
	"github.com/bookhive/lending-service/lending/migrations"
	"github.com/bookhive/lending-service/pkg/kafka"
	"github.com/bookhive/lending-service/pkg/logger"
	"github.com/bookhive/lending-service/pkg/postgres"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "lending")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}
	sink := events.NewKafkaSink(producer, log)

	svc := service.NewService(repo, repo, repo, sink, log)

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.LendingConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run()
	})
	g.Go(func() error {
		return kafka.Consume(gctx, consumer, handler.NewConsumer(repo.RecordLoanMade, log), kafka.LoanTopic)
	})

	<-gctx.Done()
	log.Debug("Graceful shutdown")

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if err := consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	if err := producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	if err := g.Wait(); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
