package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bookhive/bookreview-service/config"
	"github.com/bookhive/bookreview-service/internal/handler"
	"github.com/bookhive/bookreview-service/internal/repository"
	"github.com/bookhive/bookreview-service/internal/server"
	"github.com/bookhive/bookreview-service/internal/service"
	"github.com/bookhive/bookreview-service/migrations"
	"github.com/bookhive/bookreview-service/pkg/auth"
	"github.com/bookhive/bookreview-service/pkg/kafka"
	"github.com/bookhive/bookreview-service/pkg/logger"
	"github.com/bookhive/bookreview-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "bookreview")
	if cfg.JWTKey != "" {
		auth.JWTKey = []byte(cfg.JWTKey)
	}

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
	svc := service.NewService(repo, service.NewEventLog(producer), log)

	consumeCtx, stopConsume := context.WithCancel(context.Background())
	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.EventsConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}
	go kafka.Consume(consumeCtx, consumer, handler.NewConsumer(svc.RecordEvent, log), kafka.EventsTopic)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	stopConsume()
	if err = consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	if err = producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
