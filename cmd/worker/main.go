package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/spacesedan/annoflow/config"
	"github.com/spacesedan/annoflow/internal/annotator"
	"github.com/spacesedan/annoflow/internal/clients"
	"github.com/spacesedan/annoflow/internal/clients/kafka_client"
	"github.com/spacesedan/annoflow/internal/clients/kafka_client/consumers"
	"github.com/spacesedan/annoflow/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		slog.Warn("[Worker] Shutdown signal received")
		cancel()
	}()

	cfg := kafka_client.GetKafkaConfig()

	for {
		err := kafka_client.InitProducer(cfg)
		if err == nil {
			break
		}

		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer kafka_client.CloseProducer()

	clients.InitValkey()
	defer clients.CloseValkey()

	backend, cleanup, err := pickWorkerBackend()
	if err != nil {
		slog.Error("[Worker] No usable annotation backend", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_ANNOTATION_REQUESTS,
		func(ctx context.Context, consumer *kafka.Consumer) {
			consumers.StartAnnotationConsumer(ctx, consumer, backend)
		})

	if err := kafka_client.StartConsumer(ctx, cfg); err != nil {
		slog.Error("[Worker] Failed to start consumer",
			slog.String("error", err.Error()))
	}
}

// pickWorkerBackend uses the hosted backend when a key is present; the
// offline NER pipeline otherwise, since request batches are NER-heavy.
func pickWorkerBackend() (annotator.Annotator, func(), error) {
	if clients.HasOpenAIKey() {
		return annotator.NewOpenAIAnnotator(), func() {}, nil
	}

	local, err := annotator.NewLocalNERAnnotator()
	if err != nil {
		return nil, nil, err
	}
	return local, local.Close, nil
}
