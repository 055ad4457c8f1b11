package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/hotelbooking/config"
	"github.com/Domenick1991/hotelbooking/internal/bootstrap"
	"github.com/Domenick1991/hotelbooking/internal/email"
	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/Domenick1991/hotelbooking/internal/notification"
	"github.com/Domenick1991/hotelbooking/internal/rabbitmq"
	"github.com/Domenick1991/hotelbooking/internal/scheduler"
	"github.com/Domenick1991/hotelbooking/internal/service/reminder"
)

type queueConsumer interface {
	Consume(ctx context.Context, handler func(context.Context, []byte) error) error
	Close() error
}

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	emailSender := email.NewSender()
	processor := notification.NewProcessor(emailSender)

	consumer, err := newConsumer(cfg)
	if err != nil {
		log.Fatalf("connect queue: %v", err)
	}
	consumerDone := make(chan struct{})
	if consumer != nil {
		defer consumer.Close()
		go func() {
			defer close(consumerDone)
			if err := consumer.Consume(ctx, processor.Handle); err != nil {
				log.Printf("consumer stopped: %v", err)
				stop()
			}
		}()
	} else {
		close(consumerDone)
	}

	sweeper := reminder.NewSweeper(store.Reservations, emailSender)
	sweep := func(ctx context.Context) {
		if _, err := sweeper.Run(ctx); err != nil {
			log.Printf("reminder sweep error: %v", err)
		}
	}

	sched := scheduler.New()
	if err := sched.Add(ctx, "daily-reminder", cfg.Reminder.Schedule, sweep); err != nil {
		log.Fatalf("schedule reminders: %v", err)
	}
	sched.Start()
	if cfg.Reminder.RunOnStart {
		go sweep(ctx)
	}

	<-ctx.Done()
	log.Println("shutting down worker")
	sched.Stop()
	<-consumerDone
}

func newConsumer(cfg *config.Config) (queueConsumer, error) {
	switch cfg.Queue.Driver {
	case config.QueueDriverKafka:
		return kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.ReservationsTopic), nil
	case config.QueueDriverRabbitMQ:
		return rabbitmq.NewConsumer(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.Queue, bootstrap.QueueTopic(cfg))
	default:
		log.Println("queue driver is none, confirmation consumer disabled")
		return nil, nil
	}
}
