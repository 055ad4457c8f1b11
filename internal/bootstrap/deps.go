package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/Domenick1991/hotelbooking/config"
	"github.com/Domenick1991/hotelbooking/internal/cache"
	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/Domenick1991/hotelbooking/internal/rabbitmq"
	"github.com/Domenick1991/hotelbooking/internal/repository"
	"github.com/Domenick1991/hotelbooking/internal/service/reservation"
	"github.com/Domenick1991/hotelbooking/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store bundles the repositories chosen by storage.driver.
type Store struct {
	Rooms        repository.RoomRepository
	Reservations repository.ReservationRepository
	close        func()
}

func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		log.Printf("using in-memory store with %d seeded rooms", len(repository.DefaultRooms()))
		mem := repository.NewMemoryStore(repository.DefaultRooms()...)
		return &Store{Rooms: mem, Reservations: mem}, nil
	case config.StorageDriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		if cfg.Storage.Migrate {
			if err := repository.Migrate(ctx, pool, migrations.FS); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return &Store{
			Rooms:        repository.NewRoomRepository(pool),
			Reservations: repository.NewReservationRepository(pool),
			close:        pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// NewProducer returns the confirmation producer for queue.driver. Both results
// are nil for "none".
func NewProducer(ctx context.Context, cfg *config.Config) (reservation.Producer, io.Closer, error) {
	switch cfg.Queue.Driver {
	case config.QueueDriverKafka:
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		if err := producer.CheckConnection(ctx); err != nil {
			log.Printf("WARNING: %v", err)
		}
		return producer, producer, nil
	case config.QueueDriverRabbitMQ:
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			return nil, nil, err
		}
		return publisher, publisher, nil
	default:
		log.Println("queue driver is none, confirmations are not published")
		return nil, nil, nil
	}
}

// QueueTopic is the Kafka topic or RabbitMQ routing key for confirmations.
func QueueTopic(cfg *config.Config) string {
	if cfg.Queue.Driver == config.QueueDriverRabbitMQ {
		return cfg.RabbitMQ.Queue
	}
	return cfg.Kafka.ReservationsTopic
}

// NewRoomsCache returns nil when redis.addr is empty or unreachable.
func NewRoomsCache(ctx context.Context, cfg *config.Config) *cache.RedisCache {
	if cfg.Redis.Addr == "" {
		return nil
	}
	c := cache.NewRedisCache(cfg.Redis)
	if err := c.Ping(ctx); err != nil {
		log.Printf("WARNING: redis %s unavailable, rooms cache disabled: %v", cfg.Redis.Addr, err)
		_ = c.Close()
		return nil
	}
	return c
}
