package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Domenick1991/hotelbooking/internal/scheduler"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	QueueDriverKafka    = "kafka"
	QueueDriverRabbitMQ = "rabbitmq"
	QueueDriverNone     = "none"

	DefaultReminderSchedule = "0 0 8 * * *"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Queue    QueueConfig    `yaml:"queue"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Reminder ReminderConfig `yaml:"reminder"`
}

type HTTPConfig struct {
	Address       string `yaml:"address"`
	AllowedOrigin string `yaml:"allowed_origin"`
}

// GRPCConfig configures the health-check server. An empty address disables it.
type GRPCConfig struct {
	Address string `yaml:"address"`
}

type StorageConfig struct {
	Driver  string `yaml:"driver"`
	Migrate bool   `yaml:"migrate"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// RedisConfig configures the room catalog cache. An empty Addr disables it.
type RedisConfig struct {
	Addr                 string `yaml:"addr"`
	Password             string `yaml:"password"`
	DB                   int    `yaml:"db"`
	RoomsCacheTTLSeconds int    `yaml:"rooms_cache_ttl_seconds"`
}

type QueueConfig struct {
	Driver string `yaml:"driver"`
}

type KafkaConfig struct {
	Brokers           []string `yaml:"brokers"`
	ReservationsTopic string   `yaml:"reservations_topic"`
	GroupID           string   `yaml:"group_id"`
}

type RabbitMQConfig struct {
	URL      string `yaml:"url"`
	Exchange string `yaml:"exchange"`
	Queue    string `yaml:"queue"`
}

type ReminderConfig struct {
	Schedule   string `yaml:"schedule"`
	RunOnStart bool   `yaml:"run_on_start"`
}

func LoadConfig(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the values used for keys missing from the file.
func Default() *Config {
	return &Config{
		HTTP:     HTTPConfig{Address: ":8080", AllowedOrigin: "*"},
		Storage:  StorageConfig{Driver: StorageDriverPostgres},
		Database: DatabaseConfig{Host: "localhost", Port: 5432, SSLMode: "disable"},
		Redis:    RedisConfig{RoomsCacheTTLSeconds: 60},
		Queue:    QueueConfig{Driver: QueueDriverKafka},
		Kafka:    KafkaConfig{ReservationsTopic: "reservations", GroupID: "hotel-notifications"},
		RabbitMQ: RabbitMQConfig{Exchange: "reservations", Queue: "rezerwacje-queue"},
		Reminder: ReminderConfig{Schedule: DefaultReminderSchedule},
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		c.HTTP.Address = v
	}
	if v := os.Getenv("DATABASE_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DATABASE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DATABASE_PORT %q: %w", v, err)
		}
		c.Database.Port = port
	}
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		c.RabbitMQ.URL = v
	}
	return nil
}

func (c *Config) Validate() error {
	var errs []error

	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}

	switch c.Queue.Driver {
	case QueueDriverKafka:
		if len(c.Kafka.Brokers) == 0 {
			errs = append(errs, errors.New("kafka brokers are required for the kafka queue driver"))
		}
	case QueueDriverRabbitMQ:
		if c.RabbitMQ.URL == "" {
			errs = append(errs, errors.New("rabbitmq url is required for the rabbitmq queue driver"))
		}
	case QueueDriverNone:
	default:
		errs = append(errs, fmt.Errorf("unknown queue driver %q", c.Queue.Driver))
	}

	if err := scheduler.Validate(c.Reminder.Schedule); err != nil {
		errs = append(errs, fmt.Errorf("reminder schedule: %w", err))
	}

	return errors.Join(errs...)
}
