package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_DefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
storage:
  driver: memory
queue:
  driver: kafka
kafka:
  brokers: ["kafka:9092"]
database:
  host: db
  port: 6543
`)
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_HOST", "")
	t.Setenv("DATABASE_PORT", "")
	t.Setenv("HTTP_ADDRESS", "")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "reservations", cfg.Kafka.ReservationsTopic)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, DefaultReminderSchedule, cfg.Reminder.Schedule)
	assert.Equal(t, "host=db port=6543 user= password=secret dbname= sslmode=disable", cfg.Database.DSN())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestLoadConfig_InvalidDatabasePort(t *testing.T) {
	path := writeConfig(t, "queue:\n  driver: none\n")
	t.Setenv("DATABASE_PORT", "abc")

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "DATABASE_PORT")
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(*Config)
		expectedErr string
	}{
		{
			name:   "valid without queue",
			mutate: func(c *Config) { c.Queue.Driver = QueueDriverNone },
		},
		{
			name:        "unknown storage driver",
			mutate:      func(c *Config) { c.Queue.Driver = QueueDriverNone; c.Storage.Driver = "mysql" },
			expectedErr: `unknown storage driver "mysql"`,
		},
		{
			name:        "kafka without brokers",
			mutate:      func(c *Config) {},
			expectedErr: "kafka brokers are required",
		},
		{
			name:        "rabbitmq without url",
			mutate:      func(c *Config) { c.Queue.Driver = QueueDriverRabbitMQ },
			expectedErr: "rabbitmq url is required",
		},
		{
			name:        "bad schedule",
			mutate:      func(c *Config) { c.Queue.Driver = QueueDriverNone; c.Reminder.Schedule = "every day" },
			expectedErr: "reminder schedule",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.expectedErr)
		})
	}
}
