package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/hotelbooking/config"
	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

const roomsKey = "cache:rooms"

// RedisCache caches the room catalog. Rooms are reference data, so a TTL is
// the only invalidation.
type RedisCache struct {
	client   redis.Cmdable
	roomsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	return &RedisCache{
		client:   redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		roomsTTL: time.Duration(cfg.RoomsCacheTTLSeconds) * time.Second,
	}
}

// NewRedisCacheWithClient is used when the client is owned elsewhere.
func NewRedisCacheWithClient(client redis.Cmdable, roomsTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, roomsTTL: roomsTTL}
}

// GetRooms returns nil, nil on a cache miss.
func (c *RedisCache) GetRooms(ctx context.Context) ([]domain.Room, error) {
	data, err := c.client.Get(ctx, roomsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var rooms []domain.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *RedisCache) SetRooms(ctx context.Context, rooms []domain.Room) error {
	payload, err := json.Marshal(rooms)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, roomsKey, payload, c.roomsTTL).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	if closer, ok := c.client.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
