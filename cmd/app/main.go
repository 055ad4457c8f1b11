package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/hotelbooking/api"
	"github.com/Domenick1991/hotelbooking/config"
	"github.com/Domenick1991/hotelbooking/internal/bootstrap"
	"github.com/Domenick1991/hotelbooking/internal/service/reservation"
	"github.com/Domenick1991/hotelbooking/internal/service/rooms"
)

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

	var roomsCache rooms.Cache
	if c := bootstrap.NewRoomsCache(ctx, cfg); c != nil {
		defer c.Close()
		roomsCache = c
	}

	var opts []reservation.ReservationServiceOption
	producer, closer, err := bootstrap.NewProducer(ctx, cfg)
	if err != nil {
		log.Fatalf("connect queue: %v", err)
	}
	if producer != nil {
		defer closer.Close()
		opts = append(opts, reservation.WithProducer(producer, bootstrap.QueueTopic(cfg)))
	}

	roomService := rooms.NewRoomService(store.Rooms, store.Reservations, roomsCache)
	reservationService := reservation.NewReservationService(store.Rooms, store.Reservations, opts...)

	router := api.NewRouter(cfg.HTTP, roomService, reservationService)
	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
