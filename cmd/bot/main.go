package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/uxbn/hawkthorne/internal/config"
	"github.com/uxbn/hawkthorne/internal/dateparse"
	"github.com/uxbn/hawkthorne/internal/handlers/discord"
	eventRepo "github.com/uxbn/hawkthorne/internal/repositories/event"
	registrationRepo "github.com/uxbn/hawkthorne/internal/repositories/registration"
	userRepo "github.com/uxbn/hawkthorne/internal/repositories/user"
	eventService "github.com/uxbn/hawkthorne/internal/services/event"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	events, err := eventRepo.NewRedis(&eventRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create event repository: %v", err)
	}

	users, err := userRepo.NewRedis(&userRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	registrations, err := registrationRepo.NewRedis(&registrationRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create registration repository: %v", err)
	}

	// Initialize event service
	eventSvc, err := eventService.New(&eventService.Config{
		EventRepo:        events,
		UserRepo:         users,
		RegistrationRepo: registrations,
	})
	if err != nil {
		log.Fatalf("Failed to create event service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         cfg.DiscordToken,
		CommandPrefix: cfg.CommandPrefix,
		PromptTimeout: cfg.PromptTimeout,
		EventService:  eventSvc,
		Extractor:     dateparse.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}
