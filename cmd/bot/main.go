package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/outgunned-bot/internal/config"
	"github.com/KirkDiggler/outgunned-bot/internal/dice"
	v2 "github.com/KirkDiggler/outgunned-bot/internal/discord/v2"
	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/handlers"
	"github.com/KirkDiggler/outgunned-bot/internal/discord/v2/middleware"
	"github.com/KirkDiggler/outgunned-bot/internal/repositories/channels"
	"github.com/KirkDiggler/outgunned-bot/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("Failed to load dice sets: %v", err)
	}
	log.Printf("Dice sets: %v (default %s)", catalog.Names(), catalog.Default())

	storage, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to open settings storage: %v", err)
	}
	defer storage.close()

	// Create service provider
	provider, err := services.NewProvider(&services.ProviderConfig{
		ChannelRepository: storage.channels,
		Catalog:           catalog,
	})
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	if _, err := v2.Attach(dg, &v2.HandlerConfig{
		Provider:              provider,
		RateLimitStore:        storage.rateLimits,
		RateLimitPerMinute:    cfg.Limits.RateLimitPerMinute,
		RequireManageChannels: cfg.Settings.RequireManageChannels,
		DeferAfter:            cfg.Limits.DeferAfter,
	}); err != nil {
		log.Fatalf("Failed to set up handlers: %v", err)
	}

	// Open connection to Discord
	if err := dg.Open(); err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		if clientErr := dg.Close(); clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handlers.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID, catalog); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")
}

func loadCatalog(cfg *config.Config) (*dice.Catalog, error) {
	catalog := dice.BuiltinCatalog()
	if cfg.Dice.SetsPath != "" {
		loaded, err := dice.LoadCatalogFile(cfg.Dice.SetsPath)
		if err != nil {
			return nil, err
		}
		catalog = loaded
	}
	return catalog.WithDefault(cfg.Dice.DefaultSet)
}

type storage struct {
	channels   channels.Repository
	rateLimits middleware.RateLimitStore
	closers    []func() error
}

func (s *storage) close() {
	for _, c := range s.closers {
		if err := c(); err != nil {
			log.Printf("Error closing storage: %v", err)
		}
	}
}

// openStorage prefers Redis, then a SQL database, then memory. Rate limits
// share Redis when it is available and stay in memory otherwise.
func openStorage(cfg *config.Config) (*storage, error) {
	s := &storage{}

	switch {
	case cfg.UsesRedis():
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		client := redis.NewClient(opts)
		s.closers = append(s.closers, client.Close)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			s.close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		repo, err := channels.NewRedisRepository(&channels.RedisRepoConfig{Client: client})
		if err != nil {
			s.close()
			return nil, err
		}
		s.channels = repo
		s.rateLimits = middleware.NewRedisRateLimitStore(client)
		log.Println("Using Redis for channel settings and rate limits")
		return s, nil

	case cfg.UsesSQL():
		db, err := channels.OpenDB(cfg.Settings.DBDriver, cfg.Settings.DBDSN)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, sqlDB.Close)

		repo, err := channels.NewSQLRepository(db)
		if err != nil {
			s.close()
			return nil, err
		}
		s.channels = repo
		log.Printf("Using %s for channel settings", cfg.Settings.DBDriver)

	default:
		s.channels = channels.NewInMemoryRepository()
		log.Println("No REDIS_URL or SETTINGS_DB_DSN found, channel settings are kept in memory")
	}

	memoryStore := middleware.NewMemoryRateLimitStore()
	s.closers = append(s.closers, func() error {
		memoryStore.Close()
		return nil
	})
	s.rateLimits = memoryStore
	return s, nil
}
