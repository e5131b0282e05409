package main

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/outgunned-bot/internal/dice"
	"github.com/KirkDiggler/outgunned-bot/internal/repositories/channels"
	"github.com/KirkDiggler/outgunned-bot/internal/services"
)

// options are the persistent flags shared by every command
type options struct {
	redisURL   string
	dbDriver   string
	dbDSN      string
	diceSets   string
	defaultSet string
	timeout    time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "rollctl",
		Short:         "Outgunned dice bot operator tool",
		Long:          `rollctl manages channel dice sets and checks roll messages without connecting to Discord.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.redisURL, "redis-url", "", "Redis URL holding channel settings")
	rootCmd.PersistentFlags().StringVar(&opts.dbDriver, "db-driver", channels.DriverSQLite, "settings database driver (sqlite or mysql)")
	rootCmd.PersistentFlags().StringVar(&opts.dbDSN, "db-dsn", "", "settings database DSN")
	rootCmd.PersistentFlags().StringVar(&opts.diceSets, "dice-sets", "", "YAML file with extra dice sets")
	rootCmd.PersistentFlags().StringVar(&opts.defaultSet, "default-set", "basic", "dice set for channels without a setting")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "storage timeout")

	rootCmd.AddCommand(newChannelCmd(opts))
	rootCmd.AddCommand(newTokenCmd(opts))
	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newSimulateCmd(opts))

	return rootCmd
}

func (o *options) catalog() (*dice.Catalog, error) {
	catalog := dice.BuiltinCatalog()
	if o.diceSets != "" {
		loaded, err := dice.LoadCatalogFile(o.diceSets)
		if err != nil {
			return nil, err
		}
		catalog = loaded
	}
	return catalog.WithDefault(o.defaultSet)
}

// provider builds the services against the configured store. Without a
// store everything stays in memory for the life of the command.
func (o *options) provider() (*services.Provider, func(), error) {
	catalog, err := o.catalog()
	if err != nil {
		return nil, nil, err
	}

	repo, cleanup, err := o.repository()
	if err != nil {
		return nil, nil, err
	}

	provider, err := services.NewProvider(&services.ProviderConfig{
		ChannelRepository: repo,
		Catalog:           catalog,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return provider, cleanup, nil
}

func (o *options) repository() (channels.Repository, func(), error) {
	switch {
	case o.redisURL != "":
		redisOpts, err := redis.ParseURL(o.redisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		client := redis.NewClient(redisOpts)
		cleanup := func() {
			_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
		}

		ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		repo, err := channels.NewRedisRepository(&channels.RedisRepoConfig{Client: client})
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		return repo, cleanup, nil

	case o.dbDSN != "":
		db, err := channels.OpenDB(o.dbDriver, o.dbDSN)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			_ = sqlDB.Close() // nolint:errcheck // safe to ignore in cleanup
		}

		repo, err := channels.NewSQLRepository(db)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		return repo, cleanup, nil
	}

	return channels.NewInMemoryRepository(), func() {}, nil
}
