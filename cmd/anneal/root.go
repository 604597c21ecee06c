package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/anneal/internal/logging"
	"github.com/katalvlaran/anneal/results"
	"github.com/katalvlaran/anneal/results/memory"
	"github.com/katalvlaran/anneal/results/redis"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "anneal",
	Short: "anneal runs simulated annealing on declarative problems",
	Long: `anneal solves tour, Rastrigin and sphere problems described in YAML or JSON
run files, either once from the command line or through an HTTP API.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("redis", "", "Redis address for run records (memory when empty)")
	rootCmd.PersistentFlags().String("redis-password", "", "Redis password")
	rootCmd.PersistentFlags().Int("redis-db", 0, "Redis database")
	rootCmd.PersistentFlags().Duration("redis-ttl", 0, "Expiration of stored records (0 keeps them)")
}

// loggerFrom builds the logger selected by --log-level.
func loggerFrom(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// storeFrom opens the store selected by the --redis flags.
func storeFrom(cmd *cobra.Command) (results.Store, func() error, error) {
	addr, _ := cmd.Flags().GetString("redis")
	if addr == "" {
		return memory.New(), func() error { return nil }, nil
	}

	password, _ := cmd.Flags().GetString("redis-password")
	db, _ := cmd.Flags().GetInt("redis-db")
	ttl, _ := cmd.Flags().GetDuration("redis-ttl")

	store := redis.New(addr, password, db, redis.WithTTL(ttl))
	if err := store.Ping(cmd.Context()); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}
	return store, store.Close, nil
}
