// Package main is the administrator command line for the levy records service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/levy-tracker/backend/config"
)

var rootCmd = &cobra.Command{
	Use:               "levyctl",
	Short:             "Administer the levy records service",
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

func init() {
	rootCmd.PersistentFlags().String("database-url", "", "database URL or SQLite path (env DATABASE_URL)")
	rootCmd.PersistentFlags().String("db-driver", "", "database driver: postgres or sqlite (env DB_DRIVER)")
	rootCmd.PersistentFlags().String("redis-url", "", "Redis URL used to invalidate cached settings (env REDIS_URL)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	_ = viper.BindPFlag("database_url", rootCmd.PersistentFlags().Lookup("database-url"))
	_ = viper.BindPFlag("db_driver", rootCmd.PersistentFlags().Lookup("db-driver"))
	_ = viper.BindPFlag("redis_url", rootCmd.PersistentFlags().Lookup("redis-url"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(settingsCmd())
	rootCmd.AddCommand(templateCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	var level slog.Level
	if err := level.UnmarshalText([]byte(viper.GetString("log_level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	return nil
}

// loadConfig reads the service configuration, letting flags override the environment.
func loadConfig() *config.Config {
	cfg := config.Load()
	if v := viper.GetString("database_url"); v != "" {
		cfg.Database.URL = v
	}
	if v := viper.GetString("db_driver"); v != "" {
		cfg.Database.Driver = v
	}
	if v := viper.GetString("redis_url"); v != "" {
		cfg.Redis.URL = v
	}
	return cfg
}
