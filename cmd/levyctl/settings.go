package main

import (
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/levy-tracker/backend/config"
	"github.com/levy-tracker/backend/internal/application/adapter"
	"github.com/levy-tracker/backend/internal/application/usecase/setting"
	"github.com/levy-tracker/backend/internal/infra/db"
	"github.com/levy-tracker/backend/internal/integration/cache"
	"github.com/levy-tracker/backend/internal/integration/persistence"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and change runtime settings",
	}
	cmd.AddCommand(settingsGetCmd())
	cmd.AddCommand(settingsSetTimeoutCmd())
	return cmd
}

func settingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the effective record mutation timeout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig()

			database, err := db.NewConnection(&cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			uc := setting.NewGetMutationTimeoutUseCase(
				persistence.NewSettingRepository(database.DB()),
				nil,
				cfg.Records.TimeoutBounds(),
				0,
			)
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			source := "default"
			if out.Stored {
				source = "stored"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recordsMutationTimeoutMs=%d (%s, allowed %d..%d)\n",
				out.TimeoutMs, source, out.Bounds.MinMs, out.Bounds.MaxMs)
			return nil
		},
	}
}

func settingsSetTimeoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-timeout <milliseconds>",
		Short: "Change the record mutation timeout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("timeout must be an integer number of milliseconds: %w", err)
			}

			cfg := loadConfig()

			database, err := db.NewConnection(&cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			settingCache, closeCache := openCache(&cfg.Redis)
			defer closeCache()

			uc := setting.NewUpdateMutationTimeoutUseCase(
				persistence.NewSettingRepository(database.DB()),
				settingCache,
				cfg.Records.TimeoutBounds(),
			)
			out, err := uc.Execute(cmd.Context(), setting.UpdateMutationTimeoutInput{TimeoutMs: ms})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "recordsMutationTimeoutMs=%d\n", out.TimeoutMs)
			return nil
		},
	}
}

// openCache returns a nil cache when Redis is not configured.
func openCache(cfg *config.RedisConfig) (adapter.SettingCache, func()) {
	if cfg.URL == "" {
		return nil, func() {}
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, func() {}
	}
	client := redis.NewClient(opts)
	return cache.NewSettingCache(client), func() { _ = client.Close() }
}
