package system

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/oculusgrp/dealdesk_backend/config"
	"github.com/oculusgrp/dealdesk_backend/internal/service/trends"
	"github.com/oculusgrp/dealdesk_backend/pkg/database"
)

func NewImportTrendsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-trends <feed-file>...",
		Short: "Import yearly restaurant trends feed files",
		Long: `Import one or more yearly trends feed files into the restaurant database.

Feeds are the vendor's .xlsx workbooks; .csv exports also work. The
survey year is read from each filename (YE24... means 2024), so the
files must keep their original vendor names.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			svc := trends.New(client)

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second

			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open %q: %w", path, err)
				}

				ctx, cancel := context.WithTimeout(context.Background(), timeout)
				stats, err := svc.ImportFeed(ctx, filepath.Base(path), f)
				cancel()
				f.Close()
				if err != nil {
					return fmt.Errorf("failed to import %q: %w", path, err)
				}

				fmt.Printf("%s: year=%d kept=%d locations=%d trends=%d dropped=%d\n",
					filepath.Base(path), stats.Year, stats.Clean.Kept(),
					stats.Locations, stats.Trends,
					stats.Clean.TotalRows-stats.Clean.Kept())
			}

			return nil
		},
	}

	return cmd
}
