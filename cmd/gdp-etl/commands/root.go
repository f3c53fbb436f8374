package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gdpetl-backend/lib/configutil"
	"gdpetl-backend/lib/restyutil"
	"gdpetl-backend/lib/serviceutil"
	"gdpetl-backend/lib/telemetry"
	"gdpetl-backend/services/etl"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose  bool
	dumpHttp string
)

var tel telemetry.Telemetry

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
	addConfigFlags(flags)

	rootCmd.Flags().StringVar(
		&dumpHttp, "dump-http", "",
		"Write every HTTP exchange into this directory, it must be missing or empty.",
	)
}

// addConfigFlags registers the flags read by loadConfig.
func addConfigFlags(flags *pflag.FlagSet) {
	flags.String("config", "etl.json5", "Optional json5 config file, <name>.local.json5 overrides it.")
	flags.String("url", "", "The page to extract the GDP table from.")
	flags.String("csv", "", "The CSV file to write.")
	flags.String("db", "", "The sqlite database file to load into.")
	flags.String("table", "", "The database table to replace.")
	flags.String("log", "", "The progress log file to append to.")
	flags.Float64("min", 0, "The GDP threshold in billions USD used by the query.")
}

// loadConfig layers the defaults, the config file and the flags that were
// explicitly set, in that order.
func loadConfig(cmd *cobra.Command) (etl.Config, error) {
	flags := cmd.Flags()
	configPath, err := flags.GetString("config")
	if err != nil {
		return etl.Config{}, err
	}
	cfg, err := configutil.Overlay(etl.DefaultConfig(), configPath)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", configPath, err)
	}

	if flags.Changed("url") {
		cfg.URL, _ = flags.GetString("url")
	}
	if flags.Changed("csv") {
		cfg.CSVPath, _ = flags.GetString("csv")
	}
	if flags.Changed("db") {
		cfg.Database.File, _ = flags.GetString("db")
		cfg.Database.Url = ""
	}
	if flags.Changed("table") {
		cfg.TableName, _ = flags.GetString("table")
	}
	if flags.Changed("log") {
		cfg.LogPath, _ = flags.GetString("log")
	}
	if flags.Changed("min") {
		cfg.MinGDPBillions, _ = flags.GetFloat64("min")
	}
	return cfg, nil
}

// fatal flushes telemetry before exiting, deferred shutdowns do not run
// past os.Exit.
func fatal(message string, err error) {
	shutdownErr := tel.Shutdown(context.Background())
	if shutdownErr != nil {
		slog.Warn("failed to shutdown telemetry", "err", shutdownErr)
	}
	serviceutil.Fatal(message, err)
}

var rootCmd = &cobra.Command{
	Use:   "gdp-etl",
	Short: "gdp-etl extracts the countries by GDP table, stores it as CSV and in a database, then queries it.",
	Args:  cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)

		var err error
		tel, err = telemetry.SetupFromEnv(cmd.Context(), "gdp-etl")
		if err != nil {
			return fmt.Errorf("setup telemetry: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		err := tel.Shutdown(context.Background())
		if err != nil {
			slog.Warn("failed to shutdown telemetry", "err", err)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fatal("failed to load config", err)
		}

		var opts etl.Options
		if dumpHttp != "" {
			out, err := restyutil.NewFilesystemOutput(dumpHttp)
			if err != nil {
				fatal("failed to create http dump directory", err)
			}
			opts.HttpOutput = out
		}

		slog.Debug("running etl", "url", cfg.URL, "csv", cfg.CSVPath, "db", cfg.Database.String(), "table", cfg.TableName)
		err = etl.Run(cmd.Context(), cfg, opts)
		if err != nil {
			fatal("etl run failed", err)
		}
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
