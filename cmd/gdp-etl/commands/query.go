package commands

import (
	"os"

	"gdpetl-backend/services/etl"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query [--min <billions>]",
	Short: "Runs the GDP filter query against an already loaded database.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fatal("failed to load config", err)
		}

		db, err := cfg.Database.OpenDB()
		if err != nil {
			fatal("failed to open db", err)
		}
		defer db.Close()

		statement := etl.FilterQuery(cfg.TableName, cfg.MinGDPBillions)
		err = etl.RunQuery(cmd.Context(), db, statement, os.Stdout)
		if err != nil {
			db.Close()
			fatal("query failed", err)
		}
	},
}
