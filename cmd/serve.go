package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bitexhq/bitemetrics/internal/metrics"
	"github.com/bitexhq/bitemetrics/internal/models"
	"github.com/bitexhq/bitemetrics/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard backend API",
	Run: func(cmd *cobra.Command, args []string) {
		viper.BindPFlags(cmd.Flags())
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := runServe(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().String("dataset", "dataset.json", "Path to the JSON dataset")
	serveCmd.Flags().String("source", "json", "Dataset source: json or postgres")
	serveCmd.Flags().String("postgres-url", "", "Postgres connection URL when source is postgres")
	serveCmd.Flags().String("addr", ":8080", "Listen address")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cfg *models.Config) error {
	data, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	registry := metrics.NewRegistry()
	srv := server.New(data, registry)

	log.Printf("Serving dashboard API on %s (%d orders, %d menu items)", cfg.ServerAddress, len(data.Orders), len(data.MenuItems))
	return srv.Run(cfg.ServerAddress)
}
