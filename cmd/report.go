package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bitexhq/bitemetrics/internal/analytics"
	"github.com/bitexhq/bitemetrics/internal/export"
	"github.com/bitexhq/bitemetrics/internal/models"
	"github.com/bitexhq/bitemetrics/internal/repositories/postgres"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute the derived metrics for a dataset and export them",
	Run: func(cmd *cobra.Command, args []string) {
		viper.BindPFlags(cmd.Flags())
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := runReport(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	reportCmd.Flags().String("dataset", "dataset.json", "Path to the JSON dataset")
	reportCmd.Flags().String("source", "json", "Dataset source: json or postgres")
	reportCmd.Flags().String("postgres-url", "", "Postgres connection URL when source is postgres")
	reportCmd.Flags().String("window", "all", "Date window applied before aggregation: 7d, 30d or all")
	reportCmd.Flags().String("as-of", "", "Evaluation instant in RFC3339 (defaults to now)")
	reportCmd.Flags().String("output-path", ".", "Base directory for exported files")
	reportCmd.Flags().String("output-folder", "bitex", "Folder under the base directory")
	reportCmd.Flags().String("output-format", "csv", "Orders export format: csv or parquet")
	reportCmd.Flags().String("output-destination", "local", "Export destination: local, console, s3 or kafka")
	reportCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	reportCmd.Flags().String("kafka-topic", "bitex-metrics", "Kafka topic for metric snapshots")
	reportCmd.Flags().Bool("kafka-use-local", true, "Use the Sarama client for local brokers")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cfg *models.Config) error {
	data, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	now, err := cfg.EvaluationTime()
	if err != nil {
		return err
	}

	window, err := analytics.ParseWindow(cfg.Window)
	if err != nil {
		return err
	}

	// stated totals stay authoritative; divergence is logged, not corrected
	for _, mm := range analytics.VerifyOrderTotals(data.Orders) {
		log.Printf("order %s: stated total %.2f differs from item sum %.2f", mm.OrderID, mm.Stated, mm.Computed)
	}

	orders := analytics.FilterByWindow(data.Orders, window, now)
	m := analytics.ComputeMetrics(orders, data.MenuItems, now)

	dest := export.MustDetermineDestination(cfg)
	defer dest.Close()

	if err := dest.WriteFile(export.Filename("bitex_orders", now), []byte(export.Serialize(export.OrdersToTable(orders)))); err != nil {
		return err
	}
	if err := dest.WriteFile(export.Filename("bitex_metrics", now), []byte(export.Serialize(export.MetricsToTable(m)))); err != nil {
		return err
	}

	snapshot, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("error serialising metrics snapshot: %w", err)
	}
	if err := dest.WriteFile(fmt.Sprintf("bitex_metrics_%s.json", now.Format("2006-01-02")), snapshot); err != nil {
		return err
	}

	if cfg.OutputFormat == "parquet" {
		path := filepath.Join(cfg.OutputPath, cfg.OutputFolder, fmt.Sprintf("bitex_orders_%s.parquet", now.Format("2006-01-02")))
		if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
			return err
		}
		if err := export.WriteOrdersParquet(path, orders); err != nil {
			return err
		}
	}

	log.Printf("Report complete: %d orders in window %s, daily sales %.2f", len(orders), window, m.TotalDailySales)
	return nil
}

func loadDataset(cfg *models.Config) (*models.Dataset, error) {
	switch cfg.Source {
	case "", "json":
		return models.LoadDataset(cfg.DatasetPath)
	case "postgres":
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		defer pool.Close()

		menuItems, err := postgres.NewMenuItemRepository(pool).GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("error loading menu items: %w", err)
		}
		orders, err := postgres.NewOrderRepository(pool).GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("error loading orders: %w", err)
		}
		customers, err := postgres.NewCustomerRepository(pool).GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("error loading customers: %w", err)
		}
		return &models.Dataset{Orders: orders, MenuItems: menuItems, Customers: customers}, nil
	default:
		return nil, fmt.Errorf("unsupported dataset source: %s", cfg.Source)
	}
}
