package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bitexhq/bitemetrics/internal/factories"
	"github.com/bitexhq/bitemetrics/internal/models"
	"github.com/bitexhq/bitemetrics/internal/repositories/postgres"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic point-of-sale dataset",
	Run: func(cmd *cobra.Command, args []string) {
		viper.BindPFlags(cmd.Flags())
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := runGenerate(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	generateCmd.Flags().String("dataset", "dataset.json", "Output path for the generated JSON dataset")
	generateCmd.Flags().Int64("seed", 42, "Random seed for generation")
	generateCmd.Flags().Int("days", 30, "Number of trailing days to generate")
	generateCmd.Flags().Int("customers", 250, "Number of customers")
	generateCmd.Flags().String("as-of", "", "Final generated day in RFC3339 (defaults to now)")
	generateCmd.Flags().String("source", "json", "Where to store the dataset: json or postgres")
	generateCmd.Flags().String("postgres-url", "", "Postgres connection URL when storing to postgres")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cfg *models.Config) error {
	now, err := cfg.EvaluationTime()
	if err != nil {
		return err
	}

	factory := factories.NewDatasetFactory(cfg.Seed)
	catalog := factories.Catalog()

	customers := make([]models.Customer, cfg.InitialCustomers)
	for i := range customers {
		customers[i] = factory.CreateCustomer(now)
	}

	bar := progressbar.Default(int64(cfg.GenerateDays), "generating days")
	var orders []models.Order
	for d := cfg.GenerateDays - 1; d >= 0; d-- {
		day := now.AddDate(0, 0, -d)
		orders = append(orders, factory.CreateDay(day, customers, catalog)...)
		bar.Add(1)
	}

	data := &models.Dataset{Orders: orders, MenuItems: catalog, Customers: customers}

	switch cfg.Source {
	case "", "json":
		if err := data.Save(cfg.DatasetPath); err != nil {
			return err
		}
		log.Printf("Generated %d orders for %d customers into %s", len(orders), len(customers), cfg.DatasetPath)
	case "postgres":
		if err := seedPostgres(cfg, data); err != nil {
			return err
		}
		log.Printf("Seeded %d orders for %d customers into Postgres", len(orders), len(customers))
	default:
		return fmt.Errorf("unsupported dataset store: %s", cfg.Source)
	}
	return nil
}

func seedPostgres(cfg *models.Config, data *models.Dataset) error {
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.PostgresURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	menuRepo := postgres.NewMenuItemRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)

	// reseeding replaces whatever is already there
	if err := orderRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("error clearing orders: %w", err)
	}
	if err := customerRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("error clearing customers: %w", err)
	}
	if err := menuRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("error clearing menu items: %w", err)
	}

	if err := menuRepo.BulkCreate(ctx, data.MenuItems); err != nil {
		return fmt.Errorf("error seeding menu items: %w", err)
	}
	if err := customerRepo.BulkCreate(ctx, data.Customers); err != nil {
		return fmt.Errorf("error seeding customers: %w", err)
	}
	if err := orderRepo.BulkCreate(ctx, data.Orders); err != nil {
		return fmt.Errorf("error seeding orders: %w", err)
	}
	return nil
}
