package main

import (
	"os"

	"sales-service/internal/seeder"
	"sales-service/pkg/config"
	"sales-service/pkg/database"
	"sales-service/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCmd is the offline maintenance entry point. Seeding is
// destructive, so it is deliberately not reachable over HTTP.
var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all dashboard data with a synthetic dataset",
	Long: `Clears every product, customer, order and order item, then inserts a
fresh synthetic dataset (20 products, 50 customers, 100 orders with 1-4
line items each) for exercising the aggregation query and the UI.

The run is not transactional: a failure leaves whatever partial state
was reached, and re-running restores a clean slate.`,
	Run: func(cmd *cobra.Command, args []string) {
		appConfig, err := config.Load()
		if err != nil {
			panic("Failed to load configuration: " + err.Error())
		}

		logger.InitLogger(appConfig)
		log := logger.GetLogger()
		defer log.Sync()

		db, err := database.Connect(appConfig)
		if err != nil {
			log.Fatal("Failed to connect to database", zap.Error(err))
		}

		if err := seeder.New(db, log).Run(); err != nil {
			log.Fatal("Seeding failed", zap.Error(err))
		}

		log.Info("Database seeded successfully")
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
