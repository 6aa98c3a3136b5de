package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"catalog-ingest/core/config"
	"catalog-ingest/core/extract"
	"catalog-ingest/core/itemapi"
	"catalog-ingest/core/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the extract command
	extractFile      string
	extractRunID     string
	extractBatchSize int
)

// extractCmd runs one extract synchronously against the configured item API.
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Reconcile a CSV extract with the item store",
	Long: `Reads a CSV extract, transforms every row into an item and reconciles
the items with the item store at itemapi.base_url. The run summary is printed
as JSON.

Examples:
  # Run an extract
  extract --file catalog.csv

  # Run with an explicit id and a smaller batch
  extract --file catalog.csv --run-id nightly-42 --batch-size 50`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractFile, "file", "", "Path to the CSV extract")
	extractCmd.Flags().StringVar(&extractRunID, "run-id", "", "Run id used in logs (default: random uuid)")
	extractCmd.Flags().IntVar(&extractBatchSize, "batch-size", 0, "Override ingest.batch_size")
	_ = extractCmd.MarkFlagRequired("file")

	RootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	file, err := os.Open(extractFile)
	if err != nil {
		return fmt.Errorf("failed to open extract: %w", err)
	}
	defer file.Close()

	client, err := itemapi.NewHTTPClient(cfg.ItemAPI, logg)
	if err != nil {
		return err
	}

	runID := extractRunID
	if runID == "" {
		runID = uuid.NewString()
	}
	batchSize := cfg.Ingest.BatchSize
	if extractBatchSize > 0 {
		batchSize = extractBatchSize
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver := extract.NewDriver(client, extract.Options{BatchSize: batchSize}, extract.NewLogReporter(logg), logg)
	result, runErr := driver.Run(ctx, runID, extract.NewCSVSource(file))

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))

	if runErr != nil {
		logg.Error("Extract failed", zap.String(logger.RunKey, runID), zap.Error(runErr))
		return runErr
	}
	return nil
}
