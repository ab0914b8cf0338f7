package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gamma-omg/rag-loader/config"
	"github.com/gamma-omg/rag-loader/docstore"
	"github.com/gamma-omg/rag-loader/ingest"
	"github.com/gamma-omg/rag-loader/readers"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgPath   string
	watch     bool
	keepGoing bool
)

var rootCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load a directory of text files into a vector collection",
	Long: `Scans DATA_DIR for supported text files, splits them into overlapping
chunks and adds them in batches to COLLECTION_NAME.

Settings come from the environment (a .env file is honoured) and
optionally from a YAML file given with --config.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runIngest,
}

func init() {
	rootCmd.Flags().StringVar(&cfgPath, "config", "", "optional YAML configuration file")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "keep running and re-ingest files as they change")
	rootCmd.Flags().BoolVar(&keepGoing, "keep-going", false, "submit remaining batches after a batch fails")
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.ValidateIngest(); err != nil {
		return err
	}

	chunkifier, err := ingest.NewChunkifier(cfg.ChunkSize, cfg.ChunkOverlap)
	if err != nil {
		return err
	}

	log, closer, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	log.Info("starting ingestion", "config", cfg)

	created, err := ingest.EnsureRoot(cfg.DataDir)
	if err != nil {
		return err
	}
	if created {
		log.Info(fmt.Sprintf("Creating data directory at %s", cfg.DataDir))
		cmd.Printf("Created data directory %s. Please add documents to it and run again.\n", cfg.DataDir)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := docstore.Open(ctx, log, cfg.Store())
	if err != nil {
		return err
	}
	defer client.Close()

	reader := &readers.TxtFileReader{}
	driver, err := ingest.NewDriver(log, reader, chunkifier, client, ingest.Options{
		Collection: cfg.CollectionName,
		BatchSize:  cfg.BatchSize,
		Append:     cfg.Append,
		KeepGoing:  keepGoing,
		Debounce:   time.Duration(cfg.MergeEventsMs) * time.Millisecond,
	})
	if err != nil {
		return err
	}

	res, err := driver.Run(ctx, cfg.DataDir)
	if res != nil {
		cmd.Printf("Files found: %d\n", res.FilesFound)
		cmd.Printf("Documents created: %d\n", res.DocumentsCreated)
		cmd.Printf("Documents ingested: %d\n", res.DocumentsIngested)
		for _, f := range res.Failures {
			cmd.Printf("Skipped: %s\n", f)
		}
	}
	switch {
	case watch && errors.Is(err, ingest.ErrNoFiles):
		log.Warn(err.Error())
	case err != nil:
		return err
	default:
		cmd.Printf("Total documents in collection %s: %d\n", cfg.CollectionName, res.CollectionCount)
	}

	if !watch {
		return nil
	}

	return driver.Watch(ctx, cfg.DataDir)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
