package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gamma-omg/rag-loader/config"
	"github.com/gamma-omg/rag-loader/docstore"
	"github.com/gamma-omg/rag-loader/query"
	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

var (
	cfgPath  string
	results  int
	servAddr string
)

var rootCmd = &cobra.Command{
	Use:   "query [text...]",
	Short: "Search the vector collection",
	Long: `Searches COLLECTION_NAME for the chunks closest to the given text.
Without arguments an interactive prompt is started.

Text that starts with a subcommand name (stats, collections, serve) is
searched when it follows "--", e.g. query -- stats of the fleet`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runQuery,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics (file list is sampled)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDriver(cmd, func(ctx context.Context, d *query.Driver, _ *config.Config, _ *slog.Logger) error {
			return d.PrintStats(ctx, cmd.OutOrStdout())
		})
	},
}

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List collection names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDriver(cmd, func(ctx context.Context, d *query.Driver, _ *config.Config, _ *slog.Logger) error {
			names, err := d.Collections(ctx)
			if err != nil {
				return err
			}
			for _, n := range names {
				cmd.Println(n)
			}
			return nil
		})
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose search as an MCP tool over SSE",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDriver(cmd, func(ctx context.Context, d *query.Driver, cfg *config.Config, log *slog.Logger) error {
			srv := query.NewRagServer(d, resultCount(cmd, cfg))
			sse := server.NewSSEServer(srv, server.WithBaseURL(fmt.Sprintf("http://%s", servAddr)))

			go func() {
				<-ctx.Done()
				_ = sse.Shutdown(context.Background())
			}()

			log.Info("serving MCP", "addr", servAddr)
			return sse.Start(servAddr)
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "optional YAML configuration file")
	rootCmd.PersistentFlags().IntVarP(&results, "results", "n", 0, "number of results (defaults to RESULTS or 5)")
	serveCmd.Flags().StringVar(&servAddr, "addr", "localhost:8080", "listen address")

	rootCmd.AddCommand(statsCmd, collectionsCmd, serveCmd)
}

func resultCount(cmd *cobra.Command, cfg *config.Config) int {
	if cmd.Flags().Changed("results") {
		return results
	}

	return cfg.Results
}

func withDriver(cmd *cobra.Command, fn func(ctx context.Context, d *query.Driver, cfg *config.Config, log *slog.Logger) error) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.ValidateQuery(); err != nil {
		return err
	}

	log, closer, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := docstore.Open(ctx, log, cfg.Store())
	if err != nil {
		return err
	}
	defer client.Close()

	return fn(ctx, query.NewDriver(log, client, cfg.CollectionName), cfg, log)
}

func runQuery(cmd *cobra.Command, args []string) error {
	return withDriver(cmd, func(ctx context.Context, d *query.Driver, cfg *config.Config, _ *slog.Logger) error {
		k := resultCount(cmd, cfg)
		if len(args) == 0 {
			err := d.Interactive(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), k)
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		err := d.PrintQuery(ctx, cmd.OutOrStdout(), strings.Join(args, " "), k)
		if err != nil {
			return errors.New(d.Describe(err))
		}
		return nil
	})
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
