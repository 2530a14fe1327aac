package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/leofalp/lifemcp/core/serve"
	"github.com/leofalp/lifemcp/internal/config"
	"github.com/leofalp/lifemcp/internal/logging"
	"github.com/leofalp/lifemcp/tools/textutil"
)

var httpStream bool

var rootCmd = &cobra.Command{
	Use:          "textutilmcp",
	Short:        "MCP server exposing text summarization, similarity, and logarithm utilities",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger := logging.Setup(cfg.LogLevel)

		cat := textutil.NewCatalog()
		opts := serve.Options{HTTPStream: httpStream, Port: cfg.Port}

		transport := "stdio"
		if httpStream {
			transport = "http-stream on " + opts.Addr()
		}
		logger.Info("starting MCP server",
			"name", cat.Name(),
			"version", cat.Version(),
			"transport", transport,
		)

		return serve.Run(cmd.Context(), cat.BuildServer(), opts)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&httpStream, "http-stream", false, "serve over streamable HTTP on PORT instead of stdio")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
