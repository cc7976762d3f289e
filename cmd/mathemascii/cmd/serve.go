package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mathemascii/mathemascii/internal/render/server"
	"github.com/mathemascii/mathemascii/internal/render/service"
	"github.com/mathemascii/mathemascii/pkg/core/logging"
)

var (
	serveHost      string
	serveHTTPPort  int
	serveGRPCPort  int
	serveNoHistory bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP, WebSocket and gRPC render service",
	Long: `Starts the render service.

Endpoints:
  HTTP       /api/v1/render, /tokens, /tree, /keywords, /history, /health
  WebSocket  /api/v1/preview/ws
  gRPC       mathemascii.v1.Renderer, grpc.health.v1.Health

Examples:
  mathemascii serve
  mathemascii serve --port 8080 --grpc-port 0   # HTTP only`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (default from config)")
	serveCmd.Flags().IntVarP(&serveHTTPPort, "port", "p", 0, "HTTP port (default from config)")
	serveCmd.Flags().IntVar(&serveGRPCPort, "grpc-port", -1, "gRPC port, 0 disables gRPC (default from config)")
	serveCmd.Flags().BoolVar(&serveNoHistory, "no-history", false, "do not record renders")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lc := logging.FromConfig(appConfig.General, "serve")
	if verbose {
		lc.Level = "debug"
	}
	logger := logging.Wrap(logging.NewLogger(lc), "serve")

	svcCfg := service.FromConfig(appConfig)
	if serveNoHistory {
		svcCfg.EnableHistory = false
	}
	svc, err := service.NewService(svcCfg, logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	srvCfg := server.FromConfig(appConfig)
	if serveHost != "" {
		srvCfg.Host = serveHost
	}
	if serveHTTPPort > 0 {
		srvCfg.HTTPPort = serveHTTPPort
	}
	if serveGRPCPort >= 0 {
		srvCfg.GRPCPort = serveGRPCPort
	}

	fmt.Fprintf(cmd.OutOrStdout(), "mathemascii serving on http://%s:%d/api/v1", srvCfg.Host, srvCfg.HTTPPort)
	if srvCfg.GRPCPort > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), " and grpc %s:%d", srvCfg.Host, srvCfg.GRPCPort)
	}
	fmt.Fprintln(cmd.OutOrStdout())

	return server.New(srvCfg, svc, logger).Run(ctx)
}
