package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poulpybifle/buslog/pkg/config"
	"github.com/poulpybifle/buslog/pkg/signal"
	"github.com/poulpybifle/buslog/pkg/style"
	"github.com/poulpybifle/buslog/pkg/web"
)

var (
	servePortFlag int
	serveHostFlag string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the documentation in a browser",
	Long: `Start a local web server for browsing workflow documentation.

Workflows are rendered as HTML with Mermaid diagram support, and
annotations can be added from the browser. The default port comes
from the user config (buslog config set port <n>).

Examples:
  buslog serve
  buslog serve --port 3000
  buslog serve --host 0.0.0.0 --port 8080`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePortFlag, "port", "p", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveHostFlag, "host", "127.0.0.1", "Host to bind")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	// Fail fast before binding a port
	if _, err := st.LoadConfig(); err != nil {
		return err
	}

	port := servePortFlag
	if port == 0 {
		port = config.DefaultPort
		if cfg, err := config.Load(); err == nil && cfg.Port != 0 {
			port = cfg.Port
		}
	}

	ctx, cancel := signal.NotifyContext()
	defer cancel()

	fmt.Printf("%s Serving documentation at %s\n", style.C(style.Green, "✓"),
		style.C(style.Cyan, fmt.Sprintf("http://%s:%d", serveHostFlag, port)))
	fmt.Println(style.D("  Press Ctrl+C to stop"))

	return web.NewServer(st).Start(ctx, serveHostFlag, port)
}
