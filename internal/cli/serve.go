package cli

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/sprout-app/sprout/internal/api"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Bool("metrics", false, "Expose Prometheus metrics at /metrics")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Sprout HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	srv := api.NewServer(a.factory, a.engine, a.confirmer, a.economy, a.ledger, a.db, a.db)

	metrics, _ := cmd.Flags().GetBool("metrics")
	if metrics || a.cfg.API.Metrics {
		srv.EnableMetrics()
	}

	addr := a.cfg.API.Addr()
	log.Printf("sprout api listening on %s (db: %s)", addr, a.cfg.Storage.Path)
	return http.ListenAndServe(addr, srv.Handler())
}
