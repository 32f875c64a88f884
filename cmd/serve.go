package cmd

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mdilm/manufacturing-game/api"
	"github.com/mdilm/manufacturing-game/store/sqlite"
)

var (
	addr   string // HTTP listen address
	dbPath string // Run-history database path, empty disables persistence
)

// serveCmd starts the HTTP adapter for the browser dashboard
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulation HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		var store *sqlite.Store
		if dbPath != "" {
			var err error
			store, err = sqlite.New(dbPath)
			if err != nil {
				logrus.Fatalf("open run history store: %v", err)
			}
			defer store.Close()
		}

		router := api.NewRouter(api.NewHandler(store))
		logrus.Infof("Listening on %s", addr)
		if err := http.ListenAndServe(addr, router); err != nil {
			logrus.Fatalf("server: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", ":8000", "HTTP listen address")
	serveCmd.Flags().StringVar(&dbPath, "db", "runs.db", "Run-history SQLite path (empty disables history)")
}
