package cmd

import (
	"github.com/spf13/cobra"

	"envelope/internal/config"
	"envelope/internal/logger"
	"envelope/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger.Init(cfg.Env)

		eng, err := openEngine()
		if err != nil {
			return err
		}

		srv := server.New(eng, serveAddr, logger.Get())
		return srv.ListenAndServe()
	},
}

func init() {
	serveAddr = config.Load().Addr
	serveCmd.Flags().StringVar(&serveAddr, "addr", serveAddr, "Listen address")
	rootCmd.AddCommand(serveCmd)
}
