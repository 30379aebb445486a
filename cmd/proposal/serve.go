package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lvillar/proposal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP proposal service",
	Long: `Serve the proposal form and the generation endpoints:

  GET  /                        the HTML form
  GET  /healthcheck             liveness
  POST /generate_proposal       PDF proposal
  POST /generate_proposal_word  Word proposal (needs a converter)`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, gen, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		Generator:   gen,
		Logger:      log,
		FormPath:    cfg.Path(cfg.Assets.Form),
		CORSOrigins: cfg.Server.CORSOrigins,
	})
	log.Info("starting proposal service", "addr", cfg.Server.Addr, "assets", cfg.Assets.Dir, "word", gen.CanConvert())
	return srv.Run(ctx, cfg.Server.Addr)
}
