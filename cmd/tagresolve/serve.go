package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tagresolve/tagresolve/internal/cli/config"
	"github.com/tagresolve/tagresolve/internal/web/server"
	"github.com/tagresolve/tagresolve/model"
	"github.com/tagresolve/tagresolve/resolver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the introspection HTTP API",
	Long: `Start an HTTP server answering resolution queries over the model
configured in tagresolve.yml (schema path, listen address, cache size).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger, err := newLogger(cfg.Log.Development)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()

		reg, err := model.LoadFile(cfg.Schema)
		if err != nil {
			return err
		}

		var opts []resolver.Option
		if cfg.Cache.Size > 0 {
			opts = append(opts, resolver.WithResultCache(cfg.Cache.Size))
		}
		res := resolver.New(reg, opts...)

		logger.Info("model loaded",
			zap.String("schema", cfg.Schema),
			zap.String("version", reg.Version()),
			zap.Int("types", len(reg.Types())),
		)

		srv := server.New(reg, res, logger)
		return srv.ListenAndServe(cfg.Server.Host, cfg.Server.Port)
	},
}

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
