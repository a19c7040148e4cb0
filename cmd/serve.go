package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/tutorly/internal/server"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tutor over an HTTP JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if cmd.Flags().Changed("watch") {
			appCfg.Watch, _ = cmd.Flags().GetBool("watch")
		}
		if addr == "" {
			addr = appCfg.HTTPAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		d, err := buildDeps(ctx)
		if err != nil {
			return err
		}
		defer d.Close()

		srv := server.New(d.agent, d.kb, logger.Named("server"))

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return srv.Listen(addr)
		})
		g.Go(func() error {
			<-ctx.Done()
			logger.Info("shutting down http server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
		if appCfg.Watch {
			g.Go(func() error {
				return d.kb.Watch(ctx, nil)
			})
		}

		if err := g.Wait(); err != nil {
			logger.Error("server stopped", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from config, :8080)")
	serveCmd.Flags().Bool("watch", false, "Reload subject files when they change")
}
