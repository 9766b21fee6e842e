package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/shyptr/schemadirectives"
	"github.com/shyptr/schemadirectives/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the printed schema over HTTP",
		Example: `sdlprint serve --bucket file:///etc/schemas --schema schema.graphql --addr :8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l, err := load(ctx, v)
			if err != nil {
				return err
			}
			defer l.logger.Sync()

			server := &http.Server{
				Addr:    l.cfg.Addr,
				Handler: schemadirectives.HTTPHandler(l.schema, l.printOptions()...),
			}
			errc := make(chan error, 1)
			go func() {
				l.logger.Info("serving schema", zap.String("addr", l.cfg.Addr))
				errc <- server.ListenAndServe()
			}()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			}
		},
	}
	cmd.Flags().String(config.KeyAddr, config.DefaultAddr, "Address to listen on")
	_ = v.BindPFlag(config.KeyAddr, cmd.Flags().Lookup(config.KeyAddr))
	return cmd
}
