package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newPrintCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "print",
		Short:   "Print the schema",
		Example: `sdlprint print --bucket file:///etc/schemas --schema schema.graphql --attachments directives.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := load(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer l.logger.Sync()

			var sdl string
			if l.cfg.Baseline {
				sdl, err = l.schema.PrintSchema(l.printOptions()...)
			} else {
				sdl, err = l.schema.PrintSchemaWithDirectives(l.printOptions()...)
			}
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), sdl)
			return err
		},
	}
}
