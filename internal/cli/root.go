// Package cli implements the sdlprint command.
package cli

import (
	"context"

	"github.com/shyptr/schemadirectives"
	"github.com/shyptr/schemadirectives/config"
	"github.com/shyptr/schemadirectives/printer"
	"github.com/shyptr/schemadirectives/source"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// NewRootCommand builds the sdlprint command tree. Settings come from flags,
// SDLPRINT_ environment variables and an optional config file.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "sdlprint",
		Short:         "Print GraphQL schemas with their schema directives",
		Long:          `sdlprint loads GraphQL SDL from a blob bucket, attaches the directives listed in an optional attachment file and prints the schema with every directive in place.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.String(config.KeyConfig, "", "Config file (yaml, json or toml)")
	flags.String(config.KeyBucket, config.DefaultBucket, "Bucket URL holding the schema files")
	flags.StringSlice(config.KeySchema, nil, "Schema file keys inside the bucket")
	flags.String(config.KeyAttachments, "", "Attachment file key inside the bucket")
	flags.String(config.KeyIndent, config.DefaultIndent, "Indentation of the printed schema")
	flags.Bool(config.KeyBaseline, false, "Print the schema without attached directives")
	flags.BoolP(config.KeyVerbose, "v", false, "Log debug output")
	_ = v.BindPFlags(flags)

	root.AddCommand(newPrintCommand(v), newServeCommand(v))
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

type loaded struct {
	cfg    *config.Config
	schema *schemadirectives.Schema
	logger *zap.Logger
}

func (l *loaded) printOptions() []printer.Option {
	return []printer.Option{printer.WithIndent(l.cfg.Indent), printer.WithLogger(l.logger)}
}

func load(ctx context.Context, v *viper.Viper) (*loaded, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return nil, err
	}
	sources, err := source.Load(ctx, cfg.Bucket, cfg.Schema, source.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	schema, err := schemadirectives.FromSources(sources...)
	if err != nil {
		return nil, err
	}
	if cfg.Attachments != "" {
		data, err := source.ReadFile(ctx, cfg.Bucket, cfg.Attachments)
		if err != nil {
			return nil, err
		}
		attachments, err := config.ParseAttachments(data)
		if err != nil {
			return nil, err
		}
		if err := attachments.Apply(schema.Schema); err != nil {
			return nil, err
		}
		logger.Debug("applied attachments", zap.String("key", cfg.Attachments), zap.Int("count", len(attachments)))
	}
	return &loaded{cfg: cfg, schema: schema, logger: logger}, nil
}
