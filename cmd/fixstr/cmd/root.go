// Package cmd implements the fixstr command line.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bjaus/fixstr"
	"github.com/bjaus/fixstr/internal/config"
	"github.com/bjaus/fixstr/internal/output"
)

// options is shared by every command and filled in before any of them run.
type options struct {
	cfgFile string
	verbose bool
	output  string

	cfg    config.Config
	format output.Format
	log    *zap.Logger
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{log: zap.NewNop()}
	root := &cobra.Command{
		Use:   "fixstr",
		Short: "Format numbers, match patterns and split text with fixed-capacity buffers",
		Long: `fixstr exposes the fixstr library on the command line.

Commands:
  num    - format integers and floats with the digit codec
  fmt    - build a structured name:'value' line
  match  - test texts against glob patterns
  split  - split text at a separator byte`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = opts.log.Sync()
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (.yaml, .yml or .toml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	flags.StringVarP(&opts.output, "output", "o", "", fmt.Sprintf("output format %v", output.Formats()))

	root.AddCommand(
		newNumCommand(opts),
		newFmtCommand(opts),
		newMatchCommand(opts),
		newSplitCommand(opts),
		newVersionCommand(),
	)
	return root
}

func (o *options) setup(cmd *cobra.Command) error {
	log, err := newLogger(o.verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	o.log = log
	fixstr.SetLogger(log)

	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}
	o.cfg = cfg

	name := cfg.Output
	if o.output != "" {
		name = o.output
	}
	if o.format, err = output.ParseFormat(name); err != nil {
		return err
	}
	o.log.Debug("configured",
		zap.String("command", cmd.Name()),
		zap.String("config", o.cfgFile),
		zap.Stringer("output", o.format),
		zap.Int("precision", cfg.Precision),
		zap.Int("width", cfg.Width),
	)
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func (o *options) write(cmd *cobra.Command, items ...result) error {
	return output.Write(cmd.OutOrStdout(), o.format, items...)
}

// result is what every command renders.
type result interface {
	fmt.Stringer
	output.Rower
	output.Headed
	output.Lister
}
