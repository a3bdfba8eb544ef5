package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bjaus/fixstr"
)

var errInvalidNumber = errors.New("invalid number")

type numResult struct {
	Input string `json:"input" yaml:"input"`
	Text  string `json:"text" yaml:"text"`
}

func (r numResult) String() string   { return r.Text }
func (r numResult) Row() []string    { return []string{r.Input, r.Text} }
func (r numResult) Header() []string { return []string{"input", "text"} }
func (r numResult) List() []string   { return []string{r.Text} }

func newNumCommand(opts *options) *cobra.Command {
	var width, precision int
	cmd := &cobra.Command{
		Use:   "num VALUE...",
		Short: "Format numbers with the digit codec",
		Long: `Integers are printed in decimal, zero-padded to --width.
Anything else is parsed as a float and printed with --precision
fractional digits.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("width") {
				width = opts.cfg.Width
			}
			if !cmd.Flags().Changed("precision") {
				precision = opts.cfg.Precision
			}
			results := make([]result, 0, len(args))
			for _, arg := range args {
				text, err := formatNumber(arg, width, precision)
				if err != nil {
					return err
				}
				opts.log.Debug("formatted", zap.String("input", arg), zap.String("text", text))
				results = append(results, numResult{Input: arg, Text: text})
			}
			return opts.write(cmd, results...)
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "zero-pad integers to this many digits")
	cmd.Flags().IntVarP(&precision, "precision", "p", fixstr.DefaultPrecision, "fractional digits for floats")
	return cmd
}

func formatNumber(arg string, width, precision int) (string, error) {
	var t fixstr.ShortTexter
	n, err := fixstr.ParseInt64(arg)
	switch {
	case err == nil:
		t.ZeroInt64(n, width)
		return t.String(), nil
	case errors.Is(err, fixstr.ErrRange) && arg[0] != '-':
		u, err := fixstr.ParseUint64(strings.TrimPrefix(arg, "+"))
		if err != nil {
			return "", fmt.Errorf("%w: %w", errInvalidNumber, err)
		}
		t.ZeroUint64(u, width)
		return t.String(), nil
	}
	x, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", errInvalidNumber, arg)
	}
	t.FixedFloat(x, precision)
	return t.String(), nil
}
