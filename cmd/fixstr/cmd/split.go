package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/fixstr"
)

var errInvalidSeparator = errors.New("separator must be a single byte")

type splitResult struct {
	Text      string   `json:"text" yaml:"text"`
	Fragments []string `json:"fragments" yaml:"fragments"`
}

func (r splitResult) String() string {
	var t fixstr.LongTexter
	t.Int(len(r.Fragments)).Str(" fragments:")
	for _, f := range r.Fragments {
		t.Byte(' ').Quoted(f)
	}
	return t.String()
}

func (r splitResult) Row() []string    { return r.Fragments }
func (r splitResult) Header() []string { return nil }
func (r splitResult) List() []string   { return r.Fragments }

func newSplitCommand(opts *options) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "split SEP TEXT...",
		Short: "Split texts at a separator byte",
		Long: `Empty fragments are dropped unless --strict is set, in which case
a text with n separators always yields n+1 fragments.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sep := args[0]
			if len(sep) != 1 {
				return fmt.Errorf("%w: %q", errInvalidSeparator, sep)
			}
			if !cmd.Flags().Changed("strict") {
				strict = opts.cfg.Strict
			}
			results := make([]result, 0, len(args)-1)
			for _, text := range args[1:] {
				var fragments []string
				if strict {
					fragments = fixstr.SplitStrictly(text, sep[0])
				} else {
					fragments = fixstr.Split(text, sep[0])
				}
				results = append(results, splitResult{Text: text, Fragments: fragments})
			}
			return opts.write(cmd, results...)
		},
	}
	cmd.Flags().BoolVarP(&strict, "strict", "s", false, "keep empty fragments")
	return cmd
}
