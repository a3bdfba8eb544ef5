package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bjaus/fixstr"
)

type matchResult struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Text    string `json:"text" yaml:"text"`
	Matched bool   `json:"matched" yaml:"matched"`
}

func (r matchResult) String() string {
	var t fixstr.MediumTexter
	t.Str("match").Format("pattern", r.Pattern, "text", r.Text, "matched", r.Matched)
	return t.String()
}

func (r matchResult) Row() []string {
	var t fixstr.ShortTexter
	t.Bool(r.Matched)
	return []string{r.Pattern, r.Text, t.String()}
}

func (r matchResult) Header() []string { return []string{"pattern", "text", "matched"} }

// List yields only the texts that matched.
func (r matchResult) List() []string {
	if !r.Matched {
		return nil
	}
	return []string{r.Text}
}

func newMatchCommand(opts *options) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "match PATTERN TEXT...",
		Short: "Test texts against a glob pattern",
		Long: `'*' matches any run of bytes, '?' a single byte, and a leading '!'
negates the pattern. With --list, PATTERN is a comma-separated list and
a text must match every entry.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, texts := args[0], args[1:]
			opts.log.Debug("matching",
				zap.String("pattern", pattern),
				zap.Bool("wildcards", fixstr.HasWildcards(pattern)),
				zap.Int("texts", len(texts)),
			)
			results := make([]result, 0, len(texts))
			for _, text := range texts {
				var ok bool
				if list {
					ok = fixstr.MatchedList(pattern, text)
				} else {
					ok = fixstr.Matched(pattern, text)
				}
				results = append(results, matchResult{Pattern: pattern, Text: text, Matched: ok})
			}
			return opts.write(cmd, results...)
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "treat PATTERN as a comma-separated list")
	return cmd
}
