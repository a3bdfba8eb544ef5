package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/fixstr"
)

var errInvalidField = errors.New("invalid field, want NAME=VALUE")

type fmtResult struct {
	Line string `json:"line" yaml:"line"`
}

func (r fmtResult) String() string   { return r.Line }
func (r fmtResult) Row() []string    { return []string{r.Line} }
func (r fmtResult) Header() []string { return []string{"line"} }
func (r fmtResult) List() []string   { return []string{r.Line} }

func newFmtCommand(opts *options) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "fmt NAME=VALUE...",
		Short: "Build a structured name:'value' line",
		Example: `  fixstr fmt --title Addition x=-1 y=-2 r=-3
  Addition { x:'-1' y:'-2' r:'-3' }`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := formatFields(title, args)
			if err != nil {
				return err
			}
			return opts.write(cmd, fmtResult{Line: line})
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "text written before the fields")
	return cmd
}

func formatFields(title string, args []string) (string, error) {
	rest := make([]any, 0, 2*(len(args)-1))
	var name, value string
	for i, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return "", fmt.Errorf("%w: %q", errInvalidField, arg)
		}
		if i == 0 {
			name, value = k, v
			continue
		}
		rest = append(rest, k, v)
	}
	var t fixstr.LongTexter
	t.Str(title).Format(name, value, rest...)
	return t.String(), nil
}
