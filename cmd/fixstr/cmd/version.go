package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/bjaus/fixstr"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fixstr.Fprint(cmd.OutOrStdout(),
				"fixstr v", Version, " (", GitCommit, ") ", runtime.Version(), " ", runtime.GOOS, "/", runtime.GOARCH)
			return err
		},
	}
}
