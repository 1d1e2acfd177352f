package version

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Version is set at build time using ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// NewVersionCmd creates a new command that displays version information
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  `Display the version, git commit, and build date of columns.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(map[string]string{
				"version":   Version,
				"gitCommit": GitCommit,
				"buildDate": BuildDate,
			})
		},
	}
}
