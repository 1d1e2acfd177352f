package root

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vdobler/livechart"
	"github.com/vdobler/livechart/cmd/columns/root/render"
	"github.com/vdobler/livechart/cmd/columns/root/version"
)

// NewRootCmd creates the columns command with all its subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns <command>",
		Short: "Render animated column charts",
		Long:  `Render animated column charts from YAML data files into PNG frames.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug := viper.GetBool("debug")
			livechart.SetDebug(debug)
			if debug {
				log.SetLevel(log.DebugLevel)
			}
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "Log point view lifecycles and animations")
	viper.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))

	cmd.AddCommand(render.NewRenderCmd())
	cmd.AddCommand(version.NewVersionCmd())

	return cmd
}
