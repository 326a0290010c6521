package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/webdeck/internal/cli/styles"
	"github.com/bnema/webdeck/internal/infrastructure/webkit"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	Args:    cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		renderer := styles.NewAboutRenderer(defaultTheme())
		if versionShort {
			fmt.Println(renderer.RenderShort(buildInfo))
			return nil
		}
		fmt.Println(renderer.Render(buildInfo, hostName()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print only the version")
}

func hostName() string {
	if webkit.Available() {
		return "GTK4 + WebKitGTK"
	}
	return "system browser"
}
