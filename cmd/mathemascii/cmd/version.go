package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathemascii/mathemascii/pkg/core/version"
)

var versionFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		if versionFormat != FormatText {
			return writeStructured(cmd.OutOrStdout(), versionFormat, info)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "mathemascii v%s\n", info.Release)
		fmt.Fprintf(w, "  API:        %s\n", info.API)
		fmt.Fprintf(w, "  Git Commit: %s\n", info.Commit)
		fmt.Fprintf(w, "  Build Date: %s\n", info.BuildDate)
		fmt.Fprintf(w, "  Go Version: %s\n", info.GoVersion)
		fmt.Fprintf(w, "  OS/Arch:    %s\n", info.Platform)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", FormatText, "output format: text, json or yaml")
}
