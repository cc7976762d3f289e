package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mathemascii/mathemascii/internal/tui/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview [input]",
	Short: "Live preview in the terminal",
	Long: `Opens a terminal UI that re-renders the input while you type and shows
the MathML, the token stream and the warnings side by side.

Keys:
  ctrl+b     toggle inline/block display
  tab        switch between MathML and tokens
  ctrl+y     copy the MathML to the clipboard
  pgup/pgdn  scroll the output
  esc        quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		indent := appConfig.Render.Indent
		if indent == "" {
			indent = "  "
		}
		return preview.Run(preview.Config{
			Renderer: svc,
			Input:    strings.Join(args, " "),
			Block:    renderBlock,
			Indent:   indent,
		})
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().BoolVarP(&renderBlock, "block", "b", false, "start in block display mode")
}
