package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathemascii/mathemascii/internal/render/service"
)

var renderSave bool

var renderCmd = &cobra.Command{
	Use:   "render [input|-]",
	Short: "Convert AsciiMath to MathML",
	Long: `Converts AsciiMath to MathML and prints it on stdout.

The input is taken from the arguments, joined by spaces, or from stdin
when no argument or "-" is given. Warnings are printed on stderr.

Examples:
  mathemascii render "a/b"
  mathemascii render --block --indent "  " "int_0^1 f(x) dx"
  mathemascii render --save "E = mc^2"`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().BoolVarP(&renderBlock, "block", "b", false, "render in block display mode")
	renderCmd.Flags().StringVar(&renderIndent, "indent", "", "indent MathML with this string")
	renderCmd.Flags().BoolVar(&renderSave, "save", false, "record the render in the history database")
}

func runRender(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	newSvc := newService
	if renderSave {
		newSvc = newHistoryService
	}
	svc, err := newSvc(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	resp, err := svc.Render(cmd.Context(), &service.RenderRequest{
		Input:   input,
		Display: displayName(renderBlock),
		Indent:  renderIndent,
		Source:  "cli",
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.MathML)
	printWarnings(cmd, input, resp.Warnings)
	return nil
}
