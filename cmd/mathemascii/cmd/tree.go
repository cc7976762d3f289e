package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var treeFormat string

var treeCmd = &cobra.Command{
	Use:   "tree [input|-]",
	Short: "Show the expression tree of an input",
	Long: `Prints the parsed expression trees with their symbol spans.

The text format is an indented outline; json and yaml emit the full
node description including spans and warnings.

Examples:
  mathemascii tree "(a+b)/c"
  mathemascii tree --format yaml "[[1,0],[0,1]]"`,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().StringVarP(&treeFormat, "format", "f", FormatText, "output format: text, json or yaml")
}

func runTree(cmd *cobra.Command, args []string) error {
	if err := checkFormat(treeFormat); err != nil {
		return err
	}
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	resp, err := svc.Tree(cmd.Context(), input)
	if err != nil {
		return err
	}

	if treeFormat != FormatText {
		return writeStructured(cmd.OutOrStdout(), treeFormat, resp)
	}
	fmt.Fprint(cmd.OutOrStdout(), resp.Dump())
	printWarnings(cmd, input, resp.Warnings)
	return nil
}
