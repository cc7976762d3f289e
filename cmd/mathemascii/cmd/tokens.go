package cmd

import (
	"github.com/spf13/cobra"
)

var tokensFormat string

var tokensCmd = &cobra.Command{
	Use:   "tokens [input|-]",
	Short: "Show the token stream of an input",
	Long: `Prints every token with its symbol span, kind and keyword name.

Examples:
  mathemascii tokens "x_(i+1) <= oo"
  mathemascii tokens --format json "sin^2 theta"`,
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().StringVarP(&tokensFormat, "format", "f", FormatText, "output format: text, json or yaml")
}

func runTokens(cmd *cobra.Command, args []string) error {
	if err := checkFormat(tokensFormat); err != nil {
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

	resp, err := svc.Tokens(cmd.Context(), input)
	if err != nil {
		return err
	}

	if tokensFormat != FormatText {
		return writeStructured(cmd.OutOrStdout(), tokensFormat, resp)
	}

	rows := make([][]string, 0, len(resp.Tokens))
	for _, t := range resp.Tokens {
		rows = append(rows, []string{t.Span.String(), t.Kind, t.Name, t.Text})
	}
	writeTable(cmd.OutOrStdout(), []string{"SPAN", "KIND", "NAME", "TEXT"}, rows)
	printWarnings(cmd, input, resp.Warnings)
	return nil
}
