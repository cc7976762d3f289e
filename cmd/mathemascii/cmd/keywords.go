package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mathemascii/mathemascii/foundation/asciimath/keywords"
	mmerror "github.com/mathemascii/mathemascii/foundation/core/error"
)

var (
	keywordsSearch string
	keywordsFormat string
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords [category]",
	Short: "List the recognised keywords",
	Long: `Lists every keyword spelling, optionally restricted to one category.

Categories: greek, arrow, function, operator, relation, logical,
grouping, other, accent, font.

With --search the spellings are fuzzy-matched and the best matches are
listed first.

Examples:
  mathemascii keywords greek
  mathemascii keywords --search arr
  mathemascii keywords relation --format json`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"greek", "arrow", "function", "operator", "relation", "logical", "grouping", "other", "accent", "font"},
	RunE:      runKeywords,
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
	keywordsCmd.Flags().StringVarP(&keywordsSearch, "search", "s", "", "fuzzy search term")
	keywordsCmd.Flags().StringVarP(&keywordsFormat, "format", "f", FormatText, "output format: text, json or yaml")
}

func runKeywords(cmd *cobra.Command, args []string) error {
	if err := checkFormat(keywordsFormat); err != nil {
		return err
	}

	var filter func(keywords.Category) bool
	if len(args) == 1 {
		c, ok := keywords.ParseCategory(args[0])
		if !ok {
			return mmerror.Newf("unknown keyword category %q", args[0]).
				WithCode(mmerror.CodeInvalidInput).
				WithOperation("cli.keywords")
		}
		filter = func(other keywords.Category) bool { return other == c }
	}

	if keywordsSearch != "" {
		var matches []keywords.Match
		for _, m := range keywords.Search(keywordsSearch) {
			if filter == nil || filter(m.Category) {
				matches = append(matches, m)
			}
		}
		if keywordsFormat != FormatText {
			return writeStructured(cmd.OutOrStdout(), keywordsFormat, matches)
		}
		rows := make([][]string, 0, len(matches))
		for _, m := range matches {
			rows = append(rows, []string{m.Category.String(), m.Name, m.Literal, strconv.Itoa(m.Score)})
		}
		writeTable(cmd.OutOrStdout(), []string{"CATEGORY", "NAME", "MATCH", "SCORE"}, rows)
		return nil
	}

	var entries []keywords.Entry
	for _, e := range keywords.All() {
		if filter == nil || filter(e.Category) {
			entries = append(entries, e)
		}
	}
	if keywordsFormat != FormatText {
		return writeStructured(cmd.OutOrStdout(), keywordsFormat, entries)
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Category.String(), e.Name, strings.Join(e.Literals, " ")})
	}
	writeTable(cmd.OutOrStdout(), []string{"CATEGORY", "NAME", "LITERALS"}, rows)
	return nil
}
