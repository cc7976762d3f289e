package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mathemascii/mathemascii/foundation/asciimath/diag"
	mmerror "github.com/mathemascii/mathemascii/foundation/core/error"
	"github.com/mathemascii/mathemascii/internal/render/service"
	"github.com/mathemascii/mathemascii/pkg/core/config"
	"github.com/mathemascii/mathemascii/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool
	noColor bool

	renderBlock  bool
	renderIndent string

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mathemascii [input]",
	Short: "AsciiMath to MathML converter",
	Long: `mathemascii converts AsciiMath notation to presentation MathML.

Without a subcommand the input is rendered like "mathemascii render".
Malformed input is never rejected: it is converted on a best-effort
basis and every recovery is reported as a warning on stderr.

Examples:
  mathemascii "sum_(i=1)^n i^2"
  mathemascii --block "[[a,b],[c,d]]"
  echo "x^2" | mathemascii render -`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runRender(cmd, args)
	},
}

// Execute runs the command tree
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $MATHEMASCII_CONFIG or ./mathemascii.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	rootCmd.Flags().BoolVarP(&renderBlock, "block", "b", false, "render in block display mode")
	rootCmd.Flags().StringVar(&renderIndent, "indent", "", "indent MathML with this string")
}

// loadConfig reads the configuration before any command runs. A missing
// default file falls back to the defaults; an explicit --config must exist.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	return err
}

// newLogger builds the command logger; diagnostics go to stderr
func newLogger(cmd *cobra.Command, name string) *logging.Logger {
	lc := logging.FromConfig(appConfig.General, name)
	lc.Output = cmd.ErrOrStderr()
	if verbose {
		lc.Level = "debug"
	} else if lc.Level == "info" {
		lc.Level = "warn"
	}
	return logging.Wrap(logging.NewLogger(lc), name)
}

// newService creates a render service without history for one-shot
// commands
func newService(cmd *cobra.Command) (*service.Service, error) {
	cfg := service.FromConfig(appConfig)
	cfg.EnableHistory = false
	return service.NewService(cfg, newLogger(cmd, "cli"))
}

// newHistoryService creates a render service that records to the
// configured history database
func newHistoryService(cmd *cobra.Command) (*service.Service, error) {
	cfg := service.FromConfig(appConfig)
	cfg.EnableHistory = true
	return service.NewService(cfg, newLogger(cmd, "cli"))
}

// readInput joins the arguments, or reads stdin for "-" or no arguments
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", mmerror.Wrap(err, "failed to read stdin").
				WithCode(mmerror.CodeInvalidInput).
				WithOperation("cli.readInput")
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}
	return strings.Join(args, " "), nil
}

// useColor reports whether w is a terminal that should get colours
func useColor(w io.Writer) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func displayName(block bool) string {
	if block {
		return "block"
	}
	return "inline"
}

// printWarnings writes caret diagnostics for every warning to stderr
func printWarnings(cmd *cobra.Command, input string, warnings []diag.Warning) {
	if len(warnings) == 0 {
		return
	}
	w := cmd.ErrOrStderr()
	fmt.Fprintln(w, diag.FormatAll(input, warnings, useColor(w)))
}

func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	if !useColor(w) {
		red.DisableColor()
	}
	msg := err.Error()
	if e, ok := mmerror.As(err); ok {
		msg = fmt.Sprintf("%s [%s]", e.Error(), e.Code())
	}
	fmt.Fprintf(w, "%s %s\n", red.Sprint("error:"), msg)
}
