package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	mmerror "github.com/mathemascii/mathemascii/foundation/core/error"
	"github.com/mathemascii/mathemascii/internal/render/service"
	"github.com/mathemascii/mathemascii/pkg/core/logging"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-render a file whenever it changes",
	Long: `Renders the AsciiMath in a file and renders it again on every change
until interrupted.

Examples:
  mathemascii watch formula.txt
  mathemascii watch --block --indent "  " notes/euler.am`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVarP(&renderBlock, "block", "b", false, "render in block display mode")
	watchCmd.Flags().StringVar(&renderIndent, "indent", "", "indent MathML with this string")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	logger := newLogger(cmd, "watch")
	out := cmd.OutOrStdout()

	return watchFile(ctx, args[0], logger, func(content string) {
		input := strings.TrimRight(content, "\r\n")
		resp, err := svc.Render(ctx, &service.RenderRequest{
			Input:   input,
			Display: displayName(renderBlock),
			Indent:  renderIndent,
			Source:  "cli",
		})
		if err != nil {
			printError(cmd.ErrOrStderr(), err)
			return
		}
		fmt.Fprintf(out, "--- %s\n%s\n", args[0], resp.MathML)
		printWarnings(cmd, input, resp.Warnings)
	})
}

// watchFile calls onChange with the file content once at start and then
// after every change that alters the content. The parent directory is
// watched so editors that replace the file are followed.
func watchFile(ctx context.Context, path string, logger *logging.Logger, onChange func(string)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return mmerror.Wrap(err, "invalid path").
			WithCode(mmerror.CodeInvalidInput).
			WithOperation("cli.watch")
	}
	if _, err := os.Stat(abs); err != nil {
		return mmerror.Wrapf(err, "cannot watch %s", path).
			WithCode(mmerror.CodeNotFound).
			WithOperation("cli.watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mmerror.Wrap(err, "failed to create file watcher").
			WithCode(mmerror.CodeInternal).
			WithOperation("cli.watch")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return mmerror.Wrapf(err, "failed to watch %s", filepath.Dir(abs)).
			WithCode(mmerror.CodeInternal).
			WithOperation("cli.watch")
	}

	last, seen := "", false
	emit := func() {
		data, err := os.ReadFile(abs)
		if err != nil {
			logger.Debug("File not readable", "path", abs, "error", err)
			return
		}
		content := string(data)
		if seen && content == last {
			return
		}
		last, seen = content, true
		onChange(content)
	}

	logger.Info("Watching file", "path", abs)
	emit()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				emit()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("File watcher error", "error", err)
		}
	}
}
