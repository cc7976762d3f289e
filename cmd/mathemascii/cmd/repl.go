package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/mathemascii/mathemascii/foundation/asciimath/diag"
	"github.com/mathemascii/mathemascii/internal/render/service"
)

const (
	replPrompt      = "asciimath> "
	replHistoryFile = ".mathemascii_history"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive AsciiMath shell",
	Long: `Reads AsciiMath line by line and prints the MathML of every line.

Commands:
  :block    switch to block display
  :inline   switch to inline display
  :mathml   print MathML (default)
  :tokens   print the token stream instead of MathML
  :tree     print the expression tree instead of MathML
  :help     show this list
  :quit     leave the shell`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// replMode selects what the shell prints for an input line
type replMode int

const (
	replMathML replMode = iota
	replTokens
	replTree
)

// replSession holds the shell state between lines
type replSession struct {
	svc   *service.Service
	block bool
	mode  replMode
	out   io.Writer
	err   io.Writer
	color bool
}

// eval handles one line and reports whether the shell should exit
func (s *replSession) eval(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if strings.HasPrefix(line, ":") {
		switch strings.ToLower(line) {
		case ":quit", ":q", ":exit":
			return true
		case ":block":
			s.block = true
		case ":inline":
			s.block = false
		case ":mathml":
			s.mode = replMathML
		case ":tokens":
			s.mode = replTokens
		case ":tree":
			s.mode = replTree
		case ":help":
			fmt.Fprintln(s.out, ":block :inline :mathml :tokens :tree :quit")
		default:
			fmt.Fprintf(s.out, "unknown command %s. Type :help for a list.\n", line)
		}
		return false
	}

	switch s.mode {
	case replTokens:
		resp, err := s.svc.Tokens(ctx, line)
		if err != nil {
			printError(s.err, err)
			return false
		}
		rows := make([][]string, 0, len(resp.Tokens))
		for _, t := range resp.Tokens {
			rows = append(rows, []string{t.Span.String(), t.Kind, t.Name, t.Text})
		}
		writeTable(s.out, []string{"SPAN", "KIND", "NAME", "TEXT"}, rows)
		s.warn(line, resp.Warnings)
	case replTree:
		resp, err := s.svc.Tree(ctx, line)
		if err != nil {
			printError(s.err, err)
			return false
		}
		fmt.Fprint(s.out, resp.Dump())
		s.warn(line, resp.Warnings)
	default:
		resp, err := s.svc.Render(ctx, &service.RenderRequest{
			Input:   line,
			Display: displayName(s.block),
			Source:  "repl",
		})
		if err != nil {
			printError(s.err, err)
			return false
		}
		fmt.Fprintln(s.out, resp.MathML)
		s.warn(line, resp.Warnings)
	}
	return false
}

func (s *replSession) warn(input string, warnings []diag.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(s.err, diag.FormatAll(input, warnings, s.color))
}

func runRepl(cmd *cobra.Command, args []string) error {
	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	session := &replSession{
		svc:   svc,
		out:   cmd.OutOrStdout(),
		err:   cmd.ErrOrStderr(),
		color: useColor(cmd.ErrOrStderr()),
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, replHistoryFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Fprintln(session.out, "mathemascii shell. Type :help for commands, :quit to exit.")
	for {
		line, err := ln.Prompt(replPrompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(session.out)
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if session.eval(cmd.Context(), line) {
			return nil
		}
	}
}
