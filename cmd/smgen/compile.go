package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	statemachine "github.com/statelang/go-statemachine"
	"github.com/statelang/go-statemachine/loader"
)

func newCompileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <file>...",
		Short: "Replace statemachine blocks with generated Go definitions",
		Long: "Transform each input file by substituting every statemachine block, of either\n" +
			"dialect, with the Go rendering of its compiled state machine. Text outside the\n" +
			"blocks is copied through unchanged.",
		Args: cobra.MinimumNArgs(1),
		RunE: runCompile,
	}
	cmd.Flags().StringP(flagOutput, "o", "", "directory to write generated files into (default: next to each input)")
	cmd.Flags().Bool(flagStdout, false, "write generated text to stdout instead of files")
	return cmd
}

func runCompile(cmd *cobra.Command, args []string) error {
	var (
		log      = newLogger()
		outDir   = mustGetString(flagOutput, cmd.Flags())
		toStdout = mustGetBool(flagStdout, cmd.Flags())
	)
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out, err := statemachine.Compile(string(data))
		if err != nil {
			logSyntaxError(log, path, err)
			return fmt.Errorf("compile %s: %w", path, err)
		}
		if toStdout {
			fmt.Fprint(cmd.OutOrStdout(), out)
			continue
		}
		dst := outputPath(path, outDir)
		if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
			return err
		}
		log.Info("compiled", "file", path, "output", dst)
	}
	return nil
}

func outputPath(path, outDir string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, loader.DefaultSuffix) + ".go"
	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	return filepath.Join(outDir, base)
}

func logSyntaxError(log *slog.Logger, path string, err error) {
	var serr *statemachine.SyntaxError
	if errors.As(err, &serr) {
		log.Error("syntax error", "file", path, "line", serr.Line, "col", serr.Col, "msg", serr.Msg)
	}
}
