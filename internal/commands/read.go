package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/qifreader/internal/config"
	"github.com/cleared-dev/qifreader/internal/importer"
	"github.com/cleared-dev/qifreader/internal/model"
	"github.com/cleared-dev/qifreader/internal/qif"
	"github.com/cleared-dev/qifreader/internal/report"
)

func newReadCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "read <file.qif|dir>...",
		Short: "Print the type, record count and a summary of every record",
		Args:  requireFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.resolve(cmd)
			if err != nil {
				return err
			}
			return runRead(cmd, cfg, args)
		},
	}
}

func newCodesCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "codes <file.qif|dir>...",
		Short: "List the distinct field codes used in each file",
		Args:  requireFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.resolve(cmd)
			if err != nil {
				return err
			}
			return runCodes(cmd, cfg, args)
		},
	}
}

// requireFiles prints the usage when no paths are given.
func requireFiles(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Usage()
		return errors.New("no QIF files given")
	}
	return nil
}

func runRead(cmd *cobra.Command, cfg *config.Config, args []string) error {
	out := cmd.OutOrStdout()
	var csvw *report.CSVWriter
	if cfg.Output == config.OutputCSV {
		csvw = report.NewCSVWriter(out)
	}

	return eachFile(cmd, cfg, args, func(f importer.FileInfo, ts *model.Transactions) error {
		if csvw != nil {
			return csvw.Write(f.Path, ts)
		}
		return report.WriteText(out, f.Path, ts)
	})
}

func runCodes(cmd *cobra.Command, cfg *config.Config, args []string) error {
	return eachFile(cmd, cfg, args, func(f importer.FileInfo, ts *model.Transactions) error {
		return report.WriteCodes(cmd.OutOrStdout(), f.Path, ts)
	})
}

// eachFile parses every file named by args and hands the result to fn.
// A failing argument or file is reported on stderr and the batch continues;
// the returned error counts the failures.
func eachFile(cmd *cobra.Command, cfg *config.Config, args []string, fn func(importer.FileInfo, *model.Transactions) error) error {
	logger := newLogger(cmd, cfg)
	reader := qif.NewReader(qif.WithDateFormat(cfg.DateFormat), qif.WithLogger(logger))
	errOut := cmd.ErrOrStderr()

	total, failed := 0, 0
	for _, arg := range args {
		files, err := importer.Expand([]string{arg}, cfg.Recursive)
		if err != nil {
			total++
			failed++
			fmt.Fprintf(errOut, "error: %v\n", err)
			continue
		}
		for _, f := range files {
			total++
			logger.Debug("reading file", "path", f.Path, "size", f.Size, "encoding", cfg.Encoding)

			ts, err := reader.ReadFile(f.Path, cfg.Encoding)
			if err == nil {
				err = fn(f, ts)
			}
			if err != nil {
				failed++
				logger.Debug("failed to process file", "path", f.Path, "error", err)
				fmt.Fprintf(errOut, "error: %v\n", err)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, total)
	}
	return nil
}
